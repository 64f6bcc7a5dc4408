package triage

import "strings"

// Risk thresholds on the severity scale.
const (
	highSeverityThreshold   = 15
	mediumSeverityThreshold = 8
)

// ResolveRisk maps severity and emergency status to the discrete risk level.
// Stateless: an emergency is HIGH unconditionally, regardless of severity.
func ResolveRisk(severity int, isEmergency bool) RiskLevel {
	switch {
	case isEmergency || severity >= highSeverityThreshold:
		return RiskHigh
	case severity >= mediumSeverityThreshold:
		return RiskMedium
	default:
		return RiskLow
	}
}

// ParseRiskLevel reads a risk string from the external collaborator,
// defaulting to LOW for anything unrecognized.
func ParseRiskLevel(s string) RiskLevel {
	switch {
	case strings.EqualFold(s, "high"):
		return RiskHigh
	case strings.EqualFold(s, "medium"), strings.EqualFold(s, "moderate"):
		return RiskMedium
	default:
		return RiskLow
	}
}

// escalate raises a risk level one step.
func escalate(r RiskLevel) RiskLevel {
	switch r {
	case RiskLow:
		return RiskMedium
	case RiskMedium:
		return RiskHigh
	default:
		return RiskHigh
	}
}

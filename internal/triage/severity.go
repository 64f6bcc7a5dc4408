package triage

import "strings"

// severityRule is one additive keyword rule on the 0-20 scale.
type severityRule struct {
	Match  func(s string) bool
	Points int
}

var severityRules = []severityRule{
	// critical red flags: +4 to +5
	{func(s string) bool { return strings.Contains(s, "chest pain") }, 5},
	{func(s string) bool { return containsAll(s, "severe", "breath") }, 5},
	{func(s string) bool { return strings.Contains(s, "confusion") }, 5},
	{func(s string) bool { return strings.Contains(s, "fainting") }, 5},
	{func(s string) bool { return strings.Contains(s, "chest tightness") }, 4},
	{func(s string) bool { return strings.Contains(s, "breathless") }, 4},

	// moderate: +2 to +3
	{func(s string) bool { return strings.Contains(s, "fever") }, 3},
	{func(s string) bool { return strings.Contains(s, "vomit") }, 3},
	{func(s string) bool { return strings.Contains(s, "dizziness") }, 2},
	{func(s string) bool { return strings.Contains(s, "severe headache") }, 3},
	{func(s string) bool { return strings.Contains(s, "headache") }, 2},

	// mild: +1
	{func(s string) bool { return strings.Contains(s, "cough") }, 1},
	{func(s string) bool { return strings.Contains(s, "runny nose") }, 1},
	{func(s string) bool { return strings.Contains(s, "fatigue") }, 1},
	{func(s string) bool { return strings.Contains(s, "sore throat") && !strings.Contains(s, "severe") }, 1},
}

// ScoreSeverity accumulates the bounded severity score from the raw symptom
// string plus the age factor. The score is clamped to [0, SeverityMax] after
// every adjustment; an emergency floor is applied by the caller via max, so a
// higher score is never overwritten down.
func ScoreSeverity(rawStr string, age int) int {
	score := 0
	for _, rule := range severityRules {
		if rule.Match(rawStr) {
			score = clampSeverity(score + rule.Points)
		}
	}

	// A plain sore throat must read as 4-7: never near-zero, never
	// emergency-level.
	if strings.Contains(rawStr, "throat") && !strings.Contains(rawStr, "severe") {
		if score < 4 {
			score = 4
		}
		if score > 7 {
			score = 7
		}
	}

	// The very young and the elderly carry extra risk.
	if age > 65 || (age > 0 && age < 5) {
		score += 2
	}

	return clampSeverity(score)
}

func clampSeverity(score int) int {
	if score < 0 {
		return 0
	}
	if score > SeverityMax {
		return SeverityMax
	}
	return score
}

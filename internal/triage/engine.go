package triage

import (
	"errors"
	"strings"
)

// ErrNoSymptoms is returned when the symptom list is empty or
// whitespace-only. Such input is rejected before the pipeline runs; there is
// no partial result.
var ErrNoSymptoms = errors.New("no symptoms provided")

// Engine is the rule-based triage pipeline. It is a pure, synchronous,
// stateless function of its input: all dictionaries are read-only after
// process start, so one Engine serves concurrent requests without locking.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Assess runs the full rule pipeline for one request: normalization,
// category analysis, emergency detection, severity scoring, risk resolution
// and condition/specialist prediction. Gender is accepted for interface
// completeness; no current rule keys on it. Total over non-empty input.
func (e *Engine) Assess(symptoms []string, age int, gender string, userCategory Category) (*Result, error) {
	_ = gender

	cleaned := make([]string, 0, len(symptoms))
	for _, s := range symptoms {
		if t := strings.TrimSpace(s); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	if len(cleaned) == 0 {
		return nil, ErrNoSymptoms
	}

	tokens := NormalizeAll(cleaned)
	rawStr := strings.ToLower(strings.Join(cleaned, " "))

	analysis := AnalyzeCategories(tokens, rawStr)
	emergency := DetectEmergency(rawStr)

	// A breathing emergency forces the respiratory category: safety must
	// not depend on the classifier having gotten it right.
	if emergency.Breathing {
		analysis.DominantCategory = CategoryRespiratory
		analysis.RedFlagHits[CategoryRespiratory] = true
		analysis.HasAnyRedFlag = true
	}

	severity := ScoreSeverity(rawStr, age)
	if emergency.IsEmergency {
		floor := EmergencyFloor
		if emergency.Breathing {
			floor = BreathingFloor
		}
		if severity < floor {
			severity = floor
		}
		severity = clampSeverity(severity)
	}

	risk := ResolveRisk(severity, emergency.IsEmergency)

	primary := analysis.DominantCategory
	if userCategory != "" && ValidateUserCategory(userCategory, rawStr) {
		primary = userCategory
	}

	specialist := SelectSpecialist(primary, emergency.IsEmergency)
	condition := PredictCondition(rawStr, analysis.DominantCategory)

	return &Result{
		Condition: condition,
		Category: CategoryMatch{
			Primary:   primary,
			Secondary: analysis.SecondaryCategory,
			Detected:  analysis.DominantCategory,
		},
		Severity:          severity,
		Risk:              risk,
		Emergency:         emergency,
		Specialist:        specialist,
		Precautions:       PrecautionsFor(condition),
		Actions:           actionSteps(risk, emergency.IsEmergency, specialist),
		ProcessedSymptoms: tokens,
		RawSymptoms:       cleaned,
		Analysis:          analysis,
	}, nil
}

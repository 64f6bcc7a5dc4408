package triage

import "strings"

// conditionRule is one (predicate, label) pair. The list is evaluated
// top-to-bottom on the raw string and the first match wins, so rule order is
// the priority order and tests pin it.
type conditionRule struct {
	Match func(s string) bool
	Label string
}

var conditionRules = []conditionRule{
	// throat
	{func(s string) bool { return strings.Contains(s, "throat") && strings.Contains(s, "fever") },
		"Acute Pharyngitis (Throat Infection)"},
	{func(s string) bool { return strings.Contains(s, "throat") },
		"Sore Throat / Throat Irritation"},

	// respiratory
	{func(s string) bool { return containsAll(s, "cough", "cold", "fever") },
		"Common Cold / Viral Infection"},
	{func(s string) bool { return containsAll(s, "cough", "fever") },
		"Respiratory Infection"},
	{func(s string) bool { return containsAll(s, "cough", "chest") },
		"Bronchitis / Respiratory Infection"},

	// cardiopulmonary
	{func(s string) bool {
		return containsAny(s, "chest pain", "chest tightness") && strings.Contains(s, "breath")
	}, "Acute Cardiopulmonary Event"},
	{func(s string) bool { return containsAny(s, "chest pain", "chest tightness") },
		"Cardiac Assessment Required"},
	{func(s string) bool { return containsAll(s, "severe", "breath") },
		"Acute Respiratory Distress"},

	// headache
	{func(s string) bool { return containsAll(s, "headache", "fever") },
		"Viral Fever / Flu"},
	{func(s string) bool { return strings.Contains(s, "severe headache") },
		"Severe Headache / Possible Migraine"},

	// skin
	{func(s string) bool { return containsAll(s, "rash", "itch") },
		"Allergic Reaction / Dermatitis"},
}

// PredictCondition pattern-matches the raw string to a best-guess condition
// label, falling back to a generic label keyed by the dominant category.
func PredictCondition(rawStr string, dominant Category) string {
	for _, rule := range conditionRules {
		if rule.Match(rawStr) {
			return rule.Label
		}
	}
	if label, ok := categoryConditions[dominant]; ok {
		return label
	}
	return defaultCondition
}

// SelectSpecialist maps a category to a specialist, with an unconditional
// emergency override.
func SelectSpecialist(category Category, isEmergency bool) string {
	if isEmergency {
		return emergencySpecialist
	}
	if specialist, ok := specialistTable[category]; ok {
		return specialist
	}
	return specialistTable[CategoryGeneral]
}

// PrecautionsFor looks up the precaution list for a condition label. Unknown
// conditions get the generic four-item list.
func PrecautionsFor(condition string) []string {
	if precautions, ok := precautionTable[condition]; ok {
		return append([]string(nil), precautions...)
	}
	return append([]string(nil), defaultPrecautions...)
}

// SpecialistForDisease maps an ML-predicted disease label to a specialist,
// returning "" when the label is unknown.
func SpecialistForDisease(disease string) string {
	return diseaseSpecialistTable[strings.TrimSpace(strings.ToLower(disease))]
}

// actionSteps returns the recommended next actions for a result tier.
func actionSteps(risk RiskLevel, isEmergency bool, specialist string) []string {
	switch {
	case isEmergency:
		return []string{
			"Urgent medical evaluation required",
			"Call emergency services or go to the nearest emergency room",
			"Do not delay seeking medical care",
		}
	case risk == RiskMedium || risk == RiskHigh:
		return []string{
			"Schedule an appointment with " + specialist,
			"Monitor symptoms closely",
			"Seek medical evaluation within 24-48 hours",
		}
	default:
		return []string{
			"Consider a consultation with " + specialist,
			"Monitor symptoms and track changes",
			"Rest and basic self-care as appropriate",
		}
	}
}

package triage

import "strings"

// Safety and guidance flags appended during reconciliation.
const (
	flagBreathingEmergency = "Breathing emergency detected - immediate medical attention required"
	flagVagueSymptoms      = "Vague symptoms - comprehensive medical evaluation recommended"
	flagLimitedSymptoms    = "Limited symptoms provided - consider comprehensive evaluation"
	flagLowConfidence      = "Low prediction confidence - seek professional medical advice"
)

var redFlagMessages = map[Category]string{
	CategoryCardio:      "Possible cardiac emergency symptoms detected",
	CategoryNeuro:       "Possible neurological emergency symptoms detected",
	CategoryRespiratory: "Possible respiratory emergency symptoms detected",
	CategoryGI:          "Possible gastrointestinal emergency symptoms detected",
	CategoryENT:         "Possible throat or airway emergency symptoms detected",
	CategoryAllergy:     "Possible severe allergic reaction detected",
}

// categoryGuidance names the specialist worth consulting when the dominant
// category is clear but no red flag fired.
var categoryGuidance = map[Category]string{
	CategoryCardio:      "Consider consulting a cardiologist",
	CategoryNeuro:       "Consider consulting a neurologist",
	CategoryRespiratory: "Consider consulting a pulmonologist",
	CategoryGI:          "Consider consulting a gastroenterologist",
}

// escalatableCategories are the ones serious enough to override a
// low-confidence external prediction.
var escalatableCategories = map[Category]bool{
	CategoryCardio:      true,
	CategoryNeuro:       true,
	CategoryRespiratory: true,
}

// Confidence thresholds for the external prediction.
const (
	confidenceTrustFloor   = 0.25
	confidenceCheckupFloor = 0.20
	confidenceWarnFloor    = 0.15
)

// Reconcile merges an external prediction with the rule engine's own result.
// The rules apply in fixed order and compose so that risk and severity can
// only move up relative to the rule-based floor: a red flag is never silently
// downgraded, whatever the collaborator claims.
func Reconcile(ext *ExternalPrediction, res *Result) *MergedResult {
	rawStr := strings.ToLower(strings.Join(res.RawSymptoms, " "))

	merged := &MergedResult{
		Disease:           ext.PredictedDisease,
		Description:       ext.Description,
		Confidence:        ext.Confidence,
		Risk:              ext.RiskLevel,
		Severity:          ext.SeverityScore,
		Category:          res.Category,
		CorrectedSymptoms: ext.CorrectedSymptoms,
		Top3:              ext.Top3,
		Precautions:       ext.Precautions,
		TriageAction:      ActionMonitorAndConsult,
		Analysis:          res.Analysis,
	}
	if merged.Risk == "" {
		merged.Risk = RiskLow
	}
	if len(merged.Precautions) == 0 {
		merged.Precautions = res.Precautions
	}

	// The merge never reads lower than the engine's own severity.
	if res.Severity > merged.Severity {
		merged.Severity = res.Severity
	}

	// Breathing distress is re-scanned here independently of the engine's
	// emergency rules, so phrasing that slipped past them (or a misled
	// classification upstream) cannot hide it.
	if res.Emergency.Breathing || detectBreathingDistress(rawStr) {
		merged.Risk = RiskHigh
		merged.Severity = maxInt(merged.Severity, BreathingFloor)
		merged.TriageAction = ActionUrgentEvaluation
		merged.EmergencyAlert = true
		merged.SafetyFlags = append(merged.SafetyFlags, flagBreathingEmergency)
		merged.Analysis.DominantCategory = CategoryRespiratory

		// The result's own maps stay untouched.
		hits := make(map[Category]bool, len(res.Analysis.RedFlagHits)+1)
		for cat, hit := range res.Analysis.RedFlagHits {
			hits[cat] = hit
		}
		hits[CategoryRespiratory] = true
		merged.Analysis.RedFlagHits = hits
		merged.Analysis.HasAnyRedFlag = true
	}

	redFlagged := merged.Analysis.HasAnyRedFlag || res.Emergency.IsEmergency

	// Rule 1: red-flag override.
	if redFlagged {
		merged.Risk = RiskHigh
		merged.Severity = maxInt(merged.Severity, EmergencyFloor)
		merged.TriageAction = ActionUrgentEvaluation
		merged.EmergencyAlert = true
		for _, cat := range categoryOrder {
			if msg, ok := redFlagMessages[cat]; ok && merged.Analysis.RedFlagHits[cat] {
				merged.SafetyFlags = append(merged.SafetyFlags, msg)
			}
		}
	}

	// Rule 2: low external confidence with a clear dominant category.
	if !redFlagged && merged.Analysis.DominantCategory != CategoryGeneral {
		dominant := merged.Analysis.DominantCategory
		if ext.Confidence < confidenceTrustFloor && escalatableCategories[dominant] {
			merged.Risk = escalate(merged.Risk)
			merged.Severity = maxInt(merged.Severity, 13)
			merged.SafetyFlags = append(merged.SafetyFlags,
				"Risk adjusted based on "+string(dominant)+" symptoms")
		}
		if guidance, ok := categoryGuidance[dominant]; ok {
			merged.SafetyFlags = append(merged.SafetyFlags, guidance)
		}
	}

	// Rule 3: sparse, vague symptom lists cannot carry a high risk.
	if len(res.ProcessedSymptoms) <= 2 && !redFlagged {
		if allVague(res.ProcessedSymptoms) {
			merged.Risk = RiskLow
			if merged.Severity > 8 {
				merged.Severity = 8
			}
			merged.SafetyFlags = append(merged.SafetyFlags, flagVagueSymptoms)
			merged.TriageAction = ActionGeneralCheckup
		} else {
			merged.SafetyFlags = append(merged.SafetyFlags, flagLimitedSymptoms)
			if ext.Confidence < confidenceCheckupFloor {
				merged.TriageAction = ActionGeneralCheckup
			}
		}
	}

	// Rule 4: unconditional low-confidence warning.
	if ext.Confidence < confidenceWarnFloor {
		merged.SafetyFlags = append(merged.SafetyFlags, flagLowConfidence)
	}

	merged.Severity = clampSeverity(merged.Severity)

	// An allergy-labelled external prediction is discarded whenever a
	// blocking symptom is present; the engine's own condition stands in.
	if strings.Contains(strings.ToLower(merged.Disease), "allergy") && hasAllergyBlocker(rawStr) {
		merged.Disease = res.Condition
		merged.Category = CategoryMatch{
			Primary:   res.Category.Detected,
			Secondary: res.Category.Secondary,
			Detected:  res.Category.Detected,
		}
		merged.AllergyBlocked = true
	}

	if merged.EmergencyAlert {
		merged.Specialist = emergencySpecialist
	} else if s := SpecialistForDisease(merged.Disease); s != "" {
		merged.Specialist = s
	} else {
		merged.Specialist = SelectSpecialist(merged.Category.Primary, false)
	}

	return merged
}

func allVague(tokens []string) bool {
	for _, token := range tokens {
		t := strings.ToLower(token)
		vague := false
		for _, v := range vagueSymptoms {
			if strings.Contains(t, v) {
				vague = true
				break
			}
		}
		if !vague {
			return false
		}
	}
	return len(tokens) > 0
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

package triage

import (
	"reflect"
	"testing"
)

func assess(t *testing.T, symptoms []string) *Result {
	t.Helper()
	res, err := NewEngine().Assess(symptoms, 30, "", "")
	if err != nil {
		t.Fatalf("Assess(%v): %v", symptoms, err)
	}
	return res
}

// A confident external prediction cannot talk the merge out of an emergency
// the rules already found.
func TestReconcileEmergencyOverride(t *testing.T) {
	res := assess(t, []string{"chest pain", "shortness of breath"})
	ext := &ExternalPrediction{
		PredictedDisease: "Common Cold",
		Confidence:       0.9,
		RiskLevel:        RiskLow,
		SeverityScore:    2,
	}

	merged := Reconcile(ext, res)

	if merged.Risk != RiskHigh {
		t.Errorf("risk = %q, want HIGH", merged.Risk)
	}
	if merged.Severity < BreathingFloor {
		t.Errorf("severity = %d, want >= %d", merged.Severity, BreathingFloor)
	}
	if !merged.EmergencyAlert {
		t.Error("EmergencyAlert not set")
	}
	if merged.TriageAction != ActionUrgentEvaluation {
		t.Errorf("action = %q, want urgent", merged.TriageAction)
	}
	if merged.Specialist != "Emergency Medicine Specialist" {
		t.Errorf("specialist = %q", merged.Specialist)
	}
	// The disease label itself is kept; only risk posture is overridden.
	if merged.Disease != "Common Cold" {
		t.Errorf("disease = %q", merged.Disease)
	}
	wantFlags := []string{
		flagBreathingEmergency,
		redFlagMessages[CategoryCardio],
		redFlagMessages[CategoryRespiratory],
	}
	if !reflect.DeepEqual(merged.SafetyFlags, wantFlags) {
		t.Errorf("flags = %v, want %v", merged.SafetyFlags, wantFlags)
	}
}

// Breathing distress phrased too mildly for any emergency rule still trips
// the merge's own keyword scan. The engine result itself stays untouched.
func TestReconcileBreathingKeywordsOnly(t *testing.T) {
	res := assess(t, []string{"trouble breathing"})
	if res.Emergency.IsEmergency {
		t.Fatal("emergency rule fired; scenario needs keywords only")
	}
	ext := &ExternalPrediction{
		PredictedDisease: "Common Cold",
		Confidence:       0.9,
		RiskLevel:        RiskLow,
		SeverityScore:    2,
	}

	merged := Reconcile(ext, res)

	if merged.Risk != RiskHigh {
		t.Errorf("risk = %q, want HIGH", merged.Risk)
	}
	if merged.Severity != BreathingFloor {
		t.Errorf("severity = %d, want %d", merged.Severity, BreathingFloor)
	}
	if !merged.EmergencyAlert {
		t.Error("EmergencyAlert not set")
	}
	if merged.TriageAction != ActionUrgentEvaluation {
		t.Errorf("action = %q, want urgent", merged.TriageAction)
	}
	if merged.Analysis.DominantCategory != CategoryRespiratory {
		t.Errorf("dominant = %q, want respiratory", merged.Analysis.DominantCategory)
	}
	if merged.Specialist != "Emergency Medicine Specialist" {
		t.Errorf("specialist = %q", merged.Specialist)
	}
	wantFlags := []string{
		flagBreathingEmergency,
		redFlagMessages[CategoryRespiratory],
	}
	if !reflect.DeepEqual(merged.SafetyFlags, wantFlags) {
		t.Errorf("flags = %v, want %v", merged.SafetyFlags, wantFlags)
	}
	// The merge works on its own copy of the analysis maps.
	if res.Analysis.RedFlagHits[CategoryRespiratory] {
		t.Error("engine result mutated by Reconcile")
	}
	if res.Analysis.HasAnyRedFlag {
		t.Error("engine red-flag state mutated by Reconcile")
	}
}

func TestReconcileLowConfidenceEscalation(t *testing.T) {
	res := assess(t, []string{"cough"})
	ext := &ExternalPrediction{
		PredictedDisease: "Common Cold",
		Confidence:       0.1,
		RiskLevel:        RiskLow,
		SeverityScore:    3,
	}

	merged := Reconcile(ext, res)

	if merged.Risk != RiskMedium {
		t.Errorf("risk = %q, want MEDIUM", merged.Risk)
	}
	if merged.Severity != 13 {
		t.Errorf("severity = %d, want 13", merged.Severity)
	}
	if merged.TriageAction != ActionGeneralCheckup {
		t.Errorf("action = %q, want checkup", merged.TriageAction)
	}
	wantFlags := []string{
		"Risk adjusted based on respiratory symptoms",
		"Consider consulting a pulmonologist",
		flagLimitedSymptoms,
		flagLowConfidence,
	}
	if !reflect.DeepEqual(merged.SafetyFlags, wantFlags) {
		t.Errorf("flags = %v, want %v", merged.SafetyFlags, wantFlags)
	}
	// Missing external precautions fall back to the engine's own.
	if !reflect.DeepEqual(merged.Precautions, res.Precautions) {
		t.Errorf("precautions = %v, want engine's %v", merged.Precautions, res.Precautions)
	}
	// The disease label still routes the specialist.
	if merged.Specialist != "General Physician" {
		t.Errorf("specialist = %q, want General Physician", merged.Specialist)
	}
}

func TestReconcileVagueSymptomsCap(t *testing.T) {
	res := assess(t, []string{"fatigue", "tiredness"})
	ext := &ExternalPrediction{
		PredictedDisease: "Chronic Fatigue",
		Confidence:       0.5,
		RiskLevel:        RiskMedium,
		SeverityScore:    12,
	}

	merged := Reconcile(ext, res)

	if merged.Risk != RiskLow {
		t.Errorf("risk = %q, want LOW", merged.Risk)
	}
	if merged.Severity != 8 {
		t.Errorf("severity = %d, want capped 8", merged.Severity)
	}
	if merged.TriageAction != ActionGeneralCheckup {
		t.Errorf("action = %q, want checkup", merged.TriageAction)
	}
	wantFlags := []string{flagVagueSymptoms}
	if !reflect.DeepEqual(merged.SafetyFlags, wantFlags) {
		t.Errorf("flags = %v, want %v", merged.SafetyFlags, wantFlags)
	}
}

func TestReconcileSeverityClamp(t *testing.T) {
	res := assess(t, []string{"cough"})
	ext := &ExternalPrediction{
		PredictedDisease: "Pneumonia",
		Confidence:       0.9,
		RiskLevel:        RiskHigh,
		SeverityScore:    30,
	}

	merged := Reconcile(ext, res)

	if merged.Severity != SeverityMax {
		t.Errorf("severity = %d, want clamped %d", merged.Severity, SeverityMax)
	}
	if merged.Risk != RiskHigh {
		t.Errorf("risk = %q, want HIGH", merged.Risk)
	}
	if merged.Specialist != "Pulmonologist" {
		t.Errorf("specialist = %q, want Pulmonologist", merged.Specialist)
	}
}

// An allergy prediction is discarded when a blocking symptom is present; the
// engine's own condition stands in.
func TestReconcileAllergyBlock(t *testing.T) {
	res := assess(t, []string{"sneezing", "fever"})
	ext := &ExternalPrediction{
		PredictedDisease: "Allergy",
		Confidence:       0.8,
		RiskLevel:        RiskLow,
		SeverityScore:    5,
	}

	merged := Reconcile(ext, res)

	if !merged.AllergyBlocked {
		t.Fatal("AllergyBlocked not set")
	}
	if merged.Disease != res.Condition {
		t.Errorf("disease = %q, want engine condition %q", merged.Disease, res.Condition)
	}
	if merged.Category.Primary != res.Category.Detected {
		t.Errorf("category = %q, want detected %q", merged.Category.Primary, res.Category.Detected)
	}
	if merged.Specialist == "Allergist" {
		t.Error("allergist kept despite blocked prediction")
	}
}

func TestReconcileAllergyKeptWithoutBlocker(t *testing.T) {
	res := assess(t, []string{"sneezing", "itching"})
	ext := &ExternalPrediction{
		PredictedDisease: "Allergy",
		Confidence:       0.8,
		RiskLevel:        RiskLow,
		SeverityScore:    3,
	}

	merged := Reconcile(ext, res)

	if merged.AllergyBlocked {
		t.Error("AllergyBlocked set without a blocking symptom")
	}
	if merged.Disease != "Allergy" {
		t.Errorf("disease = %q, want Allergy", merged.Disease)
	}
	if merged.Specialist != "Allergist" {
		t.Errorf("specialist = %q, want Allergist", merged.Specialist)
	}
}

func TestReconcileDefaultsEmptyRiskToLow(t *testing.T) {
	res := assess(t, []string{"fatigue"})
	merged := Reconcile(&ExternalPrediction{PredictedDisease: "Unknown"}, res)
	if merged.Risk != RiskLow {
		t.Errorf("risk = %q, want LOW default", merged.Risk)
	}
}

func TestReconcileNeverBelowEngineSeverity(t *testing.T) {
	res := assess(t, []string{"fever", "vomiting"})
	merged := Reconcile(&ExternalPrediction{
		PredictedDisease: "Gastroenteritis",
		Confidence:       0.9,
		RiskLevel:        RiskLow,
		SeverityScore:    1,
	}, res)
	if merged.Severity < res.Severity {
		t.Errorf("severity %d dropped below engine's %d", merged.Severity, res.Severity)
	}
}

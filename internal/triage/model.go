package triage

// Category is a supported medical category.
type Category string

const (
	CategoryCardio      Category = "cardio"
	CategoryRespiratory Category = "respiratory"
	CategoryNeuro       Category = "neuro"
	CategoryGI          Category = "gi"
	CategoryENT         Category = "ent"
	CategoryDermat      Category = "dermat"
	CategoryAllergy     Category = "allergy"
	CategoryEndocrine   Category = "endocrine"
	CategoryGeneral     Category = "general"
)

// DisplayName returns the human-readable name of a category.
func (c Category) DisplayName() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "General"
}

// RiskLevel is the discrete triage risk.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// Triage actions recommended alongside a merged result.
const (
	ActionMonitorAndConsult = "monitor_and_consult"
	ActionUrgentEvaluation  = "urgent_medical_evaluation"
	ActionGeneralCheckup    = "general_checkup_recommended"
)

// Severity bounds and emergency floors. Severity is clamped to
// [0, SeverityMax] after every additive step; an emergency raises it to at
// least EmergencyFloor (BreathingFloor for breathing emergencies).
const (
	SeverityMax    = 20
	EmergencyFloor = 17
	BreathingFloor = 18
)

// EmergencyStatus is the emergency detector's per-request output. Reasons
// are kept in detection-rule order so display stays deterministic.
type EmergencyStatus struct {
	IsEmergency bool     `json:"status"`
	Reasons     []string `json:"reasons,omitempty"`

	// Breathing is set when a breathing-distress rule matched. It forces
	// the respiratory category regardless of prior classification.
	Breathing bool `json:"-"`
}

// Reason joins the matched rule reasons for display.
func (e EmergencyStatus) Reason() string {
	if len(e.Reasons) == 0 {
		return ""
	}
	s := e.Reasons[0]
	for _, r := range e.Reasons[1:] {
		s += ", " + r
	}
	return s
}

// CategoryAnalysis is the classifier's per-request output. It is created
// fresh for every request and never shared.
type CategoryAnalysis struct {
	Scores            map[Category]int  `json:"scores"`
	RedFlagHits       map[Category]bool `json:"red_flag_hits"`
	DominantCategory  Category          `json:"dominant_category,omitempty"`
	SecondaryCategory Category          `json:"secondary_category,omitempty"`
	HasAnyRedFlag     bool              `json:"has_any_red_flag"`
}

// CategoryMatch reports the categories attached to a result: the one the
// caller asserted (if validated), the one the classifier detected, and the
// runner-up.
type CategoryMatch struct {
	Primary   Category `json:"primary"`
	Secondary Category `json:"secondary,omitempty"`
	Detected  Category `json:"detected"`
}

// Result is the rule engine's output for one request. It is immutable once
// built; reconciliation produces a new MergedResult instead of mutating it.
type Result struct {
	Condition         string           `json:"condition"`
	Category          CategoryMatch    `json:"category"`
	Severity          int              `json:"severity"`
	Risk              RiskLevel        `json:"risk"`
	Emergency         EmergencyStatus  `json:"emergency"`
	Specialist        string           `json:"specialist"`
	Precautions       []string         `json:"precautions"`
	Actions           []string         `json:"actions"`
	ProcessedSymptoms []string         `json:"processed_symptoms"`
	RawSymptoms       []string         `json:"raw_symptoms"`
	Analysis          CategoryAnalysis `json:"category_analysis"`
}

// DiseaseProbability is one entry of the ML service's top-3 list.
type DiseaseProbability struct {
	Disease     string  `json:"disease"`
	Probability float64 `json:"probability"`
}

// ExternalPrediction is the data received from the ML collaborator. It is
// untrusted: absent or malformed fields carry their zero value and the
// reconciliation layer treats zeros as the safe default.
type ExternalPrediction struct {
	PredictedDisease  string               `json:"predicted_disease"`
	Confidence        float64              `json:"confidence"`
	RiskLevel         RiskLevel            `json:"risk_level"`
	SeverityScore     int                  `json:"severity_score"`
	CorrectedSymptoms []string             `json:"corrected_symptoms"`
	InputSymptoms     []string             `json:"input_symptoms"`
	Precautions       []string             `json:"precautions"`
	Description       string               `json:"description"`
	Top3              []DiseaseProbability `json:"top_3"`
}

// MergedResult is the display-ready reconciliation of an ExternalPrediction
// with the rule engine's own findings. Risk and severity can only move up
// relative to the rule-based floor, never down.
type MergedResult struct {
	Disease           string               `json:"disease"`
	Description       string               `json:"description"`
	Confidence        float64              `json:"confidence"`
	Risk              RiskLevel            `json:"risk"`
	Severity          int                  `json:"severity"`
	Category          CategoryMatch        `json:"category"`
	Specialist        string               `json:"specialist"`
	Precautions       []string             `json:"precautions"`
	CorrectedSymptoms []string             `json:"corrected_symptoms"`
	Top3              []DiseaseProbability `json:"top_3,omitempty"`
	SafetyFlags       []string             `json:"safety_flags,omitempty"`
	TriageAction      string               `json:"triage_action"`
	EmergencyAlert    bool                 `json:"emergency_alert"`
	AllergyBlocked    bool                 `json:"allergy_blocked,omitempty"`
	Analysis          CategoryAnalysis     `json:"category_analysis"`
}

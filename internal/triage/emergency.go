package triage

import "strings"

// emergencyRule is one independent red-flag test over the raw symptom string.
// Rules are evaluated in fixed order with no short-circuit, so one request
// can accumulate several reasons. The order of this list is the order reasons
// appear in, and tests pin it.
type emergencyRule struct {
	Match    func(s string) bool
	Reason   string
	Category Category
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

var emergencyRules = []emergencyRule{
	// breathing
	{
		Match:    func(s string) bool { return strings.Contains(s, "severe") && containsAny(s, "breath", "breathing") },
		Reason:   "Severe breathing difficulty",
		Category: CategoryRespiratory,
	},
	{
		Match:    func(s string) bool { return containsAny(s, "can't breathe", "cannot breathe") },
		Reason:   "Unable to breathe",
		Category: CategoryRespiratory,
	},
	{
		Match:    func(s string) bool { return strings.Contains(s, "chest pain") },
		Reason:   "Chest pain requires urgent evaluation",
		Category: CategoryCardio,
	},
	{
		Match:    func(s string) bool { return strings.Contains(s, "chest tightness") && containsAny(s, "breath", "breathless") },
		Reason:   "Chest tightness with breathing difficulty",
		Category: CategoryRespiratory,
	},
	// neurological
	{
		Match:    func(s string) bool { return containsAny(s, "confusion", "unable to speak") },
		Reason:   "Neurological symptoms require immediate evaluation",
		Category: CategoryNeuro,
	},
	{
		Match:    func(s string) bool { return containsAny(s, "fainting", "loss of consciousness") },
		Reason:   "Loss of consciousness",
		Category: CategoryNeuro,
	},
	{
		Match:    func(s string) bool { return containsAny(s, "one sided weakness", "paralysis") },
		Reason:   "Possible stroke symptoms",
		Category: CategoryNeuro,
	},
	// throat
	{
		Match:    func(s string) bool { return containsAny(s, "unable to swallow", "drooling") },
		Reason:   "Severe throat obstruction",
		Category: CategoryENT,
	},
	{
		Match:    func(s string) bool { return containsAll(s, "severe", "throat", "fever") },
		Reason:   "Severe throat infection with fever",
		Category: CategoryENT,
	},
	// gastrointestinal
	{
		Match:    func(s string) bool { return strings.Contains(s, "blood") && containsAny(s, "vomit", "stool") },
		Reason:   "Gastrointestinal bleeding",
		Category: CategoryGI,
	},
	{
		Match:    func(s string) bool { return containsAll(s, "severe", "abdominal pain") },
		Reason:   "Severe abdominal pain",
		Category: CategoryGI,
	},
}

// DetectEmergency scans the raw joined lowercased symptom string against the
// ordered rule list. It runs regardless of category classification and can
// override it: emergency safety never depends on correct prior
// categorization.
func DetectEmergency(rawStr string) EmergencyStatus {
	var status EmergencyStatus
	for _, rule := range emergencyRules {
		if rule.Match(rawStr) {
			status.IsEmergency = true
			status.Reasons = append(status.Reasons, rule.Reason)
			if rule.Category == CategoryRespiratory {
				status.Breathing = true
			}
		}
	}
	if !status.Breathing && detectBreathingDistress(rawStr) && status.IsEmergency {
		status.Breathing = true
	}
	return status
}

// detectBreathingDistress reports breathing-related keywords in the raw
// string. Combined with an emergency match it forces the respiratory
// category.
func detectBreathingDistress(rawStr string) bool {
	return containsAny(rawStr, breathingKeywords...)
}

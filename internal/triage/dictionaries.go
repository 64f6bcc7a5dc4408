package triage

// Static lookup data for the rule engine. Everything in this file is loaded
// once and read-only afterwards, so concurrent requests need no locking.

// synonymTable maps free-text symptom phrases to canonical tokens. Throat
// phrases must never map to gastrointestinal tokens (and vice versa); a
// misclassification here historically sent sore throats to the GI pipeline.
var synonymTable = map[string]string{
	// breathing
	"difficulty breathing":        "breathlessness",
	"severe shortness of breath":  "breathlessness",
	"breathing difficulty":        "breathlessness",
	"can't breathe":               "breathlessness",
	"cannot breathe":              "breathlessness",
	"can't catch breath":          "breathlessness",
	"gasping":                     "breathlessness",
	"breathless":                  "breathlessness",
	"severe breathing problems":   "breathlessness",
	"hard to breathe":             "breathlessness",
	"trouble breathing":           "breathlessness",
	"shortness of breath":         "breathlessness",

	// throat (ENT)
	"pain in throat":  "throat_irritation",
	"throat pain":     "throat_irritation",
	"throught":        "throat_irritation",
	"sore throat":     "throat_irritation",
	"throat hurting":  "throat_irritation",
	"throat ache":     "throat_irritation",
	"painful throat":  "throat_irritation",

	// chest
	"chest tightness":  "chest_pain",
	"tight chest":      "chest_pain",
	"chest pressure":   "chest_pain",
	"chest discomfort": "chest_pain",

	// common
	"head pain":    "headache",
	"body pain":    "muscle_pain",
	"stomach ache": "stomach_pain",
	"belly pain":   "stomach_pain",
	"runny nose":   "runny_nose",
	"stuffy nose":  "congestion",
}

// categoryDictionary holds the core and red-flag phrase sets scored against
// normalized tokens (first classifier pass: core +1, red flag +3).
type categoryDictionary struct {
	Core     []string
	RedFlags []string
}

var categoryDictionaries = map[Category]categoryDictionary{
	CategoryCardio: {
		Core: []string{
			"chest_pain", "chest tightness", "palpitations",
			"shortness_of_breath", "shortness of breath",
			"radiating_pain_arm", "radiating_pain_jaw", "swelling_legs",
			"fainting", "syncope", "heart_palpitations",
		},
		RedFlags: []string{
			"severe_chest_pain", "crushing_chest_pain", "chest_pain_exertion",
			"shortness_of_breath_rest", "sweating_with_chest_pain",
			"chest pain", "severe chest pain",
		},
	},
	CategoryNeuro: {
		Core: []string{
			"headache", "severe_headache", "dizziness", "confusion",
			"blurred_vision", "numbness", "weakness", "speech_difficulty",
			"seizure", "migraine",
		},
		RedFlags: []string{
			"sudden_severe_headache", "loss_of_consciousness",
			"one_sided_weakness", "one_sided_numbness", "inability_to_speak",
			"seizure", "confusion_acute", "severe headache",
		},
	},
	CategoryRespiratory: {
		Core: []string{
			"cough", "dry_cough", "productive_cough",
			"shortness_of_breath", "shortness of breath", "wheezing",
			"chest_tightness", "chest tightness", "sore_throat", "runny_nose",
			"throat_irritation", "continuous_sneezing", "difficulty_breathing",
			"breathing_difficulty", "breathless", "gasping",
		},
		RedFlags: []string{
			"shortness_of_breath_rest", "severe shortness of breath",
			"difficulty_breathing", "severe_breathing_difficulty",
			"unable_to_speak_full_sentences", "blue_lips", "stridor",
			"can't breathe", "suffocating", "gasping_for_air",
			"severe chest tightness", "difficulty breathing",
			"breathing difficulty",
		},
	},
	CategoryGI: {
		Core: []string{
			"stomach_pain", "abdominal_pain", "nausea", "vomiting",
			"diarrhoea", "diarrhea", "heartburn", "bloating", "acidity",
		},
		RedFlags: []string{
			"severe_abdominal_pain", "blood_in_vomit", "blood_in_stool",
			"black_stool", "persistent_vomiting", "severe stomach pain",
		},
	},
	CategoryENT: {
		Core: []string{
			"throat_irritation", "sore_throat", "ear_pain", "earache",
			"nasal_congestion", "hoarseness",
		},
		RedFlags: []string{
			"unable_to_swallow", "cannot_swallow", "drooling",
			"muffled_voice", "severe_throat_pain", "throat_swelling",
		},
	},
	CategoryDermat: {
		Core: []string{
			"rash", "itching", "skin_rash", "hives", "lesion", "dry_skin",
		},
	},
	CategoryAllergy: {
		Core: []string{
			"sneezing", "itching", "hives", "watery_eyes", "allergic_reaction",
		},
		RedFlags: []string{"anaphylaxis"},
	},
	CategoryEndocrine: {
		Core: []string{
			"excessive_thirst", "unexplained_weight_loss", "excessive_hunger",
			"heat_intolerance", "cold_intolerance",
		},
	},
}

// keywordWeights drives the second classifier pass: fixed substring scans
// over the raw string with asymmetric clinical-urgency weights. Cardiac
// keywords outweigh ENT, which outweigh the rest.
type keywordWeight struct {
	Category Category
	Weight   int
	Keywords []string
}

var keywordWeights = []keywordWeight{
	{CategoryRespiratory, 2, []string{
		"cough", "cold", "fever", "sore throat", "throat", "runny nose",
		"chest tightness", "breathlessness", "breathing",
	}},
	{CategoryCardio, 5, []string{"chest pain", "chest_pain", "palpitations", "heart"}},
	{CategoryENT, 3, []string{"throat", "sore throat", "throat pain", "throat irritation", "ear", "nose"}},
	{CategoryNeuro, 2, []string{"headache", "confusion", "dizziness", "weakness", "numbness"}},
	{CategoryGI, 2, []string{"abdominal pain", "stomach", "vomit", "diarr", "nausea", "belly"}},
	{CategoryDermat, 2, []string{"rash", "itch", "skin", "lesion", "bump"}},
	{CategoryEndocrine, 2, []string{"weight loss", "excessive thirst", "hormonal", "diabetes"}},
}

// allergyKeywords score the allergy category, but only when no blocker is
// present anywhere in the raw string. Weight 2 per hit so a pure allergy
// presentation (sneezing + itching) outranks the dermatological overlap.
var allergyKeywords = []string{"sneez", "itch", "rash", "hives"}

const allergyKeywordWeight = 2

// allergyBlockers suppress the allergy category entirely: these symptoms are
// never explained by an allergy alone.
var allergyBlockers = []string{
	"chest pain", "fever", "chills", "severe headache", "breathless", "nausea",
}

// breathingKeywords flag breathing distress independently of category
// classification.
var breathingKeywords = []string{
	"breath", "breathing", "gasp", "choking", "suffocating",
	"can't breathe", "unable to breathe", "breathless",
	"shortness", "chest tightness", "chest tight",
}

// vagueSymptoms are the tokens that, alone, justify capping risk during
// reconciliation (rule 3).
var vagueSymptoms = []string{"fatigue", "malaise", "tired", "weakness", "general pain"}

var specialistTable = map[Category]string{
	CategoryCardio:      "Cardiologist",
	CategoryRespiratory: "Pulmonologist",
	CategoryNeuro:       "Neurologist",
	CategoryGI:          "Gastroenterologist",
	CategoryDermat:      "Dermatologist",
	CategoryAllergy:     "Allergist",
	CategoryEndocrine:   "Endocrinologist",
	CategoryENT:         "ENT Specialist (Otolaryngologist)",
	CategoryGeneral:     "General Physician",
}

const emergencySpecialist = "Emergency Medicine Specialist"

var categoryNames = map[Category]string{
	CategoryCardio:      "Cardiovascular",
	CategoryNeuro:       "Neurological",
	CategoryRespiratory: "Respiratory",
	CategoryGI:          "Gastrointestinal",
	CategoryDermat:      "Dermatological",
	CategoryAllergy:     "Allergic",
	CategoryEndocrine:   "Endocrine",
	CategoryENT:         "Ear, Nose & Throat",
	CategoryGeneral:     "General Medicine",
}

// categoryConditions are the generic fallback labels used when no condition
// pattern matches.
var categoryConditions = map[Category]string{
	CategoryRespiratory: "Respiratory Condition",
	CategoryGI:          "Gastrointestinal Condition",
	CategoryCardio:      "Cardiovascular Concern",
	CategoryNeuro:       "Neurological Concern",
	CategoryENT:         "ENT Condition",
	CategoryDermat:      "Dermatological Condition",
	CategoryAllergy:     "Allergic Condition",
	CategoryEndocrine:   "Endocrine Condition",
}

const defaultCondition = "General Medical Condition"

var precautionTable = map[string][]string{
	"Sore Throat / Throat Irritation": {
		"Stay hydrated with warm fluids",
		"Gargle with warm salt water",
		"Rest your voice",
		"Avoid irritants like smoke",
	},
	"Common Cold / Viral Infection": {
		"Get adequate rest",
		"Stay hydrated",
		"Use over-the-counter pain relievers if needed",
		"Practice good hand hygiene",
	},
	"Acute Respiratory Distress": {
		"Seek immediate emergency care",
		"Sit upright to ease breathing",
		"Stay calm",
		"Do not delay medical attention",
	},
	"Cardiac Assessment Required": {
		"Seek emergency medical evaluation immediately",
		"Do not exert yourself",
		"Sit or lie down",
		"Call emergency services if symptoms worsen",
	},
}

// diseaseSpecialistTable maps disease labels from the ML collaborator to the
// specialist who treats them. Labels are matched lowercased.
var diseaseSpecialistTable = map[string]string{
	"heart attack":  "Cardiologist",
	"hypertension":  "Cardiologist",
	"heart disease": "Cardiologist",

	"pneumonia":        "Pulmonologist",
	"bronchial asthma": "Pulmonologist",
	"tuberculosis":     "Pulmonologist",

	"gastroesophageal reflux disease": "Gastroenterologist",
	"peptic ulcer diseae":             "Gastroenterologist",
	"gastroenteritis":                 "Gastroenterologist",

	"migraine":                      "Neurologist",
	"cervical spondylosis":          "Neurologist",
	"paralysis (brain hemorrhage)":  "Neurologist",

	"malaria": "Infectious Disease Specialist",
	"typhoid": "Infectious Disease Specialist",

	"hepatitis a":         "Hepatologist",
	"hepatitis b":         "Hepatologist",
	"hepatitis c":         "Hepatologist",
	"hepatitis d":         "Hepatologist",
	"hepatitis e":         "Hepatologist",
	"alcoholic hepatitis": "Hepatologist",
	"jaundice":            "Hepatologist",
	"chronic cholestasis": "Hepatologist",

	"fungal infection": "Dermatologist",
	"psoriasis":        "Dermatologist",
	"impetigo":         "Dermatologist",
	"allergy":          "Allergist",

	"diabetes":        "Endocrinologist",
	"hyperthyroidism": "Endocrinologist",
	"hypothyroidism":  "Endocrinologist",

	"arthritis":      "Rheumatologist",
	"osteoarthristis": "Orthopedist",

	"urinary tract infection": "Urologist",
	"drug reaction":           "General Physician",
	"common cold":             "General Physician",
	"chicken pox":             "Pediatrician",
	"varicose veins":          "Vascular Surgeon",
}

var defaultPrecautions = []string{
	"Monitor your symptoms closely",
	"Stay hydrated and get adequate rest",
	"Consult a healthcare provider if symptoms worsen",
	"Seek immediate care for severe or worsening symptoms",
}

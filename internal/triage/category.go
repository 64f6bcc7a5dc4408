package triage

import "strings"

// categoryOrder fixes iteration order over score maps so dominant/secondary
// selection is deterministic when scores tie.
var categoryOrder = []Category{
	CategoryCardio, CategoryRespiratory, CategoryNeuro, CategoryGI,
	CategoryENT, CategoryDermat, CategoryAllergy, CategoryEndocrine,
	CategoryGeneral,
}

// AnalyzeCategories scores the request against the category dictionaries and
// keyword tables and picks the dominant and secondary categories.
//
// Scoring runs as two explicit passes feeding one accumulator: a dictionary
// pass over the normalized tokens (core +1, red flag +3) and a weighted
// keyword-substring pass over the raw joined string. The passes stay separate
// so the relative weights remain visible.
func AnalyzeCategories(tokens []string, rawStr string) CategoryAnalysis {
	scores := make(map[Category]int, len(categoryOrder))
	redFlagHits := make(map[Category]bool, len(categoryDictionaries))

	// Pass 1: dictionary matching against normalized tokens.
	for _, token := range tokens {
		symptom := strings.ReplaceAll(strings.TrimSpace(strings.ToLower(token)), "_", " ")
		for cat, dict := range categoryDictionaries {
			if matchesAnyPhrase(symptom, dict.Core, true) {
				scores[cat]++
			}
			if matchesAnyPhrase(symptom, dict.RedFlags, false) {
				scores[cat] += 3
				redFlagHits[cat] = true
			}
		}
	}

	// Pass 2: weighted keyword scan over the raw string.
	for _, kw := range keywordWeights {
		for _, keyword := range kw.Keywords {
			if strings.Contains(rawStr, keyword) {
				scores[kw.Category] += kw.Weight
			}
		}
	}

	// Allergy is suppressible: it scores only when no blocker is present,
	// no matter how many allergy hits accumulated in either pass.
	if hasAllergyBlocker(rawStr) {
		delete(scores, CategoryAllergy)
	} else {
		for _, keyword := range allergyKeywords {
			if strings.Contains(rawStr, keyword) {
				scores[CategoryAllergy] += allergyKeywordWeight
			}
		}
	}

	// Ambiguous multi-symptom sets default to respiratory over rarer
	// categories: boost respiratory so it wins ties.
	if resp := scores[CategoryRespiratory]; resp >= 2 {
		for _, cat := range categoryOrder {
			if cat != CategoryRespiratory && scores[cat] == resp {
				scores[CategoryRespiratory]++
				break
			}
		}
	}

	dominant, secondary := rankCategories(scores)

	analysis := CategoryAnalysis{
		Scores:            scores,
		RedFlagHits:       redFlagHits,
		DominantCategory:  dominant,
		SecondaryCategory: secondary,
	}
	for _, hit := range redFlagHits {
		if hit {
			analysis.HasAnyRedFlag = true
			break
		}
	}
	return analysis
}

// rankCategories returns the highest and next-highest scoring categories with
// a positive score. The dominant category falls back to general when nothing
// scored.
func rankCategories(scores map[Category]int) (dominant, secondary Category) {
	dominant = CategoryGeneral
	best, next := 0, 0
	for _, cat := range categoryOrder {
		score := scores[cat]
		if score <= 0 {
			continue
		}
		switch {
		case score > best:
			if best > 0 {
				secondary, next = dominant, best
			}
			dominant, best = cat, score
		case score > next:
			secondary, next = cat, score
		}
	}
	return dominant, secondary
}

// matchesAnyPhrase reports whether the symptom matches one of the dictionary
// phrases: bidirectional substring containment, exact equality, and (for core
// phrases only) partial-word overlap on words longer than three characters.
// This exact strategy is load-bearing; tests depend on its false-positive and
// false-negative behavior.
func matchesAnyPhrase(symptom string, phrases []string, partialWords bool) bool {
	for _, phrase := range phrases {
		clean := strings.ReplaceAll(strings.ToLower(phrase), "_", " ")
		if symptom == clean || strings.Contains(symptom, clean) || strings.Contains(clean, symptom) {
			return true
		}
		if partialWords && strings.Contains(clean, " ") {
			for _, part := range strings.Fields(clean) {
				if len(part) > 3 && strings.Contains(symptom, part) {
					return true
				}
			}
		}
	}
	return false
}

func hasAllergyBlocker(rawStr string) bool {
	for _, blocker := range allergyBlockers {
		if strings.Contains(rawStr, blocker) {
			return true
		}
	}
	return false
}

// ValidateUserCategory reports whether a caller-asserted category may stand.
// Allergy is refused whenever a blocking symptom is present.
func ValidateUserCategory(userCategory Category, rawStr string) bool {
	if userCategory == CategoryAllergy && hasAllergyBlocker(rawStr) {
		return false
	}
	_, known := specialistTable[userCategory]
	return known
}

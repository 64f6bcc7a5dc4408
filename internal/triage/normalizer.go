package triage

import "strings"

// Normalize maps a raw symptom phrase to its canonical token. Lookup is
// exact-match on the lowercased, trimmed phrase; unknown phrases are kept as
// their own (lowercased) token so no reported symptom is ever dropped. There
// is deliberately no fuzzy matching or stemming.
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if token, ok := synonymTable[s]; ok {
		return token
	}
	return s
}

// NormalizeAll normalizes a symptom list, preserving order.
func NormalizeAll(raw []string) []string {
	tokens := make([]string, 0, len(raw))
	for _, s := range raw {
		tokens = append(tokens, Normalize(s))
	}
	return tokens
}

package domain

import "strings"

// CompatibilityScore computes the Jaccard similarity of two interest sets,
// scaled to 0..100 and rounded half up. Matching is case-insensitive and
// ignores surrounding whitespace. Returns 0 when either set is empty.
func CompatibilityScore(a, b []string) int {
	setA := normalizeInterests(a)
	setB := normalizeInterests(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for interest := range setA {
		if _, ok := setB[interest]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}

	// round half up in integer arithmetic
	score := (intersection*200 + union) / (2 * union)
	if score > 100 {
		score = 100
	}
	return score
}

func normalizeInterests(interests []string) map[string]struct{} {
	set := make(map[string]struct{}, len(interests))
	for _, raw := range interests {
		interest := strings.ToLower(strings.TrimSpace(raw))
		if interest == "" {
			continue
		}
		set[interest] = struct{}{}
	}
	return set
}

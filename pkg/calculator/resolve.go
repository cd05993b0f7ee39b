package calculator

import (
	"strings"

	"ads-daily-report/pkg/models"
)

// Resolve picks the label matching policy among labels.
//
// Exact candidates are tried in policy order and compared under Normalize;
// the first label (in labels order) carrying that key is returned. When no
// exact candidate hits, the first label whose key contains every fuzzy
// keyword wins. An empty keyword set matches the first label.
func Resolve(labels []string, policy models.ResolutionPolicy) (string, bool) {
	keys := make([]string, len(labels))
	byKey := make(map[string]string, len(labels))
	for i, l := range labels {
		keys[i] = Normalize(l)
		if _, seen := byKey[keys[i]]; !seen {
			byKey[keys[i]] = l
		}
	}

	for _, c := range policy.Exact {
		if l, ok := byKey[Normalize(c)]; ok {
			return l, true
		}
	}

	keywords := make([]string, len(policy.Fuzzy))
	for i, kw := range policy.Fuzzy {
		keywords[i] = Normalize(kw)
	}
	for i, l := range labels {
		if containsAll(keys[i], keywords) {
			return l, true
		}
	}
	return "", false
}

// ResolveChain evaluates policies in order and stops at the first hit.
func ResolveChain(labels []string, chain []models.ResolutionPolicy) (string, bool) {
	for _, p := range chain {
		if l, ok := Resolve(labels, p); ok {
			return l, true
		}
	}
	return "", false
}

func containsAll(s string, keywords []string) bool {
	for _, kw := range keywords {
		if !strings.Contains(s, kw) {
			return false
		}
	}
	return true
}

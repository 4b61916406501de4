package validate

import "github.com/agext/levenshtein"

// maxHealDistance bounds how far a typo may be from a known attribute name
// before healing gives up.
const maxHealDistance = 2

// nearestAttr fuzzy-matches a rejected attribute key against the global set
// and the tag's allowlist, returning the closest candidate within
// maxHealDistance.
func nearestAttr(key, tag string) (string, bool) {
	best := ""
	bestDist := maxHealDistance + 1

	consider := func(candidate string) {
		d := levenshtein.Distance(key, candidate, nil)
		if d < bestDist {
			best = candidate
			bestDist = d
		}
	}

	for candidate := range GlobalAttrs {
		consider(candidate)
	}
	for candidate := range ValidAttrs[tag] {
		consider(candidate)
	}

	if bestDist > maxHealDistance {
		return "", false
	}
	return best, true
}

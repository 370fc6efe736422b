package value

import "github.com/lithammer/fuzzysearch/fuzzy"

// FindClosestMatch ranks candidates against target with fuzzy matching
// and returns the closest, or "" if nothing ranks. Used to build "did
// you mean" hints for LookupError.
func FindClosestMatch(target string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) > 0 {
		return ranks[0].Target
	}
	return ""
}

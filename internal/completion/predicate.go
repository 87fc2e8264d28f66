package completion

import "strings"

// SimilarityFunc decides whether a declared name matches a typed prefix.
// It is an injected policy, not part of the ranking algorithm: any
// predicate works as long as an empty prefix matches everything and the
// predicate only gets stricter as the prefix lengthens.
type SimilarityFunc func(name, prefix string) bool

// DefaultSimilarity is the stock predicate: case-insensitive prefix match,
// with a lenient fallback that accepts the prefix as a case-insensitive
// subsequence of the name (so "ivc" still finds "initialize_vector_clock").
func DefaultSimilarity(name, prefix string) bool {
	if prefix == "" {
		return true
	}
	name = strings.ToLower(name)
	prefix = strings.ToLower(prefix)
	if strings.HasPrefix(name, prefix) {
		return true
	}
	return isSubsequence(prefix, name)
}

// isSubsequence reports whether every byte of needle appears in haystack
// in order.
func isSubsequence(needle, haystack string) bool {
	i := 0
	for j := 0; j < len(haystack) && i < len(needle); j++ {
		if haystack[j] == needle[i] {
			i++
		}
	}
	return i == len(needle)
}

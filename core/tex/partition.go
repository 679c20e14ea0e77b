package tex

import "regexp"

// Partition splits s around every match of pattern, keeping the matches.
// Unlike Regexp.Split, the result is lossless: concatenating the pieces
// reproduces s exactly, except that an empty trailing remainder is dropped.
// The slice before each match is always emitted, so pieces may be empty when
// a match sits at the start of s or two matches are adjacent.
func Partition(pattern *regexp.Regexp, s string) []string {
	var parts []string

	prev := 0
	for _, m := range pattern.FindAllStringIndex(s, -1) {
		parts = append(parts, s[prev:m[0]], s[m[0]:m[1]])
		prev = m[1]
	}

	if tail := s[prev:]; tail != "" {
		parts = append(parts, tail)
	}

	return parts
}

// Package tex parses lilscript-flavoured TeX sources into the script model.
//
// A source document carries its metadata in a preamble of renewcommand-style
// macros and its body as one container command per line. Parsing is
// one-directional: tex in, script out.
package tex

import (
	"regexp"
	"strings"
)

// ellipsisReplacer handles \ldots and \textellipsis, with or without the
// trailing {}. The braced forms absorb the brace pair into a space so the
// following word stays separated.
var ellipsisReplacer = strings.NewReplacer(
	`\ldots{}`, "... ",
	`\ldots`, "...",
	`\textellipsis{}`, "... ",
	`\textellipsis`, "...",
)

var (
	quotePattern  = regexp.MustCompile("``(.*?)''")
	escapePattern = regexp.MustCompile(`\\([%&$])`)
	smilePattern  = regexp.MustCompile(`\\kaosmile(\{\})?`)
	tildePattern  = regexp.MustCompile(`\\Tilde(\{\})?`)
	hrefPattern   = regexp.MustCompile(`\\href\{(.*?)\}\{(.*?)\}`)
	spacePattern  = regexp.MustCompile(`[[:space:]]+`)
)

// Normalize removes the TeX idioms for plain text from s, leaving any
// structural commands (container and span markup) untouched:
//
//   - \ldots and \textellipsis (with or without {}) become "..."
//   - ``quoted'' becomes "quoted"
//   - \%, \&, \$ are unescaped
//   - \kaosmile{} becomes "^_^ "
//   - \Tilde{} becomes U+223C
//   - \href{URL}{TEXT} becomes [TEXT](URL)
//   - runs of whitespace collapse to a single space, and the result is
//     trimmed
func Normalize(s string) string {
	s = ellipsisReplacer.Replace(s)
	s = quotePattern.ReplaceAllString(s, `"$1"`)
	s = escapePattern.ReplaceAllString(s, "$1")
	s = smilePattern.ReplaceAllString(s, "^_^ ")
	s = tildePattern.ReplaceAllString(s, "∼")
	s = hrefPattern.ReplaceAllString(s, "[$2]($1)")
	s = spacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

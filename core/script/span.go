// Package script defines the document model for audio-drama scripts: spans,
// containers, word counts, and the assembled Script aggregate. Parsers build
// these values once; they are never mutated after assembly.
package script

import "regexp"

// SpanKind represents the kind of a text span.
type SpanKind string

// Span kind constants.
const (
	// SpanNormal is plain prose text.
	SpanNormal SpanKind = "NORMAL"
	// SpanEmphasis is emphasised text.
	SpanEmphasis SpanKind = "EMPHASIS"
	// SpanInlineDirection is a short parenthetical performance cue embedded
	// within dialogue.
	SpanInlineDirection SpanKind = "INLINE_DIRECTION"
)

// validSpanKinds is the set of valid span kinds.
var validSpanKinds = map[SpanKind]bool{
	SpanNormal:          true,
	SpanEmphasis:        true,
	SpanInlineDirection: true,
}

// IsValid returns true if the span kind is valid.
func (k SpanKind) IsValid() bool {
	return validSpanKinds[k]
}

// Span is the smallest classified unit of text, tagged with a kind that
// determines both its rendering and its spoken/unspoken classification.
type Span struct {
	// Kind is the kind of span this represents.
	Kind SpanKind `json:"kind"`

	// Contents is the text within the span.
	Contents string `json:"contents"`
}

// NewNormal constructs a span of kind SpanNormal.
func NewNormal(contents string) Span {
	return Span{Kind: SpanNormal, Contents: contents}
}

// NewEmphasis constructs a span of kind SpanEmphasis.
func NewEmphasis(contents string) Span {
	return Span{Kind: SpanEmphasis, Contents: contents}
}

// NewInline constructs a span of kind SpanInlineDirection.
func NewInline(contents string) Span {
	return Span{Kind: SpanInlineDirection, Contents: contents}
}

// wordPattern matches one word: a maximal run of Latin letters (including
// the accented Latin-1 supplement range) with apostrophe, tilde, and hyphen
// treated as word-internal. Non-Latin scripts are not counted.
var wordPattern = regexp.MustCompile(`[A-Za-zÀ-ÖØ-öø-ÿ'~-]+`)

// NumWords returns the number of words contained in the span.
//
// Hyphenated and contracted forms count once ("isn't", "well-known"); a span
// containing only non-Latin text counts zero.
func (s Span) NumWords() int {
	return len(wordPattern.FindAllStringIndex(s.Contents, -1))
}

// IsSpoken reports whether this span counts as spoken within the context of
// the given parent container. A span is spoken iff the parent container is
// Spoken and the span is not an inline direction; its words are never split
// between buckets.
func (s Span) IsSpoken(context ContainerKind) bool {
	if context != ContainerSpoken {
		return false
	}
	return s.Kind != SpanInlineDirection
}

package script

import "testing"

func TestSpanKindIsValid(t *testing.T) {
	for _, kind := range []SpanKind{SpanNormal, SpanEmphasis, SpanInlineDirection} {
		if !kind.IsValid() {
			t.Errorf("%s.IsValid() = false, want true", kind)
		}
	}
	if SpanKind("SHOUTED").IsValid() {
		t.Error(`SpanKind("SHOUTED").IsValid() = true, want false`)
	}
}

func TestSpanNumWords(t *testing.T) {
	tests := []struct {
		name string
		span Span
		want int
	}{
		{
			name: "contractions count once",
			span: NewNormal("This isn't some text, is it?"),
			want: 6,
		},
		{
			name: "accented Latin letters",
			span: NewNormal("C'est même en français, avec les accents."),
			want: 7,
		},
		{
			name: "hyphenated words count once",
			span: NewEmphasis("hyphenated-words-count-once"),
			want: 1,
		},
		{
			name: "non-Latin scripts are not counted",
			span: NewNormal("ねぇ、大丈夫？"),
			want: 0,
		},
		{
			name: "empty span",
			span: NewNormal(""),
			want: 0,
		},
		{
			name: "punctuation only",
			span: NewNormal("... !?"),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.NumWords(); got != tt.want {
				t.Errorf("NumWords() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSpanIsSpoken(t *testing.T) {
	tests := []struct {
		name    string
		span    Span
		context ContainerKind
		want    bool
	}{
		{"normal in spoken", NewNormal("Some text"), ContainerSpoken, true},
		{"emphasis in spoken", NewEmphasis("Some text"), ContainerSpoken, true},
		{"inline direction in spoken", NewInline("quietly"), ContainerSpoken, false},
		{"normal in stage direction", NewNormal("Some text"), ContainerStageDir, false},
		{"normal in sfx", NewNormal("a door closes"), ContainerSfx, false},
		{"normal in listener dialogue", NewNormal("Some text"), ContainerListenerDialogue, false},
		{"normal in plain text", NewNormal("Some text"), ContainerPlainText, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.IsSpoken(tt.context); got != tt.want {
				t.Errorf("IsSpoken(%s) = %v, want %v", tt.context, got, tt.want)
			}
		})
	}
}

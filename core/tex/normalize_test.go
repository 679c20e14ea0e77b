package tex

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "ellipses with and without braces",
			input: `This is some text\textellipsis{} and some\ldots{} more text\textellipsis?`,
			want:  "This is some text... and some... more text...?",
		},
		{
			name:  "quotation marks",
			input: "She said ``hello there'' twice.",
			want:  `She said "hello there" twice.`,
		},
		{
			name:  "escaped symbols",
			input: `This is some text\$ with \& a few \%symbols thrown in.`,
			want:  "This is some text$ with & a few %symbols thrown in.",
		},
		{
			name:  "duplicated spaces",
			input: "This is some      normal text, except there is additional space in the middle",
			want:  "This is some normal text, except there is additional space in the middle",
		},
		{
			name:  "custom commands",
			input: `This is some text, with some curious stuff\Tilde \Tilde{} \kaosmile{}`,
			want:  "This is some text, with some curious stuff∼ ∼ ^_^",
		},
		{
			name:  "href becomes markdown link",
			input: `This is some text with a \href{https://example.com}{link} in it.`,
			want:  "This is some text with a [link](https://example.com) in it.",
		},
		{
			name:  "unknown commands survive",
			input: `This is\anotherCommand{3} some text\textellipsis{} and some more text.`,
			want:  `This is\anotherCommand{3} some text... and some more text.`,
		},
		{
			name:  "leading and trailing space trimmed",
			input: "   some text   ",
			want:  "some text",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

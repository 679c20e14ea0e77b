package tex

import (
	"reflect"
	"regexp"
	"strings"
	"testing"
)

func TestPartition(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    []string
	}{
		{
			name:    "with tail",
			pattern: "C+",
			input:   "ABCCQBCPCCCS",
			want:    []string{"AB", "CC", "QB", "C", "P", "CCC", "S"},
		},
		{
			name:    "trailing delimiter",
			pattern: "C+",
			input:   "ABCCQBCPCCC",
			want:    []string{"AB", "CC", "QB", "C", "P", "CCC"},
		},
		{
			name:    "leading delimiter keeps empty head",
			pattern: "C+",
			input:   "CCAB",
			want:    []string{"", "CC", "AB"},
		},
		{
			name:    "no match",
			pattern: "Z+",
			input:   "ABCD",
			want:    []string{"ABCD"},
		},
		{
			name:    "inline commands",
			pattern: `\\.+?\{.*?\}`,
			input:   `some text \direct{loudly} more text`,
			want:    []string{"some text ", `\direct{loudly}`, " more text"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Partition(regexp.MustCompile(tt.pattern), tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Partition(%q, %q) = %q, want %q", tt.pattern, tt.input, got, tt.want)
			}
			if joined := strings.Join(got, ""); joined != tt.input {
				t.Errorf("concatenated parts = %q, want original %q", joined, tt.input)
			}
		})
	}
}

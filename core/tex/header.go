package tex

import (
	"regexp"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	coreerrors "github.com/mirelia/scriptmd/core/errors"
	"github.com/mirelia/scriptmd/core/script"
)

// headerRule binds one mandatory header field to its extraction pattern.
type headerRule struct {
	field   string
	pattern *regexp.Regexp
}

// Header fields live in the document preamble as one-argument macros. The
// value group is lazy so it stops at the first closing brace. The title is
// special: the template sets it by renewing a fixed scene-name macro.
var headerRules = []headerRule{
	{"title", regexp.MustCompile(`\\renewcommand\{\\SceneName\}\{(?P<value>.*?)\}`)},
	{"author", regexp.MustCompile(`\\scriptAuthor\{(?P<value>.*?)\}`)},
	{"series", regexp.MustCompile(`\\scriptSeries\{(?P<value>.*?)\}`)},
	{"tags", regexp.MustCompile(`\\scriptTags\{(?P<value>.*?)\}`)},
	{"summary", regexp.MustCompile(`\\summary\{(?P<value>.*?)\}`)},
}

const (
	pageBreakCommand   = `\clearpage`
	endDocumentCommand = `\end{document}`
)

// searchValue finds the named value group of pattern in source.
func searchValue(pattern *regexp.Regexp, source string) (string, bool) {
	match := pattern.FindStringSubmatch(source)
	if match == nil {
		return "", false
	}
	return match[pattern.SubexpIndex("value")], true
}

// Tag lists are written as consecutive bracketed entries: [f4a][comfort].
type tagList struct {
	Entries []tagEntry `parser:"@@*"`
}

type tagEntry struct {
	Value string `parser:"LBrack @Text? RBrack"`
}

var tagLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "LBrack", Pattern: `\[`},
	{Name: "RBrack", Pattern: `\]`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Text", Pattern: `[^\[\]\s][^\[\]]*`},
})

var tagParser = participle.MustBuild[tagList](
	participle.Lexer(tagLexer),
	participle.Elide("Whitespace"),
)

// ParseTags parses a scriptTags header value into its entries, in source
// order, duplicates allowed. Placeholder values (empty, an em dash, or the
// TeX \textemdash) mean no tags.
func ParseTags(value string) ([]string, error) {
	value = strings.TrimSpace(value)
	switch value {
	case "", "—", `\textemdash`:
		return nil, nil
	}

	list, err := tagParser.ParseString("", value)
	if err != nil {
		return nil, coreerrors.Wrapf(err, "parse tags %q", value)
	}

	tags := make([]string, 0, len(list.Entries))
	for _, entry := range list.Entries {
		tags = append(tags, strings.TrimSpace(entry.Value))
	}
	return tags, nil
}

// ParseScript assembles a full script from a TeX source document. The five
// header fields are mandatory; each absence is its own error. The body is
// everything after the first \clearpage (the whole document when there is
// none), one container per non-empty line, stopping at the first line that
// fails to parse.
func ParseScript(source string) (*script.Script, error) {
	fields := make(map[string]string, len(headerRules))
	for _, rule := range headerRules {
		value, ok := searchValue(rule.pattern, source)
		if !ok {
			return nil, coreerrors.NewMissingField(rule.field)
		}
		fields[rule.field] = value
	}

	tags, err := ParseTags(fields["tags"])
	if err != nil {
		return nil, err
	}

	body := source
	bodyLine := 0
	if idx := strings.Index(source, pageBreakCommand); idx >= 0 {
		cut := idx + len(pageBreakCommand)
		bodyLine = strings.Count(source[:cut], "\n")
		body = source[cut:]
	}
	body = strings.ReplaceAll(body, endDocumentCommand, "")

	s := script.New(fields["author"], fields["title"])
	s.Series = script.ParseSeriesEntry(fields["series"])
	s.Tags = tags
	s.Summary = fields["summary"]

	// TODO: parse the \date and character macros once the source template
	// settles on a shape for them.
	for i, line := range strings.Split(body, "\n") {
		if line == "" {
			continue
		}

		container, err := ParseContainer(line)
		if err != nil {
			return nil, coreerrors.Wrapf(err, "body line %d", bodyLine+i+1)
		}

		s.Paragraphs = append(s.Paragraphs, *container)
	}

	return s, nil
}

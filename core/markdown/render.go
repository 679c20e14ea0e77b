// Package markdown renders the script model as Markdown. Rendering never
// fails: ambiguous input degrades with a warning rather than an error.
package markdown

import (
	"regexp"
	"strings"

	"github.com/mirelia/scriptmd/core/script"
	"github.com/mirelia/scriptmd/internal/logging"
)

// Divider separates the formatting guide from the script body.
const Divider = "--8<--"

var spacePattern = regexp.MustCompile(`[[:space:]]+`)

// Span renders a single span with no container context: normal text is
// unchanged, emphasis is wrapped in slashes, and an inline direction is
// parenthesised in italics.
func Span(s script.Span) string {
	switch s.Kind {
	case script.SpanEmphasis:
		return "/" + s.Contents + "/"
	case script.SpanInlineDirection:
		return "*(" + s.Contents + ")*"
	default:
		return s.Contents
	}
}

// Container renders one container. The container kind decides both the span
// styling and the outer wrapper:
//
//   - plain text renders spans as-is
//   - stage directions, sfx, and listener dialogue strip the asterisks from
//     inline directions (the wrapper italicises the whole line) and wrap in
//     "> *[...]*", "> *[sfx: ...]*", and "> *« ... »*" respectively
//   - spoken lines bold normal text; an emphasised span inside a spoken
//     line is ambiguous and renders bold with a warning
func Container(c *script.Container) string {
	var sb strings.Builder

	for _, span := range c.Spans {
		var text string

		switch c.Kind {
		case script.ContainerStageDir, script.ContainerSfx, script.ContainerListenerDialogue:
			if span.Kind == script.SpanInlineDirection {
				text = strings.Trim(Span(span), "*")
			} else {
				text = Span(span)
			}

		case script.ContainerSpoken:
			switch span.Kind {
			case script.SpanNormal:
				text = "**" + Span(span) + "**"
			case script.SpanEmphasis:
				logging.Warn("emphasised span inside a spoken line rendered as spoken; it may belong to an inline direction instead",
					"span", span.Contents,
					"context", c.PlainText())
				text = "**" + Span(span) + "**"
			default:
				text = Span(span)
			}

		default:
			text = Span(span)
		}

		sb.WriteString(" ")
		sb.WriteString(text)
		sb.WriteString(" ")
	}

	body := strings.TrimSpace(spacePattern.ReplaceAllString(sb.String(), " "))

	switch c.Kind {
	case script.ContainerStageDir:
		return "> *[" + body + "]*"
	case script.ContainerSfx:
		return "> *[sfx: " + body + "]*"
	case script.ContainerListenerDialogue:
		return "> *« " + body + " »*"
	default:
		return body
	}
}

// Script renders the full document: a character list, a formatting guide
// built from one example of each container kind, a divider, and the body.
// Blocks are joined by blank lines. Header metadata other than characters is
// not part of the rendered document.
func Script(s *script.Script) string {
	blocks := []string{"## Characters"}

	for _, character := range s.Characters {
		blocks = append(blocks, "- **"+character.Name+"** ∼ "+character.Description)
	}

	blocks = append(blocks,
		"## Formatting guide",
		Container(script.NewContainer(script.ContainerSpoken).
			Push(script.NewNormal("spoken text"))),
		Container(script.NewContainer(script.ContainerSpoken).
			Push(script.NewEmphasis("emphasis"))),
		Container(script.NewContainer(script.ContainerSpoken).
			Push(script.NewInline("tone cue, suggested"))),
		Container(script.NewContainer(script.ContainerStageDir).
			Push(script.NewNormal("stage direction and/or sfx"))),
		Container(script.NewContainer(script.ContainerListenerDialogue).
			Push(script.NewNormal("example listener dialogue, not intended to be voiced"))),
		Container(script.NewContainer(script.ContainerPlainText).
			Push(script.NewNormal(Divider))),
	)

	for i := range s.Paragraphs {
		blocks = append(blocks, Container(&s.Paragraphs[i]))
	}

	return strings.Join(blocks, "\n\n")
}

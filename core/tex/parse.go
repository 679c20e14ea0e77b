package tex

import (
	"regexp"

	coreerrors "github.com/mirelia/scriptmd/core/errors"
	"github.com/mirelia/scriptmd/core/script"
	"github.com/mirelia/scriptmd/internal/logging"
)

var (
	// inlinePattern finds span-level commands embedded in a container's
	// remainder, e.g. \direct{quietly} inside a \spoken line. Lazy on both
	// sides so adjacent commands partition separately.
	inlinePattern = regexp.MustCompile(`\\.+?\{.*?\}`)

	// commandPattern matches one \command{argument} fragment.
	commandPattern = regexp.MustCompile(`\\(.+)\{(.*)\}`)

	// linePattern matches a full-line container command. The command group
	// is lazy so nested braces stay in the argument.
	linePattern = regexp.MustCompile(`^\\(.*?)\{(.*)\}$`)
)

// containerKinds maps body-line commands to container kinds. Commands
// outside this table degrade to plain text with a warning.
var containerKinds = map[string]script.ContainerKind{
	"spoken":   script.ContainerSpoken,
	"stagedir": script.ContainerStageDir,
	"listener": script.ContainerListenerDialogue,
	"sfx":      script.ContainerSfx,
}

// ParseSpan parses one partitioned fragment into a span. A fragment with no
// command shape is normal text; \direct{...} is an inline direction and
// \ul{...} is emphasis. Any other command in span position is an error.
func ParseSpan(fragment string) (script.Span, error) {
	text := Normalize(fragment)

	match := commandPattern.FindStringSubmatch(text)
	if match == nil {
		return script.NewNormal(text), nil
	}

	command := match[1]
	arg := Normalize(match[2])

	switch command {
	case "direct":
		return script.NewInline(arg), nil
	case "ul":
		return script.NewEmphasis(arg), nil
	default:
		return script.Span{}, coreerrors.NewUnknownInlineCommand(command, fragment)
	}
}

// ParseContainer parses one body line into a container. The line must have
// the shape \command{remainder}; the remainder is partitioned around inline
// commands and each non-empty piece becomes one span, in source order.
func ParseContainer(line string) (*script.Container, error) {
	text := Normalize(line)

	match := linePattern.FindStringSubmatch(text)
	if match == nil {
		return nil, coreerrors.NewInvalidLine(text, nil)
	}

	command, remainder := match[1], match[2]

	kind, ok := containerKinds[command]
	if !ok {
		logging.Warn("unrecognised container command, treating as plain text", "command", command)
		kind = script.ContainerPlainText
	}

	container := script.NewContainer(kind)
	for _, fragment := range Partition(inlinePattern, remainder) {
		if fragment == "" {
			continue
		}

		span, err := ParseSpan(fragment)
		if err != nil {
			return nil, coreerrors.NewInvalidLine(text, err)
		}

		container.Push(span)
	}

	return container, nil
}

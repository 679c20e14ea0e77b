package script

import "strings"

// ContainerKind represents the type of a text container.
type ContainerKind string

// Container kind constants.
const (
	// ContainerSpoken holds spoken dialogue.
	ContainerSpoken ContainerKind = "SPOKEN"
	// ContainerStageDir holds stage directions.
	ContainerStageDir ContainerKind = "STAGE_DIR"
	// ContainerSfx holds sound effects.
	ContainerSfx ContainerKind = "SFX"
	// ContainerListenerDialogue holds implied listener dialogue.
	ContainerListenerDialogue ContainerKind = "LISTENER_DIALOGUE"
	// ContainerPlainText holds untagged text.
	ContainerPlainText ContainerKind = "PLAIN_TEXT"
)

// validContainerKinds is the set of valid container kinds.
var validContainerKinds = map[ContainerKind]bool{
	ContainerSpoken:           true,
	ContainerStageDir:         true,
	ContainerSfx:              true,
	ContainerListenerDialogue: true,
	ContainerPlainText:        true,
}

// IsValid returns true if the container kind is valid.
func (k ContainerKind) IsValid() bool {
	return validContainerKinds[k]
}

// Container is one typed, ordered group of spans corresponding to one source
// line of a script. Span order is source order and is preserved exactly.
type Container struct {
	// Kind is the type of container this is.
	Kind ContainerKind `json:"kind"`

	// Spans holds the text spans in source order.
	Spans []Span `json:"spans,omitempty"`
}

// NewContainer creates a new, empty container of the given kind.
func NewContainer(kind ContainerKind) *Container {
	return &Container{Kind: kind}
}

// Push appends the given span and returns the container for chaining.
func (c *Container) Push(span Span) *Container {
	c.Spans = append(c.Spans, span)
	return c
}

// Len returns the number of spans in the container.
func (c *Container) Len() int {
	return len(c.Spans)
}

// PlainText returns the contents of the container without regard for
// formatting or context: the raw span contents joined with single spaces.
func (c *Container) PlainText() string {
	parts := make([]string, len(c.Spans))
	for i, span := range c.Spans {
		parts[i] = span.Contents
	}
	return strings.Join(parts, " ")
}

// WordCount returns the word count for the container. Each span's words are
// routed wholly into the spoken or unspoken bucket based on the container
// kind and the span kind.
func (c *Container) WordCount() WordCount {
	total := Zero()
	for _, span := range c.Spans {
		words := span.NumWords()
		if span.IsSpoken(c.Kind) {
			total = total.Add(OnlySpoken(words))
		} else {
			total = total.Add(OnlyUnspoken(words))
		}
	}
	return total
}

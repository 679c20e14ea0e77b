package script

import (
	"fmt"
	"strings"
	"time"
)

// Character is one character appearing in a script.
type Character struct {
	// Name is the name/header information for the character.
	Name string `json:"name"`

	// Description describes the character.
	Description string `json:"description"`
}

// String renders the character as "name => description".
func (c Character) String() string {
	return fmt.Sprintf("%s => %s", c.Name, c.Description)
}

// Script is the assembled representation of one audio-drama script. It is
// built once by the parser and never mutated afterward.
type Script struct {
	// Author is the name of the author. Even with multiple authors, it is
	// only one string.
	Author string `json:"author"`

	// Title is the title of the script.
	Title string `json:"title"`

	// Series is the series (if any) the script belongs to.
	Series SeriesEntry `json:"series"`

	// Tags holds the tags attributed to the script, in source order,
	// duplicates allowed. Tags do not include their delimiting brackets.
	Tags []string `json:"tags"`

	// Date is the date of the script, at day granularity. The zero value
	// means unset. Header parsing does not populate this field yet.
	Date time.Time `json:"date,omitempty"`

	// Summary is the summary of the script.
	Summary string `json:"summary"`

	// Characters lists the characters in declaration order; order is
	// display-significant. Header parsing does not populate this field yet.
	Characters []Character `json:"characters,omitempty"`

	// Paragraphs is the body of the script, one container per source line.
	Paragraphs []Container `json:"paragraphs"`
}

// New constructs a Script with the given author and title; all other fields
// are left at their empty defaults.
func New(author, title string) *Script {
	return &Script{Author: author, Title: title}
}

// WordCount returns the word count for the entire script.
func (s *Script) WordCount() WordCount {
	total := Zero()
	for _, container := range s.Paragraphs {
		total = total.Add(container.WordCount())
	}
	return total
}

// String renders a plain-text summary of the script's metadata and word
// count, for diagnostic output.
func (s *Script) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Title: %s\n", s.Title)
	fmt.Fprintf(&sb, "Author: %s\n", s.Author)
	fmt.Fprintf(&sb, "Series: %s\n", s.Series)

	tags := make([]string, len(s.Tags))
	for i, tag := range s.Tags {
		tags[i] = "[" + tag + "]"
	}
	fmt.Fprintf(&sb, "Tags: %s\n", strings.Join(tags, " "))

	fmt.Fprintf(&sb, "Summary: %s\n", s.Summary)

	for _, character := range s.Characters {
		fmt.Fprintf(&sb, "Character: %s\n", character)
	}

	fmt.Fprintf(&sb, "Words: %s\n", s.WordCount())

	return sb.String()
}

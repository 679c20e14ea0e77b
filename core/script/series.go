package script

import (
	"fmt"
	"regexp"
	"strconv"
)

// SeriesEntry is the series a script belongs to, including its part index.
// The zero value means the script does not belong to a series.
type SeriesEntry struct {
	// Title is the title of the series ("" when unset).
	Title string `json:"title,omitempty"`

	// Part is the 1-indexed part index for the script (0 when unset).
	Part int `json:"part,omitempty"`
}

// seriesPattern extracts the trailing part suffix: "Title (Part N)".
var seriesPattern = regexp.MustCompile(`^(.*?) \(Part (\d+)\)$`)

// ParseSeriesEntry parses the free-text series field of a script header.
// An empty value or a placeholder dash yields the zero entry, as does a
// value without a trailing "(Part N)" suffix.
func ParseSeriesEntry(value string) SeriesEntry {
	switch value {
	case "", "—", `\textemdash`:
		return SeriesEntry{}
	}

	m := seriesPattern.FindStringSubmatch(value)
	if m == nil {
		return SeriesEntry{}
	}

	part, err := strconv.Atoi(m[2])
	if err != nil {
		part = 0
	}

	return SeriesEntry{Title: m[1], Part: part}
}

// NewSeriesEntry constructs a SeriesEntry with the given title and part.
func NewSeriesEntry(title string, part int) SeriesEntry {
	return SeriesEntry{Title: title, Part: part}
}

// IsZero reports whether the entry carries no series information.
func (s SeriesEntry) IsZero() bool {
	return s.Title == "" && s.Part == 0
}

// String renders the entry as "Title (Part N)", or "" for the zero entry.
func (s SeriesEntry) String() string {
	if s.Title == "" || s.Part == 0 {
		return ""
	}
	return fmt.Sprintf("%s (Part %d)", s.Title, s.Part)
}

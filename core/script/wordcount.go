package script

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// WordCount tracks spoken and unspoken word totals for part of a script.
// WordCount values form a commutative monoid under Add with Zero as the
// identity.
type WordCount struct {
	// Spoken is the number of spoken words.
	Spoken int `json:"spoken"`

	// Unspoken is the number of unspoken words.
	Unspoken int `json:"unspoken"`
}

// Zero returns a WordCount initialised to zero.
func Zero() WordCount {
	return WordCount{}
}

// OnlySpoken returns a WordCount with no unspoken words.
func OnlySpoken(words int) WordCount {
	return WordCount{Spoken: words}
}

// OnlyUnspoken returns a WordCount with no spoken words.
func OnlyUnspoken(words int) WordCount {
	return WordCount{Unspoken: words}
}

// Add returns the component-wise sum of the two counts.
func (w WordCount) Add(other WordCount) WordCount {
	return WordCount{
		Spoken:   w.Spoken + other.Spoken,
		Unspoken: w.Unspoken + other.Unspoken,
	}
}

// Total returns the total number of words.
func (w WordCount) Total() int {
	return w.Spoken + w.Unspoken
}

// Density returns the speech density: the proportion of counted words that
// are spoken. The result is NaN when no words were counted.
func (w WordCount) Density() float64 {
	return float64(w.Spoken) / float64(w.Total())
}

// englishPrinter formats counts with grouped digits (1,234).
var englishPrinter = message.NewPrinter(language.English)

// String renders the count in the form
// "1,234 spoken + 56 unspoken -> 1,290 total (ρ = 95.66%)".
// An undefined density renders as the placeholder "———%".
func (w WordCount) String() string {
	density := "———%"
	if d := w.Density(); !math.IsNaN(d) {
		density = fmt.Sprintf("%.2f%%", 100*d)
	}

	return englishPrinter.Sprintf("%v spoken + %v unspoken -> %v total (ρ = %s)",
		w.Spoken, w.Unspoken, w.Total(), density)
}

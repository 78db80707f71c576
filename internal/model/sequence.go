package model

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-mathsheet/internal/numeric"
)

// SequenceConfig drives the missing-number builder.
type SequenceConfig struct {
	NumberMin int `json:"numberMin"`
	NumberMax int `json:"numberMax"`
	// Step is signed; its sign picks ascending or descending runs.
	Step             int  `json:"step"`
	LineWidth        int  `json:"lineWidth"`
	GapsPerLine      int  `json:"gapsPerLine"`
	MaxMissingPerGap int  `json:"maxMissingPerGap"`
	StartMultipleOf  bool `json:"startMultipleOfStep,omitempty"`
	Count            int  `json:"count"`
	PerLine          int  `json:"perLine"`
}

// Gap hides Size consecutive run positions starting at index Start.
type Gap struct {
	Start int `json:"start"`
	Size  int `json:"size"`
}

// End returns the first index after the gap.
func (g Gap) End() int {
	return g.Start + g.Size
}

// Contains reports whether run index i is hidden by the gap.
func (g Gap) Contains(i int) bool {
	return i >= g.Start && i < g.End()
}

// SequenceLine is a run of numbers with hidden gaps.
type SequenceLine struct {
	Numbers []int `json:"numbers"`
	Gaps    []Gap `json:"gaps"`
}

// Hidden reports whether run index i falls inside any gap.
func (l SequenceLine) Hidden(i int) bool {
	for _, gap := range l.Gaps {
		if gap.Contains(i) {
			return true
		}
	}
	return false
}

// Tokens renders each run position, using underscores sized to the concealed
// number for hidden entries.
func (l SequenceLine) Tokens() []string {
	tokens := make([]string, len(l.Numbers))
	for i, n := range l.Numbers {
		if l.Hidden(i) {
			tokens[i] = numeric.Blank(n)
			continue
		}
		tokens[i] = strconv.Itoa(n)
	}
	return tokens
}

// String joins the tokens with single spaces.
func (l SequenceLine) String() string {
	return strings.TrimSpace(strings.Join(l.Tokens(), " "))
}

// Width is the rendered width of the line.
func (l SequenceLine) Width() int {
	return len(l.String())
}

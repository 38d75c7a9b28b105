package naming

import (
	"math"
	"regexp"
	"strconv"
)

// reInputBadge matches input badge basenames. Only the end is anchored: the
// upstream download names sometimes carry a prefix.
var reInputBadge = regexp.MustCompile(`([0-5]\.[05])-MCID-5\.svg$`)

// Score is a half-step rating between 0.0 and 5.5.
type Score float64

// Whole returns the integer part of the score.
func (s Score) Whole() int {
	return int(math.Floor(float64(s)))
}

// IsHalf reports whether the score ends in .5.
func (s Score) IsHalf() bool {
	return float64(s)-math.Floor(float64(s)) == 0.5
}

// String formats the score with one decimal place ("3.5", "4.0").
func (s Score) String() string {
	return strconv.FormatFloat(float64(s), 'f', 1, 64)
}

// Asset is one discovered input badge.
type Asset struct {
	Path  string
	Score Score
}

// ParseScore extracts the score from an input basename. ok is false when
// the name is not a badge.
func ParseScore(basename string) (score Score, ok bool) {
	m := reInputBadge.FindStringSubmatch(basename)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return Score(v), true
}

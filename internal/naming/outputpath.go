package naming

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
)

// reScaleToken finds the @<N>x token that OutputName appends for scale > 1.
var reScaleToken = regexp.MustCompile(`@(\d+)x`)

// OutputName builds the output basename for a score and scale factor.
//
//	score 3.0, scale 1 -> score_ta_3.png
//	score 3.5, scale 2 -> score_ta_3_half@2x.png
func OutputName(score Score, scale int) string {
	half := ""
	if score.IsHalf() {
		half = "_half"
	}
	scaleTag := ""
	if scale != 1 {
		scaleTag = fmt.Sprintf("@%dx", scale)
	}
	return fmt.Sprintf("score_ta_%d%s%s.png", score.Whole(), half, scaleTag)
}

// OutputPath joins OutputName onto outputDir.
func OutputPath(outputDir string, score Score, scale int) string {
	return filepath.Join(outputDir, OutputName(score, scale))
}

// ScaleFromName recovers the scale factor from an output path. Only the
// basename is inspected, so an '@' in a parent directory is harmless. A name
// without a scale token is 1x.
func ScaleFromName(path string) int {
	m := reScaleToken.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return 1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return 1
	}
	return n
}

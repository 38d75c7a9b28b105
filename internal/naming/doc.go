// Package naming owns the two filename contracts of the pipeline: which
// input basenames are score badges (and what score they carry), and how an
// output PNG is named for a given score and scale factor.
//
//	input:  [prefix]<d>.<0|5>-MCID-5.svg      e.g. 3.5-MCID-5.svg
//	output: score_ta_<whole>[_half][@<S>x].png e.g. score_ta_3_half@2x.png
//
// The scale token is omitted for 1x, and [ScaleFromName] recovers the
// factor from an output name so the crop stage needs nothing but the path.
package naming

// Package tool builds the rasterizer and crop-tool command lines and runs
// them through a [Runner].
//
// The Runner interface is the only way the pipeline reaches an external
// process, so tests substitute a recording fake and the native backend
// substitutes an in-process renderer. Exit status handling lives in one
// place, [Settle], which ignores non-zero exits unless strict mode is on.
package tool

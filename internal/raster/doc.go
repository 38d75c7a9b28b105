// Package raster is the native backend: a [tool.Runner] that understands the
// exact rsvg-convert and convert command lines the pipeline builds and
// executes them in-process with oksvg, rasterx and x/image.
//
// Only the flags the pipeline emits are supported. Failures are reported the
// way the real tools report them, as a non-zero exit with a message on
// stderr, so the pipeline's tolerance policy applies unchanged.
package raster

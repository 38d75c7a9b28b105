// Package planner turns discovered assets and the configured geometry into
// concrete per-variant work: the raster height for each (asset, scale) job
// and the crop rectangle for each scale. It is pure and does no I/O, so all
// size arithmetic is testable without touching the filesystem.
package planner

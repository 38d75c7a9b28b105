// Package pipeline runs the batch: discover badge SVGs, rasterize every
// (asset, scale) variant into an exclusively created PNG, crop each PNG in
// place, then report.
//
// Stages run strictly in sequence over the whole batch and every tool call
// blocks until the tool exits. The context is only checked between calls;
// it carries no deadline.
package pipeline

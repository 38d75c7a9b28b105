package pipeline

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Assets       int
	Rendered     int // Rasterizer invocations (one output file each).
	Cropped      int // Crop invocations.
	ToolFailures int // Non-zero exits that were tolerated or surfaced.
	BytesWritten int64
}

// Outputs returns the number of output files the run produced.
func (s *RunStats) Outputs() int {
	return s.Rendered
}

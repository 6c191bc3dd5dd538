package export

// Dataset defines tabular export content. Rows are keyed by header so the
// same dataset can feed every renderer.
type Dataset struct {
	Headers []string
	Rows    []map[string]string

	// ColumnWidths optionally sets per-column display widths (in characters)
	// for renderers that support them. Index-aligned with Headers.
	ColumnWidths []float64
}

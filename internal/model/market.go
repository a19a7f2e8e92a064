package model

// Dataset holds the time-ordered close prices extracted from one input
// file. Row order matches the file; only the close column is consumed.
type Dataset struct {
	Closes []float64
}

// Len returns the number of data rows.
func (d *Dataset) Len() int { return len(d.Closes) }

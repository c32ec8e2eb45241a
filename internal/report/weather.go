package report

import (
	"io"
	"time"

	"simpleinv/internal/model"
)

// CellSource is the read side of the weather grid.
type CellSource interface {
	RowMajor() []model.Cell
	ColumnMajor() []model.Cell
	Present() []model.Cell
}

// TraversalTiming is the wall time spent printing each traversal.
type TraversalTiming struct {
	RowMajor    time.Duration
	ColumnMajor time.Duration
}

func PrintRowMajor(w io.Writer, src CellSource) {
	p := newPrinter(w)
	for _, c := range src.RowMajor() {
		p.line("Year %d, City %s -> %s", c.Year, c.City, formatNumber(c.Temperature))
	}
}

func PrintColumnMajor(w io.Writer, src CellSource) {
	p := newPrinter(w)
	for _, c := range src.ColumnMajor() {
		p.line("City %s, Year %d -> %s", c.City, c.Year, formatNumber(c.Temperature))
	}
}

// PrintSparse lists only the cells that hold a reading.
func PrintSparse(w io.Writer, src CellSource) {
	p := newPrinter(w)
	p.line("")
	p.title("Sparse Data Representation (non-missing records only):")
	for _, c := range src.Present() {
		p.line("Year %d, City %s -> %s°C", c.Year, c.City, formatNumber(c.Temperature))
	}
}

// CompareTraversal prints both traversals, timing each, then the timings.
func CompareTraversal(w io.Writer, src CellSource) TraversalTiming {
	var timing TraversalTiming

	start := time.Now()
	PrintRowMajor(w, src)
	timing.RowMajor = time.Since(start)

	start = time.Now()
	PrintColumnMajor(w, src)
	timing.ColumnMajor = time.Since(start)

	p := newPrinter(w)
	p.line("")
	p.line("Row-major access time: %g seconds", timing.RowMajor.Seconds())
	p.line("Column-major access time: %g seconds", timing.ColumnMajor.Seconds())
	return timing
}

func PrintWeatherComplexity(w io.Writer) {
	p := newPrinter(w)
	p.line("")
	p.title("Time Complexity Analysis:")
	p.line("")
	p.line("insertRecord/deleteRecord/retrieveRecord: O(1)")
	p.line("rowMajorAccess/columnMajorAccess: O(Y * C)")
	p.line("")
	p.title("Space Complexity Analysis:")
	p.line("2D array storage: O(Y * C)")
}

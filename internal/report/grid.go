package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"simpleinv/internal/model"
)

var ErrInvalidDimensions = eris.New("grid dimensions must not be negative")

// Grid holds price and quantity tables of Rows x Cols cells stored row-major.
type Grid struct {
	Rows     int
	Cols     int
	Price    []float64
	Quantity []int
}

// BuildGrid lays items out row-major. Cells past the last item stay zero and
// items past the last cell are dropped.
func BuildGrid(items []model.Item, rows, cols int) (Grid, error) {
	if rows < 0 || cols < 0 {
		return Grid{}, eris.Wrapf(ErrInvalidDimensions, "%dx%d", rows, cols)
	}
	g := Grid{
		Rows:     rows,
		Cols:     cols,
		Price:    make([]float64, rows*cols),
		Quantity: make([]int, rows*cols),
	}
	for pos := 0; pos < len(g.Price) && pos < len(items); pos++ {
		g.Price[pos] = items[pos].Price
		g.Quantity[pos] = items[pos].Quantity
	}
	return g, nil
}

func (g Grid) PriceAt(r, c int) float64 { return g.Price[r*g.Cols+c] }

func (g Grid) QuantityAt(r, c int) int { return g.Quantity[r*g.Cols+c] }

// RowMajor returns the price table one row per line.
func (g Grid) RowMajor() [][]float64 {
	out := make([][]float64, g.Rows)
	for r := 0; r < g.Rows; r++ {
		line := make([]float64, g.Cols)
		for c := 0; c < g.Cols; c++ {
			line[c] = g.PriceAt(r, c)
		}
		out[r] = line
	}
	return out
}

// ColumnMajor returns the price table one column per line.
func (g Grid) ColumnMajor() [][]float64 {
	out := make([][]float64, g.Cols)
	for c := 0; c < g.Cols; c++ {
		line := make([]float64, g.Rows)
		for r := 0; r < g.Rows; r++ {
			line[r] = g.PriceAt(r, c)
		}
		out[c] = line
	}
	return out
}

// PrintGrid writes the row-major then column-major price traversals.
func PrintGrid(w io.Writer, g Grid) {
	p := newPrinter(w)
	p.line("\n[managePriceQuantity] Creating %dx%d tables.", g.Rows, g.Cols)
	p.line("")
	p.title("Row-major traversal (Price table):")
	for _, line := range g.RowMajor() {
		p.line("%s", tabbed(line))
	}
	p.line("")
	p.title("Column-major traversal:")
	for _, line := range g.ColumnMajor() {
		p.line("%s", tabbed(line))
	}
}

func tabbed(values []float64) string {
	var b strings.Builder
	for _, v := range values {
		b.WriteString(formatNumber(v))
		b.WriteByte('\t')
	}
	return b.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

package strategy

import (
	"math"
	"testing"
	"time"

	"github.com/newthinker/tsmom/internal/series"
)

// testFrame builds a frame from row-major data; NaN marks a missing cell.
func testFrame(t *testing.T, columns []string, data [][]float64) *series.Frame {
	t.Helper()
	dates := make([]time.Time, len(data))
	cells := make([][]series.Cell, len(data))
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, row := range data {
		dates[i] = base.AddDate(0, 0, i)
		cells[i] = make([]series.Cell, len(row))
		for j, v := range row {
			if !math.IsNaN(v) {
				cells[i][j] = series.Present(v)
			}
		}
	}
	f, err := series.New(dates, columns, cells)
	if err != nil {
		t.Fatalf("building test frame: %v", err)
	}
	return f
}

// constantReturnPrices builds a price history where each column compounds
// at a fixed daily return.
func constantReturnPrices(t *testing.T, columns []string, dailyReturns []float64, rows int) *series.Frame {
	t.Helper()
	data := make([][]float64, rows)
	prices := make([]float64, len(columns))
	for j := range prices {
		prices[j] = 100
	}
	for i := 0; i < rows; i++ {
		data[i] = append([]float64(nil), prices...)
		for j := range prices {
			prices[j] *= 1 + dailyReturns[j]
		}
	}
	return testFrame(t, columns, data)
}

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

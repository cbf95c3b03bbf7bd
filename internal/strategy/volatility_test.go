package strategy

import (
	"errors"
	"math"
	"testing"

	"github.com/newthinker/tsmom/internal/core"
)

func TestRollingVolatility_RejectsBadWindow(t *testing.T) {
	returns := testFrame(t, []string{"A"}, [][]float64{{0.01}, {0.01}})
	for _, window := range []int{0, -1} {
		if _, err := RollingVolatility(returns, window); !errors.Is(err, core.ErrConfigInvalid) {
			t.Errorf("window %d: want ErrConfigInvalid, got %v", window, err)
		}
	}
}

func TestRollingVolatility_AlternatingReturns(t *testing.T) {
	// +r, -r, +r, ... over a window of 4: mean 0, sample variance
	// 4r^2/3, so vol = r*sqrt(4/3)*sqrt(252).
	const r = 0.01
	const window = 4
	rows := 8

	data := make([][]float64, rows)
	for i := range data {
		v := r
		if i%2 == 1 {
			v = -r
		}
		data[i] = []float64{v}
	}
	returns := testFrame(t, []string{"A"}, data)

	vol, err := RollingVolatility(returns, window)
	if err != nil {
		t.Fatal(err)
	}

	want := r * math.Sqrt(4.0/3.0) * math.Sqrt(252)
	for i := 0; i < rows; i++ {
		cell := vol.At(i, 0)
		if i < window-1 {
			if cell.Valid {
				t.Errorf("row %d: incomplete window must be missing", i)
			}
			continue
		}
		if !cell.Valid || !approx(cell.Value, want, 1e-12) {
			t.Errorf("row %d = %+v, want %v", i, cell, want)
		}
	}
}

func TestRollingVolatility_ConstantReturnsAreZero(t *testing.T) {
	// 0.001 over a window of 10 is a case where the rounded window mean
	// is not bit-identical to the constant itself.
	for _, tc := range []struct {
		r      float64
		window int
	}{
		{0.002, 5},
		{0.001, 10},
	} {
		data := make([][]float64, 15)
		for i := range data {
			data[i] = []float64{tc.r}
		}
		returns := testFrame(t, []string{"A"}, data)

		vol, err := RollingVolatility(returns, tc.window)
		if err != nil {
			t.Fatal(err)
		}
		for i := tc.window - 1; i < 15; i++ {
			cell := vol.At(i, 0)
			if !cell.Valid {
				t.Fatalf("row %d: want valid", i)
			}
			if cell.Value != 0 {
				t.Errorf("row %d = %v, constant returns must give exactly zero (r=%v w=%d)",
					i, cell.Value, tc.r, tc.window)
			}
			if cell.Value < 0 {
				t.Errorf("row %d: volatility must never be negative", i)
			}
		}
	}
}

func TestRollingVolatility_WindowOfOne(t *testing.T) {
	returns := testFrame(t, []string{"A"}, [][]float64{{0.01}, {0.02}})
	vol, err := RollingVolatility(returns, 1)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < vol.Rows(); i++ {
		if vol.At(i, 0).Valid {
			t.Errorf("row %d: sample std of one observation is undefined", i)
		}
	}
}

func TestRollingVolatility_MissingReturnPoisonsWindow(t *testing.T) {
	returns := testFrame(t, []string{"A"}, [][]float64{
		{0.01}, {math.NaN()}, {0.02}, {0.01}, {0.03},
	})
	vol, err := RollingVolatility(returns, 2)
	if err != nil {
		t.Fatal(err)
	}
	if vol.At(1, 0).Valid || vol.At(2, 0).Valid {
		t.Error("windows covering the gap must be missing")
	}
	if !vol.At(3, 0).Valid {
		t.Error("window past the gap must be valid")
	}
}

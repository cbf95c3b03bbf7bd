package series

import (
	"testing"
	"time"
)

func day(n int) time.Time {
	return time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestNew_Valid(t *testing.T) {
	f, err := New(
		[]time.Time{day(0), day(1)},
		[]string{"A", "B"},
		[][]Cell{
			{Present(1), Present(2)},
			{Present(3), {}},
		},
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if f.Rows() != 2 || f.Cols() != 2 {
		t.Errorf("shape = %dx%d, want 2x2", f.Rows(), f.Cols())
	}
	if got := f.At(1, 0); !got.Valid || got.Value != 3 {
		t.Errorf("At(1,0) = %+v, want valid 3", got)
	}
	if f.At(1, 1).Valid {
		t.Error("At(1,1) should be missing")
	}
}

func TestNew_RejectsNonIncreasingDates(t *testing.T) {
	_, err := New(
		[]time.Time{day(1), day(1)},
		[]string{"A"},
		[][]Cell{{Present(1)}, {Present(2)}},
	)
	if err == nil {
		t.Error("duplicate dates should be rejected")
	}

	_, err = New(
		[]time.Time{day(2), day(1)},
		[]string{"A"},
		[][]Cell{{Present(1)}, {Present(2)}},
	)
	if err == nil {
		t.Error("decreasing dates should be rejected")
	}
}

func TestNew_RejectsDuplicateColumns(t *testing.T) {
	_, err := New(
		[]time.Time{day(0)},
		[]string{"A", "A"},
		[][]Cell{{Present(1), Present(2)}},
	)
	if err == nil {
		t.Error("duplicate columns should be rejected")
	}
}

func TestNew_RejectsRaggedRows(t *testing.T) {
	_, err := New(
		[]time.Time{day(0)},
		[]string{"A", "B"},
		[][]Cell{{Present(1)}},
	)
	if err == nil {
		t.Error("short row should be rejected")
	}
}

func TestNew_CopiesInput(t *testing.T) {
	cells := [][]Cell{{Present(1)}}
	f, err := New([]time.Time{day(0)}, []string{"A"}, cells)
	if err != nil {
		t.Fatal(err)
	}
	cells[0][0] = Present(99)
	if f.At(0, 0).Value != 1 {
		t.Error("frame should not alias caller's cells")
	}
}

func TestAccessors_ReturnCopies(t *testing.T) {
	f, err := New([]time.Time{day(0)}, []string{"A"}, [][]Cell{{Present(1)}})
	if err != nil {
		t.Fatal(err)
	}
	cols := f.Columns()
	cols[0] = "mutated"
	if f.Columns()[0] != "A" {
		t.Error("Columns should return a copy")
	}

	col, err := f.Column("A")
	if err != nil {
		t.Fatal(err)
	}
	col[0] = Cell{}
	got, _ := f.Column("A")
	if !got[0].Valid {
		t.Error("Column should return a copy")
	}
}

func TestColumn_Unknown(t *testing.T) {
	f, err := New([]time.Time{day(0)}, []string{"A"}, [][]Cell{{Present(1)}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Column("B"); err == nil {
		t.Error("unknown column should error")
	}
}

func TestSameShape(t *testing.T) {
	a, _ := New([]time.Time{day(0), day(1)}, []string{"A"}, [][]Cell{{Present(1)}, {Present(2)}})
	b, _ := New([]time.Time{day(0), day(1)}, []string{"A"}, [][]Cell{{{}}, {{}}})
	c, _ := New([]time.Time{day(0), day(2)}, []string{"A"}, [][]Cell{{Present(1)}, {Present(2)}})
	d, _ := New([]time.Time{day(0), day(1)}, []string{"B"}, [][]Cell{{Present(1)}, {Present(2)}})

	if !a.SameShape(b) {
		t.Error("identical index/columns should match")
	}
	if a.SameShape(c) {
		t.Error("different dates should not match")
	}
	if a.SameShape(d) {
		t.Error("different columns should not match")
	}
	if a.SameShape(nil) {
		t.Error("nil frame should not match")
	}
}

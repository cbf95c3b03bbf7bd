// Package loader reads a CSV of dated prices into a series.Frame.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/newthinker/tsmom/internal/core"
	"github.com/newthinker/tsmom/internal/series"
)

const dateLayout = "2006-01-02"

type priceRow struct {
	date  time.Time
	cells []series.Cell
}

// ReadPrices parses a delimited price file into a Frame. The file must
// have a header row "Date,<asset>,..." with at least one asset column;
// the Date column becomes the row index (sorted ascending), every other
// column is coerced to float64. Blank price cells become missing cells.
// All failure modes surface as core.ErrDataLoad wraps.
func ReadPrices(path string) (*series.Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.WrapError(core.ErrDataLoad, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, core.WrapError(core.ErrDataLoad, fmt.Errorf("reading header: %w", err))
	}
	if len(header) < 2 {
		return nil, core.WrapError(core.ErrDataLoad,
			fmt.Errorf("header has %d columns, need a Date column and at least one asset", len(header)))
	}
	if !strings.EqualFold(strings.TrimSpace(header[0]), "Date") {
		return nil, core.WrapError(core.ErrDataLoad,
			fmt.Errorf("first column must be Date, got %q", header[0]))
	}
	assets := make([]string, len(header)-1)
	for i, name := range header[1:] {
		assets[i] = strings.TrimSpace(name)
	}

	var rows []priceRow
	seen := make(map[time.Time]bool)
	for line := 2; ; line++ {
		record, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, core.WrapError(core.ErrDataLoad, fmt.Errorf("line %d: %w", line, err))
		}
		if len(record) != len(header) {
			return nil, core.WrapError(core.ErrDataLoad,
				fmt.Errorf("line %d: %d fields, want %d", line, len(record), len(header)))
		}
		date, err := time.Parse(dateLayout, strings.TrimSpace(record[0]))
		if err != nil {
			return nil, core.WrapError(core.ErrDataLoad,
				fmt.Errorf("line %d: bad date %q: %w", line, record[0], err))
		}
		if seen[date] {
			return nil, core.WrapError(core.ErrDataLoad,
				fmt.Errorf("line %d: duplicate date %s", line, date.Format(dateLayout)))
		}
		seen[date] = true

		cells := make([]series.Cell, len(assets))
		for i, field := range record[1:] {
			field = strings.TrimSpace(field)
			if field == "" {
				continue // missing price
			}
			price, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, core.WrapError(core.ErrDataLoad,
					fmt.Errorf("line %d: column %s: bad price %q: %w", line, assets[i], field, err))
			}
			cells[i] = series.Present(price)
		}
		rows = append(rows, priceRow{date: date, cells: cells})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].date.Before(rows[j].date) })

	dates := make([]time.Time, len(rows))
	cells := make([][]series.Cell, len(rows))
	for i, row := range rows {
		dates[i] = row.date
		cells[i] = row.cells
	}
	frame, err := series.New(dates, assets, cells)
	if err != nil {
		return nil, core.WrapError(core.ErrDataLoad, err)
	}
	return frame, nil
}

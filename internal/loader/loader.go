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

	"SwapDesk/internal/domain/models"
)

// DefaultDateLayout matches the day.month.year dates of the source table,
// e.g. "31.03.1990".
const DefaultDateLayout = "02.01.2006"

// ErrNoCompleteRows is returned when the completeness filter removes every
// row of the source table.
var ErrNoCompleteRows = errors.New("loader: no row has all requested tenors")

// MalformedDateError reports a date cell that does not parse under the
// expected layout.
type MalformedDateError struct {
	Line  int
	Value string
	Err   error
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("loader: malformed date %q at line %d: %v", e.Value, e.Line, e.Err)
}

func (e *MalformedDateError) Unwrap() error { return e.Err }

// Config describes the rate table source.
type Config struct {
	Path       string
	DateLayout string
	Tenors     []models.Tenor
}

// LoadFile reads the rate table from disk. File and header problems are fatal
// startup errors for the caller.
func LoadFile(cfg Config) (models.RateSeries, error) {
	f, err := os.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", cfg.Path, err)
	}
	defer f.Close()

	series, err := Read(f, cfg.DateLayout, cfg.Tenors)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", cfg.Path, err)
	}
	return series, nil
}

// Read parses a CSV rate table. It keeps only rows where every requested
// tenor column holds a numeric value, parses dates under layout, sorts
// ascending and rejects duplicate dates. Empty or non-numeric tenor cells
// mark the row incomplete; they are filtered, not errors.
func Read(r io.Reader, layout string, tenors []models.Tenor) (models.RateSeries, error) {
	if layout == "" {
		layout = DefaultDateLayout
	}
	if len(tenors) == 0 {
		return nil, errors.New("no tenors requested")
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	dateIdx, tenorIdx, err := columnIndexes(header, tenors)
	if err != nil {
		return nil, err
	}

	var series models.RateSeries
	line := 1
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line++

		if dateIdx >= len(row) {
			continue
		}
		rates, complete := parseTenors(row, tenorIdx)
		if !complete {
			continue
		}

		raw := strings.TrimSpace(row[dateIdx])
		date, err := time.Parse(layout, raw)
		if err != nil {
			return nil, &MalformedDateError{Line: line, Value: raw, Err: err}
		}

		series = append(series, models.RateObservation{Date: date, Rates: rates})
	}

	if len(series) == 0 {
		return nil, ErrNoCompleteRows
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})
	for i := 1; i < len(series); i++ {
		if series[i].Date.Equal(series[i-1].Date) {
			return nil, fmt.Errorf("duplicate date %s", series[i].Date.Format("2006-01-02"))
		}
	}

	return series, nil
}

func columnIndexes(header []string, tenors []models.Tenor) (int, map[models.Tenor]int, error) {
	dateIdx := -1
	tenorIdx := make(map[models.Tenor]int, len(tenors))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if strings.EqualFold(name, "Date") {
			dateIdx = i
			continue
		}
		for _, t := range tenors {
			if name == string(t) {
				tenorIdx[t] = i
			}
		}
	}

	if dateIdx < 0 {
		return 0, nil, errors.New("missing Date column")
	}
	for _, t := range tenors {
		if _, ok := tenorIdx[t]; !ok {
			return 0, nil, fmt.Errorf("missing tenor column %s", t)
		}
	}
	return dateIdx, tenorIdx, nil
}

// parseTenors returns the parsed tenor rates for a row and whether the row is
// complete: every requested tenor present and numeric.
func parseTenors(row []string, tenorIdx map[models.Tenor]int) (map[models.Tenor]float64, bool) {
	rates := make(map[models.Tenor]float64, len(tenorIdx))
	for tenor, idx := range tenorIdx {
		if idx >= len(row) {
			return nil, false
		}
		cell := strings.TrimSpace(row[idx])
		if cell == "" {
			return nil, false
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, false
		}
		rates[tenor] = v
	}
	return rates, true
}

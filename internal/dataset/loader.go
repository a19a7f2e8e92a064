package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"signaljob/internal/model"
)

// Load reads a CSV file with a header row and extracts the close
// column. Validation is all-or-nothing: any row with a malformed close
// value fails the whole load, so two runs on the same file always see
// the same dataset.
func Load(path string) (*model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, errors.New("input file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	closeIdx := -1
	for i, col := range header {
		if strings.EqualFold(strings.TrimSpace(col), "close") {
			closeIdx = i
			break
		}
	}
	if closeIdx < 0 {
		return nil, errors.New("required column 'close' is missing")
	}

	var closes []float64
	row := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row+1, err)
		}
		row++
		if closeIdx >= len(rec) {
			return nil, fmt.Errorf("row %d has no close field", row)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[closeIdx]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid close value %q", row, rec[closeIdx])
		}
		closes = append(closes, v)
	}

	if len(closes) == 0 {
		return nil, errors.New("input file has no data rows")
	}

	return &model.Dataset{Closes: closes}, nil
}

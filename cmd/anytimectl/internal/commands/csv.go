package commands

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// row is one parsed line of the input table: a numeric value and,
// for abtest, an arm label ("A" or "B").
type row struct {
	Value float64
	Arm   string
}

// readRows reads a CSV file with a header row. valueCol and armCol name
// the header columns to extract; armCol may be empty for the mean
// command, which ignores arm tagging entirely.
func readRows(path, valueCol, armCol string) ([]row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	valueIdx, armIdx := -1, -1
	for i, name := range header {
		switch name {
		case valueCol:
			valueIdx = i
		case armCol:
			if armCol != "" {
				armIdx = i
			}
		}
	}
	if valueIdx == -1 {
		return nil, fmt.Errorf("column %q not found in header", valueCol)
	}
	if armCol != "" && armIdx == -1 {
		return nil, fmt.Errorf("arm column %q not found in header", armCol)
	}

	var rows []row
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		value, err := strconv.ParseFloat(record[valueIdx], 64)
		if err != nil {
			return nil, fmt.Errorf("parsing value %q: %w", record[valueIdx], err)
		}
		rr := row{Value: value}
		if armIdx != -1 {
			rr.Arm = record[armIdx]
		}
		rows = append(rows, rr)
	}
	return rows, nil
}

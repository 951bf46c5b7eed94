// SPDX-License-Identifier: MIT
//
// File: csv.go
// Role: a thin external-collaborator adapter for CSV ingestion.
// LoadCSV is built the way the builder package builds its own small
// standalone constructors: validate eagerly, fail with a sentinel, and
// leave dtype inference to Load.

package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
)

// LoadCSV reads a CSV file (header row + data rows) from r and builds
// a Table, inferring per-column dtype the way Load does. Every field
// is first tried as an int64, then a float64, then kept as a string —
// mirroring pandas' per-column dtype sniffing closely enough for the
// admissible dtypes this package cares about.
func LoadCSV(r io.Reader, opts ...TableOption) (*Table, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, ErrMissingSource
		}
		return nil, fmt.Errorf("tabular: reading CSV header: %w", err)
	}

	raw := make(map[string][]any, len(header))
	for _, col := range header {
		raw[col] = nil
	}

	numRows := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("tabular: reading CSV row %s: %w", humanize.Comma(int64(numRows+1)), err)
		}
		if len(record) != len(header) {
			return nil, fmt.Errorf("tabular: row %s has %d fields, want %d (header count)",
				humanize.Comma(int64(numRows+1)), len(record), len(header))
		}
		for i, field := range record {
			raw[header[i]] = append(raw[header[i]], sniffCSVField(field))
		}
		numRows++
	}

	if numRows == 0 {
		return nil, fmt.Errorf("tabular: CSV has a header but %w", ErrEmptyTable)
	}

	return Load(raw, nil, opts...)
}

// sniffCSVField classifies one CSV cell as int64, float64, or string,
// in that preference order, so downstream dtype inference in Load sees
// the same signal pandas' read_csv would have produced.
func sniffCSVField(field string) any {
	if iv, err := strconv.ParseInt(field, 10, 64); err == nil {
		return iv
	}
	if fv, err := strconv.ParseFloat(field, 64); err == nil {
		return fv
	}
	return field
}

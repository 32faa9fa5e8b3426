package icio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Load opens path and parses it as an ICIO CSV table. See Read.
func Load(path string, opts ...Option) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("icio: open %s: %w", path, err)
	}
	defer f.Close()

	t, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("icio: %s: %w", path, err)
	}

	return t, nil
}

// Read parses an ICIO CSV table from r.
//
// Layout (configurable via options, defaults match ICIO 2021/2018):
//   - header row: label column, N flow labels, M final-demand labels,
//     total-output label (extra trailing columns are ignored);
//   - N data rows: label, N flows, M final-demand values, total output.
//
// Rows past the first N are ignored; the OECD file appends taxes,
// value-added and output rows below the sector block.
//
// Errors: ErrEmptyTable, ErrBadLayout, ErrShortTable, ErrBadNumber (the
// latter wrapped with 1-based row and column context), or a wrapped CSV
// error for structurally broken input.
func Read(r io.Reader, opts ...Option) (*Table, error) {
	o := gatherOptions(opts...)
	n, m := o.sectors, o.finalDemand
	width := 1 + n + m + 1 // label + flows + final demand + output

	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyTable
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) < width {
		return nil, fmt.Errorf("%w: header has %d columns, need at least %d",
			ErrBadLayout, len(header), width)
	}

	colLabels := make([]string, n)
	copy(colLabels, header[1:1+n])

	// Enforce rectangular records at the header's width from here on.
	cr.FieldsPerRecord = len(header)

	t := &Table{
		RowLabels:   make([]string, n),
		ColLabels:   colLabels,
		Flows:       mat.NewDense(n, n, nil),
		FinalDemand: mat.NewDense(n, m, nil),
		Output:      mat.NewVecDense(n, nil),
	}

	for i := 0; i < n; i++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: got %d of %d", ErrShortTable, i, n)
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", i+2, err)
		}

		t.RowLabels[i] = record[0]
		for j := 0; j < n; j++ {
			v, err := parseCell(record[1+j], i, 1+j)
			if err != nil {
				return nil, err
			}
			t.Flows.Set(i, j, v)
		}
		for j := 0; j < m; j++ {
			v, err := parseCell(record[1+n+j], i, 1+n+j)
			if err != nil {
				return nil, err
			}
			t.FinalDemand.Set(i, j, v)
		}
		v, err := parseCell(record[1+n+m], i, 1+n+m)
		if err != nil {
			return nil, err
		}
		t.Output.SetVec(i, v)
	}

	return t, nil
}

// parseCell converts one cell, reporting 1-based file coordinates on failure.
func parseCell(s string, row, col int) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: row %d col %d (%q)", ErrBadNumber, row+2, col+1, s)
	}

	return v, nil
}

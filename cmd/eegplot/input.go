package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

var errEmptyInput = errors.New("eegplot: input has no frequency bins")

// recording is a spectrum table: one column per electrode, one row per
// frequency bin.
type recording struct {
	labels []string
	values *mat.Dense
}

func (rec *recording) bins() int {
	r, _ := rec.values.Dims()
	return r
}

// trace returns the column of electrode e.
func (rec *recording) trace(e int) []float64 {
	return mat.Col(nil, e, rec.values)
}

func (rec *recording) traces() [][]float64 {
	_, c := rec.values.Dims()
	out := make([][]float64, c)
	for e := range out {
		out[e] = rec.trace(e)
	}
	return out
}

func loadRecording(path string) (*recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	rec, err := readRecording(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// readRecording parses a CSV table whose header row holds the electrode
// labels. Lines starting with '#' are skipped.
func readRecording(r io.Reader) (*recording, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	labels := make([]string, len(header))
	for i, h := range header {
		labels[i] = strings.TrimSpace(h)
	}

	var data []float64
	rows := 0
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read bin %d: %w", rows, err)
		}
		for col, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("bin %d, %s: %w", rows, labels[col], err)
			}
			data = append(data, v)
		}
		rows++
	}
	if rows == 0 {
		return nil, errEmptyInput
	}

	return &recording{labels: labels, values: mat.NewDense(rows, len(labels), data)}, nil
}

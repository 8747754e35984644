package pipeline

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"honnef.co/go/curvefit"
)

var header = []string{"t", "x", "y", "z"}

// ReadSamples appends the samples in r to f and returns how many were read.
//
// Each record holds t, x, y and z. A first record whose first field is not a
// number is taken to be a header and skipped. Lines starting with # are
// ignored.
func ReadSamples(r io.Reader, f *curvefit.Fitter) (int, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = len(header)

	n := 0
	for line := 0; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		if line == 0 && isHeader(rec) {
			continue
		}
		var v [4]float64
		for i, field := range rec {
			v[i], err = strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				row, _ := cr.FieldPos(i)
				return n, fmt.Errorf("line %d, column %s: %w", row, header[i], err)
			}
		}
		f.AddPoint(v[0], curvefit.Vec(v[1], v[2], v[3]))
		n++
	}
}

func isHeader(rec []string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
	return err != nil
}

// WriteSamples writes the times and points of f's samples to w as CSV,
// preceded by a header.
func WriteSamples(w io.Writer, f *curvefit.Fitter) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	rec := make([]string, len(header))
	for _, s := range f.All() {
		rec[0] = strconv.FormatFloat(s.T, 'g', -1, 64)
		rec[1] = strconv.FormatFloat(s.Point.X, 'g', -1, 64)
		rec[2] = strconv.FormatFloat(s.Point.Y, 'g', -1, 64)
		rec[3] = strconv.FormatFloat(s.Point.Z, 'g', -1, 64)
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

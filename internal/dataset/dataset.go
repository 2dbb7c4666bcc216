// Package dataset reads and generates the float64 sequences fed to the
// accumulators.
package dataset

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	apperrors "github.com/agbru/exactsum/internal/errors"
)

// Dataset holds one or two aligned sequences. Y is nil for single-column
// input.
type Dataset struct {
	X []float64
	Y []float64
}

// Len returns the number of rows.
func (d Dataset) Len() int { return len(d.X) }

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Load reads one value per line, or two per line when columns is 2.
// Values may be separated by whitespace or a comma. Blank lines and lines
// starting with '#' are skipped. Every value must be finite.
func Load(r io.Reader, columns int) (Dataset, error) {
	if columns != 1 && columns != 2 {
		return Dataset{}, apperrors.ValidationError{Field: "columns", Message: "must be 1 or 2"}
	}
	var d Dataset
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == ';'
		})
		if len(fields) != columns {
			return Dataset{}, apperrors.InputError{Line: line, Text: text}
		}
		vals := make([]float64, columns)
		for i, f := range fields {
			v, err := parseValue(f)
			if err != nil {
				return Dataset{}, apperrors.InputError{Line: line, Text: f, Cause: err}
			}
			vals[i] = v
		}
		d.X = append(d.X, vals[0])
		if columns == 2 {
			d.Y = append(d.Y, vals[1])
		}
	}
	if err := sc.Err(); err != nil {
		return Dataset{}, apperrors.WrapError(err, "reading input")
	}
	if columns == 2 && d.Y == nil {
		d.Y = []float64{}
	}
	return d, nil
}

// parseValue accepts decimal and hexadecimal floating-point literals.
func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, apperrors.NewPreconditionError("dataset.Load", "non-finite value")
	}
	return v, nil
}

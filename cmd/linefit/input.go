package main

import (
	"encoding/binary"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/YuminosukeSato/linefit/pkg/errors"
)

const readOp = "readPairs"

// readPairs reads "x,y" records. Blank lines and lines starting with '#' are
// ignored, and a first record whose fields are not numbers is treated as a header.
func readPairs(r io.Reader) (x, y []float64, err error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	first := true
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, errors.NewValueError(readOp, err.Error())
		}

		xi, xErr := parseField(rec[0])
		yi, yErr := parseField(rec[1])
		if first && xErr != nil && yErr != nil {
			first = false
			continue
		}
		first = false

		line, _ := cr.FieldPos(0)
		if xErr != nil {
			return nil, nil, errors.NewValueError(readOp, fmt.Sprintf("line %d: x %q is not a number", line, rec[0]))
		}
		if yErr != nil {
			return nil, nil, errors.NewValueError(readOp, fmt.Sprintf("line %d: y %q is not a number", line, rec[1]))
		}
		x = append(x, xi)
		y = append(y, yi)
	}
	return x, y, nil
}

func parseField(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// digest identifies the parsed observations independent of formatting, so
// "1.0,2" and "1, 2.00" hash the same, as do "0" and "-0".
func digest(x, y []float64) string {
	h := xxhash.New()
	buf := make([]byte, 0, 16)
	for i := range x {
		buf = binary.LittleEndian.AppendUint64(buf[:0], canonicalBits(x[i]))
		buf = binary.LittleEndian.AppendUint64(buf, canonicalBits(y[i]))
		_, _ = h.Write(buf)
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

func canonicalBits(v float64) uint64 {
	if v == 0 {
		v = 0 // -0 == 0
	}
	return math.Float64bits(v)
}

// Package formats provides parsers for the Wavefront-style scene description formats:
// meshes (.obj), materials (.mtl) and camera placement (.cam).
package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	gomath "math"
	"strconv"
	"strings"

	"github.com/Faultbox/sceneview/pkg/math"
)

// Parse errors shared by all text formats.
var (
	ErrMalformedRecord = errors.New("malformed record")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// record is one non-blank, non-comment line split into fields.
type record struct {
	line   int // 1-based line number in the source
	tag    string
	fields []string
}

// readRecords splits data into records, skipping blank and '#' lines.
func readRecords(data []byte) ([]record, error) {
	var recs []record
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		parts := strings.Fields(text)
		recs = append(recs, record{line: line, tag: parts[0], fields: parts[1:]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}
	return recs, nil
}

// malformed builds an ErrMalformedRecord error pointing at rec.
func (r record) malformed(format string, args ...any) error {
	return fmt.Errorf("line %d: %w: %s: %s", r.line, ErrMalformedRecord, r.tag, fmt.Sprintf(format, args...))
}

// field returns field i or a malformed error when the record is too short.
func (r record) field(i int) (string, error) {
	if i >= len(r.fields) {
		return "", r.malformed("expected at least %d fields, got %d", i+1, len(r.fields))
	}
	return r.fields[i], nil
}

// float parses field i as a finite float64.
func (r record) float(i int) (float64, error) {
	tok, err := r.field(i)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, r.malformed("field %d %q is not a number", i+1, tok)
	}
	if gomath.IsNaN(f) || gomath.IsInf(f, 0) {
		return 0, r.malformed("field %d %q is not a finite number", i+1, tok)
	}
	return f, nil
}

// int parses field i as a base-10 integer.
func (r record) int(i int) (int, error) {
	tok, err := r.field(i)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, r.malformed("field %d %q is not an integer", i+1, tok)
	}
	return n, nil
}

// vec3 parses the first three fields as a vector.
func (r record) vec3() (math.Vec3, error) {
	if len(r.fields) < 3 {
		return math.Vec3{}, r.malformed("expected 3 numeric fields, got %d", len(r.fields))
	}
	var c [3]float64
	for i := range c {
		f, err := r.float(i)
		if err != nil {
			return math.Vec3{}, err
		}
		c[i] = f
	}
	return math.Vec3{X: c[0], Y: c[1], Z: c[2]}, nil
}

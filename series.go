package orderbench

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrEmptySeries is returned when a computation needs at least one value.
var ErrEmptySeries = errors.New("empty series")

// FormatFloat renders v in the shortest form that parses back to the same
// float64.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteTSV writes one "c6<TAB>|ψ|²" line per sample.
func (s Series) WriteTSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, sample := range s.Samples {
		bw.WriteString(FormatFloat(sample.C6))
		bw.WriteByte('\t')
		bw.WriteString(FormatFloat(sample.MagnitudeSq))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteDetailedTSV writes "c6 |ψ|² record layer energy" rows, tab separated.
func (s Series) WriteDetailedTSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, sample := range s.Samples {
		fmt.Fprintf(bw, "%s\t%s\t%d\t%d\t%s\n",
			FormatFloat(sample.C6), FormatFloat(sample.MagnitudeSq),
			sample.Record, sample.Layer, FormatFloat(sample.Energy))
	}
	return bw.Flush()
}

// SaveSeries writes the detailed series to <dir>/Gamma<g>/<key>.txt and
// returns the file path. Directories are created as needed; the file is
// replaced atomically.
func SaveSeries(dir string, md Metadata, s Series) (string, error) {
	target := filepath.Join(dir, "Gamma"+md.GammaText())
	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", fmt.Errorf("create result dir: %w", err)
	}

	var buf bytes.Buffer
	if err := s.WriteDetailedTSV(&buf); err != nil {
		return "", err
	}

	name := filepath.Join(target, md.Key()+".txt")
	tmp, err := os.CreateTemp(target, ".series-*")
	if err != nil {
		return "", fmt.Errorf("create result file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write result file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close result file: %w", err)
	}
	if err := os.Rename(tmp.Name(), name); err != nil {
		return "", fmt.Errorf("replace result file: %w", err)
	}
	return name, nil
}

// LoadColumns reads a whitespace-delimited numeric table and returns its
// first two columns.
//
// Blank lines and '#' comments are skipped. Every row must have the same
// number of columns, at least two; extra columns are ignored.
func LoadColumns(r io.Reader) (first, second []float64, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	columns := 0
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		if columns == 0 {
			if len(fields) < 2 {
				return nil, nil, fmt.Errorf("line %d: need at least 2 columns, got %d", line, len(fields))
			}
			columns = len(fields)
		} else if len(fields) != columns {
			return nil, nil, fmt.Errorf("line %d: got %d columns, want %d", line, len(fields), columns)
		}

		a, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: column 1: %w", line, err)
		}
		b, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: column 2: %w", line, err)
		}
		first = append(first, a)
		second = append(second, b)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("read columns: %w", err)
	}
	if len(first) == 0 {
		return nil, nil, fmt.Errorf("read columns: %w", ErrEmptySeries)
	}
	return first, second, nil
}

// LoadColumnsFile is LoadColumns on a named file.
func LoadColumnsFile(filePath string) (first, second []float64, err error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	first, second, err = LoadColumns(f)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return first, second, nil
}

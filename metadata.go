package orderbench

import (
	"errors"
	"fmt"
	"math"
	"path"
	"path/filepath"
	"strconv"
	"strings"
)

var (
	// ErrMalformedPath is returned when a path does not follow the dataset
	// naming convention.
	ErrMalformedPath = errors.New("malformed dataset path")

	// ErrUnknownAction is returned by QueryMetadata for unsupported actions.
	ErrUnknownAction = errors.New("unknown metadata action")
)

// Metadata query actions.
const (
	ActionFileType = "FileType"
	ActionGamma    = "Gamma"
	ActionMetadata = "Metadata"
)

// Metadata holds the simulation parameters encoded in a dataset path:
//
//	<root>/<subroot>/Gamma<g>/Strength<s>_Lattice<L>_<L>_<h>_Time<t>.<ext>
type Metadata struct {
	Gamma    float64
	Strength float64
	Length   int     // Lattice side L
	Width    int     // Second lattice field, equal to Length
	Height   float64 // Stacked layers
	Time     int     // Solver time limit
	Ext      string  // File extension without the dot

	raw rawMetadata
}

// rawMetadata keeps the path text so queries echo it verbatim ("0.0", not "0").
type rawMetadata struct {
	gamma    string
	strength string
	length   string
	height   string
}

// LengthFloat returns L as a float.
func (m Metadata) LengthFloat() float64 {
	return float64(m.Length)
}

// Layers returns Height as a layer count, or 1 when Height is not a positive
// integer.
func (m Metadata) Layers() int {
	if m.Height < 1 || m.Height != math.Trunc(m.Height) {
		return 1
	}
	return int(m.Height)
}

// Key returns "<strength>_<L>_<L>_<height>" using the path's own text.
func (m Metadata) Key() string {
	return fmt.Sprintf("%s_%s_%s_%s", m.raw.strength, m.raw.length, m.raw.length, m.raw.height)
}

// GammaText returns gamma exactly as written in the path.
func (m Metadata) GammaText() string {
	return m.raw.gamma
}

// FileType returns the text after the last '.' in p, or p itself when it has
// no dot.
func FileType(p string) string {
	if i := strings.LastIndex(p, "."); i >= 0 {
		return p[i+1:]
	}
	return p
}

// ParseGamma extracts only the gamma directory segment of a dataset path and
// returns it verbatim after checking it is numeric.
func ParseGamma(p string) (string, error) {
	dir, _, err := splitDatasetPath(p)
	if err != nil {
		return "", err
	}
	text, _, err := prefixedFloat(dir, "Gamma")
	if err != nil {
		return "", err
	}
	return text, nil
}

// ParseMetadata decodes every parameter of a dataset path. Any deviation from
// the naming convention returns an error wrapping ErrMalformedPath.
func ParseMetadata(p string) (Metadata, error) {
	dir, file, err := splitDatasetPath(p)
	if err != nil {
		return Metadata{}, err
	}

	var md Metadata
	md.raw.gamma, md.Gamma, err = prefixedFloat(dir, "Gamma")
	if err != nil {
		return Metadata{}, err
	}

	dot := strings.LastIndex(file, ".")
	if dot < 0 {
		return Metadata{}, fmt.Errorf("%w: %q has no extension", ErrMalformedPath, file)
	}
	md.Ext = file[dot+1:]

	// Strength<s>_Lattice<L>_<L>_<h>_Time<t>
	fields := strings.Split(file[:dot], "_")
	if len(fields) != 5 {
		return Metadata{}, fmt.Errorf("%w: %q has %d '_' fields, want 5",
			ErrMalformedPath, file, len(fields))
	}

	md.raw.strength, md.Strength, err = prefixedFloat(fields[0], "Strength")
	if err != nil {
		return Metadata{}, err
	}

	lengthText, length, err := prefixedInt(fields[1], "Lattice")
	if err != nil {
		return Metadata{}, err
	}
	widthText, width, err := prefixedInt(fields[2], "")
	if err != nil {
		return Metadata{}, err
	}
	if length <= 0 {
		return Metadata{}, fmt.Errorf("%w: lattice length %d (%v)", ErrMalformedPath, length, ErrInvalidLength)
	}
	if width != length {
		return Metadata{}, fmt.Errorf("%w: lattice %s×%s is not square", ErrMalformedPath, lengthText, widthText)
	}
	md.Length, md.Width = length, width
	md.raw.length = widthText

	md.raw.height, md.Height, err = prefixedFloat(fields[3], "")
	if err != nil {
		return Metadata{}, err
	}

	_, md.Time, err = prefixedInt(fields[4], "Time")
	if err != nil {
		return Metadata{}, err
	}

	return md, nil
}

// QueryMetadata answers one metadata query about a dataset path:
// ActionFileType, ActionGamma or ActionMetadata.
func QueryMetadata(p, action string) (string, error) {
	switch action {
	case ActionFileType:
		return FileType(p), nil
	case ActionGamma:
		return ParseGamma(p)
	case ActionMetadata:
		md, err := ParseMetadata(p)
		if err != nil {
			return "", err
		}
		return md.Key(), nil
	default:
		return "", fmt.Errorf("%w: %q (want %s, %s or %s)",
			ErrUnknownAction, action, ActionFileType, ActionGamma, ActionMetadata)
	}
}

// splitDatasetPath returns the gamma directory segment and the file segment.
func splitDatasetPath(p string) (dir, file string, err error) {
	clean := path.Clean(filepath.ToSlash(p))
	file = path.Base(clean)
	dir = path.Base(path.Dir(clean))
	if file == "" || file == "." || file == "/" || dir == "." || dir == "/" || dir == ".." {
		return "", "", fmt.Errorf("%w: %q needs a Gamma directory and a file name", ErrMalformedPath, p)
	}
	return dir, file, nil
}

func prefixedFloat(segment, prefix string) (string, float64, error) {
	text, ok := strings.CutPrefix(segment, prefix)
	if !ok || text == "" {
		return "", 0, fmt.Errorf("%w: %q does not start with %q and a number", ErrMalformedPath, segment, prefix)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return "", 0, fmt.Errorf("%w: %q is not a finite number", ErrMalformedPath, text)
	}
	return text, v, nil
}

// prefixedInt accepts integral values written as floats ("18.0").
func prefixedInt(segment, prefix string) (string, int, error) {
	text, v, err := prefixedFloat(segment, prefix)
	if err != nil {
		return "", 0, err
	}
	if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return "", 0, fmt.Errorf("%w: %q is not an integer", ErrMalformedPath, text)
	}
	return text, int(v), nil
}

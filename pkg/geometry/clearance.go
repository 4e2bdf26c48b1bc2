package geometry

import (
	"regexp"
	"strconv"

	"github.com/draftline/draftline/pkg/errors"
)

// Clearance is a parsed accessibility clearance specification, in inches.
type Clearance struct {
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
}

// clearancePattern matches the fixed clearance grammar: three numbers, each
// optionally followed by an inch mark, suffixed H, W, D in that order and
// joined by the literal token "x". Example: `27" H x 30" W x 17" D`.
var clearancePattern = regexp.MustCompile(
	`^\s*(\d+(?:\.\d+)?)"?\s*H\s*x\s*(\d+(?:\.\d+)?)"?\s*W\s*x\s*(\d+(?:\.\d+)?)"?\s*D\s*$`)

// ParseClearance parses a textual clearance specification of the form
// `<height>" H x <width>" W x <depth>" D` into a Clearance.
//
// The grammar is strict: all three dimensions must be present, in H, W, D
// order. Any deviation (missing letter suffix, reordered tokens, extra
// dimensions) returns an INVALID_CONFIG error, since clearance strings come
// from configuration and layout cannot proceed without them.
func ParseClearance(spec string) (Clearance, error) {
	m := clearancePattern.FindStringSubmatch(spec)
	if m == nil {
		return Clearance{}, errors.New(errors.ErrCodeInvalidConfig,
			"clearance spec %q does not match the required `H x W x D` grammar", spec)
	}

	// The pattern only admits well-formed decimal literals.
	h, _ := strconv.ParseFloat(m[1], 64)
	w, _ := strconv.ParseFloat(m[2], 64)
	d, _ := strconv.ParseFloat(m[3], 64)

	return Clearance{Height: h, Width: w, Depth: d}, nil
}

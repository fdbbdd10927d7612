package validation

import (
	"strconv"
	"strings"
)

// Field describes one raw form input and the checks configured for it.
// Required applies to the trimmed value; MinLength/MaxLength apply to the
// string length; Min/Max apply to the numeric reading of the value. A nil
// bound means the check is not configured.
type Field struct {
	Value     string
	Required  bool
	MinLength *int
	MaxLength *int
	Min       *float64
	Max       *float64
}

// Validate reports whether every configured check on the field passes.
// A value that cannot be parsed as a number fails any configured numeric
// bound.
func Validate(f Field) bool {
	if f.Required && len(strings.TrimSpace(f.Value)) == 0 {
		return false
	}
	if f.MinLength != nil && len(f.Value) < *f.MinLength {
		return false
	}
	if f.MaxLength != nil && len(f.Value) > *f.MaxLength {
		return false
	}
	if f.Min != nil || f.Max != nil {
		n, err := strconv.ParseFloat(strings.TrimSpace(f.Value), 64)
		if err != nil {
			return false
		}
		if f.Min != nil && n < *f.Min {
			return false
		}
		if f.Max != nil && n > *f.Max {
			return false
		}
	}
	return true
}

// IntPtr and FloatPtr build optional bounds for Field literals.
func IntPtr(v int) *int { return &v }

func FloatPtr(v float64) *float64 { return &v }

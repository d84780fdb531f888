package style

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"cssd/colors"
	"cssd/units"
)

// Validator checks and normalizes one value domain. Check returns the
// normalized value or a ValidationError. Description is the token the
// validator contributes to a Choices error message, e.g. "<length>".
type Validator struct {
	Description string
	Check       func(value any) (any, error)
}

// NumberOption configures range checks on Number and Integer validators.
type NumberOption func(*bounds)

type bounds struct {
	min, max *float64
}

// Min sets an inclusive lower bound.
func Min(v float64) NumberOption { return func(b *bounds) { b.min = &v } }

// Max sets an inclusive upper bound.
func Max(v float64) NumberOption { return func(b *bounds) { b.max = &v } }

func (b bounds) check(n float64) error {
	if b.min != nil && n < *b.min {
		return validationErrorf("Value %v below minimum value %v", n, *b.min)
	}
	if b.max != nil && n > *b.max {
		return validationErrorf("Value %v above maximum value %v", n, *b.max)
	}
	return nil
}

// Number returns a <number> validator coercing to float64, optionally
// range-checked. Number().Check(v) is the immediate, unbounded form.
func Number(opts ...NumberOption) Validator {
	var b bounds
	for _, opt := range opts {
		opt(&b)
	}
	return Validator{
		Description: "<number>",
		Check: func(value any) (any, error) {
			n, ok := coerceFloat(value)
			if !ok {
				return nil, validationErrorf("Cannot coerce %v to float64", value)
			}
			if err := b.check(n); err != nil {
				return nil, err
			}
			return n, nil
		},
	}
}

// Integer returns an <integer> validator coercing to int, optionally
// range-checked. Fractional numbers truncate toward zero; fractional
// strings are rejected.
func Integer(opts ...NumberOption) Validator {
	var b bounds
	for _, opt := range opts {
		opt(&b)
	}
	return Validator{
		Description: "<integer>",
		Check: func(value any) (any, error) {
			n, ok := coerceInt(value)
			if !ok {
				return nil, validationErrorf("Cannot coerce %v to int", value)
			}
			if err := b.check(float64(n)); err != nil {
				return nil, err
			}
			return n, nil
		},
	}
}

// Length validates <length> values through the unit parser. Bare
// numbers become pixel lengths; percentages are accepted as well.
var Length = Validator{
	Description: "<length>",
	Check: func(value any) (any, error) {
		v, err := units.Parse(value)
		if err != nil {
			return nil, &ValidationError{Msg: err.Error()}
		}
		return v, nil
	},
}

// Percent validates <percentage> values: parseable as a unit and
// percentage-typed.
var Percent = Validator{
	Description: "<percentage>",
	Check: func(value any) (any, error) {
		v, err := units.Parse(value)
		if err != nil {
			return nil, &ValidationError{Msg: err.Error()}
		}
		if !v.IsPercent() {
			return nil, validationErrorf("Value %v is not a <percentage> unit", v)
		}
		return v, nil
	},
}

// Color validates <color> values through the color parser.
var Color = Validator{
	Description: "<color>",
	Check: func(value any) (any, error) {
		c, err := colors.Parse(value)
		if err != nil {
			return nil, &ValidationError{Msg: err.Error()}
		}
		return c, nil
	},
}

// BorderSpacing validates "<length> <length>?": one or two lengths
// given as a non-string sequence, a single number, or a
// whitespace-separated string. Normalizes to a slice of one (horizontal
// only) or two (horizontal, vertical) length values.
var BorderSpacing = Validator{
	Description: "<length> <length>?",
	Check: func(value any) (any, error) {
		var parts []any
		if s, ok := value.(string); ok {
			for _, f := range strings.Fields(s) {
				parts = append(parts, f)
			}
		} else if seq, ok := sequence(value); ok {
			parts = seq
		} else {
			parts = []any{value}
		}

		if len(parts) < 1 || len(parts) > 2 {
			return nil, &ValidationError{Msg: "Should provide 1 or 2 <length> values!"}
		}
		spacing := make([]units.Value, len(parts))
		for i, part := range parts {
			v, err := units.Parse(part)
			if err != nil {
				return nil, &ValidationError{Msg: err.Error()}
			}
			spacing[i] = v
		}
		return spacing, nil
	},
}

// coerceFloat converts numeric values and numeric strings to float64.
func coerceFloat(value any) (float64, bool) {
	if n, ok := numericValue(value); ok {
		return n, true
	}
	if s, ok := value.(string); ok {
		n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil && !math.IsInf(n, 0) && !math.IsNaN(n) {
			return n, true
		}
	}
	return 0, false
}

// coerceInt converts numeric values and integer strings to int.
// Fractional numeric values truncate toward zero.
func coerceInt(value any) (int, bool) {
	if s, ok := value.(string); ok {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, false
		}
		return n, true
	}
	if n, ok := numericValue(value); ok {
		return int(n), true
	}
	return 0, false
}

// numericValue extracts a float64 from any Go numeric type. Strings and
// unit values are not numbers.
func numericValue(value any) (float64, bool) {
	switch value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		rv := reflect.ValueOf(value)
		if rv.CanInt() {
			return float64(rv.Int()), true
		}
		if rv.CanUint() {
			return float64(rv.Uint()), true
		}
		return rv.Float(), true
	}
	return 0, false
}

// sequence flattens a slice or array value (not strings) into []any.
func sequence(value any) ([]any, bool) {
	if value == nil {
		return nil, false
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// Package units provides CSS length and percentage values for the style
// declaration engine. Raw numbers and dimension strings come in, typed
// values come out; percentages stay distinguishable from plain lengths
// so validators can type-check them.
package units

import (
	"fmt"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Unit is a CSS dimension unit.
// ENUM(px, pt, em, ex, rem, vw, vh, percent)
type Unit int

// Value is a scalar with a CSS unit, e.g. 10px or 30%.
type Value struct {
	Scalar float64
	Unit   Unit
}

// Px returns a pixel value.
func Px(n float64) Value { return Value{Scalar: n, Unit: UnitPx} }

// Pct returns a percentage value.
func Pct(n float64) Value { return Value{Scalar: n, Unit: UnitPercent} }

// IsPercent reports whether the value is percentage-typed.
func (v Value) IsPercent() bool { return v.Unit == UnitPercent }

// String renders the value in its natural CSS form: "10px", "30%", "1.5em".
func (v Value) String() string {
	s := strconv.FormatFloat(v.Scalar, 'f', -1, 64)
	if v.Unit == UnitPercent {
		return s + "%"
	}
	return s + v.Unit.String()
}

// Parse converts a raw value to a Value. Numbers are taken as bare pixel
// counts. Strings are lexed as a single CSS dimension, percentage or
// number token. A Value passes through unchanged.
func Parse(raw any) (Value, error) {
	switch n := raw.(type) {
	case Value:
		return n, nil
	case int:
		return Px(float64(n)), nil
	case int8:
		return Px(float64(n)), nil
	case int16:
		return Px(float64(n)), nil
	case int32:
		return Px(float64(n)), nil
	case int64:
		return Px(float64(n)), nil
	case uint:
		return Px(float64(n)), nil
	case uint8:
		return Px(float64(n)), nil
	case uint16:
		return Px(float64(n)), nil
	case uint32:
		return Px(float64(n)), nil
	case uint64:
		return Px(float64(n)), nil
	case float32:
		return Px(float64(n)), nil
	case float64:
		return Px(n), nil
	case string:
		return parseString(n)
	}
	return Value{}, fmt.Errorf("unparseable unit value '%v'", raw)
}

// parseString lexes s as exactly one CSS value token.
func parseString(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}, fmt.Errorf("unparseable unit value ''")
	}

	l := css.NewLexer(parse.NewInputString(s))
	tt, data := l.Next()

	var val Value
	switch tt {
	case css.NumberToken:
		n, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return Value{}, fmt.Errorf("unparseable unit value '%s'", s)
		}
		val = Px(n)

	case css.PercentageToken:
		n, err := strconv.ParseFloat(strings.TrimSuffix(string(data), "%"), 64)
		if err != nil {
			return Value{}, fmt.Errorf("unparseable unit value '%s'", s)
		}
		val = Pct(n)

	case css.DimensionToken:
		scalar, unit := splitDimension(string(data))
		u, err := ParseUnit(unit)
		if err != nil {
			return Value{}, fmt.Errorf("unknown unit '%s' in value '%s'", unit, s)
		}
		val = Value{Scalar: scalar, Unit: u}

	default:
		return Value{}, fmt.Errorf("unparseable unit value '%s'", s)
	}

	// The whole input must be a single token.
	if tt, _ = l.Next(); tt != css.ErrorToken {
		return Value{}, fmt.Errorf("unparseable unit value '%s'", s)
	}
	return val, nil
}

// splitDimension separates the numeric part of a dimension token from
// its unit suffix.
func splitDimension(s string) (float64, string) {
	numEnd := 0
	for i, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '+' {
			numEnd = i + 1
		} else {
			break
		}
	}
	n, _ := strconv.ParseFloat(s[:numEnd], 64)
	return n, strings.ToLower(s[numEnd:])
}

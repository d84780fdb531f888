package style

import (
	"fmt"
	"sort"
	"strings"
)

// Choices is the legal-value specification for one property: literal
// constants (including nil for CSS none, and symbolic keywords),
// validators tried in declared order, and explicit defaulting keywords
// that are legal regardless of the other choices.
//
// A Choices with neither constants nor validators is meaningless and is
// rejected when a property is declared over it. Choices values are
// shared between properties and must not be mutated after first use.
type Choices struct {
	Constants  []any
	Validators []Validator
	Defaulting []Keyword
}

// Validate checks value in contract order: literal constants first
// (equality, with bare strings matching a constant's text
// case-insensitively and resolving to the canonical constant), then the
// explicit defaulting keywords, then validators in declared order.
// First success wins and its normalized result is returned.
func (c Choices) Validate(value any) (any, error) {
	for _, constant := range c.Constants {
		if norm, ok := matchConstant(constant, value); ok {
			return norm, nil
		}
	}
	for _, kw := range c.Defaulting {
		if norm, ok := matchConstant(kw, value); ok {
			return norm, nil
		}
	}
	for _, v := range c.Validators {
		if norm, err := v.Check(value); err == nil {
			return norm, nil
		}
	}
	return nil, validationErrorf("Invalid value '%v'; Valid values are: %s", value, c)
}

// String renders every legal form, sorted alphabetically: validator
// description tokens, constant texts (nil as "none") and defaulting
// keywords. This is the token list embedded in rejection messages.
func (c Choices) String() string {
	tokens := make([]string, 0, len(c.Constants)+len(c.Validators)+len(c.Defaulting))
	for _, constant := range c.Constants {
		tokens = append(tokens, constantToken(constant))
	}
	for _, v := range c.Validators {
		tokens = append(tokens, v.Description)
	}
	for _, kw := range c.Defaulting {
		tokens = append(tokens, string(kw))
	}
	sort.Strings(tokens)
	return strings.Join(tokens, ", ")
}

func constantToken(constant any) string {
	if constant == nil {
		return "none"
	}
	return fmt.Sprintf("%v", constant)
}

// matchConstant tests value against one constant and returns the
// canonical constant on a match. Bare strings match keywords and string
// constants case-insensitively; nil matches nil and the string "none";
// numeric constants match across Go numeric types.
func matchConstant(constant, value any) (any, bool) {
	if constant == nil {
		if value == nil {
			return nil, true
		}
		if s, ok := stringForm(value); ok && strings.EqualFold(s, "none") {
			return nil, true
		}
		return nil, false
	}

	if constant == value {
		return constant, true
	}

	if cn, ok := numericValue(constant); ok {
		if vn, ok := numericValue(value); ok && cn == vn {
			return constant, true
		}
		return nil, false
	}

	if cs, ok := stringForm(constant); ok {
		if vs, ok := stringForm(value); ok && strings.EqualFold(cs, vs) {
			return constant, true
		}
	}
	return nil, false
}

// stringForm extracts the textual form of strings and keywords.
func stringForm(value any) (string, bool) {
	switch s := value.(type) {
	case string:
		return s, true
	case Keyword:
		return string(s), true
	}
	return "", false
}

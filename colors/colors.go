// Package colors provides CSS color values and parsing for the style
// declaration engine. Hex notation, rgb()/rgba() functions and the CSS3
// extended color keywords are supported.
package colors

import (
	"fmt"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Color is an RGB color with an alpha channel in the 0-1 range.
type Color struct {
	R, G, B uint8
	A       float64
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 1} }

// RGBA returns a color with an explicit alpha channel.
func RGBA(r, g, b uint8, a float64) Color { return Color{R: r, G: g, B: b, A: a} }

// String renders the color as #rrggbb, or rgba(r, g, b, a) when
// translucent.
func (c Color) String() string {
	if c.A == 1 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)",
		c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// Parse converts a raw value to a Color. Accepted forms: a Color
// (passthrough), #rgb/#rrggbb/#rrggbbaa hex notation, rgb()/rgba()
// functions, and named CSS colors (case-insensitive).
func Parse(raw any) (Color, error) {
	switch v := raw.(type) {
	case Color:
		return v, nil
	case string:
		return parseString(v)
	}
	return Color{}, fmt.Errorf("unparseable color value '%v'", raw)
}

func parseString(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := Named[strings.ToLower(s)]; ok {
		return c, nil
	}
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(strings.ToLower(s), "rgb"):
		return parseRGBFunc(s)
	}
	return Color{}, fmt.Errorf("unparseable color value '%s'", s)
}

// parseHex handles #rgb, #rrggbb and #rrggbbaa notation.
func parseHex(s string) (Color, error) {
	hex := s[1:]

	expand := func(h byte) string { return string(h) + string(h) }
	switch len(hex) {
	case 3:
		hex = expand(hex[0]) + expand(hex[1]) + expand(hex[2])
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("unparseable color value '%s'", s)
	}

	channel := func(from int) (uint8, error) {
		n, err := strconv.ParseUint(hex[from:from+2], 16, 8)
		return uint8(n), err
	}

	var c Color
	var err error
	if c.R, err = channel(0); err != nil {
		return Color{}, fmt.Errorf("unparseable color value '%s'", s)
	}
	if c.G, err = channel(2); err != nil {
		return Color{}, fmt.Errorf("unparseable color value '%s'", s)
	}
	if c.B, err = channel(4); err != nil {
		return Color{}, fmt.Errorf("unparseable color value '%s'", s)
	}
	c.A = 1
	if len(hex) == 8 {
		a, err := strconv.ParseUint(hex[6:8], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("unparseable color value '%s'", s)
		}
		c.A = float64(a) / 255
	}
	return c, nil
}

// parseRGBFunc lexes rgb(...) / rgba(...) with the CSS tokenizer.
func parseRGBFunc(s string) (Color, error) {
	l := css.NewLexer(parse.NewInputString(s))

	tt, data := l.Next()
	if tt != css.FunctionToken {
		return Color{}, fmt.Errorf("unparseable color value '%s'", s)
	}
	fn := strings.ToLower(strings.TrimSuffix(string(data), "("))
	if fn != "rgb" && fn != "rgba" {
		return Color{}, fmt.Errorf("unparseable color value '%s'", s)
	}

	type arg struct {
		n       float64
		percent bool
	}
	var args []arg
	var closed bool
loop:
	for {
		switch tt, data = l.Next(); tt {
		case css.NumberToken:
			n, err := strconv.ParseFloat(string(data), 64)
			if err != nil {
				return Color{}, fmt.Errorf("unparseable color value '%s'", s)
			}
			args = append(args, arg{n: n})
		case css.PercentageToken:
			n, err := strconv.ParseFloat(strings.TrimSuffix(string(data), "%"), 64)
			if err != nil {
				return Color{}, fmt.Errorf("unparseable color value '%s'", s)
			}
			args = append(args, arg{n: n, percent: true})
		case css.WhitespaceToken, css.CommaToken:
		case css.RightParenthesisToken:
			closed = true
			break loop
		default:
			return Color{}, fmt.Errorf("unparseable color value '%s'", s)
		}
	}
	if !closed || len(args) < 3 || len(args) > 4 {
		return Color{}, fmt.Errorf("unparseable color value '%s'", s)
	}

	channel := func(a arg) uint8 {
		n := a.n
		if a.percent {
			n = n * 255 / 100
		}
		switch {
		case n < 0:
			return 0
		case n > 255:
			return 255
		}
		return uint8(n)
	}

	c := RGB(channel(args[0]), channel(args[1]), channel(args[2]))
	if len(args) == 4 {
		a := args[3].n
		if args[3].percent {
			a /= 100
		}
		if a < 0 {
			a = 0
		} else if a > 1 {
			a = 1
		}
		c.A = a
	}
	return c, nil
}

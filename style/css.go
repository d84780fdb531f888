package style

import "go.uber.org/zap"

// CSS is the registry for the standard property set. It is assembled
// once; every declaration returned by NewCSS shares it and only carries
// per-node storage.
var CSS = newCSSRegistry()

// NewCSS creates a standard CSS declaration. A nil logger defaults to a
// nop logger. Bind attaches it to the owning node.
func NewCSS(log *zap.Logger) *Declaration {
	return New(CSS, log)
}

func newCSSRegistry() *Registry {
	length := Choices{Validators: []Validator{Length}}
	autoOrLength := Choices{Constants: []any{Auto}, Validators: []Validator{Length}}
	noneOrLength := Choices{Constants: []any{nil}, Validators: []Validator{Length}}

	r := NewRegistry()

	r.Add("display", Choices{Constants: []any{nil, Block, Inline, InlineBlock, Table}}, Inline)

	r.Add("width", autoOrLength, Auto)
	r.Add("height", autoOrLength, Auto)
	r.Add("min_width", autoOrLength, Auto)
	r.Add("min_height", autoOrLength, Auto)
	r.Add("max_width", noneOrLength, nil)
	r.Add("max_height", noneOrLength, nil)

	r.Add("top", autoOrLength, Auto)
	r.Add("right", autoOrLength, Auto)
	r.Add("bottom", autoOrLength, Auto)
	r.Add("left", autoOrLength, Auto)

	r.AddDirectional("margin%s", length, 0)
	r.AddDirectional("padding%s", length, 0)
	r.AddDirectional("border%s_width", length, 0)
	r.Add("border_spacing", Choices{Validators: []Validator{BorderSpacing}}, 0)

	r.Add("direction", Choices{Constants: []any{LTR, RTL}}, LTR)
	r.Add("text_align", Choices{Constants: []any{Left, Right, Center, Justify}},
		Computed(textAlignInitial))

	r.Add("color", Choices{Validators: []Validator{Color}}, "black")
	r.Add("background_color", Choices{Constants: []any{Transparent}, Validators: []Validator{Color}},
		Transparent)

	r.Add("opacity", Choices{Validators: []Validator{Number(Min(0), Max(1))}}, 1.0)
	r.Add("z_index", Choices{Constants: []any{Auto}, Validators: []Validator{Integer()}}, Auto)

	return r
}

// Default text alignment follows the writing direction.
func textAlignInitial(d *Declaration) any {
	if v, err := d.Get("direction"); err == nil && v == RTL {
		return Right
	}
	return Left
}

package style

import (
	"fmt"
	"strings"
)

// Registry is the per-type set of property declarations backing a style
// object: each property name maps to its choices and default rule, and
// hyphenated CSS aliases resolve to the same property identity. A
// registry is assembled once at definition time and shared, immutable,
// by all declarations of that style type.
type Registry struct {
	props      map[string]*Property
	shorthands map[string]*shorthand
	aliases    map[string]string // "margin-top" -> "margin_top"
	order      []string          // scalar properties in declaration order
}

// shorthand is a directional property group: four independently
// declared side properties behind one name.
type shorthand struct {
	name  string
	sides [4]string // top, right, bottom, left
}

// NewRegistry returns an empty property registry.
func NewRegistry() *Registry {
	return &Registry{
		props:      make(map[string]*Property),
		shorthands: make(map[string]*shorthand),
		aliases:    make(map[string]string),
	}
}

// Add declares a validated property. The initial default may be a
// literal value legal under choices, an OtherProperty reference, or a
// Computed function. Declaration mistakes — empty choices, duplicate
// names, a literal default the choices reject — panic here, at
// definition time, never on first read.
func (r *Registry) Add(name string, choices Choices, initial any) *Registry {
	if len(choices.Constants) == 0 && len(choices.Validators) == 0 {
		panic(fmt.Sprintf("style: property '%s' declares empty choices", name))
	}
	if _, dup := r.props[name]; dup {
		panic(fmt.Sprintf("style: property '%s' declared twice", name))
	}
	if _, dup := r.shorthands[name]; dup {
		panic(fmt.Sprintf("style: property '%s' conflicts with a shorthand", name))
	}

	switch init := initial.(type) {
	case OtherProperty:
		// resolved lazily on read
	case Computed:
	case func(d *Declaration) any:
		initial = Computed(init)
	default:
		norm, err := choices.Validate(init)
		if err != nil {
			panic(fmt.Sprintf("style: initial value '%v' for property '%s' is not legal; Valid values are: %s",
				init, name, choices))
		}
		initial = norm
	}

	r.props[name] = &Property{name: name, choices: choices, initial: initial}
	r.aliases[cssName(name)] = name
	r.order = append(r.order, name)
	return r
}

// AddDirectional declares four side properties from a name template and
// the shorthand reading and writing all of them with the CSS
// 1/2/3/4-value expansion rule. "margin%s" yields margin_top through
// margin_left behind the shorthand "margin"; "border%s_width" yields
// border_top_width through border_left_width behind "border_width".
func (r *Registry) AddDirectional(template string, choices Choices, initial any) *Registry {
	if !strings.Contains(template, "%s") {
		panic(fmt.Sprintf("style: directional template '%s' has no %%s side slot", template))
	}
	name := strings.Trim(fmt.Sprintf(template, ""), "_")
	if _, dup := r.props[name]; dup {
		panic(fmt.Sprintf("style: shorthand '%s' conflicts with a property", name))
	}
	if _, dup := r.shorthands[name]; dup {
		panic(fmt.Sprintf("style: shorthand '%s' declared twice", name))
	}

	var sides [4]string
	for i, dir := range [4]string{"_top", "_right", "_bottom", "_left"} {
		sides[i] = fmt.Sprintf(template, dir)
		r.Add(sides[i], choices, initial)
	}
	r.shorthands[name] = &shorthand{name: name, sides: sides}
	r.aliases[cssName(name)] = name
	return r
}

// Properties lists the scalar (non-shorthand) property names in
// declaration order.
func (r *Registry) Properties() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Lookup resolves a canonical or hyphenated name to its property, if
// declared.
func (r *Registry) Lookup(name string) (*Property, bool) {
	canon, ok := r.resolve(name)
	if !ok {
		return nil, false
	}
	p, ok := r.props[canon]
	return p, ok
}

// resolve maps either name encoding to the canonical property or
// shorthand name.
func (r *Registry) resolve(name string) (string, bool) {
	if _, ok := r.props[name]; ok {
		return name, true
	}
	if _, ok := r.shorthands[name]; ok {
		return name, true
	}
	if canon, ok := r.aliases[name]; ok {
		return canon, true
	}
	return "", false
}

// cssName converts a canonical attribute name to its CSS display form:
// margin_top becomes margin-top.
func cssName(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}

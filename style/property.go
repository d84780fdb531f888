package style

// OtherProperty is a default-value indirection: a property declared
// with it mirrors the named property's current value until it is
// explicitly set itself.
type OtherProperty struct {
	name string
}

// Other returns an OtherProperty reference for use as a property's
// initial value. The name is required; referencing a property that does
// not exist fails when the default is read, not here.
func Other(name string) OtherProperty {
	if name == "" {
		panic("style: OtherProperty requires a property name")
	}
	return OtherProperty{name: name}
}

// Name returns the referenced property name.
func (o OtherProperty) Name() string { return o.name }

// Computed is a default computed lazily on every unset read. It
// receives the declaration because computed defaults may consult
// sibling properties; results are never cached since those properties
// can change.
type Computed func(d *Declaration) any

// Property is one named, validated style attribute: its choices and its
// default rule. Properties are declared once per registry and shared by
// every declaration built over it; per-instance state lives on the
// declaration.
type Property struct {
	name    string
	choices Choices
	initial any // normalized literal, OtherProperty or Computed
}

// Name returns the canonical (underscored) property name.
func (p *Property) Name() string { return p.name }

// Choices returns the property's legal-value specification.
func (p *Property) Choices() Choices { return p.choices }

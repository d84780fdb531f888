// Package style implements a declarative property-declaration and
// validation engine for CSS-like styling of UI nodes. A Registry
// declares named properties (each with its legal-value Choices and a
// default rule), a Declaration binds per-node storage over a registry,
// and every read and write goes through the declared validation,
// normalization and dirty-signalling contract.
package style

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"sort"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssd/units"
)

// Declaration is a dict-like style object: per-node storage for the
// properties of a registry, plus the dirty-signalling contract with the
// owning layout node. The node owns the declaration, never the other
// way around.
type Declaration struct {
	reg    *Registry
	node   Node
	values map[string]any
	log    *zap.Logger
}

// New creates an unbound declaration over a registry. A nil logger
// defaults to a nop logger.
func New(reg *Registry, log *zap.Logger) *Declaration {
	if log == nil {
		log = zap.NewNop()
	}
	return &Declaration{
		reg:    reg,
		values: make(map[string]any),
		log:    log.Named("css-decl"),
	}
}

// Bind attaches the declaration to its owning layout node. Only the
// node's dirty flag is ever written.
func (d *Declaration) Bind(node Node) { d.node = node }

// Copy clones the explicitly set values onto a new declaration bound to
// node.
func (d *Declaration) Copy(node Node) *Declaration {
	return &Declaration{
		reg:    d.reg,
		node:   node,
		values: maps.Clone(d.values),
		log:    d.log,
	}
}

// Dirty reports the owning node's tri-state dirty flag. Unbound
// declarations report DirtyUnknown.
func (d *Declaration) Dirty() DirtyState {
	if d.node == nil {
		return DirtyUnknown
	}
	return d.node.Dirty()
}

// Engine reports the layout engine owning the bound node, or nil when
// unbound.
func (d *Declaration) Engine() Engine {
	if d.node == nil {
		return nil
	}
	return d.node.Engine()
}

// Get returns the property's current value: the explicitly set value if
// present, otherwise its default. Both canonical ("margin_top") and CSS
// ("margin-top") names resolve to the same property; a shorthand name
// returns the [top, right, bottom, left] tuple of its sides.
func (d *Declaration) Get(name string) (any, error) {
	canon, ok := d.reg.resolve(name)
	if !ok {
		return nil, &UnknownPropertyError{Name: name}
	}
	if sh, ok := d.reg.shorthands[canon]; ok {
		return d.getDirectional(sh)
	}
	return d.getProp(d.reg.props[canon])
}

func (d *Declaration) getProp(p *Property) (any, error) {
	if v, ok := d.values[p.name]; ok {
		return v, nil
	}
	switch init := p.initial.(type) {
	case OtherProperty:
		v, err := d.Get(init.name)
		if err != nil {
			return nil, validationErrorf(
				"Invalid initial value for CSS property '%s'; property '%s' does not exist",
				p.name, init.name)
		}
		return v, nil
	case Computed:
		return init(d), nil
	default:
		return p.initial, nil
	}
}

func (d *Declaration) getDirectional(sh *shorthand) (any, error) {
	var tuple [4]any
	for i, side := range sh.sides {
		v, err := d.getProp(d.reg.props[side])
		if err != nil {
			return nil, err
		}
		tuple[i] = v
	}
	return tuple, nil
}

// Set validates value against the property's choices and stores the
// normalized result, flipping the owning node's dirty flag only on a
// real change. Writing a shorthand expands a scalar or a sequence of 1,
// 2, 3 or 4 values across its sides by the CSS rule; each side write
// follows the normal per-property contract.
func (d *Declaration) Set(name string, value any) error {
	canon, ok := d.reg.resolve(name)
	if !ok {
		return &UnknownPropertyError{Name: name}
	}
	if sh, ok := d.reg.shorthands[canon]; ok {
		return d.setDirectional(sh, value)
	}
	return d.setProp(d.reg.props[canon], value)
}

func (d *Declaration) setProp(p *Property, value any) error {
	norm, err := p.choices.Validate(value)
	if err != nil {
		d.log.Debug("style value rejected",
			zap.String("property", p.name), zap.Any("value", value))
		return validationErrorf("Invalid value '%v' for CSS property '%s'; Valid values are: %s",
			value, p.name, p.choices)
	}

	if stored, ok := d.values[p.name]; ok && equalValue(stored, norm) {
		return nil
	}
	d.values[p.name] = norm
	d.markDirty(p.name, norm)
	return nil
}

func (d *Declaration) setDirectional(sh *shorthand, value any) error {
	values, ok := sequence(value)
	if !ok {
		values = []any{value}
	}

	var expanded [4]any
	switch len(values) {
	case 1:
		expanded = [4]any{values[0], values[0], values[0], values[0]}
	case 2:
		expanded = [4]any{values[0], values[1], values[0], values[1]}
	case 3:
		expanded = [4]any{values[0], values[1], values[2], values[1]}
	case 4:
		expanded = [4]any{values[0], values[1], values[2], values[3]}
	default:
		return validationErrorf(
			"Invalid value '%v' for CSS property '%s'; value must be a number, or a sequence of 1 to 4 values",
			value, sh.name)
	}

	for i, side := range sh.sides {
		if err := d.setProp(d.reg.props[side], expanded[i]); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the explicitly stored value, restoring the default and
// marking the node dirty. A declared-but-unset property is a no-op; an
// undeclared name fails. Deleting a shorthand deletes all four sides.
func (d *Declaration) Delete(name string) error {
	canon, ok := d.reg.resolve(name)
	if !ok {
		return &UnknownPropertyError{Name: name}
	}
	if sh, ok := d.reg.shorthands[canon]; ok {
		for _, side := range sh.sides {
			d.deleteProp(side)
		}
		return nil
	}
	d.deleteProp(canon)
	return nil
}

func (d *Declaration) deleteProp(name string) {
	if _, ok := d.values[name]; !ok {
		return
	}
	delete(d.values, name)
	d.markDirty(name, nil)
}

// Update applies each assignment through the normal set contract; a nil
// value clears the property back to its default. Every resolvable
// assignment is applied; failures (unknown names, rejected values) are
// collected and returned combined. Nothing is rolled back.
func (d *Declaration) Update(assignments map[string]any) error {
	var err error
	names := make([]string, 0, len(assignments))
	for name := range assignments {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		value := assignments[name]
		var e error
		if value == nil {
			e = d.Delete(name)
		} else {
			e = d.Set(name, value)
		}
		err = multierr.Append(err, e)
	}
	return err
}

// Validate re-checks every explicitly stored value against its choices
// and returns all failures combined. The normal set path validates on
// write; this covers hosts that transplant storage wholesale via Copy.
func (d *Declaration) Validate() error {
	var err error
	for _, name := range d.Keys() {
		p := d.reg.props[name]
		if _, e := p.choices.Validate(d.values[name]); e != nil {
			err = multierr.Append(err, validationErrorf(
				"Invalid value '%v' for CSS property '%s'; Valid values are: %s",
				d.values[name], name, p.choices))
		}
	}
	return err
}

// Keys lists the canonical names of explicitly set properties, sorted.
// Properties resting at their defaults are not included.
func (d *Declaration) Keys() []string {
	keys := make([]string, 0, len(d.values))
	for name := range d.values {
		keys = append(keys, name)
	}
	slices.Sort(keys)
	return keys
}

// Item is one explicitly set property.
type Item struct {
	Name  string
	Value any
}

// Items lists the explicitly set properties sorted by canonical name.
func (d *Declaration) Items() []Item {
	keys := d.Keys()
	items := make([]Item, len(keys))
	for i, name := range keys {
		items[i] = Item{Name: name, Value: d.values[name]}
	}
	return items
}

// String renders the explicitly set properties as CSS declarations
// sorted by display name: "display: block; width: 10px".
func (d *Declaration) String() string {
	names := make([]string, 0, len(d.values))
	for name := range d.values {
		names = append(names, cssName(name))
	}
	sort.Strings(names)

	var sb strings.Builder
	for i, css := range names {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(css)
		sb.WriteString(": ")
		sb.WriteString(renderValue(d.values[d.reg.aliases[css]]))
	}
	return sb.String()
}

func (d *Declaration) markDirty(name string, value any) {
	if d.node != nil {
		d.node.SetDirty(DirtyChanged)
	}
	d.log.Debug("style changed", zap.String("property", name), zap.Any("value", value))
}

// equalValue compares a stored value with a freshly normalized one.
// Normalization makes representations canonical, so deep equality is
// the whole contract.
func equalValue(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

// renderValue writes one value in its CSS text form: nil as "none",
// multi-length values space-separated, everything else in its natural
// string form.
func renderValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "none"
	case []units.Value:
		parts := make([]string, len(val))
		for i, u := range val {
			parts[i] = u.String()
		}
		return strings.Join(parts, " ")
	}
	return fmt.Sprintf("%v", v)
}

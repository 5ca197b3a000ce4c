package props

import (
	"fmt"
	"slices"

	"github.com/matzehuels/plotkit/pkg/errors"
)

// Property is one declared attribute of an entity class.
type Property struct {
	Name    string   // Attribute name, prefix included for trait members
	Kind    Kind     // Accepted value shape
	Default Default  // Literal or factory default
	Choices []string // Allowed values for KindEnum (empty means unrestricted)
	Trait   string   // Trait that contributed the property, empty if declared directly
	Owner   string   // Class that first declared the property
}

// Check reports whether v is an acceptable value for the property.
func (p Property) Check(v any) error {
	if !p.Kind.Accepts(v) {
		return errors.New(errors.ErrCodeInvalidValue,
			"%s expects %s, got %T", p.Name, p.Kind, v)
	}
	if p.Kind == KindEnum && v != nil && len(p.Choices) > 0 {
		if !slices.Contains(p.Choices, v.(string)) {
			return errors.New(errors.ErrCodeInvalidValue,
				"%s must be one of %v, got %q", p.Name, p.Choices, v)
		}
	}
	return nil
}

// checkDefault validates a default against the property's kind.
// Factory products are checked lazily by the entity constructor.
func (p Property) checkDefault(d Default) error {
	if d == nil {
		return errors.New(errors.ErrCodeInvalidProperty, "%s: default must not be nil, use props.Nil", p.Name)
	}
	if f, ok := d.(Factory); ok {
		if f.New == nil {
			return errors.New(errors.ErrCodeInvalidProperty, "%s: factory default has no constructor", p.Name)
		}
		return nil
	}
	v := d.resolve()
	if mutable(v) {
		return errors.New(errors.ErrCodeInvalidProperty,
			"%s: literal default %T is mutable, declare it with props.Fn", p.Name, v)
	}
	if err := p.Check(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidProperty, err, "%s: bad default", p.Name)
	}
	return nil
}

// Schema is the ordered attribute table of one entity class.
// A schema created with a parent starts as a copy of the parent's table;
// later definitions and overrides never touch the parent.
type Schema struct {
	class  string
	parent *Schema
	props  map[string]*Property
	order  []string
}

// NewSchema returns an empty schema for class, inheriting parent's declarations.
// parent may be nil.
func NewSchema(class string, parent *Schema) *Schema {
	s := &Schema{
		class:  class,
		parent: parent,
		props:  make(map[string]*Property),
	}
	if parent != nil {
		s.order = slices.Clone(parent.order)
		for name, p := range parent.props {
			cp := *p
			cp.Choices = slices.Clone(p.Choices)
			s.props[name] = &cp
		}
	}
	return s
}

// Class returns the class name.
func (s *Schema) Class() string { return s.class }

// Parent returns the schema this one extends, or nil.
func (s *Schema) Parent() *Schema { return s.parent }

// Lineage returns class names from this class up to the root.
func (s *Schema) Lineage() []string {
	var out []string
	for cur := s; cur != nil; cur = cur.parent {
		out = append(out, cur.class)
	}
	return out
}

// IsA reports whether the schema is class or extends it.
func (s *Schema) IsA(class string) bool {
	return slices.Contains(s.Lineage(), class)
}

// Define declares a new property. Redeclaring an existing name, inherited or
// not, is a SCHEMA_COLLISION; use Override to change an inherited default.
func (s *Schema) Define(name string, kind Kind, def Default) error {
	return s.insert(Property{Name: name, Kind: kind, Default: def, Owner: s.class})
}

// DefineEnum declares a string property restricted to choices.
func (s *Schema) DefineEnum(name string, def Default, choices ...string) error {
	return s.insert(Property{
		Name:    name,
		Kind:    KindEnum,
		Default: def,
		Choices: slices.Clone(choices),
		Owner:   s.class,
	})
}

func (s *Schema) insert(p Property) error {
	if err := errors.ValidatePropertyName(p.Name); err != nil {
		return err
	}
	if existing, ok := s.props[p.Name]; ok {
		return errors.New(errors.ErrCodeSchemaCollision,
			"%s: property %q already declared by %s%s", s.class, p.Name, existing.Owner, traitSuffix(existing.Trait))
	}
	if err := p.checkDefault(p.Default); err != nil {
		return err
	}
	s.props[p.Name] = &p
	s.order = append(s.order, p.Name)
	return nil
}

func traitSuffix(trait string) string {
	if trait == "" {
		return ""
	}
	return fmt.Sprintf(" (trait %s)", trait)
}

// Override replaces the default of an already declared property.
// Kind, choices, trait and owner are kept.
func (s *Schema) Override(name string, def Default) error {
	p, ok := s.props[name]
	if !ok {
		return errors.New(errors.ErrCodeUnknownProperty, "%s: cannot override undeclared property %q", s.class, name)
	}
	if err := p.checkDefault(def); err != nil {
		return err
	}
	p.Default = def
	return nil
}

// Lookup returns the declaration of name.
func (s *Schema) Lookup(name string) (Property, error) {
	p, ok := s.props[name]
	if !ok {
		return Property{}, errors.New(errors.ErrCodeUnknownProperty, "%s has no property %q", s.class, name)
	}
	return *p, nil
}

// Has reports whether name is declared.
func (s *Schema) Has(name string) bool {
	_, ok := s.props[name]
	return ok
}

// Names returns property names in declaration order, inherited ones first.
func (s *Schema) Names() []string {
	return slices.Clone(s.order)
}

// Properties returns all declarations in declaration order.
func (s *Schema) Properties() []Property {
	out := make([]Property, len(s.order))
	for i, name := range s.order {
		out[i] = *s.props[name]
	}
	return out
}

// Len returns the number of declared properties.
func (s *Schema) Len() int { return len(s.order) }

// Default resolves the default of name for a new instance.
func (s *Schema) Default(name string) (any, error) {
	p, ok := s.props[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownProperty, "%s has no property %q", s.class, name)
	}
	return Resolve(p.Default), nil
}

// Defaults resolves every default. Each call invokes every factory again,
// so two calls never share a factory product.
func (s *Schema) Defaults() map[string]any {
	out := make(map[string]any, len(s.order))
	for _, name := range s.order {
		out[name] = Resolve(s.props[name].Default)
	}
	return out
}

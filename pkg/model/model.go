package model

import (
	"maps"
	"reflect"
	"slices"

	"github.com/google/uuid"

	"github.com/matzehuels/plotkit/pkg/errors"
	"github.com/matzehuels/plotkit/pkg/observability"
	"github.com/matzehuels/plotkit/pkg/props"
)

// Attrs maps attribute names to values.
type Attrs map[string]any

// Object is implemented by every entity. Embedding Model provides it.
type Object interface {
	ID() string
	Class() string
	Schema() *props.Schema
	Base() *Model
}

// Change describes one reactive attribute write.
type Change struct {
	Attr string
	Old  any
	New  any
}

// Callback is invoked after a reactive write.
type Callback func(obj Object, c Change)

// AllAttrs subscribes a callback to every attribute.
const AllAttrs = "*"

// Model holds the attribute values of one entity instance.
type Model struct {
	id        string
	schema    *props.Schema
	self      Object
	values    map[string]any
	callbacks map[string][]Callback
}

// Init populates the model from schema defaults, the active theme and attrs,
// in increasing order of precedence. self is the embedding entity; it is the
// object passed to callbacks.
//
// Unknown attribute names fail with UNKNOWN_PROPERTY and values of the wrong
// kind with INVALID_VALUE.
func (m *Model) Init(self Object, schema *props.Schema, attrs Attrs) error {
	if schema == nil {
		return errors.New(errors.ErrCodeInvalidInput, "model schema is nil")
	}
	m.id = uuid.NewString()
	m.schema = schema
	m.self = self
	if m.self == nil {
		m.self = m
	}
	m.values = schema.Defaults()
	m.callbacks = make(map[string][]Callback)

	if th := CurrentTheme(); th != nil {
		lineage := schema.Lineage()
		for _, name := range schema.Names() {
			v, ok := themeValue(th, lineage, name)
			if !ok {
				continue
			}
			if p, _ := schema.Lookup(name); !p.Kind.Themeable() {
				return errors.New(errors.ErrCodeInvalidTheme,
					"theme value for %s.%s: %s properties cannot be themed", schema.Class(), name, p.Kind)
			}
			if err := m.check(name, v); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidTheme, err, "theme value for %s.%s", schema.Class(), name)
			}
			m.values[name] = v
		}
	}

	for _, name := range slices.Sorted(maps.Keys(attrs)) {
		v := attrs[name]
		if err := m.check(name, v); err != nil {
			return err
		}
		m.values[name] = v
	}

	observability.Models().OnCreate(schema.Class(), m.id)
	return nil
}

func (m *Model) check(name string, v any) error {
	p, err := m.schema.Lookup(name)
	if err != nil {
		return err
	}
	return p.Check(v)
}

// ID returns the unique identifier assigned at construction.
func (m *Model) ID() string { return m.id }

// Class returns the entity class name.
func (m *Model) Class() string {
	if m.schema == nil {
		return ""
	}
	return m.schema.Class()
}

// Schema returns the class schema.
func (m *Model) Schema() *props.Schema { return m.schema }

// Base returns m. It lets interfaces reach the embedded model.
func (m *Model) Base() *Model { return m }

// Get returns the current value of name.
func (m *Model) Get(name string) (any, error) {
	if m.schema == nil || !m.schema.Has(name) {
		return nil, errors.New(errors.ErrCodeUnknownProperty, "%s has no property %q", m.Class(), name)
	}
	return m.values[name], nil
}

// MustGet returns the current value of name and panics if it is undeclared.
// Entity packages use it for their own declared attributes.
func (m *Model) MustGet(name string) any {
	v, err := m.Get(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Set writes name reactively: the value is kind-checked, stored, and every
// callback subscribed to name or AllAttrs runs. Writing a comparable value
// equal to the current one is a no-op.
func (m *Model) Set(name string, v any) error {
	if err := m.check(name, v); err != nil {
		return err
	}
	old := m.values[name]
	if identical(old, v) {
		return nil
	}
	m.values[name] = v
	m.notify(Change{Attr: name, Old: old, New: v})
	return nil
}

// Update sets several attributes reactively in sorted name order.
// Values are all checked before any is written.
func (m *Model) Update(attrs Attrs) error {
	names := slices.Sorted(maps.Keys(attrs))
	for _, name := range names {
		if err := m.check(name, attrs[name]); err != nil {
			return err
		}
	}
	for _, name := range names {
		if err := m.Set(name, attrs[name]); err != nil {
			return err
		}
	}
	return nil
}

// On subscribes cb to reactive writes of attr, or of every attribute when
// attr is AllAttrs.
func (m *Model) On(attr string, cb Callback) error {
	if attr != AllAttrs && !m.schema.Has(attr) {
		return errors.New(errors.ErrCodeUnknownProperty, "%s has no property %q", m.Class(), attr)
	}
	m.callbacks[attr] = append(m.callbacks[attr], cb)
	return nil
}

func (m *Model) notify(c Change) {
	observability.Models().OnChange(m.Class(), m.id, c.Attr)
	for _, cb := range m.callbacks[c.Attr] {
		cb(m.self, c)
	}
	for _, cb := range m.callbacks[AllAttrs] {
		cb(m.self, c)
	}
}

// Link appends item to the list property name without notifying callbacks.
// It reports false when the class does not declare name as a list, or when
// item does not fit the list's element type; both are normal outcomes for
// optional back-references.
func (m *Model) Link(name string, item any) bool {
	p, err := m.schema.Lookup(name)
	if err != nil || p.Kind != props.KindList {
		return false
	}
	cur := m.values[name]
	var list reflect.Value
	if cur == nil {
		list = reflect.ValueOf([]any{})
	} else {
		list = reflect.ValueOf(cur)
	}
	iv := reflect.ValueOf(item)
	if !iv.IsValid() || !iv.Type().AssignableTo(list.Type().Elem()) {
		return false
	}
	m.values[name] = reflect.Append(list, iv).Interface()
	observability.Models().OnLink(m.Class(), m.id, name, objectID(item))
	return true
}

// Unlink removes every occurrence of item from the list property name without
// notifying callbacks. It returns the number of entries removed.
func (m *Model) Unlink(name string, item any) int {
	p, err := m.schema.Lookup(name)
	if err != nil || p.Kind != props.KindList || m.values[name] == nil {
		return 0
	}
	list := reflect.ValueOf(m.values[name])
	kept := reflect.MakeSlice(list.Type(), 0, list.Len())
	removed := 0
	for i := 0; i < list.Len(); i++ {
		el := list.Index(i)
		if el.CanInterface() && identical(el.Interface(), item) {
			removed++
			continue
		}
		kept = reflect.Append(kept, el)
	}
	if removed > 0 {
		m.values[name] = kept.Interface()
		observability.Models().OnUnlink(m.Class(), m.id, name, objectID(item))
	}
	return removed
}

// Attrs returns a shallow snapshot of every attribute value.
func (m *Model) Attrs() Attrs {
	out := make(Attrs, len(m.values))
	maps.Copy(out, m.values)
	return out
}

func objectID(v any) string {
	if o, ok := v.(Object); ok {
		return o.ID()
	}
	return ""
}

// identical compares by identity for pointers and by value for other
// comparable types.
func identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

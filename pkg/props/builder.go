package props

import (
	"fmt"

	"github.com/matzehuels/plotkit/pkg/errors"
)

// Builder declares an entity class. Methods chain; the first error of every
// step is kept and all of them are returned together by Build.
type Builder struct {
	schema *Schema
	errs   []error
}

// Class starts the declaration of a root class.
func Class(name string) *Builder {
	b := &Builder{schema: NewSchema(name, nil)}
	if err := errors.ValidateClassName(name); err != nil {
		b.errs = append(b.errs, err)
	}
	return b
}

// Extends makes the class inherit parent's declarations.
// It must be called before any Define, Mixins or Override.
func (b *Builder) Extends(parent *Schema) *Builder {
	if parent == nil {
		b.errs = append(b.errs, errors.New(errors.ErrCodeInvalidInput, "%s: parent schema is nil", b.schema.class))
		return b
	}
	if b.schema.Len() > 0 || b.schema.parent != nil {
		b.errs = append(b.errs, errors.New(errors.ErrCodeInvalidInput, "%s: Extends must come first", b.schema.class))
		return b
	}
	b.schema = NewSchema(b.schema.class, parent)
	return b
}

// Mixins composes trait bundles, see ComposeMixins.
func (b *Builder) Mixins(specs ...string) *Builder {
	b.record(ComposeMixins(b.schema, specs...))
	return b
}

// Define declares a property.
func (b *Builder) Define(name string, kind Kind, def Default) *Builder {
	b.record(b.schema.Define(name, kind, def))
	return b
}

// Enum declares a string property restricted to choices.
func (b *Builder) Enum(name string, def Default, choices ...string) *Builder {
	b.record(b.schema.DefineEnum(name, def, choices...))
	return b
}

// Override replaces the default of a declared property.
func (b *Builder) Override(name string, def Default) *Builder {
	b.record(b.schema.Override(name, def))
	return b
}

func (b *Builder) record(err error) {
	if err != nil {
		b.errs = append(b.errs, err)
	}
}

// Build returns the finished schema without registering it.
func (b *Builder) Build() (*Schema, error) {
	if err := errors.Join(b.errs...); err != nil {
		return nil, err
	}
	return b.schema, nil
}

// MustRegister builds the class and registers it process-wide.
// It panics on any declaration error; use it in package-level declarations.
func MustRegister(b *Builder) *Schema {
	s, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("props: declare %s: %v", b.schema.class, err))
	}
	if err := Register(s); err != nil {
		panic(fmt.Sprintf("props: register %s: %v", s.class, err))
	}
	return s
}

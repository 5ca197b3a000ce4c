package models

import (
	"github.com/matzehuels/plotkit/pkg/errors"
	"github.com/matzehuels/plotkit/pkg/model"
	"github.com/matzehuels/plotkit/pkg/props"
)

// Root schemas other packages extend.
var (
	ModelSchema = props.MustRegister(props.Class("Model").
			Define("name", props.KindString, props.Nil).
			Define("tags", props.KindList, props.EmptyList()))

	RendererSchema = props.MustRegister(props.Class("Renderer").
			Extends(ModelSchema).
			Enum("level", props.Lit("image"), RenderLevels...).
			Define("visible", props.KindBool, props.Lit(true)))
)

// RenderLevels are the drawing levels a renderer can sit on.
var RenderLevels = []string{"image", "underlay", "glyph", "annotation", "overlay"}

// Renderer is anything a plot draws from its renderers list.
type Renderer interface {
	model.Object
	isRenderer()
}

// Decoration is anything that can occupy a plot layout slot.
type Decoration interface {
	Renderer
	isDecoration()
}

// SideDecoration may be placed above, below, left or right of a plot:
// axes and annotations.
type SideDecoration interface {
	Decoration
	isSide()
}

// CenterDecoration may be placed in a plot's center slot: grids and
// annotations.
type CenterDecoration interface {
	Decoration
	isCenter()
}

// build initialises obj against schema and returns it.
func build[T model.Object](obj T, schema *props.Schema, attrs model.Attrs) (T, error) {
	if err := obj.Base().Init(obj, schema, attrs); err != nil {
		var zero T
		return zero, err
	}
	return obj, nil
}

// schemaFor resolves a registered class that extends root.
func schemaFor(class, root string) (*props.Schema, error) {
	s, err := props.LookupClass(class)
	if err != nil {
		return nil, err
	}
	if !s.IsA(root) {
		return nil, errors.New(errors.ErrCodeUnknownClass, "%s is not a %s", class, root)
	}
	return s, nil
}

func errUseNewTitle() error {
	return errors.New(errors.ErrCodeInvalidInput, "titles are created with NewTitle")
}

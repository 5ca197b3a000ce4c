package models

import (
	"maps"
	"slices"

	"github.com/matzehuels/plotkit/pkg/errors"
	"github.com/matzehuels/plotkit/pkg/model"
	"github.com/matzehuels/plotkit/pkg/props"
)

// SizingModes are the accepted values of "sizing_mode".
var SizingModes = []string{
	"fixed",
	"stretch_width", "stretch_height", "stretch_both",
	"scale_width", "scale_height", "scale_both",
}

// Locations are the sides a toolbar can sit on.
var Locations = []string{"above", "below", "left", "right"}

var (
	LayoutDOMSchema = props.MustRegister(props.Class("LayoutDOM").
			Extends(ModelSchema).
			Define("width", props.KindInt, props.Nil).
			Define("height", props.KindInt, props.Nil).
			Enum("sizing_mode", props.Nil, SizingModes...).
			Define("disabled", props.KindBool, props.Lit(false)).
			Define("visible", props.KindBool, props.Lit(true)).
			Define("background", props.KindColor, props.Nil).
			Define("css_classes", props.KindList, props.Fn(func() any { return []string{} })))

	boxSchema = props.MustRegister(props.Class("Box").
			Extends(LayoutDOMSchema).
			Define("children", props.KindList, props.Fn(func() any { return []LayoutDOM{} })).
			Define("spacing", props.KindInt, props.Lit(0)))

	rowSchema    = props.MustRegister(props.Class("Row").Extends(boxSchema))
	columnSchema = props.MustRegister(props.Class("Column").Extends(boxSchema))

	gridBoxSchema = props.MustRegister(props.Class("GridBox").
			Extends(LayoutDOMSchema).
			Define("children", props.KindList, props.Fn(func() any { return []GridItem{} })).
			Define("spacing", props.KindInt, props.Lit(0)))

	spacerSchema = props.MustRegister(props.Class("Spacer").Extends(LayoutDOMSchema))

	toolbarBoxSchema = props.MustRegister(props.Class("ToolbarBox").
				Extends(LayoutDOMSchema).
				Define("toolbar", props.KindInstance, props.Nil).
				Enum("toolbar_location", props.Lit("right"), Locations...))
)

// LayoutDOM is anything that can be arranged in a row, column or grid.
type LayoutDOM interface {
	model.Object
	isLayoutDOM()
}

// Container is a LayoutDOM with children.
type Container interface {
	LayoutDOM
	Children() []LayoutDOM
}

// LayoutBase is embedded by every LayoutDOM implementation, including
// entities declared in other packages.
type LayoutBase struct{ model.Model }

func (*LayoutBase) isLayoutDOM() {}

// Box is a Row or a Column.
type Box struct{ LayoutBase }

// NewRow arranges children horizontally.
func NewRow(children []LayoutDOM, attrs model.Attrs) (*Box, error) {
	return newBox(rowSchema, children, attrs)
}

// NewColumn arranges children vertically.
func NewColumn(children []LayoutDOM, attrs model.Attrs) (*Box, error) {
	return newBox(columnSchema, children, attrs)
}

func newBox(s *props.Schema, children []LayoutDOM, attrs model.Attrs) (*Box, error) {
	for i, c := range children {
		if c == nil {
			return nil, errors.New(errors.ErrCodeInvalidLayout, "%s child %d is nil", s.Class(), i)
		}
	}
	merged := maps.Clone(attrs)
	if merged == nil {
		merged = model.Attrs{}
	}
	merged["children"] = slices.Clone(children)
	return build(&Box{}, s, merged)
}

// Children returns the box children in order.
func (b *Box) Children() []LayoutDOM {
	return model.List[LayoutDOM](b, "children")
}

// GridItem places one child in a GridBox cell.
type GridItem struct {
	Item LayoutDOM
	Row  int
	Col  int
}

// GridBox places children in explicit grid cells.
type GridBox struct{ LayoutBase }

// NewGridBox creates a GridBox.
func NewGridBox(items []GridItem, attrs model.Attrs) (*GridBox, error) {
	for _, it := range items {
		if it.Item == nil {
			return nil, errors.New(errors.ErrCodeInvalidLayout, "grid cell (%d, %d) is nil", it.Row, it.Col)
		}
		if it.Row < 0 || it.Col < 0 {
			return nil, errors.New(errors.ErrCodeIndexOutOfRange, "grid cell (%d, %d) is negative", it.Row, it.Col)
		}
	}
	merged := maps.Clone(attrs)
	if merged == nil {
		merged = model.Attrs{}
	}
	merged["children"] = slices.Clone(items)
	return build(&GridBox{}, gridBoxSchema, merged)
}

// Items returns the placed cells.
func (g *GridBox) Items() []GridItem {
	return model.List[GridItem](g, "children")
}

// Children returns the cell contents in placement order.
func (g *GridBox) Children() []LayoutDOM {
	items := g.Items()
	out := make([]LayoutDOM, len(items))
	for i, it := range items {
		out[i] = it.Item
	}
	return out
}

// Spacer occupies space in a layout.
type Spacer struct{ LayoutBase }

// NewSpacer creates a Spacer.
func NewSpacer(attrs model.Attrs) (*Spacer, error) {
	return build(&Spacer{}, spacerSchema, attrs)
}

// ToolbarBox places a toolbar next to other layout children.
type ToolbarBox struct{ LayoutBase }

// NewToolbarBox wraps tb for placement at location.
func NewToolbarBox(tb *Toolbar, location string) (*ToolbarBox, error) {
	return build(&ToolbarBox{}, toolbarBoxSchema, model.Attrs{
		"toolbar":          tb,
		"toolbar_location": location,
	})
}

// Toolbar returns the wrapped toolbar.
func (b *ToolbarBox) Toolbar() *Toolbar {
	tb, _ := model.Value[*Toolbar](b, "toolbar")
	return tb
}

// Walk visits root and every LayoutDOM nested in it depth-first, in child
// order. Returning false from fn skips the children of that node.
func Walk(root LayoutDOM, fn func(LayoutDOM) bool) {
	if root == nil || !fn(root) {
		return
	}
	if c, ok := root.(Container); ok {
		for _, child := range c.Children() {
			Walk(child, fn)
		}
	}
}

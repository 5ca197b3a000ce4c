package models

import (
	"github.com/matzehuels/plotkit/pkg/model"
	"github.com/matzehuels/plotkit/pkg/props"
)

var (
	dataRendererSchema = props.MustRegister(props.Class("DataRenderer").
				Extends(RendererSchema).
				Override("level", props.Lit("glyph")))

	glyphRendererSchema = props.MustRegister(props.Class("GlyphRenderer").
				Extends(dataRendererSchema).
				Define("data_source", props.KindInstance, props.Nil).
				Define("glyph", props.KindInstance, props.Nil).
				Define("view", props.KindInstance, props.Nil).
				Define("selection_glyph", props.KindAny, props.Lit("auto")).
				Define("nonselection_glyph", props.KindAny, props.Lit("auto")).
				Define("hover_glyph", props.KindInstance, props.Nil).
				Define("muted_glyph", props.KindInstance, props.Nil).
				Define("muted", props.KindBool, props.Lit(false)).
				Define("x_range_name", props.KindString, props.Lit("default")).
				Define("y_range_name", props.KindString, props.Lit("default")))
)

// GlyphRenderer draws one glyph over the rows of one data source.
type GlyphRenderer struct{ model.Model }

func (*GlyphRenderer) isRenderer() {}

// NewGlyphRenderer creates a GlyphRenderer from its attributes, typically
// {"data_source": src, "glyph": g} plus extras.
func NewGlyphRenderer(attrs model.Attrs) (*GlyphRenderer, error) {
	return build(&GlyphRenderer{}, glyphRendererSchema, attrs)
}

// Glyph returns the rendered glyph.
func (r *GlyphRenderer) Glyph() *Glyph {
	g, _ := model.Value[*Glyph](r, "glyph")
	return g
}

// DataSource returns the source the glyph reads its columns from.
func (r *GlyphRenderer) DataSource() *ColumnDataSource {
	s, _ := model.Value[*ColumnDataSource](r, "data_source")
	return s
}

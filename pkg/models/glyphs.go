package models

import (
	"github.com/matzehuels/plotkit/pkg/model"
	"github.com/matzehuels/plotkit/pkg/props"
)

var (
	glyphSchema = props.MustRegister(props.Class("Glyph").
			Extends(ModelSchema))

	_ = props.MustRegister(props.Class("Circle").
		Extends(glyphSchema).
		Define("x", props.KindAny, props.Lit("x")).
		Define("y", props.KindAny, props.Lit("y")).
		Define("size", props.KindAny, props.Lit(4.0)).
		Define("radius", props.KindAny, props.Nil).
		Define("angle", props.KindAngle, props.Lit(0.0)).
		Mixins("line:line_", "fill:fill_"))

	_ = props.MustRegister(props.Class("Line").
		Extends(glyphSchema).
		Define("x", props.KindAny, props.Lit("x")).
		Define("y", props.KindAny, props.Lit("y")).
		Mixins("line:line_"))

	_ = props.MustRegister(props.Class("Rect").
		Extends(glyphSchema).
		Define("x", props.KindAny, props.Lit("x")).
		Define("y", props.KindAny, props.Lit("y")).
		Define("width", props.KindAny, props.Lit("width")).
		Define("height", props.KindAny, props.Lit("height")).
		Define("angle", props.KindAngle, props.Lit(0.0)).
		Define("dilate", props.KindBool, props.Lit(false)).
		Mixins("line:line_", "fill:fill_", "hatch:hatch_"))

	_ = props.MustRegister(props.Class("VBar").
		Extends(glyphSchema).
		Define("x", props.KindAny, props.Lit("x")).
		Define("width", props.KindAny, props.Lit(0.9)).
		Define("top", props.KindAny, props.Lit("top")).
		Define("bottom", props.KindAny, props.Lit(0.0)).
		Mixins("line:line_", "fill:fill_", "hatch:hatch_"))
)

// Glyph is a visual mark (Circle, Line, Rect, VBar or a registered subclass
// of Glyph). Coordinate attributes name a data source column or hold a
// fixed value.
type Glyph struct{ model.Model }

// NewGlyph creates a glyph of a registered Glyph subclass.
func NewGlyph(class string, attrs model.Attrs) (*Glyph, error) {
	s, err := schemaFor(class, "Glyph")
	if err != nil {
		return nil, err
	}
	return build(&Glyph{}, s, attrs)
}

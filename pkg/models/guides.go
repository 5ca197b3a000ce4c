package models

import (
	"github.com/matzehuels/plotkit/pkg/model"
	"github.com/matzehuels/plotkit/pkg/props"
)

var (
	guideRendererSchema = props.MustRegister(props.Class("GuideRenderer").
				Extends(RendererSchema).
				Override("level", props.Lit("overlay")).
				Define("x_range_name", props.KindString, props.Lit("default")).
				Define("y_range_name", props.KindString, props.Lit("default")))

	axisSchema = props.MustRegister(props.Class("Axis").
			Extends(guideRendererSchema).
			Define("bounds", props.KindAny, props.Lit("auto")).
			Define("ticker", props.KindInstance, props.Nil).
			Define("formatter", props.KindInstance, props.Nil).
			Define("axis_label", props.KindString, props.Lit("")).
			Define("axis_label_standoff", props.KindInt, props.Lit(5)).
			Define("major_label_standoff", props.KindInt, props.Lit(5)).
			Define("major_label_orientation", props.KindAny, props.Lit("horizontal")).
			Define("major_tick_in", props.KindInt, props.Lit(2)).
			Define("major_tick_out", props.KindInt, props.Lit(6)).
			Define("minor_tick_in", props.KindInt, props.Lit(0)).
			Define("minor_tick_out", props.KindInt, props.Lit(4)).
			Define("fixed_location", props.KindAny, props.Nil).
			Mixins(
				"line:axis_line_",
				"line:major_tick_line_",
				"line:minor_tick_line_",
				"text:axis_label_text_",
				"text:major_label_text_",
			).
			Override("axis_label_text_font_size", props.Lit("10pt")).
			Override("axis_label_text_font_style", props.Lit("italic")).
			Override("major_label_text_font_size", props.Lit("8pt")).
			Override("major_label_text_align", props.Lit("center")).
			Override("major_label_text_baseline", props.Lit("alphabetic")))

	_ = props.MustRegister(props.Class("LinearAxis").Extends(axisSchema))
	_ = props.MustRegister(props.Class("LogAxis").Extends(axisSchema))
	_ = props.MustRegister(props.Class("DatetimeAxis").Extends(axisSchema))
	_ = props.MustRegister(props.Class("CategoricalAxis").Extends(axisSchema).
		Mixins("line:separator_line_", "text:group_text_", "text:subgroup_text_"))

	gridSchema = props.MustRegister(props.Class("Grid").
			Extends(guideRendererSchema).
			Define("dimension", props.KindInt, props.Lit(0)).
			Define("bounds", props.KindAny, props.Lit("auto")).
			Define("ticker", props.KindInstance, props.Nil).
			Override("level", props.Lit("underlay")).
			Mixins("line:grid_line_", "line:minor_grid_line_", "fill:band_fill_").
			Override("grid_line_color", props.Lit("#e5e5e5")).
			Override("minor_grid_line_color", props.Nil).
			Override("band_fill_color", props.Nil).
			Override("band_fill_alpha", props.Lit(0.0)))
)

// Axis is a plot axis: LinearAxis, LogAxis, DatetimeAxis, CategoricalAxis or
// a registered subclass of Axis.
type Axis struct{ model.Model }

func (*Axis) isRenderer()   {}
func (*Axis) isDecoration() {}
func (*Axis) isSide()       {}

// NewAxis creates an axis of a registered Axis subclass.
func NewAxis(class string, attrs model.Attrs) (*Axis, error) {
	s, err := schemaFor(class, "Axis")
	if err != nil {
		return nil, err
	}
	return build(&Axis{}, s, attrs)
}

// NewLinearAxis creates a LinearAxis.
func NewLinearAxis(attrs model.Attrs) (*Axis, error) {
	return NewAxis("LinearAxis", attrs)
}

// Grid draws grid lines across the plot area along one dimension.
type Grid struct{ model.Model }

func (*Grid) isRenderer()   {}
func (*Grid) isDecoration() {}
func (*Grid) isCenter()     {}

// NewGrid creates a Grid. Dimension 0 draws lines for the x axis, 1 for y.
func NewGrid(attrs model.Attrs) (*Grid, error) {
	return build(&Grid{}, gridSchema, attrs)
}

// Dimension returns 0 for x grids and 1 for y grids.
func (g *Grid) Dimension() int {
	d, _ := model.Int(g, "dimension")
	return d
}

package models

import (
	"github.com/matzehuels/plotkit/pkg/model"
	"github.com/matzehuels/plotkit/pkg/props"
)

// BackrefAttr is the list attribute a range keeps its dependent plots in.
const BackrefAttr = "plots"

var (
	rangeSchema = props.MustRegister(props.Class("Range").
			Extends(ModelSchema))

	range1dSchema = props.MustRegister(props.Class("Range1d").
			Extends(rangeSchema).
			Define("start", props.KindFloat, props.Lit(0.0)).
			Define("end", props.KindFloat, props.Lit(1.0)).
			Define("bounds", props.KindAny, props.Nil).
			Define("min_interval", props.KindFloat, props.Nil).
			Define("max_interval", props.KindFloat, props.Nil))

	dataRangeSchema = props.MustRegister(props.Class("DataRange").
			Extends(rangeSchema).
			Define("names", props.KindList, props.Fn(func() any { return []string{} })).
			Define("renderers", props.KindList, props.Fn(func() any { return []Renderer{} })).
			Define(BackrefAttr, props.KindList, newBackrefs))

	dataRange1dSchema = props.MustRegister(props.Class("DataRange1d").
				Extends(dataRangeSchema).
				Define("start", props.KindFloat, props.Nil).
				Define("end", props.KindFloat, props.Nil).
				Define("range_padding", props.KindFloat, props.Lit(0.1)).
				Enum("range_padding_units", props.Lit("percent"), "percent", "absolute").
				Define("flipped", props.KindBool, props.Lit(false)).
				Enum("follow", props.Nil, "start", "end").
				Define("follow_interval", props.KindFloat, props.Nil).
				Define("default_span", props.KindFloat, props.Lit(2.0)).
				Define("only_visible", props.KindBool, props.Lit(false)))

	factorRangeSchema = props.MustRegister(props.Class("FactorRange").
				Extends(rangeSchema).
				Define("factors", props.KindList, props.Fn(func() any { return []string{} })).
				Define("factor_padding", props.KindFloat, props.Lit(0.0)).
				Define("range_padding", props.KindFloat, props.Lit(0.0)).
				Define("start", props.KindFloat, props.Nil).
				Define("end", props.KindFloat, props.Nil).
				Define(BackrefAttr, props.KindList, newBackrefs))
)

var newBackrefs = props.Fn(func() any { return []model.Object{} })

// Range is a shared axis extent. Several plots may reference one range to
// pan and zoom together.
type Range interface {
	model.Object
	isRange()
}

// Range1d is a range with explicit start and end.
type Range1d struct{ model.Model }

func (*Range1d) isRange() {}

// NewRange1d creates a Range1d.
func NewRange1d(attrs model.Attrs) (*Range1d, error) {
	return build(&Range1d{}, range1dSchema, attrs)
}

// DataRange1d is a range computed from the data of its renderers.
type DataRange1d struct{ model.Model }

func (*DataRange1d) isRange() {}

// NewDataRange1d creates a DataRange1d.
func NewDataRange1d(attrs model.Attrs) (*DataRange1d, error) {
	return build(&DataRange1d{}, dataRange1dSchema, attrs)
}

// FactorRange is a categorical range.
type FactorRange struct{ model.Model }

func (*FactorRange) isRange() {}

// NewFactorRange creates a FactorRange.
func NewFactorRange(attrs model.Attrs) (*FactorRange, error) {
	return build(&FactorRange{}, factorRangeSchema, attrs)
}

// Backrefs returns the plots r lists as its users, or nil when r keeps no
// back-references.
func Backrefs(r Range) []model.Object {
	return model.List[model.Object](r, BackrefAttr)
}

// HasBackrefs reports whether r's class declares a back-reference list.
func HasBackrefs(r Range) bool {
	return r.Schema().Has(BackrefAttr)
}

package models

import (
	"github.com/matzehuels/plotkit/pkg/model"
	"github.com/matzehuels/plotkit/pkg/props"
)

// Legend locations and orientations.
var (
	LegendLocations = []string{
		"top_left", "top_center", "top_right",
		"center_left", "center", "center_right",
		"bottom_left", "bottom_center", "bottom_right",
	}
	Orientations = []string{"vertical", "horizontal"}
)

var (
	annotationSchema = props.MustRegister(props.Class("Annotation").
				Extends(RendererSchema).
				Override("level", props.Lit("annotation")))

	textAnnotationSchema = props.MustRegister(props.Class("TextAnnotation").
				Extends(annotationSchema).
				Enum("render_mode", props.Lit("canvas"), "canvas", "css"))

	titleSchema = props.MustRegister(props.Class("Title").
			Extends(textAnnotationSchema).
			Define("text", props.KindString, props.Lit("")).
			Enum("vertical_align", props.Lit("bottom"), "top", "middle", "bottom").
			Enum("align", props.Lit("left"), "left", "center", "right").
			Define("offset", props.KindFloat, props.Lit(0.0)).
			Mixins("text:text_", "line:border_line_", "fill:background_fill_").
			Override("text_font_size", props.Lit("10pt")).
			Override("text_font_style", props.Lit("bold")).
			Override("text_color", props.Lit("#444444")).
			Override("border_line_color", props.Nil).
			Override("background_fill_color", props.Nil))

	_ = props.MustRegister(props.Class("Label").
		Extends(textAnnotationSchema).
		Define("x", props.KindFloat, props.Nil).
		Define("y", props.KindFloat, props.Nil).
		Define("text", props.KindString, props.Lit("")).
		Define("angle", props.KindAngle, props.Lit(0.0)).
		Mixins("text:text_"))

	_ = props.MustRegister(props.Class("Legend").
		Extends(annotationSchema).
		Enum("location", props.Lit("top_right"), LegendLocations...).
		Enum("orientation", props.Lit("vertical"), Orientations...).
		Define("items", props.KindList, props.EmptyList()).
		Define("title", props.KindString, props.Nil).
		Enum("click_policy", props.Lit("none"), "none", "hide", "mute").
		Mixins("line:border_line_", "fill:background_fill_", "text:label_text_").
		Override("border_line_color", props.Lit("#e5e5e5")).
		Override("border_line_alpha", props.Lit(0.5)).
		Override("background_fill_color", props.Lit("#ffffff")).
		Override("background_fill_alpha", props.Lit(0.95)).
		Override("label_text_font_size", props.Lit("10pt")))

	_ = props.MustRegister(props.Class("Span").
		Extends(annotationSchema).
		Define("location", props.KindFloat, props.Nil).
		Enum("dimension", props.Lit("width"), "width", "height").
		Mixins("line:line_"))

	_ = props.MustRegister(props.Class("BoxAnnotation").
		Extends(annotationSchema).
		Define("left", props.KindFloat, props.Nil).
		Define("right", props.KindFloat, props.Nil).
		Define("top", props.KindFloat, props.Nil).
		Define("bottom", props.KindFloat, props.Nil).
		Mixins("line:line_", "fill:fill_").
		Override("line_color", props.Lit("#cccccc")).
		Override("line_alpha", props.Lit(0.3)).
		Override("fill_color", props.Lit("#fff9ba")).
		Override("fill_alpha", props.Lit(0.4)))
)

// Annotation is a non-title annotation: Legend, Label, Span, BoxAnnotation or
// a registered subclass of Annotation.
type Annotation struct{ model.Model }

func (*Annotation) isRenderer()   {}
func (*Annotation) isDecoration() {}
func (*Annotation) isSide()       {}
func (*Annotation) isCenter()     {}

// NewAnnotation creates an annotation of a registered Annotation subclass.
func NewAnnotation(class string, attrs model.Attrs) (*Annotation, error) {
	s, err := schemaFor(class, "Annotation")
	if err != nil {
		return nil, err
	}
	if s == titleSchema {
		return nil, errUseNewTitle()
	}
	return build(&Annotation{}, s, attrs)
}

// NewLegend creates a Legend.
func NewLegend(attrs model.Attrs) (*Annotation, error) { return NewAnnotation("Legend", attrs) }

// NewSpan creates a Span.
func NewSpan(attrs model.Attrs) (*Annotation, error) { return NewAnnotation("Span", attrs) }

// NewLabel creates a Label.
func NewLabel(attrs model.Attrs) (*Annotation, error) { return NewAnnotation("Label", attrs) }

// NewBoxAnnotation creates a BoxAnnotation.
func NewBoxAnnotation(attrs model.Attrs) (*Annotation, error) {
	return NewAnnotation("BoxAnnotation", attrs)
}

// Title is a plot title. It is also an annotation and may be placed in any
// slot.
type Title struct{ model.Model }

func (*Title) isRenderer()   {}
func (*Title) isDecoration() {}
func (*Title) isSide()       {}
func (*Title) isCenter()     {}

// NewTitle creates a Title.
func NewTitle(attrs model.Attrs) (*Title, error) {
	return build(&Title{}, titleSchema, attrs)
}

// Text returns the title text.
func (t *Title) Text() string {
	s, _ := model.String(t, "text")
	return s
}

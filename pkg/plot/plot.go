package plot

import (
	"maps"
	"reflect"
	"slices"

	"github.com/matzehuels/plotkit/pkg/errors"
	"github.com/matzehuels/plotkit/pkg/model"
	"github.com/matzehuels/plotkit/pkg/models"
	"github.com/matzehuels/plotkit/pkg/props"
)

// Schema is the registered Plot class.
var Schema = props.MustRegister(props.Class("Plot").
	Extends(models.LayoutDOMSchema).
	Mixins("line:outline_line_", "fill:background_fill_", "fill:border_fill_").
	Override("outline_line_color", props.Lit("#e5e5e5")).
	Override("background_fill_color", props.Lit("#ffffff")).
	Override("border_fill_color", props.Lit("#ffffff")).
	Define("plot_width", props.KindInt, props.Lit(600)).
	Define("plot_height", props.KindInt, props.Lit(600)).
	Define("x_range", props.KindInstance, props.Fn(newDataRange)).
	Define("y_range", props.KindInstance, props.Fn(newDataRange)).
	Define("extra_x_ranges", props.KindDict, props.Fn(newRangeMap)).
	Define("extra_y_ranges", props.KindDict, props.Fn(newRangeMap)).
	Define("x_scale", props.KindInstance, props.Fn(newLinearScale)).
	Define("y_scale", props.KindInstance, props.Fn(newLinearScale)).
	Define("renderers", props.KindList, props.Fn(func() any { return []models.Renderer{} })).
	Define("above", props.KindList, props.Fn(newSideSlot)).
	Define("below", props.KindList, props.Fn(newSideSlot)).
	Define("left", props.KindList, props.Fn(newSideSlot)).
	Define("right", props.KindList, props.Fn(newSideSlot)).
	Define("center", props.KindList, props.Fn(func() any { return []models.CenterDecoration{} })).
	Define("toolbar", props.KindInstance, props.Fn(newToolbar)).
	Enum("toolbar_location", props.Lit("right"), models.Locations...).
	Define("toolbar_sticky", props.KindBool, props.Lit(true)).
	Define("title", props.KindEither, props.Fn(newTitle)).
	Enum("title_location", props.Lit("above"), models.Locations...).
	Define("h_symmetry", props.KindBool, props.Lit(true)).
	Define("v_symmetry", props.KindBool, props.Lit(false)).
	Define("min_border", props.KindInt, props.Lit(5)).
	Define("min_border_top", props.KindInt, props.Nil).
	Define("min_border_bottom", props.KindInt, props.Nil).
	Define("min_border_left", props.KindInt, props.Nil).
	Define("min_border_right", props.KindInt, props.Nil).
	Define("lod_factor", props.KindInt, props.Lit(10)).
	Define("lod_threshold", props.KindInt, props.Lit(2000)).
	Define("match_aspect", props.KindBool, props.Lit(false)).
	Define("aspect_scale", props.KindFloat, props.Lit(1.0)).
	Enum("output_backend", props.Lit("canvas"), "canvas", "svg", "webgl"))

// Factories return an untyped nil on failure so the attribute reads as unset.

func newDataRange() any {
	r, err := models.NewDataRange1d(nil)
	if err != nil {
		return nil
	}
	return r
}

func newLinearScale() any {
	s, err := models.NewLinearScale()
	if err != nil {
		return nil
	}
	return s
}

func newToolbar() any {
	tb, err := models.NewToolbar(nil)
	if err != nil {
		return nil
	}
	return tb
}

func newTitle() any {
	t, err := models.NewTitle(nil)
	if err != nil {
		return nil
	}
	return t
}

func newRangeMap() any { return map[string]models.Range{} }

func newSideSlot() any { return []models.SideDecoration{} }

// Plot is a single plotting area.
type Plot struct {
	models.LayoutBase

	linked []models.Range // ranges holding a back-reference to this plot
}

// New creates a plot. Besides the schema's kind checks, instance attributes
// must hold the right entity types: ranges implement [models.Range], slot
// lists hold the slot's decoration variant, and title is a string, a
// *models.Title or nil.
func New(attrs model.Attrs) (*Plot, error) {
	attrs, err := normalize(attrs)
	if err != nil {
		return nil, err
	}
	p := &Plot{}
	if err := p.Init(p, Schema, attrs); err != nil {
		return nil, err
	}
	if err := p.resolveDimensions(); err != nil {
		return nil, err
	}
	p.registerBacklinks()
	return p, nil
}

// resolveDimensions seeds unset width and height from plot_width and
// plot_height.
func (p *Plot) resolveDimensions() error {
	for _, dim := range [...][2]string{{"width", "plot_width"}, {"height", "plot_height"}} {
		if p.MustGet(dim[0]) != nil {
			continue
		}
		if err := p.Set(dim[0], p.MustGet(dim[1])); err != nil {
			return err
		}
	}
	return nil
}

// registerBacklinks appends p to the "plots" list of every range it uses,
// x ranges before y ranges, primary before extras in sorted name order.
func (p *Plot) registerBacklinks() {
	for _, r := range slices.Concat(p.rangesFor("x"), p.rangesFor("y")) {
		if !models.HasBackrefs(r) {
			continue
		}
		if r.Base().Link(models.BackrefAttr, p) {
			p.linked = append(p.linked, r)
		}
	}
}

func (p *Plot) rangesFor(axis string) []models.Range {
	var out []models.Range
	if r, ok := model.Value[models.Range](p, axis+"_range"); ok {
		out = append(out, r)
	}
	extra := p.extraRanges("extra_" + axis + "_ranges")
	for _, name := range slices.Sorted(maps.Keys(extra)) {
		if r := extra[name]; r != nil {
			out = append(out, r)
		}
	}
	return out
}

// Close removes p from the back-reference lists it was added to at
// construction. The removal does not notify range listeners. Close is
// idempotent.
func (p *Plot) Close() {
	for _, r := range p.linked {
		r.Base().Unlink(models.BackrefAttr, p)
	}
	p.linked = nil
}

// ===== Accessors =====

// Width returns the resolved layout width.
func (p *Plot) Width() int {
	w, _ := model.Int(p, "width")
	return w
}

// Height returns the resolved layout height.
func (p *Plot) Height() int {
	h, _ := model.Int(p, "height")
	return h
}

// Title returns the plot title, or nil when the plot has none.
func (p *Plot) Title() *models.Title {
	t, _ := model.Value[*models.Title](p, "title")
	return t
}

// XRange returns the primary x range.
func (p *Plot) XRange() models.Range {
	r, _ := model.Value[models.Range](p, "x_range")
	return r
}

// YRange returns the primary y range.
func (p *Plot) YRange() models.Range {
	r, _ := model.Value[models.Range](p, "y_range")
	return r
}

// ExtraXRanges returns the named auxiliary x ranges.
func (p *Plot) ExtraXRanges() map[string]models.Range {
	return p.extraRanges("extra_x_ranges")
}

// ExtraYRanges returns the named auxiliary y ranges.
func (p *Plot) ExtraYRanges() map[string]models.Range {
	return p.extraRanges("extra_y_ranges")
}

func (p *Plot) extraRanges(name string) map[string]models.Range {
	m, _ := model.Value[map[string]models.Range](p, name)
	return m
}

// XScale returns the x scale.
func (p *Plot) XScale() *models.Scale {
	s, _ := model.Value[*models.Scale](p, "x_scale")
	return s
}

// YScale returns the y scale.
func (p *Plot) YScale() *models.Scale {
	s, _ := model.Value[*models.Scale](p, "y_scale")
	return s
}

// Toolbar returns the plot toolbar.
func (p *Plot) Toolbar() *models.Toolbar {
	tb, _ := model.Value[*models.Toolbar](p, "toolbar")
	return tb
}

// Renderers returns the data renderers in insertion order.
func (p *Plot) Renderers() []models.Renderer {
	return model.List[models.Renderer](p, "renderers")
}

// ===== Attribute normalization =====

// normalize converts convenience forms of attrs into the stored
// representation and checks entity types the kind system cannot see.
func normalize(attrs model.Attrs) (model.Attrs, error) {
	out := maps.Clone(attrs)
	if out == nil {
		out = model.Attrs{}
	}

	switch t := out["title"].(type) {
	case nil:
	case *models.Title:
		if t == nil {
			return nil, errors.New(errors.ErrCodeInvalidValue, "title is a nil *models.Title")
		}
	case string:
		title, err := models.NewTitle(model.Attrs{"text": t})
		if err != nil {
			return nil, err
		}
		out["title"] = title
	default:
		return nil, errors.New(errors.ErrCodeInvalidValue, "title expects a string or *models.Title, got %T", t)
	}

	for name, v := range out {
		if v == nil {
			continue
		}
		var err error
		switch name {
		case "x_range", "y_range":
			err = checkType[models.Range](name, v)
		case "x_scale", "y_scale":
			err = checkType[*models.Scale](name, v)
		case "toolbar":
			err = checkType[*models.Toolbar](name, v)
		case "extra_x_ranges", "extra_y_ranges":
			out[name], err = rangeMap(name, v)
		case "renderers":
			out[name], err = typedList[models.Renderer](name, v)
		case "above", "below", "left", "right":
			out[name], err = typedList[models.SideDecoration](name, v)
		case "center":
			out[name], err = typedList[models.CenterDecoration](name, v)
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func checkType[T any](name string, v any) error {
	if _, ok := v.(T); !ok {
		return errors.New(errors.ErrCodeInvalidValue, "%s expects %v, got %T", name, reflect.TypeFor[T](), v)
	}
	if isNil(v) {
		return errors.New(errors.ErrCodeInvalidValue, "%s is a nil %T", name, v)
	}
	return nil
}

// isNil reports whether v is nil or a nil pointer held in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// typedList copies any slice whose elements all implement T into a []T.
func typedList[T any](name string, v any) ([]T, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil, errors.New(errors.ErrCodeInvalidValue, "%s expects a list, got %T", name, v)
	}
	out := make([]T, 0, rv.Len())
	for i := range rv.Len() {
		el, ok := rv.Index(i).Interface().(T)
		if ok && isNil(el) {
			return nil, errors.New(errors.ErrCodeInvalidValue, "%s[%d] is nil", name, i)
		}
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidValue,
				"%s[%d] expects %v, got %T", name, i, reflect.TypeFor[T](), rv.Index(i).Interface())
		}
		out = append(out, el)
	}
	return out, nil
}

// rangeMap copies a string-keyed map of ranges into a map[string]models.Range.
func rangeMap(name string, v any) (map[string]models.Range, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, errors.New(errors.ErrCodeInvalidValue, "%s expects a map of named ranges, got %T", name, v)
	}
	out := make(map[string]models.Range, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key := iter.Key().String()
		r, ok := iter.Value().Interface().(models.Range)
		if ok && isNil(r) {
			return nil, errors.New(errors.ErrCodeInvalidValue, "%s[%q] is a nil range", name, key)
		}
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidValue,
				"%s[%q] expects models.Range, got %T", name, key, iter.Value().Interface())
		}
		out[key] = r
	}
	return out, nil
}

package blueprint

import (
	"maps"
	"slices"

	"github.com/matzehuels/plotkit/pkg/errors"
	"github.com/matzehuels/plotkit/pkg/layouts"
	"github.com/matzehuels/plotkit/pkg/model"
	"github.com/matzehuels/plotkit/pkg/models"
	"github.com/matzehuels/plotkit/pkg/plot"
	"github.com/matzehuels/plotkit/pkg/props"
)

// Result holds the entities built from a blueprint.
type Result struct {
	Root    models.LayoutDOM
	Plots   map[string]*plot.Plot
	Order   []string // plot names in declaration order
	Ranges  map[string]models.Range
	Sources map[string]*models.ColumnDataSource
}

// Close releases the range back-references of every built plot.
func (r *Result) Close() {
	for _, p := range r.Plots {
		p.Close()
	}
}

// Build constructs the ranges, sources, plots and layout the blueprint
// declares. Construction uses the active theme.
func (bp *Blueprint) Build() (*Result, error) {
	res := &Result{
		Plots:   make(map[string]*plot.Plot, len(bp.Plots)),
		Ranges:  make(map[string]models.Range, len(bp.Ranges)),
		Sources: make(map[string]*models.ColumnDataSource, len(bp.Sources)),
	}

	for _, name := range slices.Sorted(maps.Keys(bp.Ranges)) {
		r, err := buildRange(bp.Ranges[name])
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidBlueprint, err, "range %q", name)
		}
		res.Ranges[name] = r
	}
	for _, name := range slices.Sorted(maps.Keys(bp.Sources)) {
		src, err := models.NewColumnDataSource(bp.Sources[name])
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidBlueprint, err, "source %q", name)
		}
		res.Sources[name] = src
	}
	for _, spec := range bp.Plots {
		p, err := res.buildPlot(spec)
		if err != nil {
			res.Close()
			return nil, errors.Wrap(errors.ErrCodeInvalidBlueprint, err, "plot %q", spec.Name)
		}
		res.Plots[spec.Name] = p
		res.Order = append(res.Order, spec.Name)
	}

	root, err := res.buildLayout(bp.Layout)
	if err != nil {
		res.Close()
		return nil, errors.Wrap(errors.ErrCodeInvalidBlueprint, err, "layout")
	}
	res.Root = root
	return res, nil
}

func buildRange(spec RangeSpec) (models.Range, error) {
	attrs := model.Attrs{}
	if spec.Start != nil {
		attrs["start"] = *spec.Start
	}
	if spec.End != nil {
		attrs["end"] = *spec.End
	}
	switch spec.Type {
	case "", "DataRange1d":
		return nonNil(models.NewDataRange1d(attrs))
	case "Range1d":
		return nonNil(models.NewRange1d(attrs))
	case "FactorRange":
		if spec.Factors != nil {
			attrs["factors"] = slices.Clone(spec.Factors)
		}
		return nonNil(models.NewFactorRange(attrs))
	}
	return nil, errors.New(errors.ErrCodeInvalidBlueprint, "unknown range type %q", spec.Type)
}

// nonNil drops the typed nil a failed constructor returns so the interface
// result is a true nil.
func nonNil[T models.Range](r T, err error) (models.Range, error) {
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (res *Result) buildPlot(spec PlotSpec) (*plot.Plot, error) {
	attrs := coerce(plot.Schema, spec.Attrs)
	if spec.Title != "" {
		attrs["title"] = spec.Title
	}
	if spec.Width > 0 {
		attrs["plot_width"] = spec.Width
	}
	if spec.Height > 0 {
		attrs["plot_height"] = spec.Height
	}
	if spec.ToolbarLocation != "" {
		attrs["toolbar_location"] = spec.ToolbarLocation
	}
	for attr, name := range map[string]string{"x_range": spec.XRange, "y_range": spec.YRange} {
		if name != "" {
			attrs[attr] = res.Ranges[name]
		}
	}
	for attr, names := range map[string]map[string]string{"extra_x_ranges": spec.ExtraXRanges, "extra_y_ranges": spec.ExtraYRanges} {
		if len(names) == 0 {
			continue
		}
		extra := make(map[string]models.Range, len(names))
		for alias, name := range names {
			extra[alias] = res.Ranges[name]
		}
		attrs[attr] = extra
	}
	for attr, class := range map[string]string{"x_scale": spec.XScale, "y_scale": spec.YScale} {
		if class == "" {
			continue
		}
		s, err := models.NewScale(class, nil)
		if err != nil {
			return nil, err
		}
		attrs[attr] = s
	}

	p, err := plot.New(attrs)
	if err != nil {
		return nil, err
	}

	if len(spec.Tools) > 0 {
		tools, err := models.ToolsByName(spec.Tools...)
		if err != nil {
			p.Close()
			return nil, err
		}
		if err := p.AddTools(tools...); err != nil {
			p.Close()
			return nil, err
		}
	}
	for _, d := range spec.Decorations {
		if err := addDecoration(p, d); err != nil {
			p.Close()
			return nil, err
		}
	}
	for _, g := range spec.Glyphs {
		if err := res.addGlyph(p, g); err != nil {
			p.Close()
			return nil, err
		}
	}
	return p, nil
}

func addDecoration(p *plot.Plot, spec DecorationSpec) error {
	place := plot.Center
	if spec.Place != "" {
		var err error
		if place, err = plot.ParsePlace(spec.Place); err != nil {
			return err
		}
	}
	item, err := newDecoration(spec.Class, spec.Attrs)
	if err != nil {
		return err
	}
	return p.AddLayout(item, place)
}

func newDecoration(class string, raw map[string]any) (models.Decoration, error) {
	s, err := props.LookupClass(class)
	if err != nil {
		return nil, err
	}
	attrs := coerce(s, raw)

	var (
		item models.Decoration
		derr error
	)
	switch {
	case s.IsA("Axis"):
		var a *models.Axis
		if a, derr = models.NewAxis(class, attrs); derr == nil {
			item = a
		}
	case class == "Grid":
		var g *models.Grid
		if g, derr = models.NewGrid(attrs); derr == nil {
			item = g
		}
	case class == "Title":
		var t *models.Title
		if t, derr = models.NewTitle(attrs); derr == nil {
			item = t
		}
	case s.IsA("Annotation"):
		var a *models.Annotation
		if a, derr = models.NewAnnotation(class, attrs); derr == nil {
			item = a
		}
	default:
		derr = errors.New(errors.ErrCodeInvalidSlot, "%s is not an axis, grid, title or annotation", class)
	}
	return item, derr
}

func (res *Result) addGlyph(p *plot.Plot, spec GlyphSpec) error {
	s, err := props.LookupClass(spec.Class)
	if err != nil {
		return err
	}
	glyph, err := models.NewGlyph(spec.Class, coerce(s, spec.Attrs))
	if err != nil {
		return err
	}

	var opts []plot.GlyphOption
	switch {
	case spec.Source != "":
		opts = append(opts, plot.WithSource(res.Sources[spec.Source]))
	case len(spec.Data) > 0:
		opts = append(opts, plot.WithColumns(spec.Data))
	}
	if len(spec.Renderer) > 0 {
		rs, err := props.LookupClass("GlyphRenderer")
		if err != nil {
			return err
		}
		opts = append(opts, plot.WithAttrs(coerce(rs, spec.Renderer)))
	}
	_, err = p.AddGlyph(glyph, opts...)
	return err
}

func (res *Result) buildLayout(spec LayoutSpec) (models.LayoutDOM, error) {
	pick := func(names []string) []models.LayoutDOM {
		out := make([]models.LayoutDOM, len(names))
		for i, n := range names {
			if n != "" {
				out[i] = res.Plots[n]
			}
		}
		return out
	}
	items := spec.Items
	if len(items) == 0 && len(spec.Rows) == 0 {
		items = res.Order
	}
	rows := make([][]models.LayoutDOM, len(spec.Rows))
	for i, r := range spec.Rows {
		rows[i] = pick(r)
	}
	mode := layouts.WithSizingMode(spec.SizingMode)

	switch spec.Kind {
	case "":
		switch {
		case len(rows) > 0:
			return asLayout(layouts.Layout(rows, mode))
		case len(items) == 1:
			return res.Plots[items[0]], nil
		}
		return asLayout(layouts.Column(pick(items), mode))
	case KindRow:
		return asLayout(layouts.Row(pick(items), mode))
	case KindColumn:
		return asLayout(layouts.Column(pick(items), mode))
	case KindLayout:
		if len(rows) == 0 {
			rows = [][]models.LayoutDOM{pick(items)}
		}
		return asLayout(layouts.Layout(rows, mode))
	case KindGrid:
		opts := layouts.DefaultGridOptions()
		opts.NCols = spec.NCols
		opts.SizingMode = spec.SizingMode
		opts.PlotWidth = spec.PlotWidth
		opts.PlotHeight = spec.PlotHeight
		switch spec.ToolbarLocation {
		case "":
		case NoToolbar:
			opts.ToolbarLocation = ""
		default:
			opts.ToolbarLocation = spec.ToolbarLocation
		}
		if spec.MergeTools != nil {
			opts.MergeTools = *spec.MergeTools
		}
		if len(rows) > 0 {
			return layouts.GridPlot(rows, opts)
		}
		return layouts.GridPlotFlat(pick(items), opts)
	}
	return nil, errors.New(errors.ErrCodeInvalidLayout, "unknown layout kind %q", spec.Kind)
}

func asLayout(b *models.Box, err error) (models.LayoutDOM, error) {
	if err != nil {
		return nil, err
	}
	return b, nil
}

// coerce copies raw, converting values the decoder produced to the shapes
// the schema's kinds expect. Unknown names are left for the constructor to
// reject.
func coerce(s *props.Schema, raw map[string]any) model.Attrs {
	out := make(model.Attrs, len(raw))
	for name, v := range raw {
		if p, err := s.Lookup(name); err == nil {
			v = p.Kind.Coerce(v)
		}
		out[name] = v
	}
	return out
}

package blueprint

import (
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/plotkit/pkg/errors"
	"github.com/matzehuels/plotkit/pkg/models"
	"github.com/matzehuels/plotkit/pkg/plot"
	"github.com/matzehuels/plotkit/pkg/props"
)

// Layout kinds.
const (
	KindRow    = "row"
	KindColumn = "column"
	KindLayout = "layout"
	KindGrid   = "grid"
)

// NoToolbar as a grid toolbar_location attaches no shared toolbar.
const NoToolbar = "none"

var rangeTypes = []string{"DataRange1d", "Range1d", "FactorRange"}

// Blueprint is a decoded blueprint document.
type Blueprint struct {
	Ranges  map[string]RangeSpec        `toml:"ranges"`
	Sources map[string]map[string][]any `toml:"sources"`
	Plots   []PlotSpec                  `toml:"plots"`
	Layout  LayoutSpec                  `toml:"layout"`
}

// RangeSpec declares a shared range.
type RangeSpec struct {
	Type    string   `toml:"type"` // DataRange1d (default), Range1d or FactorRange
	Start   *float64 `toml:"start"`
	End     *float64 `toml:"end"`
	Factors []string `toml:"factors"`
}

// PlotSpec declares one plot.
type PlotSpec struct {
	Name            string            `toml:"name"`
	Title           string            `toml:"title"`
	Width           int               `toml:"width"`
	Height          int               `toml:"height"`
	XRange          string            `toml:"x_range"`
	YRange          string            `toml:"y_range"`
	ExtraXRanges    map[string]string `toml:"extra_x_ranges"`
	ExtraYRanges    map[string]string `toml:"extra_y_ranges"`
	XScale          string            `toml:"x_scale"`
	YScale          string            `toml:"y_scale"`
	Tools           []string          `toml:"tools"`
	ToolbarLocation string            `toml:"toolbar_location"`
	Attrs           map[string]any    `toml:"attrs"`
	Decorations     []DecorationSpec  `toml:"decorations"`
	Glyphs          []GlyphSpec       `toml:"glyphs"`
}

// DecorationSpec places an axis, grid, title or annotation in a plot slot.
type DecorationSpec struct {
	Class string         `toml:"class"`
	Place string         `toml:"place"` // defaults to center
	Attrs map[string]any `toml:"attrs"`
}

// GlyphSpec adds a glyph renderer to a plot. Data comes from a named source,
// from inline columns, or from a fresh empty source.
type GlyphSpec struct {
	Class    string           `toml:"class"`
	Source   string           `toml:"source"`
	Data     map[string][]any `toml:"data"`
	Attrs    map[string]any   `toml:"attrs"`
	Renderer map[string]any   `toml:"renderer"`
}

// LayoutSpec arranges the plots.
type LayoutSpec struct {
	Kind            string     `toml:"kind"`
	Items           []string   `toml:"items"`
	Rows            [][]string `toml:"rows"`
	NCols           int        `toml:"ncols"`
	SizingMode      string     `toml:"sizing_mode"`
	ToolbarLocation string     `toml:"toolbar_location"`
	MergeTools      *bool      `toml:"merge_tools"`
	PlotWidth       int        `toml:"plot_width"`
	PlotHeight      int        `toml:"plot_height"`
}

// Parse decodes and validates a blueprint. Keys the format does not define
// are rejected.
func Parse(r io.Reader) (*Blueprint, error) {
	var bp Blueprint
	md, err := toml.NewDecoder(r).Decode(&bp)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidBlueprint, err, "decode blueprint")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidBlueprint, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := bp.Validate(); err != nil {
		return nil, err
	}
	return &bp, nil
}

// Load reads and validates a blueprint file.
func Load(path string) (*Blueprint, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "blueprint %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open blueprint %s", path)
	}
	defer f.Close()
	return Parse(f)
}

// Validate checks references between the sections of the blueprint. Every
// problem found is reported.
func (bp *Blueprint) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, errors.New(errors.ErrCodeInvalidBlueprint, format, args...))
	}

	for _, name := range slices.Sorted(maps.Keys(bp.Ranges)) {
		if t := bp.Ranges[name].Type; t != "" && !slices.Contains(rangeTypes, t) {
			fail("range %q: type %q is not one of %v", name, t, rangeTypes)
		}
	}

	if len(bp.Plots) == 0 {
		fail("no plots declared")
	}
	names := make(map[string]bool)
	for i, p := range bp.Plots {
		label := p.Name
		switch {
		case p.Name == "":
			label = "#" + strconv.Itoa(i)
			fail("plot %s has no name", label)
		case names[p.Name]:
			fail("plot %q declared twice", p.Name)
		}
		names[p.Name] = true

		refs := append([]string{p.XRange, p.YRange}, slices.Collect(maps.Values(p.ExtraXRanges))...)
		refs = append(refs, slices.Collect(maps.Values(p.ExtraYRanges))...)
		for _, r := range refs {
			if _, ok := bp.Ranges[r]; r != "" && !ok {
				fail("plot %s: unknown range %q", label, r)
			}
		}
		for _, d := range p.Decorations {
			if d.Place != "" {
				if _, err := plot.ParsePlace(d.Place); err != nil {
					fail("plot %s: %s", label, errors.UserMessage(err))
				}
			}
			if _, err := props.LookupClass(d.Class); err != nil {
				fail("plot %s: decoration class %q is not registered", label, d.Class)
			}
		}
		for _, g := range p.Glyphs {
			if _, ok := bp.Sources[g.Source]; g.Source != "" && !ok {
				fail("plot %s: unknown source %q", label, g.Source)
			}
			if g.Source != "" && len(g.Data) > 0 {
				fail("plot %s: glyph %s sets both source and data", label, g.Class)
			}
		}
	}

	l := bp.Layout
	switch l.Kind {
	case "", KindRow, KindColumn, KindLayout, KindGrid:
	default:
		fail("layout kind %q is not one of row, column, layout, grid", l.Kind)
	}
	for _, n := range l.Items {
		if !names[n] {
			fail("layout: unknown plot %q", n)
		}
	}
	for _, row := range l.Rows {
		for _, n := range row {
			if n == "" && l.Kind == KindGrid {
				continue
			}
			if !names[n] {
				fail("layout: unknown plot %q", n)
			}
		}
	}
	if l.Kind == KindGrid && len(l.Rows) == 0 && l.NCols <= 0 {
		fail("grid layout needs rows or a positive ncols")
	}
	if loc := l.ToolbarLocation; loc != "" && loc != NoToolbar && !slices.Contains(models.Locations, loc) {
		fail("layout: toolbar_location %q is not one of %v or %q", loc, models.Locations, NoToolbar)
	}
	return errors.Join(errs...)
}

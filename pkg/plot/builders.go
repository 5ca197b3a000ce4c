package plot

import (
	"maps"
	"slices"

	"github.com/matzehuels/plotkit/pkg/errors"
	"github.com/matzehuels/plotkit/pkg/model"
	"github.com/matzehuels/plotkit/pkg/models"
)

// AddRenderers appends items to the renderers list in call order.
// Duplicates are kept.
func (p *Plot) AddRenderers(items ...models.Renderer) error {
	for i, it := range items {
		if isNil(it) {
			return errors.New(errors.ErrCodeInvalidInput, "renderer %d is nil", i)
		}
	}
	return p.Set("renderers", slices.Concat(p.Renderers(), items))
}

type glyphConfig struct {
	source *models.ColumnDataSource
	data   map[string][]any
	attrs  model.Attrs
}

// GlyphOption configures AddGlyph.
type GlyphOption func(*glyphConfig)

// WithSource renders the glyph from an existing data source.
func WithSource(src *models.ColumnDataSource) GlyphOption {
	return func(c *glyphConfig) { c.source = src }
}

// WithColumns renders the glyph from a new data source holding data.
// It is ignored when WithSource is also given.
func WithColumns(data map[string][]any) GlyphOption {
	return func(c *glyphConfig) { c.data = data }
}

// WithAttrs sets extra attributes on the created renderer. data_source and
// glyph are always taken from AddGlyph.
func WithAttrs(attrs model.Attrs) GlyphOption {
	return func(c *glyphConfig) { c.attrs = attrs }
}

// AddGlyph creates a GlyphRenderer for glyph, appends it to the renderers
// list and returns it. Without WithSource every call gets its own fresh
// data source.
func (p *Plot) AddGlyph(glyph *models.Glyph, opts ...GlyphOption) (*models.GlyphRenderer, error) {
	if glyph == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "glyph is nil")
	}
	var cfg glyphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	src := cfg.source
	if src == nil {
		var err error
		if src, err = models.NewColumnDataSource(cfg.data); err != nil {
			return nil, err
		}
	}

	attrs := maps.Clone(cfg.attrs)
	if attrs == nil {
		attrs = model.Attrs{}
	}
	attrs["data_source"] = src
	attrs["glyph"] = glyph

	r, err := models.NewGlyphRenderer(attrs)
	if err != nil {
		return nil, err
	}
	if err := p.AddRenderers(r); err != nil {
		return nil, err
	}
	return r, nil
}

// AddTools appends tools to the toolbar. The toolbar's tools list is
// replaced by a new slice; the previous slice is not modified.
func (p *Plot) AddTools(tools ...*models.Tool) error {
	tb := p.Toolbar()
	if tb == nil {
		return errors.New(errors.ErrCodeInvalidInput, "plot has no toolbar")
	}
	for i, t := range tools {
		if t == nil {
			return errors.New(errors.ErrCodeInvalidInput, "tool %d is nil", i)
		}
	}
	return tb.SetTools(slices.Concat(tb.Tools(), tools))
}

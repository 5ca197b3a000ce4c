package plot

import (
	"testing"

	"github.com/matzehuels/plotkit/pkg/errors"
	"github.com/matzehuels/plotkit/pkg/model"
	"github.com/matzehuels/plotkit/pkg/models"
)

func mustGlyph(t *testing.T, class string) *models.Glyph {
	t.Helper()
	g, err := models.NewGlyph(class, nil)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func mustTool(t *testing.T, name string) *models.Tool {
	t.Helper()
	tool, err := models.ToolByName(name)
	if err != nil {
		t.Fatal(err)
	}
	return tool
}

func TestAddRenderersKeepsOrderAndDuplicates(t *testing.T) {
	p := newPlot(t, nil)
	r1, err := models.NewGlyphRenderer(nil)
	if err != nil {
		t.Fatal(err)
	}
	r2, err := models.NewGlyphRenderer(nil)
	if err != nil {
		t.Fatal(err)
	}

	if err := p.AddRenderers(r1, r2); err != nil {
		t.Fatal(err)
	}
	if err := p.AddRenderers(r1); err != nil {
		t.Fatal(err)
	}
	got := p.Renderers()
	if len(got) != 3 || got[0] != r1 || got[1] != r2 || got[2] != r1 {
		t.Errorf("renderers = %v, want [r1 r2 r1]", got)
	}

	if err := p.AddRenderers(nil); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("nil renderer: err = %v, want INVALID_INPUT", err)
	}
}

func TestAddGlyphFreshSources(t *testing.T) {
	p := newPlot(t, nil)
	g := mustGlyph(t, "Circle")

	first, err := p.AddGlyph(g)
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.AddGlyph(g)
	if err != nil {
		t.Fatal(err)
	}

	if first.DataSource() == nil || second.DataSource() == nil {
		t.Fatal("default data sources should be created")
	}
	if first.DataSource() == second.DataSource() {
		t.Error("each call should get its own data source")
	}
	if first.Glyph() != g || second.Glyph() != g {
		t.Error("renderers should reference the glyph")
	}
	got := p.Renderers()
	if len(got) != 2 || got[0] != models.Renderer(first) || got[1] != models.Renderer(second) {
		t.Errorf("renderers = %v, want [first second]", got)
	}
}

func TestAddGlyphOptions(t *testing.T) {
	p := newPlot(t, nil)
	g := mustGlyph(t, "Line")
	src, err := models.NewColumnDataSource(map[string][]any{"x": {1, 2}, "y": {3, 4}})
	if err != nil {
		t.Fatal(err)
	}
	decoy, err := models.NewColumnDataSource(nil)
	if err != nil {
		t.Fatal(err)
	}

	r, err := p.AddGlyph(g, WithSource(src), WithAttrs(model.Attrs{
		"data_source":  decoy,
		"muted":        true,
		"y_range_name": "aux",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if r.DataSource() != src {
		t.Error("explicit source should win over extra attrs")
	}
	if muted, _ := model.Value[bool](r, "muted"); !muted {
		t.Error("extra attrs should be applied")
	}
	if name, _ := model.String(r, "y_range_name"); name != "aux" {
		t.Errorf("y_range_name = %q, want aux", name)
	}

	withData, err := p.AddGlyph(g, WithColumns(map[string][]any{"x": {1}, "y": {2}}))
	if err != nil {
		t.Fatal(err)
	}
	if withData.DataSource().Len() != 1 {
		t.Errorf("source rows = %d, want 1", withData.DataSource().Len())
	}

	if _, err := p.AddGlyph(g, WithAttrs(model.Attrs{"muted": "yes"})); !errors.Is(err, errors.ErrCodeInvalidValue) {
		t.Errorf("bad extra attr: err = %v, want INVALID_VALUE", err)
	}
	if len(p.Renderers()) != 2 {
		t.Errorf("failed AddGlyph should not append, have %d renderers", len(p.Renderers()))
	}
}

func TestAddToolsCopyOnWrite(t *testing.T) {
	p := newPlot(t, nil)
	t0, t1, t2 := mustTool(t, "pan"), mustTool(t, "wheel_zoom"), mustTool(t, "save")

	tb := p.Toolbar()
	if err := tb.SetTools([]*models.Tool{t0}); err != nil {
		t.Fatal(err)
	}
	old := tb.Tools()

	if err := p.AddTools(t1, t2); err != nil {
		t.Fatal(err)
	}
	got := tb.Tools()
	if len(got) != 3 || got[0] != t0 || got[1] != t1 || got[2] != t2 {
		t.Errorf("tools = %v, want [t0 t1 t2]", got)
	}
	if len(old) != 1 || old[0] != t0 {
		t.Errorf("old tools slice changed: %v", old)
	}
}

func TestAddToolsNotifiesToolbar(t *testing.T) {
	p := newPlot(t, nil)
	var changes []model.Change
	if err := p.Toolbar().On("tools", func(_ model.Object, c model.Change) { changes = append(changes, c) }); err != nil {
		t.Fatal(err)
	}
	if err := p.AddTools(mustTool(t, "reset")); err != nil {
		t.Fatal(err)
	}
	if len(changes) != 1 {
		t.Fatalf("tools changes = %d, want 1", len(changes))
	}
	if old, _ := changes[0].Old.([]*models.Tool); len(old) != 0 {
		t.Errorf("old value = %v, want empty", changes[0].Old)
	}
}

func TestAddToolsWithoutToolbar(t *testing.T) {
	p := newPlot(t, model.Attrs{"toolbar": nil})
	if err := p.AddTools(mustTool(t, "pan")); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("err = %v, want INVALID_INPUT", err)
	}
}

package plot

import (
	"slices"
	"testing"

	"github.com/matzehuels/plotkit/pkg/errors"
	"github.com/matzehuels/plotkit/pkg/model"
	"github.com/matzehuels/plotkit/pkg/models"
)

func newPlot(t *testing.T, attrs model.Attrs) *Plot {
	t.Helper()
	p, err := New(attrs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

func TestSchemaTraits(t *testing.T) {
	want := []string{
		"outline_line_color", "outline_line_width", "outline_line_alpha",
		"outline_line_join", "outline_line_cap", "outline_line_dash", "outline_line_dash_offset",
		"background_fill_color", "background_fill_alpha",
		"border_fill_color", "border_fill_alpha",
	}
	names := Schema.Names()
	for _, n := range want {
		if !slices.Contains(names, n) {
			t.Errorf("Plot schema missing %s", n)
		}
	}
	seen := make(map[string]bool)
	for _, n := range names {
		if seen[n] {
			t.Errorf("duplicate property %s", n)
		}
		seen[n] = true
	}
	if !Schema.IsA("LayoutDOM") {
		t.Error("Plot should extend LayoutDOM")
	}
}

func TestNewDefaults(t *testing.T) {
	p := newPlot(t, nil)

	tests := []struct {
		attr string
		want any
	}{
		{"outline_line_color", "#e5e5e5"},
		{"background_fill_color", "#ffffff"},
		{"border_fill_color", "#ffffff"},
		{"plot_width", 600},
		{"toolbar_location", "right"},
		{"min_border", 5},
	}
	for _, tt := range tests {
		if got := p.MustGet(tt.attr); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.attr, got, tt.want)
		}
	}
	if p.XRange() == nil || p.YRange() == nil {
		t.Fatal("default ranges should be created")
	}
	if p.XRange() == p.YRange() {
		t.Error("x and y default ranges should be distinct")
	}
	if p.XScale() == nil || p.XScale().Class() != "LinearScale" {
		t.Errorf("x_scale = %v, want LinearScale", p.XScale())
	}
	if p.Toolbar() == nil {
		t.Error("default toolbar should be created")
	}
	if len(p.Renderers()) != 0 || len(p.Left()) != 0 || len(p.Center()) != 0 {
		t.Error("sequences should start empty")
	}
}

func TestFactoryDefaultsAreFresh(t *testing.T) {
	a := newPlot(t, nil)
	b := newPlot(t, nil)

	if a.Title() == nil || b.Title() == nil {
		t.Fatal("default title should be created")
	}
	if a.Title() == b.Title() {
		t.Error("plots must not share a default Title")
	}
	if a.Toolbar() == b.Toolbar() {
		t.Error("plots must not share a default Toolbar")
	}
	if a.XRange() == b.XRange() {
		t.Error("plots must not share a default x range")
	}

	if err := a.AddLayout(mustAxis(t), Left); err != nil {
		t.Fatal(err)
	}
	if len(b.Left()) != 0 {
		t.Error("slot lists must not be shared")
	}
}

func TestTitleConversion(t *testing.T) {
	p := newPlot(t, model.Attrs{"title": "Latency"})
	if p.Title() == nil || p.Title().Text() != "Latency" {
		t.Errorf("Title = %v, want Latency", p.Title())
	}

	none := newPlot(t, model.Attrs{"title": nil})
	if none.Title() != nil {
		t.Error("explicit nil title should be kept")
	}

	title, err := models.NewTitle(model.Attrs{"text": "rich"})
	if err != nil {
		t.Fatal(err)
	}
	rich := newPlot(t, model.Attrs{"title": title})
	if rich.Title() != title {
		t.Error("rich title should be stored as given")
	}

	_, err = New(model.Attrs{"title": 42})
	if !errors.Is(err, errors.ErrCodeInvalidValue) {
		t.Errorf("numeric title: err = %v, want INVALID_VALUE", err)
	}
}

func TestDimensionResolution(t *testing.T) {
	tests := []struct {
		name       string
		attrs      model.Attrs
		wantWidth  int
		wantHeight int
	}{
		{"defaults", nil, 600, 600},
		{"seeded", model.Attrs{"plot_width": 400, "plot_height": 300}, 400, 300},
		{"explicit width", model.Attrs{"width": 700, "plot_width": 400, "plot_height": 300}, 700, 300},
		{"explicit both", model.Attrs{"width": 10, "height": 20}, 10, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPlot(t, tt.attrs)
			if p.Width() != tt.wantWidth || p.Height() != tt.wantHeight {
				t.Errorf("size = %dx%d, want %dx%d", p.Width(), p.Height(), tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestDimensionResolutionIsOneShot(t *testing.T) {
	p := newPlot(t, model.Attrs{"plot_width": 400})
	if err := p.Set("plot_width", 900); err != nil {
		t.Fatal(err)
	}
	if p.Width() != 400 {
		t.Errorf("width = %d, want 400", p.Width())
	}
}

func TestNewRejectsWrongEntityTypes(t *testing.T) {
	grid, err := models.NewGrid(nil)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name  string
		attrs model.Attrs
	}{
		{"range", model.Attrs{"x_range": "auto"}},
		{"scale", model.Attrs{"y_scale": 3}},
		{"extra ranges", model.Attrs{"extra_x_ranges": map[string]any{"a": 1}}},
		{"extra ranges key", model.Attrs{"extra_y_ranges": map[int]models.Range{}}},
		{"side slot", model.Attrs{"left": []any{grid}}},
		{"renderers", model.Attrs{"renderers": "none"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.attrs)
			if !errors.Is(err, errors.ErrCodeInvalidValue) {
				t.Errorf("err = %v, want INVALID_VALUE", err)
			}
		})
	}
}

func TestNewRejectsNilEntities(t *testing.T) {
	tests := []struct {
		name  string
		attrs model.Attrs
	}{
		{"x range", model.Attrs{"x_range": (*models.DataRange1d)(nil)}},
		{"y range", model.Attrs{"y_range": models.Range((*models.Range1d)(nil))}},
		{"extra range", model.Attrs{"extra_x_ranges": map[string]models.Range{"a": (*models.DataRange1d)(nil)}}},
		{"scale", model.Attrs{"x_scale": (*models.Scale)(nil)}},
		{"toolbar", model.Attrs{"toolbar": (*models.Toolbar)(nil)}},
		{"title", model.Attrs{"title": (*models.Title)(nil)}},
		{"side slot", model.Attrs{"below": []*models.Axis{nil}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.attrs)
			if !errors.Is(err, errors.ErrCodeInvalidValue) {
				t.Errorf("err = %v, want INVALID_VALUE", err)
			}
		})
	}
}

func TestNewAcceptsLooseCollections(t *testing.T) {
	r := mustDataRange(t)
	axis := mustAxis(t)
	p := newPlot(t, model.Attrs{
		"extra_x_ranges": map[string]any{"secondary": r},
		"below":          []*models.Axis{axis},
	})
	if p.ExtraXRanges()["secondary"] != r {
		t.Error("extra range should be converted")
	}
	if got := p.Below(); len(got) != 1 || got[0] != axis {
		t.Errorf("below = %v", got)
	}
}

func mustAxis(t *testing.T) *models.Axis {
	t.Helper()
	a, err := models.NewLinearAxis(nil)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func mustDataRange(t *testing.T) *models.DataRange1d {
	t.Helper()
	r, err := models.NewDataRange1d(nil)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

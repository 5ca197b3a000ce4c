package blueprint

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/plotkit/pkg/errors"
	"github.com/matzehuels/plotkit/pkg/model"
	"github.com/matzehuels/plotkit/pkg/models"
)

const dashboard = `
[ranges.time]

[ranges.fixed]
type = "Range1d"
start = 0.0
end = 100.0

[sources.metrics]
t = [1, 2, 3]
latency = [12.5, 9.1, 14.2]
errors = [0, 2, 1]

[[plots]]
name = "latency"
title = "Latency"
width = 400
height = 300
x_range = "time"
y_range = "fixed"
tools = ["pan", "reset"]
attrs = { min_border = 10 }

[[plots.decorations]]
class = "LinearAxis"
place = "below"
attrs = { axis_label = "seconds" }

[[plots.decorations]]
class = "Grid"
attrs = { dimension = 1 }

[[plots.glyphs]]
class = "Line"
source = "metrics"
attrs = { x = "t", y = "latency", line_dash = [4, 2] }

[[plots]]
name = "errors"
x_range = "time"
y_range = "fixed"
tools = ["box_zoom"]

[[plots.glyphs]]
class = "VBar"
data = { x = [1, 2], top = [3, 4] }
renderer = { name = "bars" }

[layout]
kind = "grid"
ncols = 2
`

func mustParse(t *testing.T, doc string) *Blueprint {
	t.Helper()
	bp, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return bp
}

func mustBuild(t *testing.T, doc string) *Result {
	t.Helper()
	res, err := mustParse(t, doc).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	t.Cleanup(res.Close)
	return res
}

func TestBuildDashboard(t *testing.T) {
	res := mustBuild(t, dashboard)

	if got := strings.Join(res.Order, ","); got != "latency,errors" {
		t.Errorf("Order = %s", got)
	}
	lat := res.Plots["latency"]
	if lat.Width() != 400 || lat.Height() != 300 {
		t.Errorf("latency size = %dx%d, want 400x300", lat.Width(), lat.Height())
	}
	if got := lat.Title().Text(); got != "Latency" {
		t.Errorf("title = %q", got)
	}
	if got, _ := model.Int(lat, "min_border"); got != 10 {
		t.Errorf("min_border = %d, want 10", got)
	}
	axes := lat.XAxes()
	if len(axes) != 1 {
		t.Fatalf("x axes = %d, want 1", len(axes))
	}
	if label, _ := model.String(axes[0], "axis_label"); label != "seconds" {
		t.Errorf("axis_label = %q, want seconds", label)
	}
	if grids := lat.Grids(); len(grids) != 1 || grids[0].Dimension() != 1 {
		t.Errorf("grids = %v", grids)
	}

	renderers := lat.Renderers()
	if len(renderers) != 1 {
		t.Fatalf("latency renderers = %d, want 1", len(renderers))
	}
	gr := renderers[0].(*models.GlyphRenderer)
	if gr.DataSource() != res.Sources["metrics"] {
		t.Error("line does not use the shared source")
	}
	if dash := model.List[int](gr.Glyph(), "line_dash"); len(dash) != 2 || dash[0] != 4 {
		t.Errorf("line_dash = %v, want [4 2]", dash)
	}

	bars := res.Plots["errors"].Renderers()[0].(*models.GlyphRenderer)
	if got, _ := model.String(bars, "name"); got != "bars" {
		t.Errorf("renderer name = %q, want bars", got)
	}
	if got := bars.DataSource().Len(); got != 2 {
		t.Errorf("inline source len = %d, want 2", got)
	}
}

func TestBuildSharedRanges(t *testing.T) {
	res := mustBuild(t, dashboard)

	lat, errs := res.Plots["latency"], res.Plots["errors"]
	if lat.XRange() != errs.XRange() || lat.XRange() != res.Ranges["time"] {
		t.Fatal("plots do not share the time range")
	}
	if got := len(models.Backrefs(res.Ranges["time"])); got != 2 {
		t.Errorf("time range lists %d plots, want 2", got)
	}
	if models.HasBackrefs(res.Ranges["fixed"]) {
		t.Error("Range1d should keep no back-references")
	}

	res.Close()
	if got := len(models.Backrefs(res.Ranges["time"])); got != 0 {
		t.Errorf("after Close time range lists %d plots, want 0", got)
	}
}

func TestBuildGridMergesTools(t *testing.T) {
	res := mustBuild(t, dashboard)

	col, ok := res.Root.(*models.Box)
	if !ok || col.Class() != "Column" {
		t.Fatalf("root = %T, want Column", res.Root)
	}
	tbb, ok := col.Children()[0].(*models.ToolbarBox)
	if !ok {
		t.Fatalf("first child = %T, want ToolbarBox", col.Children()[0])
	}
	if got := len(tbb.Toolbar().Tools()); got != 3 {
		t.Errorf("merged tools = %d, want 3", got)
	}
	for name, p := range res.Plots {
		if v := p.MustGet("toolbar_location"); v != nil {
			t.Errorf("%s toolbar_location = %v, want nil", name, v)
		}
	}
}

func TestBuildLayoutKinds(t *testing.T) {
	plots := `
[[plots]]
name = "a"
[[plots]]
name = "b"
[[plots]]
name = "c"
`
	tests := []struct {
		name   string
		layout string
		class  string
		count  int
	}{
		{"default column", "", "Column", 3},
		{"row", "[layout]\nkind = \"row\"\nitems = [\"a\", \"b\"]\n", "Row", 2},
		{"column", "[layout]\nkind = \"column\"\n", "Column", 3},
		{"layout rows", "[layout]\nkind = \"layout\"\nrows = [[\"a\", \"b\"], [\"c\"]]\n", "Column", 2},
		{"grid without toolbar", "[layout]\nkind = \"grid\"\nrows = [[\"a\", \"\"], [\"b\", \"c\"]]\ntoolbar_location = \"none\"\n", "GridBox", 3},
		{"grid unmerged", "[layout]\nkind = \"grid\"\nncols = 2\nmerge_tools = false\n", "GridBox", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := mustBuild(t, plots+tt.layout)
			if got := res.Root.Class(); got != tt.class {
				t.Fatalf("root class = %s, want %s", got, tt.class)
			}
			c, ok := res.Root.(models.Container)
			if !ok {
				t.Fatalf("root %T is not a container", res.Root)
			}
			if got := len(c.Children()); got != tt.count {
				t.Errorf("children = %d, want %d", got, tt.count)
			}
		})
	}
}

func TestBuildSinglePlotIsRoot(t *testing.T) {
	res := mustBuild(t, "[[plots]]\nname = \"only\"\n")
	if res.Root != models.LayoutDOM(res.Plots["only"]) {
		t.Errorf("root = %T, want the plot", res.Root)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"malformed", "[[plots]\n", "decode"},
		{"unknown key", "[[plots]]\nname = \"a\"\ncolour = \"red\"\n", "unknown keys"},
		{"no plots", "[ranges.x]\n", "no plots"},
		{"unnamed plot", "[[plots]]\ntitle = \"t\"\n", "no name"},
		{"duplicate plot", "[[plots]]\nname = \"a\"\n[[plots]]\nname = \"a\"\n", "declared twice"},
		{"unknown range", "[[plots]]\nname = \"a\"\nx_range = \"nope\"\n", "unknown range"},
		{"bad range type", "[ranges.x]\ntype = \"LogRange\"\n[[plots]]\nname = \"a\"\n", "LogRange"},
		{"bad place", "[[plots]]\nname = \"a\"\n[[plots.decorations]]\nclass = \"Grid\"\nplace = \"middle\"\n", "middle"},
		{"unknown class", "[[plots]]\nname = \"a\"\n[[plots.decorations]]\nclass = \"Compass\"\n", "Compass"},
		{"unknown source", "[[plots]]\nname = \"a\"\n[[plots.glyphs]]\nclass = \"Line\"\nsource = \"s\"\n", "unknown source"},
		{"unknown layout kind", "[[plots]]\nname = \"a\"\n[layout]\nkind = \"tabs\"\n", "tabs"},
		{"blank outside grid", "[[plots]]\nname = \"a\"\n[layout]\nkind = \"layout\"\nrows = [[\"a\", \"\"]]\n", "unknown plot \"\""},
		{"grid shape", "[[plots]]\nname = \"a\"\n[layout]\nkind = \"grid\"\n", "ncols"},
		{"toolbar location", "[[plots]]\nname = \"a\"\n[layout]\ntoolbar_location = \"inside\"\n", "inside"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc))
			if !errors.Is(err, errors.ErrCodeInvalidBlueprint) {
				t.Fatalf("err = %v, want INVALID_BLUEPRINT", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	doc := "[[plots]]\nname = \"a\"\nx_range = \"r1\"\ny_range = \"r2\"\n"
	_, err := Parse(strings.NewReader(doc))
	for _, r := range []string{"r1", "r2"} {
		if err == nil || !strings.Contains(err.Error(), r) {
			t.Errorf("err = %v, want mention of %s", err, r)
		}
	}
}

func TestBuildRejectsBadAttrs(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"plot attr", "[[plots]]\nname = \"a\"\nattrs = { colour = 1 }\n"},
		{"decoration slot", "[[plots]]\nname = \"a\"\n[[plots.decorations]]\nclass = \"Grid\"\nplace = \"left\"\n"},
		{"tool name", "[[plots]]\nname = \"a\"\ntools = [\"laser\"]\n"},
		{"glyph attr", "[[plots]]\nname = \"a\"\n[[plots.glyphs]]\nclass = \"Line\"\nattrs = { line_alpha = 3 }\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mustParse(t, tt.doc).Build()
			if !errors.Is(err, errors.ErrCodeInvalidBlueprint) {
				t.Errorf("err = %v, want INVALID_BLUEPRINT", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bp.toml")
	if err := os.WriteFile(path, []byte("[[plots]]\nname = \"a\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	bp, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(bp.Plots) != 1 {
		t.Errorf("plots = %d, want 1", len(bp.Plots))
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestExampleBlueprints(t *testing.T) {
	paths, err := filepath.Glob("../../examples/blueprints/*.toml")
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Skip("no example blueprints")
	}
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			bp, err := Load(path)
			if err != nil {
				t.Fatal(err)
			}
			res, err := bp.Build()
			if err != nil {
				t.Fatal(err)
			}
			defer res.Close()
			if res.Root == nil {
				t.Error("no layout root")
			}
		})
	}
}

package document

import (
	"bytes"
	"context"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/plotkit/pkg/model"
	"github.com/matzehuels/plotkit/pkg/models"
	"github.com/matzehuels/plotkit/pkg/plot"
)

func sharedPlots(t *testing.T) (a, b *plot.Plot, shared *models.DataRange1d) {
	t.Helper()
	shared, err := models.NewDataRange1d(nil)
	if err != nil {
		t.Fatal(err)
	}
	newPlot := func() *plot.Plot {
		y, err := models.NewRange1d(nil)
		if err != nil {
			t.Fatal(err)
		}
		p, err := plot.New(model.Attrs{"x_range": shared, "y_range": y, "title": nil, "toolbar": nil})
		if err != nil {
			t.Fatal(err)
		}
		return p
	}
	return newPlot(), newPlot(), shared
}

func TestCollectFollowsReferences(t *testing.T) {
	a, b, shared := sharedPlots(t)
	axis, _ := models.NewLinearAxis(nil)
	if err := a.AddLayout(axis, plot.Below); err != nil {
		t.Fatal(err)
	}
	row, err := models.NewRow([]models.LayoutDOM{a}, nil)
	if err != nil {
		t.Fatal(err)
	}

	objs := Collect(row)
	if objs[0] != model.Object(row) {
		t.Errorf("first object = %s, want the root", objs[0].Class())
	}
	ids := make(map[string]int)
	for _, o := range objs {
		ids[o.ID()]++
	}
	for _, want := range []model.Object{a, axis, shared, b} {
		if ids[want.ID()] != 1 {
			t.Errorf("%s collected %d times, want 1", want.Class(), ids[want.ID()])
		}
	}
	for id, n := range ids {
		if n != 1 {
			t.Errorf("%s collected %d times", id, n)
		}
	}
}

func TestCollectIsDeterministic(t *testing.T) {
	a, _, _ := sharedPlots(t)
	first := Collect(a)
	second := Collect(a)
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("order differs at %d", i)
		}
	}
}

func TestCollectGridCells(t *testing.T) {
	s, _ := models.NewSpacer(nil)
	grid, err := models.NewGridBox([]models.GridItem{{Item: s, Row: 0, Col: 0}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	objs := Collect(grid)
	if len(objs) != 2 || objs[1] != model.Object(s) {
		t.Errorf("Collect = %v", objs)
	}
}

func TestReferencesMarkBackrefs(t *testing.T) {
	a, b, shared := sharedPlots(t)
	var back []Ref
	for _, r := range References(Collect(a)) {
		if r.Back {
			back = append(back, r)
		}
	}
	if len(back) != 2 {
		t.Fatalf("back references = %d, want 2", len(back))
	}
	for i, want := range []*plot.Plot{a, b} {
		if back[i].From != model.Object(shared) || back[i].To != model.Object(want) || back[i].Attr != models.BackrefAttr {
			t.Errorf("back[%d] = %s.%s -> %s", i, back[i].From.Class(), back[i].Attr, back[i].To.Class())
		}
	}
}

func TestToDOT(t *testing.T) {
	a, _, shared := sharedPlots(t)

	dot := ToDOT([]model.Object{a}, Options{})
	for _, want := range []string{
		"digraph G {",
		`[label="Plot"]`,
		`[label="DataRange1d"]`,
		`[label="x_range"]`,
		`style=dashed`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %s", want)
		}
	}
	if !strings.Contains(dot, shared.ID()) {
		t.Error("DOT should name nodes by ID")
	}

	hidden := ToDOT([]model.Object{a}, Options{HideBackrefs: true})
	if strings.Contains(hidden, "style=dashed") {
		t.Error("HideBackrefs should drop dashed edges")
	}

	detailed := ToDOT([]model.Object{a}, Options{Detailed: true})
	if !strings.Contains(detailed, `id: `+a.ID()[:8]) {
		t.Error("detailed labels should include the short ID")
	}
	if strings.Contains(detailed, "plot_width: 600") {
		t.Error("detailed labels should skip default values")
	}
}

func TestRenderSVG(t *testing.T) {
	a, _, _ := sharedPlots(t)
	svg, err := RenderSVG(context.Background(), ToDOT([]model.Object{a}, Options{}))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Error("output should be SVG")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox = %s", got)
	}
	if plain := []byte("<svg><g/></svg>"); !bytes.Equal(normalizeViewBox(plain), plain) {
		t.Error("SVG without viewBox should be unchanged")
	}
}

func TestWriteJSON(t *testing.T) {
	a, b, shared := sharedPlots(t)
	row, err := models.NewRow([]models.LayoutDOM{a, b}, nil)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, row); err != nil {
		t.Fatal(err)
	}

	var doc struct {
		Roots      []string `json:"roots"`
		References []struct {
			ID         string                     `json:"id"`
			Type       string                     `json:"type"`
			Attributes map[string]json.RawMessage `json:"attributes"`
		} `json:"references"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}

	if len(doc.Roots) != 1 || doc.Roots[0] != row.ID() {
		t.Errorf("roots = %v, want [%s]", doc.Roots, row.ID())
	}
	if got, want := len(doc.References), len(Collect(row)); got != want {
		t.Errorf("references = %d, want %d", got, want)
	}

	for _, ref := range doc.References {
		switch ref.ID {
		case a.ID():
			if ref.Type != "Plot" {
				t.Errorf("plot type = %s", ref.Type)
			}
			var x struct{ ID string }
			if err := json.Unmarshal(ref.Attributes["x_range"], &x); err != nil || x.ID != shared.ID() {
				t.Errorf("x_range = %s, want a reference to %s", ref.Attributes["x_range"], shared.ID())
			}
		case shared.ID():
			var plots []struct{ ID string }
			if err := json.Unmarshal(ref.Attributes[models.BackrefAttr], &plots); err != nil || len(plots) != 2 {
				t.Errorf("plots = %s, want 2 references", ref.Attributes[models.BackrefAttr])
			}
		}
	}
}

func TestEncodeGridItems(t *testing.T) {
	sp, err := models.NewSpacer(nil)
	if err != nil {
		t.Fatal(err)
	}
	got := encode(reflect.ValueOf([]models.GridItem{{Item: sp, Row: 1, Col: 2}}))
	items, ok := got.([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("encode = %#v", got)
	}
	cell := items[0].(map[string]any)
	if ref, ok := cell["Item"].(map[string]string); !ok || ref["id"] != sp.ID() {
		t.Errorf("Item = %#v, want a reference", cell["Item"])
	}
	if cell["Row"] != 1 || cell["Col"] != 2 {
		t.Errorf("cell = %#v", cell)
	}
	if encode(reflect.ValueOf(func() {})) != nil {
		t.Error("functions should encode as null")
	}
}

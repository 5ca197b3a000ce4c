package document

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/plotkit/pkg/model"
)

// Options configures reference diagram rendering.
type Options struct {
	// Detailed adds the short ID and the scalar attributes that differ from
	// the schema default to node labels. When false, only the class is shown.
	Detailed bool

	// HideBackrefs drops range back-reference edges.
	HideBackrefs bool
}

// ToDOT converts the entity graph reachable from roots to Graphviz DOT.
// Back-references are drawn dashed and do not constrain the ranking.
func ToDOT(roots []model.Object, opts Options) string {
	objs := Collect(roots...)

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=10];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, o := range objs {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", o.ID(), fmtLabel(o, opts.Detailed))
	}

	buf.WriteString("\n")
	for _, r := range References(objs) {
		if r.Back {
			if opts.HideBackrefs {
				continue
			}
			fmt.Fprintf(&buf, "  %q -> %q [label=%q, style=dashed, constraint=false];\n", r.From.ID(), r.To.ID(), r.Attr)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", r.From.ID(), r.To.ID(), r.Attr)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(o model.Object, detailed bool) string {
	if !detailed {
		return o.Class()
	}
	parts := []string{o.Class(), "id: " + shortID(o.ID())}
	schema := o.Schema()
	attrs := o.Base().Attrs()
	for _, name := range schema.Names() {
		v := attrs[name]
		if !scalar(v) {
			continue
		}
		if def, err := schema.Default(name); err == nil && def == v {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %v", name, v))
	}
	return strings.Join(parts, "\n")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func scalar(v any) bool {
	switch v.(type) {
	case string, bool, int, int64, float64:
		return true
	}
	return false
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [ToPDF] or [ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root tag with an origin-based viewBox and
// matching pixel size.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

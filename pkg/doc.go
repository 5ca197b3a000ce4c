// Package pkg provides the core libraries for plotkit.
//
// # Overview
//
// Plotkit models plots as entities whose attributes are declared once per
// class in a schema registry. Classes inherit properties from their parents,
// pull in property groups from traits (line, fill, text, hatch), and may
// override inherited defaults. A plot owns ranges, scales, a toolbar, layout
// slots for axes, grids and annotations, and its renderers. Ranges shared by
// several plots keep a list of those plots, which is what links their
// panning and zooming.
//
// The pkg directory is organized into four areas:
//
//  1. [props], [model] - Schemas and the entity base (attribute storage,
//     change callbacks, themes)
//  2. [models], [plot] - The entity catalog and the Plot itself
//  3. [layouts] - Rows, columns, grid plots and grid specs
//  4. [theme], [blueprint], [document] - Theme files, TOML blueprints and the
//     entity graph as DOT, SVG or JSON
//
// # Architecture
//
// The typical data flow through plotkit:
//
//	theme file (yaml/toml/json)      blueprint (toml)
//	         ↓                              ↓
//	    [theme] package              [blueprint] package
//	         ↓                              ↓
//	    model.SetTheme  →  [plot].New, [layouts].GridPlot
//	                                        ↓
//	                        [document] package (DOT/SVG/JSON)
//
// # Quick Start
//
// Build two plots sharing an x range and put them in a grid:
//
//	x, _ := models.NewDataRange1d(nil)
//	a, _ := plot.New(model.Attrs{"x_range": x, "title": "Requests"})
//	b, _ := plot.New(model.Attrs{"x_range": x, "title": "Errors"})
//	defer a.Close()
//	defer b.Close()
//
//	axis, _ := models.NewLinearAxis(nil)
//	_ = a.AddLayout(axis, plot.Below)
//
//	root, _ := layouts.GridPlot([][]models.LayoutDOM{{a, b}}, layouts.DefaultGridOptions())
//
// # Main Packages
//
// [props] - Property kinds, defaults, traits and the class registry.
//
// [model] - The entity base: ID, attribute storage, reactive writes with
// change callbacks, non-reactive back-reference links and themes.
//
// [models] - Ranges, scales, axes, grids, annotations, glyphs, renderers,
// tools, toolbars, data sources and layout containers.
//
// [plot] - The Plot entity: dimension resolution, range back-references,
// layout slots and the renderer and tool builders.
//
// [layouts] - Row, column and nested layouts, grid plots with merged
// toolbars, and grid specs.
//
// [theme] - Theme files applied as class default overrides.
//
// [blueprint] - Declarative TOML documents describing ranges, data sources,
// plots and their layout.
//
// [document] - Entity graph traversal, Graphviz rendering and JSON export.
//
// [cache] - Rendered artifact cache for the CLI.
//
// [observability] - Hooks reporting entity and layout events.
//
// [errors] - Coded errors shared by every package.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/plot/...     # Specific package
//	go test -run Example ./... # Examples only
//
// [props]: https://pkg.go.dev/github.com/matzehuels/plotkit/pkg/props
// [model]: https://pkg.go.dev/github.com/matzehuels/plotkit/pkg/model
// [models]: https://pkg.go.dev/github.com/matzehuels/plotkit/pkg/models
// [plot]: https://pkg.go.dev/github.com/matzehuels/plotkit/pkg/plot
// [layouts]: https://pkg.go.dev/github.com/matzehuels/plotkit/pkg/layouts
// [theme]: https://pkg.go.dev/github.com/matzehuels/plotkit/pkg/theme
// [blueprint]: https://pkg.go.dev/github.com/matzehuels/plotkit/pkg/blueprint
// [document]: https://pkg.go.dev/github.com/matzehuels/plotkit/pkg/document
// [cache]: https://pkg.go.dev/github.com/matzehuels/plotkit/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/plotkit/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/plotkit/pkg/errors
package pkg

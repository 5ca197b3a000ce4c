// Package plot implements the Plot entity: a single plotting area with its
// ranges, scales, toolbar, title, decorations and data renderers.
//
// # Construction
//
// [New] builds a plot from schema defaults, the active theme and explicit
// attributes:
//
//	p, err := plot.New(model.Attrs{
//	    "title":       "Latency",
//	    "plot_width":  400,
//	    "plot_height": 300,
//	    "x_range":     shared,
//	})
//
// A plain string title is converted to a [models.Title]. Width and height
// left unset are seeded once from plot_width and plot_height; later changes
// to plot_width do not propagate.
//
// # Range Back-references
//
// After construction every range the plot uses (primary and extra, x then y)
// that declares a "plots" list gets the plot appended with a non-reactive
// [model.Model.Link]. A range that is both primary and extra is linked twice.
// [Plot.Close] removes those entries again.
//
// # Layout Slots
//
// Decorations live in five slots. Above, Below, Left and Right accept axes
// and annotations; Center accepts grids and annotations. [Plot.AddLayout]
// rejects anything else with INVALID_SLOT. [Plot.RemoveLayout] removes every
// occurrence from every slot and is a no-op for absent items.
//
// # Builders
//
// [Plot.AddRenderers], [Plot.AddGlyph] and [Plot.AddTools] append in call
// order without de-duplication. Sequences are replaced, never written in
// place, so callers holding an old slice keep seeing the old contents.
package plot

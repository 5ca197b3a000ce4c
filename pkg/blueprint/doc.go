// Package blueprint builds plots and plot grids from TOML documents.
//
// A blueprint declares named ranges and data sources, a list of plots and an
// optional layout:
//
//	[ranges.time]
//	type = "DataRange1d"
//
//	[sources.metrics]
//	t = [1, 2, 3]
//	latency = [12.5, 9.1, 14.2]
//
//	[[plots]]
//	name = "latency"
//	title = "Latency"
//	width = 400
//	height = 300
//	x_range = "time"
//	tools = ["pan", "wheel_zoom", "reset"]
//
//	[[plots.decorations]]
//	class = "LinearAxis"
//	place = "below"
//	attrs = { axis_label = "seconds" }
//
//	[[plots.glyphs]]
//	class = "Line"
//	source = "metrics"
//	attrs = { x = "t", y = "latency" }
//
//	[layout]
//	kind = "grid"
//	ncols = 2
//
// Plots naming the same range share one range object, so the range lists
// every one of them in its back-references.
//
// Layout kinds are "row", "column", "layout" (rows of plots) and "grid"
// (rows, or items with ncols). Without a layout a single plot is the root
// and several plots are stacked in a column.
package blueprint

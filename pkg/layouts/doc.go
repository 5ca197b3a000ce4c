// Package layouts arranges plots and other layout entities into rows,
// columns and grids.
//
// [Row] and [Column] wrap children in a box. [Layout] builds a column of
// rows from nested lists and forces one sizing mode on every leaf.
// [GridPlot] places plots in a [models.GridBox] and, by default, merges the
// tools of every plot into one shared toolbar:
//
//	root, err := layouts.GridPlot([][]models.LayoutDOM{
//	    {p1, p2},
//	    {nil, p3},
//	}, layouts.DefaultGridOptions())
//
// [GridSpec] describes the same grid cell by cell, with negative indices
// counting from the end.
package layouts

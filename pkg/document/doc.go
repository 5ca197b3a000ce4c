// Package document walks the entity graph reachable from a set of roots and
// renders it as a Graphviz diagram.
//
// Every attribute value that holds an entity, directly or inside lists, maps
// and grid cells, is a reference. [Collect] returns the reachable entities
// breadth-first in a stable order; [References] lists the edges between
// them. Range back-references ("plots") are marked so diagrams can draw them
// dashed.
//
//	dot := document.ToDOT([]model.Object{root}, document.Options{})
//	svg, err := document.RenderSVG(ctx, dot)
//
// [WriteJSON] serializes the same graph as a flat list of entities whose
// attributes refer to each other by ID.
//
// [Convert] (and the [ToPDF] and [ToPNG] shorthands) pipe the SVG through
// rsvg-convert, which must be installed: brew install librsvg (macOS),
// apt install librsvg2-bin (Linux).
package document

// Package models declares the entities a plot collaborates with: ranges,
// scales, toolbars and tools, titles and annotations, axes, grids, data
// sources, glyphs, glyph renderers, and the layout containers plots are
// arranged in.
//
// Every entity embeds [model.Model] and is declared with a registered
// [props.Schema]. Families that share one Go type (tools, axes, glyphs,
// annotations) are distinguished by class name:
//
//	pan, _ := models.NewTool("PanTool", nil)
//	axis, _ := models.NewAxis("LinearAxis", model.Attrs{"axis_label": "time"})
//
// # Slot Variants
//
// Plot layout slots accept closed sets of types. [SideDecoration] is
// implemented by axes and annotations, [CenterDecoration] by grids and
// annotations. The marker methods are unexported so the sets cannot grow
// outside this package.
//
// # Back-references
//
// [DataRange1d] and [FactorRange] declare a "plots" list that plots append
// themselves to with [model.Model.Link]. [Range1d] declares none; plots skip
// it silently.
package models

package layouts

import (
	"maps"
	"slices"

	"github.com/matzehuels/plotkit/pkg/errors"
	"github.com/matzehuels/plotkit/pkg/model"
	"github.com/matzehuels/plotkit/pkg/models"
	"github.com/matzehuels/plotkit/pkg/observability"
	"github.com/matzehuels/plotkit/pkg/plot"
)

// GridOptions configures GridPlot.
type GridOptions struct {
	NCols           int         // Row length for GridPlotFlat
	SizingMode      string      // sizing_mode of the returned root, empty for unset
	ToolbarLocation string      // above, below, left or right; empty attaches no toolbar
	MergeTools      bool        // Collect every plot's tools into one shared toolbar
	PlotWidth       int         // Overrides plot_width of every plot cell when > 0
	PlotHeight      int         // Overrides plot_height of every plot cell when > 0
	ToolbarOptions  model.Attrs // Extra attributes for the shared ProxyToolbar
}

// DefaultGridOptions returns options with a merged toolbar above the grid.
func DefaultGridOptions() GridOptions {
	return GridOptions{ToolbarLocation: "above", MergeTools: true}
}

// GridPlot places children in a grid, one inner slice per row. Nil cells
// stay empty.
//
// With MergeTools, the tools of every plot in the grid (including plots
// nested in rows and columns) are collected into one ProxyToolbar and each
// plot's toolbar_location is cleared. When a ToolbarLocation is also set the
// result is a Column (above, below) or Row (left, right) holding the grid
// and a ToolbarBox. Otherwise the bare GridBox is returned.
func GridPlot(children [][]models.LayoutDOM, opts GridOptions) (models.LayoutDOM, error) {
	if opts.ToolbarLocation != "" && !slices.Contains(models.Locations, opts.ToolbarLocation) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid toolbar location %q", opts.ToolbarLocation)
	}

	var (
		items []models.GridItem
		tools []*models.Tool
		plots int
	)
	for y, row := range children {
		for x, item := range row {
			if item == nil {
				continue
			}
			if opts.MergeTools {
				t, n, err := takeTools(item)
				if err != nil {
					return nil, err
				}
				tools = append(tools, t...)
				plots += n
			}
			if p, ok := item.(*plot.Plot); ok {
				if err := resize(p, opts.PlotWidth, opts.PlotHeight); err != nil {
					return nil, err
				}
			}
			items = append(items, models.GridItem{Item: item, Row: y, Col: x})
		}
	}

	if !opts.MergeTools || opts.ToolbarLocation == "" {
		grid, err := models.NewGridBox(items, model.Attrs{"sizing_mode": sizingValue(opts.SizingMode)})
		if err != nil {
			return nil, err
		}
		observability.Layouts().OnLayoutBuilt("grid", len(items))
		return grid, nil
	}

	grid, err := models.NewGridBox(items, nil)
	if err != nil {
		return nil, err
	}
	observability.Layouts().OnLayoutBuilt("grid", len(items))

	tbAttrs := maps.Clone(opts.ToolbarOptions)
	if tbAttrs == nil {
		tbAttrs = model.Attrs{}
	}
	tbAttrs["tools"] = tools
	proxy, err := models.NewProxyToolbar(tbAttrs)
	if err != nil {
		return nil, err
	}
	observability.Layouts().OnToolsMerged(plots, len(tools))

	toolbar, err := models.NewToolbarBox(proxy, opts.ToolbarLocation)
	if err != nil {
		return nil, err
	}

	var (
		root *models.Box
		mode = WithSizingMode(opts.SizingMode)
	)
	switch opts.ToolbarLocation {
	case "above":
		root, err = Column([]models.LayoutDOM{toolbar, grid}, mode)
	case "below":
		root, err = Column([]models.LayoutDOM{grid, toolbar}, mode)
	case "left":
		root, err = Row([]models.LayoutDOM{toolbar, grid}, mode)
	default:
		root, err = Row([]models.LayoutDOM{grid, toolbar}, mode)
	}
	if err != nil {
		return nil, err
	}
	return root, nil
}

// takeTools collects the toolbar tools of every plot under item and clears
// their toolbar_location.
func takeTools(item models.LayoutDOM) (tools []*models.Tool, plots int, err error) {
	models.Walk(item, func(l models.LayoutDOM) bool {
		p, ok := l.(*plot.Plot)
		if err != nil || !ok {
			return err == nil
		}
		plots++
		if tb := p.Toolbar(); tb != nil {
			tools = append(tools, tb.Tools()...)
		}
		err = p.Set("toolbar_location", nil)
		return err == nil
	})
	return tools, plots, err
}

// GridPlotFlat splits a flat list into rows of opts.NCols and calls
// GridPlot.
func GridPlotFlat(children []models.LayoutDOM, opts GridOptions) (models.LayoutDOM, error) {
	if opts.NCols <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "ncols must be positive, got %d", opts.NCols)
	}
	return GridPlot(slices.Collect(slices.Chunk(children, opts.NCols)), opts)
}

func resize(p *plot.Plot, width, height int) error {
	attrs := model.Attrs{}
	if width > 0 {
		attrs["plot_width"] = width
	}
	if height > 0 {
		attrs["plot_height"] = height
	}
	return p.Update(attrs)
}

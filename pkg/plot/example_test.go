package plot_test

import (
	"fmt"

	"github.com/matzehuels/plotkit/pkg/model"
	"github.com/matzehuels/plotkit/pkg/models"
	"github.com/matzehuels/plotkit/pkg/plot"
)

func Example() {
	shared, _ := models.NewDataRange1d(nil)

	left, _ := plot.New(model.Attrs{"title": "Requests", "x_range": shared, "plot_width": 400, "plot_height": 300})
	right, _ := plot.New(model.Attrs{"title": "Errors", "x_range": shared, "width": 700})

	fmt.Println(left.Title().Text(), left.Width(), left.Height())
	fmt.Println(right.Title().Text(), right.Width(), right.Height())
	fmt.Println("plots sharing x:", len(models.Backrefs(shared)))

	right.Close()
	fmt.Println("after close:", len(models.Backrefs(shared)))
	// Output:
	// Requests 400 300
	// Errors 700 600
	// plots sharing x: 2
	// after close: 1
}

func ExamplePlot_AddLayout() {
	p, _ := plot.New(nil)
	xaxis, _ := models.NewLinearAxis(model.Attrs{"axis_label": "time"})
	grid, _ := models.NewGrid(nil)

	_ = p.AddLayout(xaxis, plot.Below)
	_ = p.AddLayout(grid, plot.Center)
	err := p.AddLayout(grid, plot.Left)

	fmt.Println(len(p.Below()), len(p.Center()))
	fmt.Println(err)

	_ = p.RemoveLayout(xaxis)
	_ = p.RemoveLayout(xaxis)
	fmt.Println(len(p.Below()))
	// Output:
	// 1 1
	// INVALID_SLOT: Grid cannot be placed in the left slot
	// 0
}

func ExamplePlot_AddGlyph() {
	p, _ := plot.New(nil)
	circle, _ := models.NewGlyph("Circle", model.Attrs{"size": 8.0})

	r, _ := p.AddGlyph(circle, plot.WithColumns(map[string][]any{
		"x": {1, 2, 3},
		"y": {4, 5, 6},
	}))
	_ = p.AddTools(mustTools("pan", "wheel_zoom")...)

	fmt.Println(r.Class(), r.DataSource().ColumnNames(), r.DataSource().Len())
	fmt.Println(len(p.Renderers()), len(p.Toolbar().Tools()))
	// Output:
	// GlyphRenderer [x y] 3
	// 1 2
}

func mustTools(names ...string) []*models.Tool {
	tools, err := models.ToolsByName(names...)
	if err != nil {
		panic(err)
	}
	return tools
}

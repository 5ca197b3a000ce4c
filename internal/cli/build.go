package cli

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/plotkit/pkg/blueprint"
	"github.com/matzehuels/plotkit/pkg/models"
	"github.com/matzehuels/plotkit/pkg/plot"
)

// buildCommand creates the build command that constructs a blueprint and
// summarizes the result.
func (c *CLI) buildCommand() *cobra.Command {
	var themePath string

	cmd := &cobra.Command{
		Use:   "build [blueprint.toml]",
		Short: "Build the plots of a blueprint and summarize them",
		Long: `Build the plots of a blueprint and summarize them.

The blueprint is parsed, validated and built: shared ranges, data sources,
plots with their decorations and glyphs, and the layout. The summary lists
each plot and the plots every shared range links back to.

A theme file (YAML, TOML or JSON) overrides class defaults. Without --theme
the PLOTKIT_THEME environment variable is used when set.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeBlueprint,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.buildBlueprint(args[0], themePath)
			if err != nil {
				return err
			}
			defer res.Close()

			fmt.Println(plotTable(res))
			printRanges(res)
			printNextStep("Render the entity graph", appName+" graph "+args[0]+" -o graph.svg")
			return nil
		},
	}

	themeFlag(cmd, &themePath)

	return cmd
}

// buildBlueprint loads the theme and blueprint and builds it.
func (c *CLI) buildBlueprint(path, themePath string) (*blueprint.Result, error) {
	prog := newProgress(c.Logger)

	used, err := c.applyTheme(themePath)
	if err != nil {
		return nil, err
	}
	bp, err := blueprint.Load(path)
	if err != nil {
		return nil, err
	}
	res, err := bp.Build()
	if err != nil {
		return nil, err
	}

	if used != "" {
		c.Logger.Info("Applied theme", "path", used)
	}
	prog.done(fmt.Sprintf("Built %d plots from %s", len(res.Plots), path))
	return res, nil
}

// plotTable renders one row per plot in declaration order.
func plotTable(res *blueprint.Result) string {
	names := rangeNames(res)
	rows := make([][]string, 0, len(res.Order))
	for _, name := range res.Order {
		p := res.Plots[name]
		title := ""
		if t := p.Title(); t != nil {
			title = t.Text()
		}
		tools := 0
		if tb := p.Toolbar(); tb != nil {
			tools = len(tb.Tools())
		}
		rows = append(rows, []string{
			name,
			title,
			fmt.Sprintf("%dx%d", p.Width(), p.Height()),
			describeRange(p.XRange(), names),
			describeRange(p.YRange(), names),
			fmt.Sprint(len(p.Renderers())),
			fmt.Sprint(decorationCount(p)),
			fmt.Sprint(tools),
		})
	}
	return renderTable(
		[]string{"Plot", "Title", "Size", "X range", "Y range", "Renderers", "Decorations", "Tools"},
		rows, nil)
}

func decorationCount(p *plot.Plot) int {
	n := 0
	for _, place := range []plot.Place{plot.Above, plot.Below, plot.Left, plot.Right, plot.Center} {
		n += len(p.Slot(place))
	}
	return n
}

// rangeNames maps shared range IDs to their blueprint names.
func rangeNames(res *blueprint.Result) map[string]string {
	names := make(map[string]string, len(res.Ranges))
	for name, r := range res.Ranges {
		names[r.ID()] = name
	}
	return names
}

func describeRange(r models.Range, names map[string]string) string {
	if r == nil {
		return "—"
	}
	if name, ok := names[r.ID()]; ok {
		return name
	}
	return r.Class()
}

// printRanges lists the plots each shared range links back to.
func printRanges(res *blueprint.Result) {
	if len(res.Ranges) == 0 {
		return
	}
	plotNames := make(map[string]string, len(res.Plots))
	for name, p := range res.Plots {
		plotNames[p.ID()] = name
	}

	for _, name := range slices.Sorted(maps.Keys(res.Ranges)) {
		r := res.Ranges[name]
		if !models.HasBackrefs(r) {
			printInfo("%s %s", StyleValue.Render(name), StyleDim.Render(r.Class()+", no back-references"))
			continue
		}
		var users []string
		for _, o := range models.Backrefs(r) {
			users = append(users, plotNames[o.ID()])
		}
		if len(users) == 0 {
			printWarning("range %s is not used by any plot", name)
			continue
		}
		printSuccess("%s %s", StyleValue.Render(name), StyleDim.Render("linked by "+strings.Join(users, ", ")))
	}
	printStats(
		stat{len(res.Plots), "plots"},
		stat{len(res.Ranges), "ranges"},
		stat{len(res.Sources), "sources"},
	)
}

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/plotkit/pkg/cache"
	"github.com/matzehuels/plotkit/pkg/document"
	"github.com/matzehuels/plotkit/pkg/errors"
	"github.com/matzehuels/plotkit/pkg/model"
)

// Output formats supported by the graph command.
const (
	formatDOT  = "dot"
	formatSVG  = "svg"
	formatPDF  = "pdf"
	formatPNG  = "png"
	formatJSON = "json"
)

var graphFormats = []string{formatDOT, formatSVG, formatPDF, formatPNG, formatJSON}

// graphOptions holds the graph command flags.
type graphOptions struct {
	output       string
	format       string
	theme        string
	detailed     bool
	hideBackrefs bool
	noCache      bool
	scale        float64
}

// graphCommand creates the graph command that renders the entity graph of a
// built blueprint.
func (c *CLI) graphCommand() *cobra.Command {
	opts := graphOptions{scale: 2}

	cmd := &cobra.Command{
		Use:   "graph [blueprint.toml]",
		Short: "Render the entity graph of a blueprint",
		Long: `Render the entity graph of a blueprint.

Every entity reachable from the layout root becomes a node and every entity
reference an edge. Range back-references to plots are drawn dashed.

JSON output lists every entity with its attributes, references written as
{"id": ...}.

The format follows the output extension (.dot, .svg, .pdf, .png, .json) unless
--format is given. Without --output the DOT source is printed. PDF and PNG
export require rsvg-convert. Rendered artifacts are cached under
$XDG_CACHE_HOME/plotkit (or ~/.cache/plotkit).`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeBlueprint,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveFormat(opts.format, opts.output)
			if err != nil {
				return err
			}
			opts.format = format
			return c.runGraph(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: print DOT to stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: dot, svg, pdf, png, json")
	themeFlag(cmd, &opts.theme)
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show IDs and non-default attributes in node labels")
	cmd.Flags().BoolVar(&opts.hideBackrefs, "no-backrefs", false, "omit range back-reference edges")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the rendered artifact cache")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(graphFormats, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// resolveFormat picks the explicit format, else the output extension, else DOT.
func resolveFormat(format, output string) (string, error) {
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
	}
	if format == "" {
		return formatDOT, nil
	}
	if slices.Contains(graphFormats, format) {
		return format, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unsupported format %q (use one of %s)", format, strings.Join(graphFormats, ", "))
}

func (c *CLI) runGraph(ctx context.Context, path string, opts graphOptions) error {
	res, err := c.buildBlueprint(path, opts.theme)
	if err != nil {
		return err
	}
	defer res.Close()

	roots := []model.Object{res.Root}
	if opts.format == formatJSON {
		return writeJSON(roots, opts.output)
	}
	dot := document.ToDOT(roots, document.Options{Detailed: opts.detailed, HideBackrefs: opts.hideBackrefs})
	c.Logger.Debug("Entity graph", "entities", len(document.Collect(roots...)))

	store := c.openStore(opts.noCache)
	defer store.Close()

	data, err := c.renderCached(ctx, store, dot, opts.format, opts.scale)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printSuccess("Rendered entity graph")
	printFile(opts.output)
	return nil
}

// renderCached returns the artifact for dot from store, rendering and storing
// it on a miss. DOT output bypasses the cache.
func (c *CLI) renderCached(ctx context.Context, store cache.Store, dot, format string, scale float64) ([]byte, error) {
	if format == formatDOT {
		return []byte(dot), nil
	}
	key := cache.NewKey(dot, format, scale)
	if a, ok, err := store.Load(ctx, key); err == nil && ok {
		c.Logger.Debug("Artifact cache hit", "artifact", key, "created", a.CreatedAt.Format(time.DateTime))
		return a.Data, nil
	}
	data, err := renderGraph(ctx, dot, format, scale)
	if err != nil {
		return nil, err
	}
	if err := store.Save(ctx, key, data, cache.DefaultTTL); err != nil {
		c.Logger.Warn("Could not cache artifact", "err", err)
	}
	return data, nil
}

// renderGraph converts DOT source to the requested format.
func renderGraph(ctx context.Context, dot, format string, scale float64) ([]byte, error) {
	if format == formatDOT {
		return []byte(dot), nil
	}
	svg, err := document.RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	switch format {
	case formatPDF:
		return document.ToPDF(ctx, svg)
	case formatPNG:
		return document.ToPNG(ctx, svg, scale)
	}
	return svg, nil
}

func writeJSON(roots []model.Object, output string) error {
	if output == "" {
		return document.WriteJSON(os.Stdout, roots...)
	}
	if err := document.ExportJSON(output, roots...); err != nil {
		return err
	}
	printSuccess("Exported entity graph")
	printFile(output)
	return nil
}

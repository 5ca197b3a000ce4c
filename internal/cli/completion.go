package cli

import (
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/plotkit/pkg/props"
	"github.com/matzehuels/plotkit/pkg/theme"
)

// completionShells maps a shell name to its script generator.
var completionShells = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash":       func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	"zsh":        (*cobra.Command).GenZshCompletion,
	"fish":       func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	"powershell": (*cobra.Command).GenPowerShellCompletionWithDesc,
}

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	shells := slices.Sorted(maps.Keys(completionShells))
	return &cobra.Command{
		Use:   "completion [" + strings.Join(shells, "|") + "]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for plotkit and print it to stdout.

Besides commands and flags, the scripts complete class names for "schema",
blueprint files for "build" and "graph", theme files for --theme and output
formats for --format. For example:

  $ source <(plotkit completion bash)
  $ plotkit completion fish | source`,
		DisableFlagsInUseLine: true,
		ValidArgs:             shells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return completionShells[args[0]](cmd.Root(), cmd.OutOrStdout())
		},
	}
}

// completeClasses offers the registered class names starting with toComplete.
func completeClasses(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, class := range props.Classes() {
		if strings.HasPrefix(class, toComplete) {
			out = append(out, class)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// completeBlueprint restricts the single positional argument to TOML files.
func completeBlueprint(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"toml"}, cobra.ShellCompDirectiveFilterFileExt
}

// themeFlag registers --theme/-t on cmd with completion of theme files.
func themeFlag(cmd *cobra.Command, path *string) {
	cmd.Flags().StringVarP(path, "theme", "t", "", "theme file ("+strings.Join(theme.Formats, ", ")+")")
	_ = cmd.RegisterFlagCompletionFunc("theme", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return theme.Formats, cobra.ShellCompDirectiveFilterFileExt
	})
}

package cli

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/plotkit/pkg/cache"
)

// cacheCommand creates the cache management command. Without a subcommand
// it summarizes the cached artifacts.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the rendered artifact cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := openCacheDir()
			if err != nil {
				return err
			}
			st, err := dir.Stats(cmd.Context())
			if err != nil {
				return err
			}
			if st.Entries == 0 {
				printInfo("Cache is empty")
				printDetail("Directory: %s", dir.Root())
				return nil
			}
			printInfo("%d cached artifacts, %s", st.Entries, formatBytes(st.Bytes))
			var counts []stat
			for _, format := range slices.Sorted(maps.Keys(st.ByFormat)) {
				counts = append(counts, stat{st.ByFormat[format], format})
			}
			counts = append(counts, stat{st.Expired, "expired"})
			printStats(counts...)
			printDetail("Directory: %s", dir.Root())
			if st.Expired > 0 {
				printNextStep("Remove expired artifacts", appName+" cache prune")
			}
			return nil
		},
	}

	cmd.AddCommand(c.cachePruneCommand())
	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cachePruneCommand creates the "cache prune" subcommand.
func (c *CLI) cachePruneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Remove expired and unreadable artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := openCacheDir()
			if err != nil {
				return err
			}
			n, err := dir.Prune(cmd.Context())
			if err != nil {
				return err
			}
			c.Logger.Debug("Pruned artifact cache", "dir", dir.Root(), "removed", n)
			printSuccess("Pruned %d artifacts", n)
			return nil
		},
	}
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := openCacheDir()
			if err != nil {
				return err
			}
			n, err := dir.Clear(cmd.Context())
			if err != nil {
				return err
			}
			printSuccess("Cleared %d cached artifacts", n)
			printDetail("Directory: %s", dir.Root())
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}

// openCacheDir opens the artifact cache under cacheDir.
func openCacheDir() (*cache.Dir, error) {
	dir, err := cacheDir()
	if err != nil {
		return nil, err
	}
	return cache.Open(dir)
}

// openStore returns the store the graph command renders through. Without a
// usable cache directory rendering is uncached.
func (c *CLI) openStore(noCache bool) cache.Store {
	if noCache {
		return cache.Disabled()
	}
	dir, err := openCacheDir()
	if err != nil {
		c.Logger.Warn("Artifact cache unavailable", "err", err)
		return cache.Disabled()
	}
	return dir
}

// cacheDir returns the cache directory using XDG standard (~/.cache/plotkit/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

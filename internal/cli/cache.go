package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/versionlens/pkg/cache"
	"github.com/matzehuels/versionlens/pkg/config"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the persistent version cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached latest version",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := c.build(ctx)
			if err != nil {
				return err
			}
			defer svc.Close()

			if err := svc.Store.Clear(ctx); err != nil {
				return err
			}
			printSuccess("Cache cleared")
			if location := cacheLocation(svc.Settings, svc.Store); location != "" {
				printDetail("%s", location)
			}
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the cache lives",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.build(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.Close()

			location := cacheLocation(svc.Settings, svc.Store)
			if location == "" {
				printInfo("Caching is disabled")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), location)
			return nil
		},
	}
}

// cacheLocation describes the backing storage of store, or "" for none.
func cacheLocation(s *config.Settings, store cache.Store) string {
	switch st := store.(type) {
	case *cache.FileCache:
		return st.Dir()
	case *cache.RedisCache:
		return "redis://" + s.Cache.RedisAddr
	default:
		return ""
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/versionlens/pkg/deps/languages"
	"github.com/matzehuels/versionlens/pkg/errors"
)

// urlCommand creates the url command.
func (c *CLI) urlCommand() *cobra.Command {
	names := make([]string, len(languages.All))
	for i, l := range languages.All {
		names[i] = l.Name
	}

	return &cobra.Command{
		Use:   "url <language|registry> <package>",
		Short: "Print the registry page of a package",
		Example: `  versionlens url javascript react
  versionlens url crates.io serde`,
		Args: cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return names, cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			lang := languages.Find(args[0])
			if lang == nil || lang.PackageURL == nil {
				return errors.New(errors.ErrCodeUnsupported, "unknown language %q (supported: %v)", args[0], names)
			}
			if err := errors.ValidatePackageName(args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), lang.PackageURL(args[1]))
			return nil
		},
	}
}

package cmd

import (
	"fmt"

	"github.com/nfrund/mockcord/cmd/mockcord-cli/internal/format"
	"github.com/spf13/cobra"
)

func newProfilesCmd(a *app) *cobra.Command {
	var outputFormat string

	list := &cobra.Command{
		Use:   "list",
		Short: "List the configured profiles and avatars",
		Long: `List the profiles and named avatars messages can refer to.

Output formats:
  table - Human-readable table format (default)
  json  - Machine-readable JSON format`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}

			switch outputFormat {
			case "table":
				return format.ProfilesTable(cmd.OutOrStdout(), opts)
			case "json":
				return format.ProfilesJSON(cmd.OutOrStdout(), opts)
			default:
				return fmt.Errorf("unknown format %q, want table or json", outputFormat)
			}
		},
	}
	list.Flags().StringVarP(&outputFormat, "format", "f", "table", "output format (table, json)")

	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Inspect author profiles",
	}
	cmd.AddCommand(list)
	return cmd
}

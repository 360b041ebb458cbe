package cmd

import (
	"fmt"

	"github.com/nfrund/mockcord/cmd/mockcord-cli/internal/format"
	"github.com/nfrund/mockcord/internal/stories"
	"github.com/spf13/cobra"
)

func newStoriesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stories",
		Short: "List and render the built-in example conversations",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all stories",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return format.StoriesTable(cmd.OutOrStdout(), stories.All())
			},
		},
		newStoriesRenderCmd(a),
	)
	return cmd
}

func newStoriesRenderCmd(a *app) *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "render <name>",
		Short: "Render one story to HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ok := stories.Find(args[0])
			if !ok {
				return fmt.Errorf("unknown story %q, see \"mockcord-cli stories list\"", args[0])
			}

			opts, err := a.options()
			if err != nil {
				return err
			}
			return out.write(cmd.Context(), cmd, a, s.Name, s.Render(opts))
		},
	}
	out.register(cmd)
	return cmd
}

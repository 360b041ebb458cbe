package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nfrund/mockcord/internal/document"
	"github.com/nfrund/mockcord/internal/storage"
	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a JSON conversation to HTML",
		Long: `Render a conversation document to HTML.

Examples:
  mockcord-cli render conversation.json
  mockcord-cli render conversation.json --page --out site/index.html
  mockcord-cli render conversation.json --options profiles.json --locale de-DE`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := args[0]

			data, err := storage.ReadAll(ctx, a.store, path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			conv, err := document.Decode(data)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			opts, err := a.options()
			if err != nil {
				return err
			}

			node, err := conv.Render(opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			return out.write(ctx, cmd, a, title, node)
		},
	}
	out.register(cmd)
	return cmd
}

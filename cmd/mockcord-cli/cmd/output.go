package cmd

import (
	"bytes"
	"context"
	"fmt"

	"github.com/a-h/templ"
	"github.com/nfrund/mockcord/internal/rendering"
	"github.com/nfrund/mockcord/internal/view"
	"github.com/nfrund/mockcord/web/src/templates/layouts"
	"github.com/spf13/cobra"
	g "maragu.dev/gomponents"
)

// outputFlags are shared by the commands that produce HTML.
type outputFlags struct {
	out  string
	page bool
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "write HTML to this file instead of stdout")
	cmd.Flags().BoolVar(&o.page, "page", false, "wrap the fragment in a complete HTML page")
}

// write renders node, optionally as a full page, to --out or stdout.
func (o *outputFlags) write(ctx context.Context, cmd *cobra.Command, a *app, title string, node g.Node) error {
	var component templ.Component = view.Fragment(node)
	if o.page {
		component = layouts.Base(title, a.cfg.StylesheetURL, component)
	}

	html, err := rendering.NewUniversalRenderer().RenderComponent(ctx, component)
	if err != nil {
		return err
	}

	if o.out == "" {
		_, err = cmd.OutOrStdout().Write(append(html, '\n'))
		return err
	}

	n, err := a.store.Save(ctx, o.out, bytes.NewReader(html))
	if err != nil {
		return fmt.Errorf("write %s: %w", o.out, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d bytes to %s\n", n, o.out)
	return nil
}

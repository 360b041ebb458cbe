package cmd

import (
	"fmt"
	"os"

	"github.com/nfrund/mockcord/internal/config"
	"github.com/nfrund/mockcord/internal/discord"
	"github.com/nfrund/mockcord/internal/logging"
	"github.com/nfrund/mockcord/internal/profiles"
	"github.com/nfrund/mockcord/internal/storage"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

// app carries what every command needs once flags are parsed.
type app struct {
	store storage.Store
	cfg   *config.Config

	optionsFile string
	locale      string
}

// options loads the configured avatars and profiles. Flags win over
// MOCKCORD_* variables.
func (a *app) options() (*discord.Options, error) {
	tag, err := language.Parse(a.locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", a.locale, err)
	}
	return profiles.Load(a.store.Fs(), a.optionsFile, tag)
}

// NewRootCmd builds the command tree on top of store.
func NewRootCmd(store storage.Store) *cobra.Command {
	a := &app{store: store}

	root := &cobra.Command{
		Use:   "mockcord-cli",
		Short: "Render mock chat messages to HTML",
		Long: `mockcord-cli renders chat conversations described as JSON into static HTML
using the discord-* component markup.

Use "mockcord-cli [command] --help" for more information about a command.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			a.cfg = cfg
			if !cmd.Flags().Changed("options") {
				a.optionsFile = cfg.OptionsFile
			}
			if !cmd.Flags().Changed("locale") {
				a.locale = cfg.Locale
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.optionsFile, "options", "", "JSON file with avatars and profiles (default $MOCKCORD_OPTIONS_FILE)")
	root.PersistentFlags().StringVar(&a.locale, "locale", "", "locale for timestamps (default $MOCKCORD_LOCALE or en-US)")

	root.AddCommand(
		newRenderCmd(a),
		newStoriesCmd(a),
		newProfilesCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the CLI against the real filesystem.
func Execute() {
	logging.New()
	if err := NewRootCmd(storage.NewOSStore()).Execute(); err != nil {
		os.Exit(1)
	}
}

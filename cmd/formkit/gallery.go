package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/formkit/internal/theme"
	"github.com/alexisbeaulieu97/formkit/internal/tui/gallery"
)

var errNoTerminal = errors.New("stdin and stdout must be a terminal")

// isInteractive is swapped in tests.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

type galleryOptions struct {
	terminalColors bool
}

func newGalleryCmd(app *AppContext) *cobra.Command {
	opts := &galleryOptions{}

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Launch the interactive control gallery",
		Long: `Launch the interactive gallery. Without --config it shows every kind,
variant and visual state; with --config it shows the controls the document
declares. Tab cycles focus and ctrl+t toggles the theme.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isInteractive() {
				return newCommandError("start gallery", "no terminal attached", errNoTerminal, "Run formkit gallery from an interactive terminal.")
			}
			m, err := buildGallery(cmd, app, opts)
			if err != nil {
				return err
			}
			app.Logger.Info("launching gallery")
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				app.Logger.Error(err, "gallery exited")
				return newCommandError("run gallery", "terminal program failed", err, "Check that your terminal supports the alternate screen.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.terminalColors, "terminal-colors", false, "Mirror the theme into the terminal's default colours (persists after exit)")

	return cmd
}

// buildGallery assembles the model from the provider on cmd's context and
// the optional config document.
func buildGallery(cmd *cobra.Command, app *AppContext, opts *galleryOptions) (gallery.Model, error) {
	provider := theme.MustFromContext(cmd.Context())
	if opts.terminalColors {
		if err := provider.Attach(theme.NewTerminalScope(cmd.OutOrStdout())); err != nil {
			return gallery.Model{}, err
		}
	}

	galleryOpts := gallery.Options{Provider: provider, Logger: app.Logger}
	if app.Config != nil {
		sections, err := app.Config.GallerySections(nil)
		if err != nil {
			return gallery.Model{}, err
		}
		galleryOpts.Title = app.Config.Title
		galleryOpts.Sections = sections
	}
	return gallery.New(galleryOpts), nil
}

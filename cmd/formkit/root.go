package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/formkit/internal/theme"
)

func newRootCmd() *cobra.Command {
	app := newAppContext()

	cmd := &cobra.Command{
		Use:           "formkit",
		Short:         "formkit renders themable form controls in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("theme", string(theme.NameLight), "Theme to start with (light or dark)")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flags.String("config", "", "Path to a formkit.yaml describing the controls")
	// Binding only fails on a nil flag set.
	_ = app.bind(flags)

	cmd.AddCommand(newGalleryCmd(app))
	cmd.AddCommand(newThemeCmd(app))
	cmd.AddCommand(newCheckCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

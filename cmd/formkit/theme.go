package main

import (
	"fmt"

	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/formkit/internal/theme"
)

func newThemeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect and export theme tokens",
	}

	cmd.AddCommand(newThemeExportCmd(app))
	cmd.AddCommand(newThemeListCmd())

	return cmd
}

type themeExportOptions struct {
	format string
}

func newThemeExportCmd(app *AppContext) *cobra.Command {
	opts := &themeExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active theme's variables as css, env or json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := theme.ParseFormat(opts.format)
			if err != nil {
				return newCommandError("export theme", "unsupported format", err, "Use --format css, env or json.")
			}
			provider := theme.MustFromContext(cmd.Context())
			app.Logger.DebugFields("exporting theme", map[string]any{"theme": string(provider.Name()), "format": string(format)})
			return theme.Write(cmd.OutOrStdout(), provider.Theme(), format)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", string(theme.FormatCSS), "Output format (css, env, json)")

	return cmd
}

func newThemeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Compare every token across the light and dark themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderTokenTable(cmd)
		},
	}
}

func renderTokenTable(cmd *cobra.Command) error {
	light, err := theme.Lookup(theme.NameLight)
	if err != nil {
		return err
	}
	dark, err := theme.Lookup(theme.NameDark)
	if err != nil {
		return err
	}
	darkValues := dark.Variables()

	tw := prettytable.NewWriter()
	tw.SetOutputMirror(cmd.OutOrStdout())
	tw.SetStyle(prettytable.StyleLight)
	tw.Style().Options.SeparateRows = false
	tw.AppendHeader(prettytable.Row{"VARIABLE", "LIGHT", "DARK"})
	for _, tok := range light.Tokens() {
		tw.AppendRow(prettytable.Row{tok.Variable(), tok.Value, darkValues[tok.Variable()]})
	}
	tw.AppendFooter(prettytable.Row{"", "", fmt.Sprintf("%d tokens", len(light.Tokens()))})
	tw.Render()
	return nil
}

package main

import (
	"fmt"
	"strings"

	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/formkit/internal/config"
)

type checkOptions struct {
	values []string
}

func newCheckCmd(app *AppContext) *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check [formkit.yaml]",
		Short: "Validate a formkit.yaml and optionally run values through its fields",
		Example: `  formkit check formkit.yaml
  formkit check formkit.yaml --value email=ada@example.com --value age=12`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Config
			if len(args) == 1 {
				parsed, err := config.ParseConfig(args[0])
				if err != nil {
					return err
				}
				cfg = parsed
			}
			if cfg == nil {
				return newCommandError("check config", "no document given", fmt.Errorf("missing config path"), "Pass a path or set --config / FORMKIT_CONFIG.")
			}
			return runCheck(cmd, app, cfg, opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.values, "value", nil, "id=value pair to validate against the field with that id (repeatable)")

	return cmd
}

func runCheck(cmd *cobra.Command, app *AppContext, cfg *config.Config, opts *checkOptions) error {
	out := cmd.OutOrStdout()
	sections := cfg.AllSections()
	count := 0
	fields := make(map[string]config.Field)
	for _, s := range sections {
		for _, f := range s.Fields {
			fields[f.ID] = f
			count++
		}
	}
	fmt.Fprintf(out, "ok: %d fields in %d sections\n", count, len(sections))

	if len(opts.values) == 0 {
		return nil
	}

	tw := prettytable.NewWriter()
	tw.SetOutputMirror(out)
	tw.SetStyle(prettytable.StyleLight)
	tw.AppendHeader(prettytable.Row{"FIELD", "INPUT", "STORED", "RESULT"})

	failed := 0
	for _, pair := range opts.values {
		id, value, ok := strings.Cut(pair, "=")
		if !ok {
			return newCommandError("check values", fmt.Sprintf("malformed pair %q", pair), fmt.Errorf("expected id=value"), "Write each value as --value id=value.")
		}
		f, ok := fields[id]
		if !ok {
			return newCommandError("check values", fmt.Sprintf("unknown field %q", id), fmt.Errorf("no field declares id %q", id), "Use an id declared in the document.")
		}
		stored, message, err := f.Check(value, nil)
		if err != nil {
			return err
		}
		result := "ok"
		if message != "" {
			result = message
			failed++
		}
		app.Logger.DebugFields("value checked", map[string]any{"field_id": id, "valid": message == ""})
		tw.AppendRow(prettytable.Row{id, value, stored, result})
	}
	tw.Render()

	if failed > 0 {
		return fmt.Errorf("%d of %d values failed validation", failed, len(opts.values))
	}
	return nil
}

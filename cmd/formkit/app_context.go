package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/formkit/internal/config"
	"github.com/alexisbeaulieu97/formkit/internal/logger"
	"github.com/alexisbeaulieu97/formkit/internal/theme"
)

const envPrefix = "FORMKIT"

// AppContext carries what every command needs: resolved settings, the
// logger, the optional config document and the theme provider.
type AppContext struct {
	v        *viper.Viper
	Logger   *logger.Logger
	Config   *config.Config
	Provider *theme.Provider
}

func newAppContext() *AppContext {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &AppContext{v: v}
}

// bind makes flags, then FORMKIT_* variables, the source of settings.
func (a *AppContext) bind(flags *pflag.FlagSet) error {
	return a.v.BindPFlags(flags)
}

// load resolves settings for the command about to run and threads the
// provider through its context.
func (a *AppContext) load(cmd *cobra.Command) error {
	log, err := logger.New(logger.Options{
		Level:         a.v.GetString("log-level"),
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
		Component:     "cli",
	})
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", a.v.GetString("log-level"), err)
	}
	a.Logger = log.With("command", cmd.Name())

	if path := a.v.GetString("config"); path != "" {
		cfg, err := config.ParseConfig(path)
		if err != nil {
			return err
		}
		a.Config = cfg
		a.Logger.DebugFields("config loaded", map[string]any{"path": path, "sections": len(cfg.AllSections())})
	}

	name, err := a.themeName()
	if err != nil {
		return err
	}
	a.Provider = theme.NewProvider(name, theme.WithLogger(a.Logger))
	cmd.SetContext(theme.NewContext(cmd.Context(), a.Provider))
	return nil
}

// themeName prefers an explicit flag or variable over the document's theme.
func (a *AppContext) themeName() (theme.Name, error) {
	raw := a.v.GetString("theme")
	if !a.v.IsSet("theme") && a.Config != nil && a.Config.Theme != "" {
		raw = a.Config.Theme
	}
	return theme.ParseName(raw)
}

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/hupe1980/taxa"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// config is the resolved configuration of one invocation.
type config struct {
	Output   string `mapstructure:"output"`
	LogLevel string `mapstructure:"log_level"`
	Prefix   string `mapstructure:"prefix"`
}

func defaults() config {
	return config{
		Output:   "text",
		LogLevel: "warn",
		Prefix:   "T",
	}
}

type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config
}

func newRootCmd(version string) *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:          "taxa",
		Short:        "Inspect taxon registries and split bitmasks",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.initConfig()
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "",
		"config file (yaml)")
	root.PersistentFlags().StringP("output", "o", "",
		"output format: text, json or yaml")
	root.PersistentFlags().String("log-level", "",
		"log level: debug, info, warn or error")

	_ = a.v.BindPFlag("output", root.PersistentFlags().Lookup("output"))
	_ = a.v.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(newGenerateCmd(a), newSplitCmd(a))
	return root
}

func (a *app) initConfig() error {
	d := defaults()
	a.v.SetDefault("output", d.Output)
	a.v.SetDefault("log_level", d.LogLevel)
	a.v.SetDefault("prefix", d.Prefix)

	a.v.SetEnvPrefix("TAXA")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	switch a.cfg.Output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q", a.cfg.Output)
	}
	return nil
}

func (a *app) logger() *taxa.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.cfg.LogLevel)); err != nil {
		level = slog.LevelWarn
	}
	return taxa.NewTextLogger(level)
}

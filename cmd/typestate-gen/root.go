package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/typestate/gen"
)

const envPrefix = "TYPESTATE"

// Config keys shared by flags, environment and the config file.
const (
	keyTag     = "tag"
	keySuffix  = "suffix"
	keyVerbose = "verbose"
)

// app carries the resolved configuration and logger into subcommands.
type app struct {
	v      *viper.Viper
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: slog.Default()}
	var cfgFile string

	root := &cobra.Command{
		Use:   "typestate-gen",
		Short: "Generate compile-time checked builders",
		Long: `typestate-gen reads Go structs marked with //typestate:builder and
emits builders whose type parameters record which required and optional
fields have been supplied, so incomplete or duplicated construction is a
compile error.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.initConfig(cfgFile); err != nil {
				return err
			}
			a.setupLogging(cmd)
			return nil
		},
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is ./.typestate.yaml)")
	pf.String(keyTag, "typestate", "struct tag key holding field classifications")
	pf.BoolP(keyVerbose, "v", false, "enable debug logging")
	_ = a.v.BindPFlag(keyTag, pf.Lookup(keyTag))
	_ = a.v.BindPFlag(keyVerbose, pf.Lookup(keyVerbose))

	root.AddCommand(a.newGenerateCmd(), a.newDescribeCmd())

	return root
}

// initConfig loads the optional config file and environment overrides.
func (a *app) initConfig(cfgFile string) error {
	if cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
	} else {
		a.v.AddConfigPath(".")
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".typestate")
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	if err := gen.CheckTagKey(a.v.GetString(keyTag)); err != nil {
		return fmt.Errorf("%s: %w", keyTag, err)
	}

	return nil
}

func (a *app) setupLogging(cmd *cobra.Command) {
	level := slog.LevelInfo
	if a.v.GetBool(keyVerbose) {
		level = slog.LevelDebug
	}

	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))
	if f := a.v.ConfigFileUsed(); f != "" {
		a.logger.Debug("using config file", "file", f)
	}
}

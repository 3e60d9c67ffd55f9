// Package cli implements the turnip command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/mkacz/turnip"
	"github.com/mkacz/turnip/internal/config"
	"github.com/mkacz/turnip/internal/observability"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Version is the application version, set at build time with
// -ldflags "-X github.com/mkacz/turnip/internal/cli.Version=...".
var Version = "0.1.0"

// app is the state shared by the commands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
}

// NewRootCmd returns the root command with all subcommands attached. Each
// call returns an independent command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	root := &cobra.Command{
		Use:           "turnip",
		Short:         "Edit and simulate rolling-body levels.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			observability.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is $HOME/.turnip.yaml or ./.turnip.yaml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	_ = a.v.BindPFlag("logger.level", flags.Lookup("log-level"))

	root.AddCommand(
		a.newInspectCmd(),
		a.newEditCmd(),
		a.newSimulateCmd(),
		a.newRenderCmd(),
		a.newExportCmd(),
		a.newImportCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command line with ctx, logging a failure before
// returning it.
func Execute(ctx context.Context, args []string) error {
	root := NewRootCmd()
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		observability.GetLogger().Error("command failed", zap.Error(err))
		root.PrintErrln("Error:", err)
	}
	return err
}

// initialize reads the configuration and sets up logging.
func (a *app) initialize() error {
	config.SetDefaults(a.v)
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		if home, err := homedir.Dir(); err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.AddConfigPath(".")
		a.v.SetConfigName(".turnip")
		a.v.SetConfigType("yaml")
	}
	a.v.SetEnvPrefix("TURNIP")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg, err := config.NewConfigFromViper(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	observability.InitializeLogger(cfg.Logger)
	logger := observability.GetLogger()
	turnip.SetLogger(observability.NewSlogLogger(logger, "core"))
	logger.Debug("configuration loaded",
		zap.String("version", Version),
		zap.String("config_file", a.v.ConfigFileUsed()))
	return nil
}

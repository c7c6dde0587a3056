// Package cmd defines the CLI commands for regsw.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/regsw/internal/catalog"
	"github.com/donaldgifford/regsw/internal/config"
	"github.com/donaldgifford/regsw/internal/pkgconfig"
	"github.com/donaldgifford/regsw/internal/probe"
	"github.com/donaldgifford/regsw/internal/prompt"
	"github.com/donaldgifford/regsw/internal/regcmd"
	"github.com/donaldgifford/regsw/internal/ui"
)

var (
	verbose bool
	noColor bool
	cfgFile string
)

// rootCmd is the base command for the regsw CLI.
var rootCmd = &cobra.Command{
	Use:   "regsw",
	Short: "Switch between package registry mirrors",
	Long: `regsw keeps a small catalog of named package registries and switches the
package manager between them. It can list, add, edit, rename, delete and
latency-test catalog entries.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		initLogger()
	},
}

// Execute runs the root command.
func Execute() error {
	rootCmd.Version = versionString()

	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, prompt.ErrAborted) {
		ui.NewWriter(noColor).Error(err.Error())
	}

	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/regsw/config.yaml)")
}

func initLogger() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func loadConfig() (*config.GlobalConfig, error) {
	path := cfgFile
	if path == "" {
		path = config.DefaultConfigPath()
	}

	return config.LoadGlobalConfig(path)
}

// newEnv loads the config and catalog and wires the collaborators for one invocation.
func newEnv() (*regcmd.Env, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	path, err := catalog.DefaultPath()
	if err != nil {
		return nil, err
	}

	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w (run 'regsw init' to create it)", err)
	}

	logger := slog.Default()
	logger.Debug("catalog loaded", "path", path, "entries", cat.Len())

	return &regcmd.Env{
		CatalogPath: path,
		Catalog:     cat,
		Config:      pkgconfig.NewExec(cfg.PackageManager, logger),
		Prompter:    prompt.NewTTY(),
		Prober:      probe.NewHTTP(cfg.PingTimeout, logger),
		UI:          ui.NewWriter(noColor),
		Logger:      logger,
	}, nil
}

// runWithEnv adapts a regcmd handler to a cobra RunE.
func runWithEnv(fn func(context.Context, *regcmd.Env) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		env, err := newEnv()
		if err != nil {
			return err
		}

		return fn(cmd.Context(), env)
	}
}

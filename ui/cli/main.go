// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, the persistent flags and the services
// every subcommand relies on: configuration, i18n, logging and the HTTP
// client for the exchange API.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/toeirei/fxconsole/client"
	"github.com/toeirei/fxconsole/core/state"
	"github.com/toeirei/fxconsole/internal/config"
	"github.com/toeirei/fxconsole/internal/i18n"
	"github.com/toeirei/fxconsole/internal/logging"
	"github.com/toeirei/fxconsole/ui/tui"
	"golang.org/x/term"
)

var cfgFile string
var verbose bool

var appConfig config.Config

// isTerminal is swapped in tests.
var isTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	// No explicit file and nothing at the user path means first run.
	firstRun := false
	if optionalConfigPath == nil {
		if userPath, err := config.GetConfigPath(false); err == nil {
			if _, statErr := os.Stat(userPath); errors.Is(statErr, os.ErrNotExist) {
				firstRun = true
			}
		}
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), optionalConfigPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if err := appConfig.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	level := appConfig.Log.Level
	if verbose {
		level = "debug"
	}
	if err := logging.SetLevel(level); err != nil {
		return err
	}

	if firstRun {
		// The console runs fine on defaults, so a failed write is only a warning.
		if path, writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
			logging.Warnf("could not write default config file: %v", writeErr)
		} else {
			logging.Debugf("wrote default config to %s", path)
		}
	}

	i18n.Init(appConfig.Language)
	return nil
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// newClient builds the HTTP client for the configured API.
func newClient() (*client.HTTPClient, error) {
	cfg := client.NewDefaultConfig()
	cfg.BaseURL = appConfig.API.BaseURL
	cfg.Timeout = appConfig.API.Timeout
	cfg.UserAgent = "fxconsole/" + version
	return client.NewHTTPClient(cfg)
}

func stateOptions() state.Options {
	opts := state.DefaultOptions()
	opts.PageSize = appConfig.Pagination.PageSize
	opts.DiscardStale = appConfig.Pagination.DiscardStale
	return opts
}

// runTUI blocks until the user quits. Logging moves to a file while the TUI
// owns the terminal.
func runTUI(ctx context.Context, c client.Client) error {
	if !isTerminal() {
		return errors.New(i18n.T("cli.no_tty"))
	}

	logPath := appConfig.Log.File
	if logPath == "" {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			return fmt.Errorf("could not resolve log file location: %w", err)
		}
		logPath = filepath.Join(cacheDir, "fxconsole", "fxconsole.log")
	}
	closer, err := logging.ToFile(logPath)
	if err != nil {
		return err
	}
	defer closer.Close()

	logging.Infof("starting console against %s", appConfig.API.BaseURL)
	return tui.Run(tui.Options{
		Client:  c,
		State:   stateOptions(),
		Version: compositeVersion(),
		Context: ctx,
	})
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

func applyDefaultFlags(cmd *cobra.Command) {
	// NewRootCmd may run more than once in tests; pflag panics on duplicates.
	if cmd.PersistentFlags().Lookup("api.base_url") == nil {
		cmd.PersistentFlags().String("api.base_url", "http://localhost:8080", "Base URL of the exchange API")
	}
	if cmd.PersistentFlags().Lookup("language") == nil {
		cmd.PersistentFlags().String("language", "en", `Console language ("en", "de")`)
	}
}

// NewRootCmd creates and configures a new root cobra command. Tests use it
// to get fresh, isolated instances.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fxconsole",
		Short: "FX Console manages currencies, exchange rates and conversions.",
		Long: `FX Console is a terminal client for a currency exchange API.
It lists and adds currencies, creates exchange rates and converts amounts.

Running without a subcommand will launch the interactive TUI.`,
		SilenceUsage:      true,
		SilenceErrors:     true, // main logs the error
		Args:              cobra.NoArgs,
		PersistentPreRunE: setupDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer c.Close(context.Background())
			return runTUI(cmd.Context(), c)
		},
	}
	cmd.Version = compositeVersion()

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	applyDefaultFlags(cmd)

	cmd.AddCommand(
		newCurrenciesCmd(),
		newRatesCmd(),
		newExchangeCmd(),
		newSandboxCmd(),
		newVersionCmd(),
	)

	return cmd
}

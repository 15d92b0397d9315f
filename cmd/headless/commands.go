package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/headless/internal/config"
	"github.com/muurk/headless/internal/demo"
	"github.com/muurk/headless/internal/logging"
	"github.com/muurk/headless/internal/ui"
)

// Global flags
var (
	configPath string
	logFile    string
	forceInit  bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is the user config directory)")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
}

// loadConfig reads the config file selected by --config, or the default one.
// Validation problems are printed as warnings; the engines clamp bad values.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	ui.NewPrinter(os.Stderr).PrintWarnings("Config warnings", cfg.Validate())
	return cfg, nil
}

func resolvedConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}

// demoCmd launches the interactive demo
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Launch the interactive demo",
	Long: `Launch a full-screen demo of the pagination, slider and tabs engines.

Tab and Shift+Tab move focus between the widgets. Arrow keys, Home, End,
PageUp and PageDown are delivered to the focused widget, and the mouse can
click pages and tabs or drag the slider.

Log output goes to the file named in the config, or to --log-file.`,
	Example: `  # Launch the demo
  headless demo
  # Or simply (demo is default):
  headless

  # Debug logging to a file
  HEADLESS_LOG_LEVEL=debug headless demo --log-file /tmp/headless.log`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&logFile, "log-file", "", "Write log output to this file")
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The demo owns the screen, so logs only ever go to a file.
	path := logFile
	if path == "" {
		path = cfg.Log.File
	}
	if path != "" {
		level := os.Getenv(logging.LogLevelEnvVar)
		if level == "" {
			level = cfg.Log.Level
		}
		if err := logging.InitializeToFile(level, path); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		logging.Info("demo starting", zap.String("log_level", level))
	}

	p := tea.NewProgram(demo.NewAppModel(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("demo error: %w", err)
	}
	return nil
}

// configCmd groups the config file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the demo configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write a configuration file containing the default presets.

An existing file is only replaced after confirmation, or with --force.`,
	Example: `  # Create the default config
  headless config init

  # Replace an existing one without asking
  headless config init --force`,
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing file without asking")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := resolvedConfigPath()
	if err != nil {
		return err
	}

	printer := ui.NewPrinter(cmd.OutOrStdout())
	force := forceInit
	if !force {
		if _, statErr := os.Stat(path); statErr == nil {
			if !ui.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Config file already exists: "+path, "Overwrite it?") {
				printer.Println("Aborted.")
				return nil
			}
			force = true
		}
	}

	if err := config.CreateDefaultConfig(path, force); err != nil {
		printer.PrintResult(ui.NewFailureResult("Config not written", err))
		return err
	}

	printer.PrintResult(ui.NewSuccessResult("Config written", ui.Param{Key: "Path", Value: path}))
	return nil
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolvedConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration the demo would use, with defaults filled in
for every section missing from the file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

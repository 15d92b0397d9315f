// Package config provides user configuration for the headless demo.
//
// This package manages a YAML file holding presets for the three demo
// engines (pagination, slider, tabs), key overrides and log preferences.
// Nothing in the engines reads it; the CLI loads it and turns the presets
// into engine options.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/headless/config.yaml or $HOME/.config/headless/config.yaml
//   - macOS: $HOME/.config/headless/config.yaml
//   - Windows: %LOCALAPPDATA%\headless\config.yaml
//
// # Usage Example
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, problem := range cfg.Validate() {
//	    logging.Warn("config", zap.Error(problem))
//	}
//
// Writes go to a temporary file that is renamed over the target, so a crash
// never leaves a half-written config behind.
package config

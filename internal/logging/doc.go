// Package logging provides structured logging for the headless engines and
// the tools built on them.
//
// This package wraps a global zap logger with convenience functions. The
// logger is silent by default: library code never writes output unless the
// host program opts in.
//
// # Log Levels
//
//   - Debug: engine transitions and ignored inputs (page changes, value
//     commits, focus moves, no-op navigation)
//   - Info: program lifecycle (config loaded, demo started)
//   - Warn: caller contract violations that were corrected silently, such as
//     switching an engine between controlled and uncontrolled ownership
//   - Error: startup failures
//
// # Configuration
//
// CLI commands initialize from the environment:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// Full-screen programs send logs to a file instead of stdout:
//
//	_ = logging.InitializeToFile("debug", "headless.log")
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. Initialize and SetLogger
// are meant to be called once during startup.
package logging

// Package logging provides structured logging utilities for unitframe components.
//
// # Overview
//
// This package wraps the standard library slog package with unitframe defaults
// and conventions for consistent logging across all components. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("unitframe", "v1.0.0")
//	    defer slog.Info("application started")
//
//	    // Use slog as normal
//	    slog.Info("resolving metadata", "type", "Box")
//	    slog.Debug("detailed state", "data", complexObject)
//	    slog.Error("operation failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("datalog-export", "v2.0.0", "debug")
//	logger.Info("resolving metadata", "type", "FlashProFrame")
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("cli", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug unitframe inspect --type flashpro
//	LOG_LEVEL=error unitframe convert --type flashpro --field IAT --to DegreeFahrenheit
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "metadata resolved",
//	    "module": "unitframe",
//	    "version": "v1.0.0",
//	    "port": 8080
//	}
//
// Debug logs include source location:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {
//	        "function": "main.processRequest",
//	        "file": "resolver.go",
//	        "line": 45
//	    },
//	    "msg": "resolving metadata",
//	    "module": "unitframe",
//	    "version": "v1.0.0"
//	}
//
// # Best Practices
//
// 1. Set default logger early in main():
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("myapp", version)
//	    defer slog.Info("application started")
//	    // ...
//	}
//
// 2. Include context in log messages:
//
//	slog.Info("quantity converted",
//	    "type", "Box",
//	    "field", "Width",
//	    "to", "Decimeter",
//	)
//
// 3. Use appropriate log levels:
//
//	slog.Debug("unit unresolved", "unit", u)  // Development/troubleshooting
//	slog.Info("metadata resolved")            // Normal operations
//	slog.Warn("unknown format")               // Potential issues
//	slog.Error("conversion failed")           // Errors requiring action
//
// 4. Log errors with context:
//
//	slog.Error("failed to convert quantity",
//	    "error", err,
//	    "type", typeName,
//	    "field", field,
//	)
//
// # Integration
//
// This package is used by:
//   - pkg/cli - CLI command logging
//
// Library packages (registry, metadata, dataframe) never configure logging
// themselves; they log through slog.Default() or an injected *slog.Logger.
package logging

// Package logging provides structured logging for skipselect.
//
// Logs are JSON lines written through log/slog. The terminal UI owns the
// screen while it runs, so the logger writes to a file in the log directory
// rather than to stderr.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger(dir, "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("catalog fetched", "offers", 5, "duration_ms", 120)
//
// # Context Propagation
//
// Child loggers carry attributes into every entry they write:
//
//	log := logger.WithComponent("catalog").WithLocation("NR32", "Lowestoft")
//	log.WithRequestID(id).Warn("catalog returned error", "status", 503)
//
// Output:
//
//	{"time":"...","level":"WARN","msg":"catalog returned error","component":"catalog","postcode":"NR32","area":"Lowestoft","request_id":"...","status":503}
//
// # Log Rotation
//
//	logger, err := logging.NewLoggerWithRotation(dir, "INFO", logging.RotationConfig{
//	    MaxSizeMB:  10,
//	    MaxBackups: 3,
//	})
//
// Rotated files are named skipselect.log.1 (newest), skipselect.log.2 and
// so on, with a .gz suffix when Compress is set.
//
// # Testing
//
// Use [NopLogger] to discard output.
package logging

// Package logger provides the structured logging facility, based on Zap.
//
// # Context Awareness
//
// The WithRayID helper extracts the ray ID (request ID) from a Fiber context
// and attaches it to the log entry, so all logs belonging to one validation
// request can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger

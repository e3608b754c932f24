// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// A single factory, New, creates a *slog.Logger configured by Option
// functions. These options allow you to:
//
//   - Select an output format (text or json)
//   - Set the minimum log level, including the extra NOTICE level
//   - Supply default slog.Attr values applied to every record
//   - Register ContextExtractor callbacks that inject attributes pulled from a
//     context value (for example a request id) every time Handle is invoked
//   - Hand records to a background goroutine so logging never blocks a request
//
// # Architecture
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the configured
// Format and wraps it with ContextHandler, which runs the registered
// ContextExtractor callbacks before delegating. WithAsync puts an
// AsyncHandler on top; records are then queued and dropped when the queue is
// full instead of blocking the caller. Use NewWithCloser to get a function
// that drains the queue on shutdown.
//
// # Usage
//
//	import "github.com/dmitrymomot/consentkit/pkg/logger"
//
//	func main() {
//	    log, closeLog := logger.NewWithCloser(
//	        logger.WithEnvironment("production", "consentd"),
//	        logger.WithLevelName("notice"),
//	        logger.WithContextExtractors(requestid.LoggerExtractor),
//	        logger.WithAsync(logger.AsyncOptions{}),
//	    )
//	    defer closeLog(context.Background())
//	    logger.SetAsDefault(log)
//
//	    log.InfoContext(ctx, "consent recorded",
//	        logger.Component("consent"),
//	        logger.Action("accept_all"),
//	    )
//	}
//
// # Levels
//
// ParseLevel understands debug, info, notice, warning (or warn) and error.
// LevelNotice sits between info and warning and is rendered as "NOTICE".
//
// # Error Handling
//
// Helper functions Error and Errors produce attributes only when the supplied
// error value is non-nil allowing calls like:
//
//	log.Info("operation succeeded", logger.Error(err))
//
// without an additional nil check.
package logger

// Package logger provides structured logging utilities built on Go's standard slog package.
//
// Every component in this module accepts a *slog.Logger through a WithLogger
// option and defaults to Discard, so nothing is printed unless the application
// asks for it. This package builds those loggers and supplies attribute helpers
// with consistent key names.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/compose/core/logger"
//
//	log := logger.New(
//		logger.WithDevelopment("myapp"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	log.Info("observer attached",
//		logger.Component("observer"),
//		logger.Handle(h.String()),
//	)
//
// # Environment Configurations
//
//	// Development: text format, debug level, stdout
//	devLogger := logger.New(logger.WithDevelopment("myapp"))
//
//	// Production: JSON format, info level, stdout
//	prodLogger := logger.New(logger.WithProduction("myapp"))
//
// # Context-Aware Logging
//
// Extractors pull attributes out of the context on every *Context call:
//
//	log := logger.New(
//		logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
//			id, ok := ctx.Value(traceKey{}).(string)
//			return logger.ID("trace_id", id), ok
//		}),
//	)
//
// # Attribute Helpers
//
// Helpers return the empty slog.Attr for nil or empty input, which slog drops:
//
//	log.Error("dispatch failed",
//		logger.Error(err),             // omitted when err == nil
//		logger.CommandKey(key),
//		logger.Duration(time.Since(start)),
//	)
//
//	log.Info("post moved", logger.Transition("draft", "pending_review"))
//
// # Testing with Custom Output
//
//	var buf bytes.Buffer
//	log := logger.New(logger.WithJSONFormatter(), logger.WithOutput(&buf))
//	log.Info("Test message", logger.Component("test"))
//	assert.Contains(t, buf.String(), `"component":"test"`)
package logger

// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// New creates a *slog.Logger configured by Option functions:
//
//   - WithEnvironment – defaults per environment (text/debug for development,
//     json/info for staging and production).
//   - WithFormat – output format.
//   - WithLevel / WithLevelName – minimum level.
//   - WithOutput – destination writer (stderr by default).
//   - WithContextExtractors – attributes pulled from context, such as the
//     input name stored by WithSource.
//
// The handler returned by New is wrapped in LogHandlerDecorator, which runs
// the registered ContextExtractor callbacks on every record.
//
// Helper constructors in attr.go (Field, Validator, Groups, Error, ...) keep
// attribute names consistent between the engine and the command line tool.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "valida"),
//	    logger.WithContextExtractors(logger.SourceExtractor()),
//	)
//	ctx := logger.WithSource(ctx, "user.json")
//	log.InfoContext(ctx, "run completed", logger.Fields(errs.Fields()))
//
// Error and Errors produce attributes only for non-nil errors, so
// log.Info("done", logger.Error(err)) needs no nil check.
package logger

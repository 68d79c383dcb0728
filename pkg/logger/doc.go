// Package logger builds *slog.Logger instances with consistent defaults.
//
// New takes functional options for format, level, static attributes and
// context extractors. The resulting handler is wrapped in LogHandlerDecorator,
// which pulls request-scoped values (such as the request id) out of the
// context on every record.
//
// Values of sensitive keys are masked before they reach the output. "secret"
// and "token" are always masked; WithRedactedKeys adds more. Email addresses
// should go through the Email helper, which keeps only the first character of
// the local part.
//
// # Usage
//
//	import "github.com/dmitrymomot/oneclick/pkg/logger"
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "oneclick"),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "unsubscribe accepted",
//	    logger.Email(claims.Email()),
//	    logger.Component("unsubscribe"),
//	)
//
// Helpers such as Error and Reason return an empty attribute for empty input,
// so they can be passed unconditionally.
package logger

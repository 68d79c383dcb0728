// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware keeps a client-supplied X-Request-ID when it is 1 to 128
// characters of letters, digits, '-' or '_' and otherwise generates a UUID.
// The id is stored in the request context and echoed in the response header.
// LoggerExtractor plugs it into the logger package so every log line written
// with the request context carries request_id.
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid

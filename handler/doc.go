// Package handler renders HTTP responses.
//
// Handlers return a Response value instead of writing to the ResponseWriter
// directly; Handle adapts them to http.HandlerFunc. JSON bodies share the
// JSONResponse envelope:
//
//	{"data": {...}}
//	{"error": {"code": "invalid_signature", "message": "invalid token"}}
//
// Example:
//
//	r.Get("/", handler.Handle(log, func(r *http.Request) handler.Response {
//		return handler.JSON(map[string]string{"status": "ok"})
//	}))
package handler

package handler

import (
	"encoding/json"
	"net/http"
)

// JSONResponse is the envelope of every JSON body: exactly one of Data or
// Error is set.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithJSONStatus overrides the status code.
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) { r.status = status }
}

// WithJSONMeta attaches metadata.
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) { r.body.Meta = meta }
}

// JSON renders data as {"data": ...} with status 200 unless overridden.
func JSON(data any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: JSONResponse{Data: data}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders {"error": {"code": code, "message": message}} with status.
func JSONError(status int, code, message string, opts ...JSONOption) Response {
	r := &jsonResponse{
		status: status,
		body:   JSONResponse{Error: &ErrorDetail{Code: code, Message: message}},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

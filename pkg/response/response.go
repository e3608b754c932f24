package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/consentkit/pkg/validator"
)

// Response renders itself onto an HTTP response.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// JSONResponse is the standard JSON envelope.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status  int
	body    JSONResponse
	raw     any
	isRaw   bool
	noStore bool
}

func (j *jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if j.noStore {
		w.Header().Set("Cache-Control", "no-store")
	}
	w.WriteHeader(j.status)
	if j.isRaw {
		return json.NewEncoder(w).Encode(j.raw)
	}
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithJSONStatus sets a custom HTTP status code.
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONMeta adds metadata to the envelope. Ignored by Raw.
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		r.body.Meta = meta
	}
}

// WithNoStore marks the response as uncacheable.
func WithNoStore() JSONOption {
	return func(r *jsonResponse) {
		r.noStore = true
	}
}

// JSON wraps v in the envelope. Errors and *ErrorDetail land in the error
// member with a matching status; anything else becomes data.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK}

	switch val := v.(type) {
	case JSONResponse:
		r.body = val
	case *ErrorDetail:
		r.body.Error = val
		r.status = http.StatusInternalServerError
	case error:
		r.body.Error = errorToDetail(val, &r.status)
	default:
		r.body.Data = v
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Raw renders v as the whole document, without the envelope. Use it for
// payloads whose shape is fixed by a client contract.
func Raw(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, raw: v, isRaw: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders err in the error member of the envelope.
func JSONError(err any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusInternalServerError}

	switch e := err.(type) {
	case *ErrorDetail:
		r.body.Error = e
	case error:
		r.body.Error = errorToDetail(e, &r.status)
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

func errorToDetail(err error, status *int) *ErrorDetail {
	if *status == http.StatusOK {
		*status = http.StatusInternalServerError
	}

	if verrs := validator.ExtractValidationErrors(err); len(verrs) > 0 {
		*status = http.StatusUnprocessableEntity
		detail := &ErrorDetail{
			Code:    "validation_error",
			Message: err.Error(),
			Details: make(map[string][]string, len(verrs)),
		}
		for _, field := range verrs.Fields() {
			detail.Details[field] = verrs.Get(field)
		}
		return detail
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		*status = httpErr.Code
		return &ErrorDetail{Code: httpErr.Key, Message: httpErr.message()}
	}

	return &ErrorDetail{Code: "internal_error", Message: err.Error()}
}

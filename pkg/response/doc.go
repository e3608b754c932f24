// Package response renders JSON HTTP responses.
//
// JSON wraps a value in the {"data","meta","error"} envelope, JSONError fills
// the error member, and Raw writes a value as the whole document. Errors map
// to a status and code: HTTPError uses its own Code and Key,
// validator.ValidationErrors becomes 422 "validation_error" with per-field
// details, and anything else is 500 "internal_error".
//
//	resp := response.JSONError(response.ErrBadRequest.Wrap(err), response.WithNoStore())
//	if err := resp.Render(w, r); err != nil {
//		log.WarnContext(r.Context(), "failed to write response", logger.Error(err))
//	}
package response

// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses a client-supplied "X-Request-ID" header when it is a
// plain token (letters, digits, '-' and '_', at most 128 bytes) and otherwise
// generates a UUIDv7. The id is stored in the request context and echoed in
// the response header.
//
// LoggerExtractor plugs into the logger package so every record logged with
// the request context carries "request_id", including consent audit records:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor))
//	r.Use(requestid.Middleware)
package requestid

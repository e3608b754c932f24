package cookie

import "errors"

var (
	ErrCookieNotFound  = errors.New("cookie.not_found")
	ErrInvalidSameSite = errors.New("cookie.invalid_same_site")
)

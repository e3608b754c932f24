package banner

import "errors"

var (
	ErrInvalidBody  = errors.New("banner.invalid_body")
	ErrBodyTooLarge = errors.New("banner.body_too_large")
)

package consent

import "errors"

var (
	ErrNoCategories      = errors.New("consent.no_categories")
	ErrInvalidCategory   = errors.New("consent.invalid_category")
	ErrInvalidLifetime   = errors.New("consent.invalid_lifetime")
	ErrInvalidCookie     = errors.New("consent.invalid_cookie_config")
	ErrInvalidCategories = errors.New("consent.invalid_categories_file")
)

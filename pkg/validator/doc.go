// Package validator builds validation from small rules and reports every
// failure at once.
//
//	err := validator.Apply(
//		validator.MinNum("cookie_lifetime", cfg.CookieLifetime, 1).WithErr(ErrInvalidLifetime),
//		validator.RequiredSlice("categories", cfg.Categories).WithErr(ErrNoCategories),
//	)
//
// Apply returns ValidationErrors. errors.Is matches ErrValidationFailed and
// any sentinel attached with WithErr; ExtractValidationErrors gives access to
// the individual fields.
package validator

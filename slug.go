package blog

import goslug "github.com/goliatone/go-slug"

// SlugNormalizer exposes the slug normalizer interface.
type SlugNormalizer = goslug.Normalizer

// DefaultSlugNormalizer returns the default slug normalizer.
func DefaultSlugNormalizer() SlugNormalizer {
	return goslug.Default()
}

// NormalizeSlug applies the default slug normalization rules to free-form
// input.
func NormalizeSlug(value string) (string, error) {
	return goslug.Normalize(value)
}

// IsValidSlug reports whether the slug matches the default rules.
func IsValidSlug(value string) bool {
	return goslug.IsValid(value)
}

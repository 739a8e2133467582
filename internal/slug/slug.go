// Package slug derives URL-safe identifiers from free text and resolves
// collisions against an existing identifier set. Generated slugs are
// lowercase ASCII letters, digits, and hyphens; an empty result means the
// input carried no usable characters and callers must fall back to a
// default label.
package slug

import (
	"strings"
	"unicode"
)

// Variant selects the normalization rules applied by Make. The two variants
// produce different output for the same input, so a call site must pick one
// and stay with it; stored slugs depend on the variant that created them.
type Variant int

const (
	// VariantBasic strips every character outside lowercase letters,
	// digits, whitespace, and hyphens before collapsing separators.
	VariantBasic Variant = iota
	// VariantSubstitute maps common punctuation to words ("&" -> "and",
	// "#" -> "sharp", "%" -> "percent", ...) before the basic cleanup.
	// Used by the bulk generator so synthetic titles keep their meaning.
	VariantSubstitute
)

// substitutions is applied in a single pass; none of the replacement words
// contain characters that are themselves substituted.
var substitutions = strings.NewReplacer(
	" ", "-",
	"&", "and",
	"'", "",
	`"`, "",
	":", "",
	"#", "sharp",
	"+", "plus",
	".", "-",
	",", "",
	"(", "",
	")", "",
	"[", "",
	"]", "",
	"{", "",
	"}", "",
	"/", "-",
	`\`, "-",
	"|", "-",
	"?", "",
	"!", "",
	"@", "at",
	"%", "percent",
	"*", "",
	"=", "equals",
	"<", "",
	">", "",
)

// Make derives a slug from text using the supplied variant. It is pure and
// total: invalid input maps to an empty string, never an error. Applying
// Make to its own output returns the output unchanged.
func Make(text string, variant Variant) string {
	lowered := strings.ToLower(text)
	if variant == VariantSubstitute {
		lowered = substitutions.Replace(lowered)
	}
	return clean(lowered)
}

// Basic is shorthand for Make with VariantBasic. This is the variant used
// for author-supplied titles and category names.
func Basic(text string) string {
	return Make(text, VariantBasic)
}

// Substitute is shorthand for Make with VariantSubstitute.
func Substitute(text string) string {
	return Make(text, VariantSubstitute)
}

// clean keeps [a-z0-9], collapses whitespace and hyphen runs into a single
// hyphen, and trims leading/trailing hyphens.
func clean(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	pendingHyphen := false
	for _, r := range text {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case r == '-' || unicode.IsSpace(r):
			pendingHyphen = true
		}
	}
	return b.String()
}

// IsValid reports whether value is a non-empty generated-form slug.
func IsValid(value string) bool {
	if value == "" {
		return false
	}
	return Basic(value) == value
}

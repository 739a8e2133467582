package articles

import "strings"

// metaDescriptionLimit is the maximum length of a derived meta description,
// ellipsis included.
const metaDescriptionLimit = 160

// DeriveMetaDescription builds a search snippet from article content: the
// first paragraph, stripped of markup, truncated with a trailing ellipsis
// when it runs long.
func DeriveMetaDescription(content string) string {
	paragraph := firstParagraph(content)
	plain := strings.Join(strings.Fields(stripTags(paragraph)), " ")
	if len(plain) <= metaDescriptionLimit {
		return plain
	}
	return plain[:metaDescriptionLimit-3] + "..."
}

// firstParagraph cuts content at the first closing paragraph tag. Plain text
// without paragraph markup falls back to blank-line blocks.
func firstParagraph(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	blocks := strings.Split(content, "\n\n")
	if strings.Contains(content, "</p>") {
		blocks = strings.Split(content, "</p>")
	}
	for _, block := range blocks {
		if strings.TrimSpace(stripTags(block)) != "" {
			return block
		}
	}
	return ""
}

// stripTags drops anything between angle brackets. Good enough for the
// simple markup articles carry.
func stripTags(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	inTag := false
	for _, r := range value {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}

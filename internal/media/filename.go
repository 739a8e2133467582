package media

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mosite/go-blog/internal/slug"
)

// shortTokenLength is how much of the random token a first-attempt file name
// carries. Collisions fall back to the full token.
const shortTokenLength = 8

// newToken returns a 32 character hex token.
func newToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// buildFileName assembles base_YYYYMMDD_HHMMSS_token.ext from the original
// upload name. The base is slug-cleaned; the extension is lowercased.
func buildFileName(original string, at time.Time, token string) string {
	ext := strings.ToLower(filepath.Ext(original))
	base := slug.Basic(strings.TrimSuffix(filepath.Base(original), filepath.Ext(original)))
	if base == "" {
		base = "image"
	}
	return fmt.Sprintf("%s_%s_%s%s", base, at.Format("20060102_150405"), token, ext)
}

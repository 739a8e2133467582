package slug

import "fmt"

// ExistsFunc reports whether an identifier is already taken. Implementations
// usually close over a repository lookup; they read but never write.
type ExistsFunc func(candidate string) (bool, error)

// ResolveUnique returns candidate unchanged when exists reports it free.
// Otherwise it appends numeric suffixes (-2, -3, ...) and re-checks until a
// free identifier is found. The storage layer's unique constraint remains
// the authoritative guard; this is a best-effort pre-check so collisions
// surface as a friendly suffix instead of a raw constraint error.
func ResolveUnique(candidate string, exists ExistsFunc) (string, error) {
	taken, err := exists(candidate)
	if err != nil {
		return "", err
	}
	if !taken {
		return candidate, nil
	}

	for n := 2; ; n++ {
		next := fmt.Sprintf("%s-%d", candidate, n)
		taken, err := exists(next)
		if err != nil {
			return "", err
		}
		if !taken {
			return next, nil
		}
	}
}

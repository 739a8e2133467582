package slug_test

import (
	"errors"
	"testing"

	"github.com/mosite/go-blog/internal/slug"
)

func TestResolveUniqueReturnsFreeCandidateUnchanged(t *testing.T) {
	candidates := []string{"hello-world", "tech", "a", "2024-review"}
	for _, candidate := range candidates {
		got, err := slug.ResolveUnique(candidate, func(string) (bool, error) {
			return false, nil
		})
		if err != nil {
			t.Fatalf("ResolveUnique(%q): %v", candidate, err)
		}
		if got != candidate {
			t.Fatalf("ResolveUnique(%q) = %q, want unchanged", candidate, got)
		}
	}
}

func TestResolveUniqueAppendsNumericSuffix(t *testing.T) {
	taken := map[string]bool{
		"hello-world":   true,
		"hello-world-2": true,
		"hello-world-3": true,
	}

	var checks []string
	got, err := slug.ResolveUnique("hello-world", func(candidate string) (bool, error) {
		checks = append(checks, candidate)
		return taken[candidate], nil
	})
	if err != nil {
		t.Fatalf("ResolveUnique: %v", err)
	}
	if got != "hello-world-4" {
		t.Fatalf("expected hello-world-4, got %q", got)
	}

	want := []string{"hello-world", "hello-world-2", "hello-world-3", "hello-world-4"}
	if len(checks) != len(want) {
		t.Fatalf("expected %d existence checks, got %d", len(want), len(checks))
	}
	for i, c := range want {
		if checks[i] != c {
			t.Fatalf("check %d: expected %q, got %q", i, c, checks[i])
		}
	}
}

func TestResolveUniquePropagatesLookupError(t *testing.T) {
	lookupErr := errors.New("storage down")
	if _, err := slug.ResolveUnique("hello", func(string) (bool, error) {
		return false, lookupErr
	}); !errors.Is(err, lookupErr) {
		t.Fatalf("expected lookup error, got %v", err)
	}

	// Errors on suffix probes propagate too.
	calls := 0
	if _, err := slug.ResolveUnique("hello", func(string) (bool, error) {
		calls++
		if calls == 1 {
			return true, nil
		}
		return false, lookupErr
	}); !errors.Is(err, lookupErr) {
		t.Fatalf("expected lookup error on suffix probe, got %v", err)
	}
}

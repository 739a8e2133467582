package commands

import (
	"testing"

	"github.com/mosite/go-blog/internal/logging"
	"github.com/mosite/go-blog/pkg/interfaces"
)

type recordingProvider struct {
	names []string
}

func (p *recordingProvider) GetLogger(name string) interfaces.Logger {
	p.names = append(p.names, name)
	return logging.NoOp()
}

func TestCommandLoggerScopesModuleName(t *testing.T) {
	provider := &recordingProvider{}

	logger := CommandLogger(provider, "testdata")
	if logger == nil {
		t.Fatal("expected logger, got nil")
	}
	if len(provider.names) != 1 || provider.names[0] != "blog.commands.testdata" {
		t.Fatalf("expected scoped logger name, got %v", provider.names)
	}
}

func TestCommandLoggerDefaultsModule(t *testing.T) {
	provider := &recordingProvider{}

	CommandLogger(provider, "  ")
	if len(provider.names) != 1 || provider.names[0] != "blog.commands.core" {
		t.Fatalf("expected core module fallback, got %v", provider.names)
	}
}

func TestCommandLoggerNilProvider(t *testing.T) {
	logger := CommandLogger(nil, "testdata")
	if logger == nil {
		t.Fatal("expected no-op logger, got nil")
	}
	// Must be safe to use without a provider.
	logger.Info("command.noop")
}

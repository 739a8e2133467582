package main

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"

	blog "github.com/mosite/go-blog"
)

// AppConfig wraps the blog module configuration with server settings.
type AppConfig struct {
	Server ServerConfig `koanf:"server"`
	Blog   blog.Config  `koanf:"-"`
}

// ServerConfig captures the HTTP listener settings.
type ServerConfig struct {
	Addr string `koanf:"addr"`
	// ImportDir, when set, is imported as Markdown content on startup.
	ImportDir string `koanf:"import_dir"`
}

// DefaultAppConfig returns the server defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Server: ServerConfig{Addr: ":8080"},
		Blog:   blog.DefaultConfig(),
	}
}

// LoadConfig layers an optional .env file, an optional YAML file, and
// BLOG_-prefixed environment variables over the defaults. Double underscores
// in variable names map to nesting: BLOG_STORAGE__DSN sets storage.dsn.
func LoadConfig(path string) (AppConfig, error) {
	cfg := DefaultAppConfig()

	// .env is optional; missing files are not an error.
	_ = godotenv.Load()

	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider("BLOG_", ".", func(s string) string {
		key := strings.TrimPrefix(s, "BLOG_")
		return strings.ToLower(strings.ReplaceAll(key, "__", "."))
	}), nil); err != nil {
		return cfg, fmt.Errorf("load env overrides: %w", err)
	}

	sections := map[string]any{
		"server":  &cfg.Server,
		"storage": &cfg.Blog.Storage,
		"content": &cfg.Blog.Content,
		"media":   &cfg.Blog.Media,
		"logging": &cfg.Blog.Logging,
	}
	for key, target := range sections {
		if err := k.Unmarshal(key, target); err != nil {
			return cfg, fmt.Errorf("parse %s config: %w", key, err)
		}
	}

	if err := cfg.Blog.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

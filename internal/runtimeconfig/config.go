package runtimeconfig

import (
	"errors"
	"strings"
)

// ErrStorageDriverUnknown indicates an unsupported storage driver.
var ErrStorageDriverUnknown = errors.New("blog config: storage driver is invalid")

// ErrStorageDSNRequired indicates a missing data source name.
var ErrStorageDSNRequired = errors.New("blog config: storage dsn is required")

// ErrLoggingLevelInvalid indicates an unsupported logging level.
var ErrLoggingLevelInvalid = errors.New("blog config: logging level is invalid")

// ErrLoggingFormatInvalid indicates an unsupported logging format.
var ErrLoggingFormatInvalid = errors.New("blog config: logging format is invalid")

// ErrPageSizeInvalid indicates a non-positive listing page size.
var ErrPageSizeInvalid = errors.New("blog config: listing page size must be positive")

// ErrMediaDirRequired indicates a missing media directory.
var ErrMediaDirRequired = errors.New("blog config: media directory is required")

// Config aggregates settings for the blog module. Fields use simple types so
// host applications can bind them from files or the environment.
type Config struct {
	Storage StorageConfig `koanf:"storage"`
	Content ContentConfig `koanf:"content"`
	Media   MediaConfig   `koanf:"media"`
	Logging LoggingConfig `koanf:"logging"`
}

// StorageConfig selects the database backing the blog.
type StorageConfig struct {
	Driver string `koanf:"driver"`
	DSN    string `koanf:"dsn"`
	// Migrate runs pending schema migrations on startup.
	Migrate bool `koanf:"migrate"`
}

// ContentConfig captures listing behaviour.
type ContentConfig struct {
	PageSize int `koanf:"page_size"`
}

// MediaConfig captures where image binaries live.
type MediaConfig struct {
	Dir string `koanf:"dir"`
}

// LoggingConfig captures log output settings.
type LoggingConfig struct {
	Level     string `koanf:"level"`
	Format    string `koanf:"format"`
	AddSource bool   `koanf:"add_source"`
}

// DefaultConfig returns a configuration suitable for local development: a
// sqlite file next to the binary, twelve articles per page, console logs.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			Driver:  "sqlite3",
			DSN:     "file:blog.db?_foreign_keys=on",
			Migrate: true,
		},
		Content: ContentConfig{PageSize: 12},
		Media:   MediaConfig{Dir: "uploads"},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// Validate reports the first configuration problem found.
func (c Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Storage.Driver)) {
	case "sqlite3", "sqlite":
	default:
		return ErrStorageDriverUnknown
	}
	if strings.TrimSpace(c.Storage.DSN) == "" {
		return ErrStorageDSNRequired
	}
	if c.Content.PageSize <= 0 {
		return ErrPageSizeInvalid
	}
	if strings.TrimSpace(c.Media.Dir) == "" {
		return ErrMediaDirRequired
	}

	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return ErrLoggingLevelInvalid
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "json", "console", "text", "pretty":
	default:
		return ErrLoggingFormatInvalid
	}
	return nil
}

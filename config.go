package blog

import "github.com/mosite/go-blog/internal/runtimeconfig"

var (
	ErrStorageDriverUnknown = runtimeconfig.ErrStorageDriverUnknown
	ErrStorageDSNRequired   = runtimeconfig.ErrStorageDSNRequired
	ErrLoggingLevelInvalid  = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid = runtimeconfig.ErrLoggingFormatInvalid
	ErrPageSizeInvalid      = runtimeconfig.ErrPageSizeInvalid
	ErrMediaDirRequired     = runtimeconfig.ErrMediaDirRequired
)

type (
	Config        = runtimeconfig.Config
	StorageConfig = runtimeconfig.StorageConfig
	ContentConfig = runtimeconfig.ContentConfig
	MediaConfig   = runtimeconfig.MediaConfig
	LoggingConfig = runtimeconfig.LoggingConfig
)

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

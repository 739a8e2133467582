package media

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mosite/go-blog/internal/logging"
	"github.com/mosite/go-blog/pkg/interfaces"
)

// maxNameAttempts bounds how many times an upload retries name generation
// before giving up.
const maxNameAttempts = 5

// Service stores image uploads and their metadata.
type Service interface {
	Upload(ctx context.Context, req UploadRequest) (*ImageAsset, error)
	GetByID(ctx context.Context, id int64) (*ImageAsset, error)
	GetByFileName(ctx context.Context, fileName string) (*ImageAsset, error)
	List(ctx context.Context) ([]*ImageAsset, error)
	// Delete removes the stored binary first, then the metadata row.
	Delete(ctx context.Context, id int64) error
}

// UploadRequest carries one image upload.
type UploadRequest struct {
	FileName    string
	Data        []byte
	ContentType string
	AltText     string
	Caption     string
}

// ServiceOption customises the media service.
type ServiceOption func(*service)

// WithLogger injects the service logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source, used by tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithTokenSource overrides the random token generator, used by tests.
func WithTokenSource(tokens func() string) ServiceOption {
	return func(s *service) {
		if tokens != nil {
			s.tokens = tokens
		}
	}
}

type service struct {
	repo   Repository
	store  interfaces.FileStore
	logger interfaces.Logger
	now    func() time.Time
	tokens func() string
}

// NewService constructs a media service over a metadata repository and a
// binary file store.
func NewService(repo Repository, store interfaces.FileStore, opts ...ServiceOption) Service {
	s := &service{
		repo:   repo,
		store:  store,
		logger: logging.NoOp(),
		now:    func() time.Time { return time.Now().UTC() },
		tokens: newToken,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Upload(ctx context.Context, req UploadRequest) (*ImageAsset, error) {
	original := strings.TrimSpace(req.FileName)
	if original == "" {
		return nil, ErrNameRequired
	}
	if len(req.Data) == 0 {
		return nil, ErrEmptyFile
	}

	name, err := s.uniqueFileName(ctx, original)
	if err != nil {
		return nil, err
	}

	storedPath, err := s.store.Save(ctx, name, req.Data)
	if err != nil {
		return nil, err
	}

	width, height := probeDimensions(req.Data)
	if width == 0 {
		s.logger.Warn("media.upload.no_dimensions", "file", name)
	}

	record := &ImageAsset{
		FileName:     name,
		OriginalName: original,
		StoredPath:   storedPath,
		ContentType:  req.ContentType,
		SizeBytes:    int64(len(req.Data)),
		AltText:      strings.TrimSpace(req.AltText),
		Caption:      strings.TrimSpace(req.Caption),
		Width:        width,
		Height:       height,
		UploadedAt:   s.now(),
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		// The binary is orphaned if we keep it around without a row.
		if cleanupErr := s.store.Delete(ctx, storedPath); cleanupErr != nil {
			s.logger.Warn("media.upload.cleanup_failed", "path", storedPath, "error", cleanupErr)
		}
		return nil, err
	}

	s.logger.Info("media.uploaded", "file", created.FileName, "bytes", created.SizeBytes)
	return created, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*ImageAsset, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetByFileName(ctx context.Context, fileName string) (*ImageAsset, error) {
	return s.repo.GetByFileName(ctx, fileName)
}

func (s *service) List(ctx context.Context) ([]*ImageAsset, error) {
	return s.repo.List(ctx)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, record.StoredPath); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("media.deleted", "file", record.FileName, "id", id)
	return nil
}

// uniqueFileName builds a timestamped name with a short random token,
// widening to the full token when the short form collides.
func (s *service) uniqueFileName(ctx context.Context, original string) (string, error) {
	at := s.now()
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		token := s.tokens()
		if attempt == 0 {
			token = token[:shortTokenLength]
		}
		name := buildFileName(original, at, token)

		taken, err := s.repo.ExistsByFileName(ctx, name)
		if err != nil {
			return "", err
		}
		if !taken {
			if onDisk, err := s.store.Exists(ctx, name); err != nil {
				return "", err
			} else if !onDisk {
				return name, nil
			}
		}
	}
	return "", errors.New("media: could not generate a unique file name")
}

package media

import "context"

// Repository persists image metadata.
type Repository interface {
	Create(ctx context.Context, record *ImageAsset) (*ImageAsset, error)
	GetByID(ctx context.Context, id int64) (*ImageAsset, error)
	GetByFileName(ctx context.Context, fileName string) (*ImageAsset, error)
	// List returns every image, newest upload first.
	List(ctx context.Context) ([]*ImageAsset, error)
	Delete(ctx context.Context, id int64) error
	ExistsByFileName(ctx context.Context, fileName string) (bool, error)
}

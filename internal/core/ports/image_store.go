package ports

import (
	"context"
	"io"

	"github.com/Rudraa01/it-submission/internal/core/domain"
)

// ImageStore abstracts the external image host holding task screenshots.
type ImageStore interface {
	// Upload stores the image and returns its public URL together with the
	// handle needed to delete it later.
	Upload(ctx context.Context, r io.Reader, size int64, contentType, filename string) (*domain.Screenshot, error)
	// Remove deletes a previously uploaded image by its deletion handle.
	Remove(ctx context.Context, publicID string) error
}

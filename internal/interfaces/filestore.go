package interfaces

import (
	"context"
	"io"

	"github.com/medwellsolutions/Medwell-Backend/internal/domain"
)

// FileStore is the blob-store boundary: store bytes and get back an
// opaque reference, or resolve a reference back to a byte stream.
type FileStore interface {
	Store(ctx context.Context, folder, filename, contentType string, b []byte) (domain.FileRef, error)
	Open(ctx context.Context, fileID string) (io.ReadCloser, string, error)
}

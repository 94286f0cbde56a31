package cloudinary

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/medwellsolutions/Medwell-Backend/internal/domain"
)

// FileStore keeps vetting documents in Cloudinary. The FileRef id is the
// delivery URL, so Open is a plain HTTP fetch.
type FileStore struct {
	cld  *cld.Cloudinary
	http *http.Client
}

func NewFileStore(cloud *cld.Cloudinary) *FileStore {
	return &FileStore{
		cld:  cloud,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *FileStore) Store(ctx context.Context, folder, filename, contentType string, b []byte) (domain.FileRef, error) {
	reader := bytes.NewReader(b)

	// "raw" keeps PDFs byte-identical; Cloudinary would otherwise treat
	// everything as an image
	resourceType := "raw"
	if len(contentType) >= 6 && contentType[:6] == "image/" {
		resourceType = "image"
	}

	res, err := s.cld.Upload.Upload(ctx, reader, uploader.UploadParams{
		Folder:       folder,
		ResourceType: resourceType,
	})
	if err != nil {
		return domain.FileRef{}, &domain.StorageError{Op: "upload " + filename, Err: err}
	}

	return domain.FileRef{
		FileID:      res.SecureURL,
		Filename:    filename,
		ContentType: contentType,
		Length:      int64(len(b)),
		UploadDate:  time.Now(),
	}, nil
}

func (s *FileStore) Open(ctx context.Context, fileID string) (io.ReadCloser, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileID, nil)
	if err != nil {
		return nil, "", &domain.StorageError{Op: "open " + fileID, Err: err}
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, "", &domain.StorageError{Op: "open " + fileID, Err: err}
	}
	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, "", domain.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, "", &domain.StorageError{Op: "open " + fileID, Err: errors.New(resp.Status)}
	}

	return resp.Body, resp.Header.Get("Content-Type"), nil
}

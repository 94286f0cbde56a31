package filestore

import (
	"bytes"
	"context"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/medwellsolutions/Medwell-Backend/internal/domain"
)

type entry struct {
	ref  domain.FileRef
	data []byte
}

// Memory holds blobs in process. Used in tests and when no Cloudinary
// credentials are configured.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string]entry
}

func NewMemory() *Memory {
	return &Memory{blobs: make(map[string]entry)}
}

func (m *Memory) Store(_ context.Context, folder, filename, contentType string, b []byte) (domain.FileRef, error) {
	ref := domain.FileRef{
		FileID:      folder + "/" + uuid.NewString(),
		Filename:    filename,
		ContentType: contentType,
		Length:      int64(len(b)),
		UploadDate:  time.Now(),
	}

	data := make([]byte, len(b))
	copy(data, b)

	m.mu.Lock()
	m.blobs[ref.FileID] = entry{ref: ref, data: data}
	m.mu.Unlock()

	return ref, nil
}

func (m *Memory) Open(_ context.Context, fileID string) (io.ReadCloser, string, error) {
	m.mu.RLock()
	e, ok := m.blobs[fileID]
	m.mu.RUnlock()
	if !ok {
		return nil, "", domain.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(e.data)), e.ref.ContentType, nil
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.blobs)
}

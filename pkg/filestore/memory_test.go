package filestore

import (
	"context"
	"io"
	"testing"

	"github.com/medwellsolutions/Medwell-Backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreAndOpen(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	ref, err := m.Store(ctx, "vetting/doctor", "license.pdf", "application/pdf", []byte("%PDF-1.4 stub"))
	require.NoError(t, err)
	assert.NotEmpty(t, ref.FileID)
	assert.Equal(t, "license.pdf", ref.Filename)
	assert.Equal(t, int64(13), ref.Length)
	assert.Equal(t, 1, m.Len())

	rc, contentType, err := m.Open(ctx, ref.FileID)
	require.NoError(t, err)
	defer rc.Close()

	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 stub", string(b))
	assert.Equal(t, "application/pdf", contentType)
}

func TestMemoryOpenMissing(t *testing.T) {
	m := NewMemory()

	_, _, err := m.Open(context.Background(), "vetting/doctor/nope")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryStoreCopiesBytes(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	b := []byte("original")
	ref, err := m.Store(ctx, "f", "a.txt", "text/plain", b)
	require.NoError(t, err)

	b[0] = 'X'

	rc, _, err := m.Open(ctx, ref.FileID)
	require.NoError(t, err)
	defer rc.Close()
	got, _ := io.ReadAll(rc)
	assert.Equal(t, "original", string(got))
}

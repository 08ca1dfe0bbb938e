package uploads

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *MemoryStore {
	store := NewMemoryStore()
	t.Cleanup(func() { store.Close() })
	return store
}

func TestMemoryStore_PutAndGet(t *testing.T) {
	store := setupStore(t)

	u, err := store.Put("design.pdf", "application/pdf", []byte("%PDF-1.7"))
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "design.pdf", u.Filename)
	assert.Equal(t, int64(8), u.Size)

	got, err := store.Get(u.ID)
	require.NoError(t, err)
	assert.Equal(t, u, got)
}

func TestMemoryStore_Get_NotFound(t *testing.T) {
	store := setupStore(t)

	_, err := store.Get("missing")
	assert.ErrorIs(t, err, ErrUploadNotFound)
}

func TestMemoryStore_Put_RejectsOversizedFile(t *testing.T) {
	store := setupStore(t)

	_, err := store.Put("huge.psd", "image/vnd.adobe.photoshop", bytes.Repeat([]byte{0}, MaxUploadSize+1))
	assert.ErrorIs(t, err, ErrUploadTooLarge)
}

func TestMemoryStore_Put_RejectsUnsupportedFormat(t *testing.T) {
	store := setupStore(t)

	_, err := store.Put("malware.exe", "application/octet-stream", []byte("MZ"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = store.Put("noextension", "text/plain", []byte("x"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestMemoryStore_Put_AcceptsAllDesignFormats(t *testing.T) {
	store := setupStore(t)

	for _, name := range []string{"a.pdf", "b.ai", "c.psd", "d.jpg", "e.JPEG", "f.png"} {
		_, err := store.Put(name, "", []byte("data"))
		assert.NoError(t, err, "format %s should be accepted", name)
	}
}

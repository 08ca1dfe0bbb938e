package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adprintpro/storefront/internal/uploads"
)

func multipartBody(t *testing.T, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUploadCreate(t *testing.T) {
	store := uploads.NewMemoryStore()
	t.Cleanup(func() { store.Close() })
	handler := NewUploadHandler(store)

	body, contentType := multipartBody(t, "design.pdf", []byte("%PDF-1.7"))
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/uploads", body)
	request.Header.Set("Content-Type", contentType)

	handler.Create(recorder, request)

	require.Equal(t, http.StatusCreated, recorder.Code)
	var resp uploads.Upload
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "design.pdf", resp.Filename)

	_, err := store.Get(resp.ID)
	assert.NoError(t, err)
}

func TestUploadCreate_UnsupportedFormat(t *testing.T) {
	store := uploads.NewMemoryStore()
	t.Cleanup(func() { store.Close() })
	handler := NewUploadHandler(store)

	body, contentType := multipartBody(t, "design.exe", []byte("MZ"))
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/uploads", body)
	request.Header.Set("Content-Type", contentType)

	handler.Create(recorder, request)

	assert.Equal(t, http.StatusUnsupportedMediaType, recorder.Code)
}

func TestUploadCreate_MissingFile(t *testing.T) {
	store := uploads.NewMemoryStore()
	t.Cleanup(func() { store.Close() })
	handler := NewUploadHandler(store)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/uploads", bytes.NewReader(nil))

	handler.Create(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

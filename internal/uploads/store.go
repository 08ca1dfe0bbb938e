// Package uploads keeps customer design files in memory until the
// session that uploaded them ends. Files are opaque blobs; nothing in
// the storefront inspects their contents.
package uploads

import (
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// MaxUploadSize is the largest design file accepted.
	MaxUploadSize = 50 << 20 // 50MB

	// UploadTTL is how long an unclaimed upload survives.
	UploadTTL = time.Hour

	// CleanupInterval is how often the background cleanup runs
	CleanupInterval = 5 * time.Minute
)

// Common errors returned by the store
var (
	ErrUploadNotFound    = errors.New("upload not found")
	ErrUploadTooLarge    = errors.New("upload exceeds maximum size")
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

var allowedExtensions = map[string]struct{}{
	".pdf":  {},
	".ai":   {},
	".psd":  {},
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

// Upload is a stored design file reference.
type Upload struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploaded_at"`

	data []byte
}

// MemoryStore holds uploads in memory with TTL-based expiry.
type MemoryStore struct {
	mu      sync.RWMutex
	uploads map[string]*Upload

	stopCleanup chan struct{}
	wg          sync.WaitGroup
}

// NewMemoryStore creates a new in-memory upload store and starts its
// cleanup loop.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		uploads:     make(map[string]*Upload),
		stopCleanup: make(chan struct{}),
	}

	s.wg.Add(1)
	go s.cleanupLoop()

	return s
}

func (s *MemoryStore) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.expireUploads()
		case <-s.stopCleanup:
			return
		}
	}
}

func (s *MemoryStore) expireUploads() {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := time.Now().Add(-UploadTTL)
	for id, u := range s.uploads {
		if u.UploadedAt.Before(cutoff) {
			delete(s.uploads, id)
		}
	}
}

// Put validates and stores a design file, returning its reference.
func (s *MemoryStore) Put(filename, contentType string, data []byte) (*Upload, error) {
	if int64(len(data)) > MaxUploadSize {
		return nil, ErrUploadTooLarge
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return nil, ErrUnsupportedFormat
	}

	u := &Upload{
		ID:          uuid.New().String(),
		Filename:    filename,
		ContentType: contentType,
		Size:        int64(len(data)),
		UploadedAt:  time.Now(),
		data:        data,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploads[u.ID] = u
	return u, nil
}

// Get returns the upload reference for id.
func (s *MemoryStore) Get(id string) (*Upload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.uploads[id]
	if !ok {
		return nil, ErrUploadNotFound
	}
	return u, nil
}

// Close stops the background cleanup and waits for it to finish
func (s *MemoryStore) Close() error {
	close(s.stopCleanup)
	s.wg.Wait()
	return nil
}

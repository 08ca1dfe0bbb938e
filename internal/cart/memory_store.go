package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/adprintpro/storefront/internal/domain"
)

const (
	// SessionTTL is how long an idle session's cart survives before
	// the cleanup loop discards it.
	SessionTTL = 30 * time.Minute

	// CleanupInterval is how often the background cleanup runs
	CleanupInterval = time.Minute
)

type session struct {
	items     []domain.CartItem
	submitted bool
	lastSeen  time.Time
}

// MemoryStore implements Store with in-memory storage keyed by session.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*session

	stopCleanup chan struct{}
	wg          sync.WaitGroup
}

// NewMemoryStore creates a new in-memory cart store and starts its
// session cleanup loop.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		sessions:    make(map[string]*session),
		stopCleanup: make(chan struct{}),
	}

	s.wg.Add(1)
	go s.cleanupLoop()

	return s
}

// cleanupLoop periodically discards sessions idle past their TTL
func (s *MemoryStore) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.expireSessions()
		case <-s.stopCleanup:
			return
		}
	}
}

func (s *MemoryStore) expireSessions() {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := time.Now().Add(-SessionTTL)
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}

// touch returns the session for id, creating it if needed. Callers
// must hold the write lock.
func (s *MemoryStore) touch(id string) *session {
	sess, ok := s.sessions[id]
	if !ok {
		sess = &session{}
		s.sessions[id] = sess
	}
	sess.lastSeen = time.Now()
	return sess
}

func status(sess *session) domain.CheckoutStatus {
	switch {
	case len(sess.items) > 0:
		return domain.StatusHasItems
	case sess.submitted:
		return domain.StatusSubmitted
	default:
		return domain.StatusBrowsing
	}
}

// Get returns a copy of the session cart and its checkout status.
// Reads count as activity: the TTL is idle-based, so a session that
// keeps viewing its cart is never swept.
func (s *MemoryStore) Get(sessionID string) (domain.Cart, domain.CheckoutStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return domain.Cart{}, domain.StatusBrowsing
	}
	sess.lastSeen = time.Now()

	items := make([]domain.CartItem, len(sess.items))
	copy(items, sess.items)
	return domain.Cart{Items: items}, status(sess)
}

// AddItem appends a new item built from a value copy of cfg, so later
// edits in the configurator cannot reach the stored item.
func (s *MemoryStore) AddItem(sessionID string, product domain.Product, cfg domain.PrintConfig, totalPrice int64, uploadID string) domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := domain.CartItem{
		ID:         uuid.New().String(),
		Product:    product,
		Config:     cfg,
		TotalPrice: totalPrice,
		UploadID:   uploadID,
		AddedAt:    time.Now(),
	}

	sess := s.touch(sessionID)
	sess.items = append(sess.items, item)
	sess.submitted = false
	return item
}

// RemoveItem deletes a single item by ID.
func (s *MemoryStore) RemoveItem(sessionID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return ErrItemNotFound
	}
	sess.lastSeen = time.Now()

	for i, item := range sess.items {
		if item.ID == itemID {
			sess.items = append(sess.items[:i], sess.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// Take snapshots and clears the cart in one step so an order intent
// always consumes exactly the items it was priced against.
func (s *MemoryStore) Take(sessionID string) ([]domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok || len(sess.items) == 0 {
		return nil, ErrEmptyCart
	}
	sess.lastSeen = time.Now()

	items := sess.items
	sess.items = nil
	sess.submitted = true
	return items, nil
}

// Clear empties the cart and resets the session to browsing.
func (s *MemoryStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.touch(sessionID)
	sess.items = nil
	sess.submitted = false
}

// Close stops the background cleanup and waits for it to finish
func (s *MemoryStore) Close() error {
	close(s.stopCleanup)
	s.wg.Wait()
	return nil
}

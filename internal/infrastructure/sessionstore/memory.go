package sessionstore

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/vibra-app/vibra/internal/domain/contract"
	"github.com/vibra-app/vibra/internal/domain/entity"
)

// MemoryStore keeps one JSON-encoded user snapshot per session ID, the
// server-side analogue of the client's single persisted session record.
// Records are encoded even in memory so both implementations share the
// exact storage layout.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string][]byte
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

var _ contract.ISessionStore = (*MemoryStore)(nil)

// Save writes the user snapshot for a session, replacing any previous one.
func (s *MemoryStore) Save(ctx context.Context, sessionID string, user *entity.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[sessionID] = raw
	return nil
}

// Get returns the user snapshot for a session.
func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*entity.User, error) {
	s.mu.Lock()
	raw, ok := s.records[sessionID]
	s.mu.Unlock()
	if !ok {
		return nil, contract.ErrSessionNotFound
	}
	var user entity.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes the session record. Deleting a missing session is a no-op.
func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, sessionID)
	return nil
}

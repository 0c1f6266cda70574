package wizard

import (
	"context"
	"sync"
)

// StorageName is the fixed name the draft blob is stored under.
const StorageName = "influencer-app-storage"

// StorageKey scopes the blob to one client.
func StorageKey(clientID string) string {
	return StorageName + ":" + clientID
}

// Store persists one draft per key. Load returns nil, nil when nothing
// has been saved yet.
type Store interface {
	Load(ctx context.Context, key string) (*Draft, error)
	Save(ctx context.Context, key string, d *Draft) error
	Delete(ctx context.Context, key string) error
}

// MemoryStore keeps drafts in process memory.
type MemoryStore struct {
	mu     sync.Mutex
	drafts map[string]*Draft
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{drafts: make(map[string]*Draft)}
}

func (m *MemoryStore) Load(ctx context.Context, key string) (*Draft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.drafts[key]
	if !ok {
		return nil, nil
	}
	return d.Clone(), nil
}

func (m *MemoryStore) Save(ctx context.Context, key string, d *Draft) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.drafts[key] = d.Clone()
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.drafts, key)
	return nil
}

var _ Store = (*MemoryStore)(nil)

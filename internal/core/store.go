package core

// BestStore is durable key-value storage for best-value records.
// A missing key is reported with ok == false and no error.
type BestStore interface {
	Best(key string) (value int, ok bool, err error)
	SetBest(key string, value int) error
}

// MemoryBestStore is an in-process BestStore, used when no database is
// available and in tests.
type MemoryBestStore struct {
	values map[string]int
}

// NewMemoryBestStore creates an empty in-memory store.
func NewMemoryBestStore() *MemoryBestStore {
	return &MemoryBestStore{values: make(map[string]int)}
}

// Best returns the stored value for key.
func (m *MemoryBestStore) Best(key string) (int, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

// SetBest stores value under key, replacing any previous value.
func (m *MemoryBestStore) SetBest(key string, value int) error {
	if m.values == nil {
		m.values = make(map[string]int)
	}
	m.values[key] = value
	return nil
}

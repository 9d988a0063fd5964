package cart

// MemStore is an in-memory Store for tests. Saves counts successful
// writes so tests can assert that every mutation persisted.
type MemStore struct {
	m     map[string]ItemRecord
	Saves int
}

func NewMemStore() *MemStore {
	return &MemStore{m: map[string]ItemRecord{}}
}

func NewMemStoreWith(recs ...ItemRecord) *MemStore {
	s := NewMemStore()
	for _, rec := range recs {
		s.m[rec.ProductID] = rec
	}
	return s
}

func (s *MemStore) Load() (map[string]ItemRecord, error) {
	out := make(map[string]ItemRecord, len(s.m))
	for id, rec := range s.m {
		out[id] = rec
	}
	return out, nil
}

func (s *MemStore) Save(items map[string]ItemRecord) error {
	s.m = make(map[string]ItemRecord, len(items))
	for id, rec := range items {
		s.m[id] = rec
	}
	s.Saves++
	return nil
}

// Len reports how many lines the last Save persisted.
func (s *MemStore) Len() int { return len(s.m) }

package catalog

// MemStore is an in-memory Store for tests. It persists records, not
// live products, so a Load after Save round-trips through the same
// codec the file store uses. Saves counts successful writes so tests
// can assert on persistence without touching the filesystem.
type MemStore struct {
	m     map[string]Record
	Saves int
}

func NewMemStore(products ...Product) *MemStore {
	s := &MemStore{m: map[string]Record{}}
	for _, p := range products {
		s.m[p.Base().ID] = p.Record()
	}
	return s
}

func (s *MemStore) Load() (map[string]Product, error) {
	out := make(map[string]Product, len(s.m))
	for id, rec := range s.m {
		out[id] = FromRecord(rec)
	}
	return out, nil
}

func (s *MemStore) Save(products map[string]Product) error {
	s.m = make(map[string]Record, len(products))
	for id, p := range products {
		s.m[id] = p.Record()
	}
	s.Saves++
	return nil
}

// Record returns the last persisted record for id.
func (s *MemStore) Record(id string) (Record, bool) {
	rec, ok := s.m[id]
	return rec, ok
}

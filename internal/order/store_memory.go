package order

// MemStore is an in-memory Store for tests.
type MemStore struct {
	receipts []Receipt
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Append(r Receipt) error {
	s.receipts = append(s.receipts, r)
	return nil
}

func (s *MemStore) List() ([]Receipt, error) {
	out := make([]Receipt, len(s.receipts))
	copy(out, s.receipts)
	return out, nil
}

package order

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"
)

// FileStore keeps the checkout history as a JSON array, rewritten in
// full on every append. Missing and unparseable files both read as an
// empty history.
type FileStore struct {
	path string
	log  *zap.Logger
}

func NewFileStore(path string, log *zap.Logger) *FileStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &FileStore{path: path, log: log}
}

func (s *FileStore) Append(r Receipt) error {
	receipts, err := s.List()
	if err != nil {
		return err
	}
	receipts = append(receipts, r)

	raw, err := json.MarshalIndent(receipts, "", "  ")
	if err != nil {
		return fmt.Errorf("encode receipts: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write receipts %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) List() ([]Receipt, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read receipts %s: %w", s.path, err)
	}

	var receipts []Receipt
	if err := json.Unmarshal(raw, &receipts); err != nil {
		s.log.Warn("receipts file corrupt, starting empty",
			zap.String("path", s.path), zap.Error(err))
		return nil, nil
	}
	return receipts, nil
}

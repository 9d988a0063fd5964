package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"
)

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

func (s *FileStore) Load() (map[string]ItemRecord, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]ItemRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cart %s: %w", s.path, err)
	}

	var recs map[string]ItemRecord
	if err := json.Unmarshal(raw, &recs); err != nil {
		s.log.Warn("cart file corrupt, starting empty",
			zap.String("path", s.path), zap.Error(err))
		return map[string]ItemRecord{}, nil
	}
	return recs, nil
}

func (s *FileStore) Save(items map[string]ItemRecord) error {
	raw, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write cart %s: %w", s.path, err)
	}
	return nil
}

package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"
)

// FileStore keeps the catalog in a single JSON file mapping product id
// to record. A missing file reads as an empty catalog; a file that
// fails to parse is treated the same way rather than aborting startup.
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

func (s *FileStore) Load() (map[string]Product, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]Product{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", s.path, err)
	}

	var recs map[string]Record
	if err := json.Unmarshal(raw, &recs); err != nil {
		s.log.Warn("catalog file corrupt, starting empty",
			zap.String("path", s.path), zap.Error(err))
		return map[string]Product{}, nil
	}

	out := make(map[string]Product, len(recs))
	for id, rec := range recs {
		out[id] = FromRecord(rec)
	}
	return out, nil
}

func (s *FileStore) Save(products map[string]Product) error {
	recs := make(map[string]Record, len(products))
	for id, p := range products {
		recs[id] = p.Record()
	}

	raw, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write catalog %s: %w", s.path, err)
	}
	return nil
}

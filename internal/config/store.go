package config

import (
	"sync"

	"github.com/alexisbeaulieu97/txview/internal/ui/columns"
)

// FileStore persists column layouts into a config file.
type FileStore struct {
	mu   sync.Mutex
	path string
	cfg  *Config
}

// NewFileStore returns a store writing to path. cfg supplies every setting
// other than the columns and is copied.
func NewFileStore(path string, cfg *Config) *FileStore {
	c := *cfg
	c.Table.Columns = append([]ColumnConfig(nil), cfg.Table.Columns...)
	return &FileStore{path: path, cfg: &c}
}

// Path returns the file the store writes to.
func (s *FileStore) Path() string {
	return s.path
}

// SaveLayout writes set as the configured columns.
func (s *FileStore) SaveLayout(set *columns.Set) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg.SetColumns(set)
	return Save(s.path, s.cfg)
}

package aclcache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/credvault/credvault-acl/pkg/acl"
)

// FileStore persists compiled results as one JSON file per key under a
// cache directory. Writes go through a temp file and rename so readers
// never observe a partial entry.
type FileStore struct {
	fs  afero.Fs
	dir string
}

// NewFileStore creates a file-backed store rooted at dir
func NewFileStore(fs afero.Fs, dir string) (*FileStore, error) {
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	return &FileStore{fs: fs, dir: dir}, nil
}

// Load implements Store
func (s *FileStore) Load(key string) (*acl.Result, error) {
	data, err := afero.ReadFile(s.fs, s.entryPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading cache entry: %w", err)
	}

	var result acl.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parsing cache entry: %w", err)
	}
	return &result, nil
}

// Save implements Store
func (s *FileStore) Save(result *acl.Result, key string) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}

	path := s.entryPath(key)
	tmp := path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0644); err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		s.fs.Remove(tmp)
		return fmt.Errorf("committing cache entry: %w", err)
	}
	return nil
}

// Purge removes every cache entry
func (s *FileStore) Purge() error {
	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		return fmt.Errorf("listing cache directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := s.fs.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			return fmt.Errorf("removing cache entry: %w", err)
		}
	}
	return nil
}

func (s *FileStore) entryPath(key string) string {
	return filepath.Join(s.dir, key+".json")
}

package groups

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/afero"
)

// FileSource loads group membership from a JSON file mapping user id to a
// list of secondary group ids:
//
//	{"42": [3, 7], "43": [3]}
type FileSource struct {
	fs       afero.Fs
	filePath string
}

// NewFileSource creates a source that reads from the given file path
func NewFileSource(fs afero.Fs, filePath string) *FileSource {
	return &FileSource{
		fs:       fs,
		filePath: filePath,
	}
}

// LoadGroups implements Source
func (s *FileSource) LoadGroups(userID int) ([]int, error) {
	membership, err := s.loadAll()
	if err != nil {
		return nil, err
	}
	return membership[userID], nil
}

func (s *FileSource) loadAll() (map[int][]int, error) {
	data, err := afero.ReadFile(s.fs, s.filePath)
	if err != nil {
		return nil, fmt.Errorf("reading membership file: %w", err)
	}

	var raw map[string][]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing membership file: %w", err)
	}

	membership := make(map[int][]int, len(raw))
	for key, groups := range raw {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("invalid user id %q in membership file", key)
		}
		membership[id] = groups
	}
	return membership, nil
}

package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// FileStore persists the favorite id set as a JSON id list on disk so
// favorites survive restarts. Writes go through a temp file rename to avoid
// torn files.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore constructs a file-backed store at path. The parent directory
// is created on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// SavedIDs loads the id set from disk. A missing file is an empty set.
func (s *FileStore) SavedIDs(ctx context.Context) (map[int]struct{}, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

// Save adds an id and rewrites the file.
func (s *FileStore) Save(ctx context.Context, id int) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := ids[id]; ok {
		return nil
	}
	ids[id] = struct{}{}
	return s.persist(ids)
}

// Delete removes an id and rewrites the file.
func (s *FileStore) Delete(ctx context.Context, id int) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := ids[id]; !ok {
		return nil
	}
	delete(ids, id)
	return s.persist(ids)
}

func (s *FileStore) load() (map[int]struct{}, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return make(map[int]struct{}), nil
		}
		return nil, err
	}

	var list []int
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}

	ids := make(map[int]struct{}, len(list))
	for _, id := range list {
		ids[id] = struct{}{}
	}
	return ids, nil
}

func (s *FileStore) persist(ids map[int]struct{}) error {
	list := make([]int, 0, len(ids))
	for id := range ids {
		list = append(list, id)
	}
	sort.Ints(list)

	data, err := json.Marshal(list)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

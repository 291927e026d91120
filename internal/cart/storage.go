package cart

import (
	"errors"
	"io/fs"
	"os"
)

// Storage persists serialized client state between sessions, the way a
// browser's local storage would.
type Storage interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (s *FileStorage) Load() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	return data, nil
}

func (s *FileStorage) Save(data []byte) error {
	return os.WriteFile(s.path, data, 0o600)
}

// MemoryStorage keeps state for a single process lifetime. Used in tests.
type MemoryStorage struct {
	data []byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Load() ([]byte, error) {
	return s.data, nil
}

func (s *MemoryStorage) Save(data []byte) error {
	s.data = append([]byte(nil), data...)
	return nil
}

package wishlist

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Storage is the persistence port for the wishlist. Load returns the stored
// set; Save replaces it wholesale. Implementations play the role the browser's
// localStorage plays for the web client.
type Storage interface {
	Load() ([]Item, error)
	Save(items []Item) error
}

// FileStorage persists the wishlist as a single JSON document on disk.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (f *FileStorage) Load() ([]Item, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Item{}, nil
		}
		return nil, err
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (f *FileStorage) Save(items []Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}

	// Write-then-rename so a crash never leaves a truncated wishlist.
	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".wishlist-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}

package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/putr/putr/internal/model"
)

// JSONFileStore keeps the whole directory in one indented JSON file, the
// legacy persisted form.
type JSONFileStore struct {
	path string
}

// OpenJSONFile returns a store backed by the file at path. The file is not
// touched until Save.
func OpenJSONFile(path string) *JSONFileStore {
	return &JSONFileStore{path: path}
}

func (s *JSONFileStore) Load() (model.Directory, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.Directory{}, nil
		}
		return nil, fmt.Errorf("read directory file: %w", err)
	}
	dir := model.Directory{}
	if err := json.Unmarshal(data, &dir); err != nil {
		return nil, fmt.Errorf("decode directory file: %w", err)
	}
	for _, p := range dir {
		p.EnsureCurveOrder()
	}
	if err := dir.Validate(); err != nil {
		return nil, fmt.Errorf("invalid directory: %w", err)
	}
	return dir, nil
}

func (s *JSONFileStore) Save(dir model.Directory) error {
	data, err := json.MarshalIndent(dir, "", "    ")
	if err != nil {
		return fmt.Errorf("encode directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write directory file: %w", err)
	}
	return nil
}

func (s *JSONFileStore) Close() error { return nil }

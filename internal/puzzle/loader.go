package puzzle

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/samdwyer/wordwheel/data"
)

// Load reads and unmarshals a JSON file from the given filesystem.
func Load[T any](fsys fs.FS, filename string) (T, error) {
	var result T

	content, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return result, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// LoadEmbedded loads the puzzle collection compiled into the binary.
func LoadEmbedded() (List, error) {
	list, err := Load[List](data.FS(), data.PuzzlesFile)
	if err != nil {
		return nil, err
	}
	if err := list.Validate(); err != nil {
		return nil, fmt.Errorf("embedded %s: %w", data.PuzzlesFile, err)
	}
	return list, nil
}

// LoadFile loads a puzzle collection from a JSON file on disk.
// An empty path falls back to the embedded collection.
func LoadFile(path string) (List, error) {
	if path == "" {
		return LoadEmbedded()
	}

	list, err := Load[List](os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return nil, err
	}
	if err := list.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

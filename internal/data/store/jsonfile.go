// Package store implements the flat-file JSON persistence layer. Every store
// performs a whole-file read-modify-write guarded by a per-store mutex, which
// serializes writers to the same file. Lost updates across sequential writes
// remain possible (last writer wins); that matches the documented storage
// contract for this system.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// readJSONFile decodes a JSON file into out. A missing or unparsable file is
// not an error: out is left at its zero value so first runs and structurally
// incompatible files degrade to an empty collection.
func readJSONFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	if err := json.Unmarshal(data, out); err != nil {
		// Corrupt file reads as empty; the next write replaces it wholesale.
		return nil
	}
	return nil
}

// writeJSONFile rewrites the whole file with indented JSON, creating the
// parent directory if needed.
func writeJSONFile(path string, in any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

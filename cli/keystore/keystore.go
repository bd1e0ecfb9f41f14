// Package keystore stores the Gemini API key on disk.
//
// The key file is a convenience, not a vault: it is written with 0600
// permissions under the facet configuration directory and read back
// verbatim.
package keystore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrKeyNotFound is returned when no API key has been stored.
var ErrKeyNotFound = errors.New("no API key stored")

// FileKeystore stores the API key in a single file.
type FileKeystore struct {
	path string
}

// NewFileKeystore creates a keystore backed by the given file path.
func NewFileKeystore(path string) *FileKeystore {
	return &FileKeystore{path: path}
}

// Path returns the backing file path.
func (k *FileKeystore) Path() string {
	return k.path
}

// Set stores the API key, creating the parent directory if needed.
func (k *FileKeystore) Set(value string) error {
	if err := os.MkdirAll(filepath.Dir(k.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(k.path, []byte(value+"\n"), 0o600)
}

// Get retrieves the stored API key. Returns ErrKeyNotFound when no key
// file exists.
func (k *FileKeystore) Get() (string, error) {
	data, err := os.ReadFile(k.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrKeyNotFound
		}
		return "", err
	}

	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", ErrKeyNotFound
	}
	return key, nil
}

// Delete removes the stored API key. Deleting a missing key is not an error.
func (k *FileKeystore) Delete() error {
	err := os.Remove(k.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

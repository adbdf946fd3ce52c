package storage

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
)

// Store persists base64-encoded payloads to named paths
type Store interface {
	Save(path string, dataBase64 string) error
}

// FileStore writes payloads to the local filesystem
type FileStore struct{}

// Save decodes the payload and writes it to path, creating parent directories
func (FileStore) Save(path string, dataBase64 string) error {
	if path == "" {
		return fmt.Errorf("path is required")
	}

	data, err := base64.StdEncoding.DecodeString(dataBase64)
	if err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

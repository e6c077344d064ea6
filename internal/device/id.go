// Package device derives a stable per-install identifier, sent with login
// requests so the server can track which device a session belongs to.
package device

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	idFileMode = 0o600
	idDirMode  = 0o700
)

// ID returns the device identifier stored at path, creating it on first
// use. The identifier is a random UUID and never changes afterwards.
func ID(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		id := strings.TrimSpace(string(data))
		if _, parseErr := uuid.Parse(id); parseErr == nil {
			return id, nil
		}
		// Corrupt file: fall through and regenerate.
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("read device id: %w", err)
	}

	id := uuid.NewString()
	if err := os.MkdirAll(filepath.Dir(path), idDirMode); err != nil {
		return "", fmt.Errorf("create device id directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(id+"\n"), idFileMode); err != nil {
		return "", fmt.Errorf("write device id: %w", err)
	}

	return id, nil
}

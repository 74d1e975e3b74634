package auth

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
)

const secretLen = 32

// LoadOrCreateSecret reads the token-signing secret from path, creating
// a fresh random one on first run. The file is owner-readable only.
func LoadOrCreateSecret(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		if len(data) < secretLen {
			return nil, fmt.Errorf("secret file %s is truncated", path)
		}
		return data, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read secret file: %w", err)
	}

	secret := make([]byte, secretLen)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generate secret: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create secret directory: %w", err)
	}
	if err := os.WriteFile(path, secret, 0o600); err != nil {
		return nil, fmt.Errorf("write secret file: %w", err)
	}
	return secret, nil
}

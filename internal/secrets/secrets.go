// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API keys from a directory of plain-text files and
// from a .env file. Each file in the directory holds one secret: the
// filename is the key name and the trimmed contents are the value.
//
// Supported key files: patentsview-api-key, llm-api-key.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// LoadDotenv populates the process environment from a .env file in the
// working directory, if one exists. Existing environment variables win.
func LoadDotenv() {
	// godotenv returns an error for a missing file; that is the common case
	// and not worth reporting.
	_ = godotenv.Load()
}

// Load reads every file in dir and returns a map of filename to trimmed
// contents. A missing directory is not an error: Load returns an empty map
// so the caller can fall back to the environment. Unreadable files produce
// a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	out := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			out[name] = value
		}
	}

	return out, nil
}

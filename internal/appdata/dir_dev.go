//go:build !prod

package appdata

import (
	"log"
	"os"
	"path/filepath"

	"opentranscribe/internal/utils"
)

// platformDataDir returns the data directory for development mode.
// Data lives under the project root so debug runs never touch an installed copy.
func platformDataDir(override string) (string, bool) {
	if override != "" {
		return override, true
	}

	root, err := utils.FindProjectRoot()
	if err != nil {
		root, err = os.Getwd()
		if err != nil {
			log.Printf("Warning: failed to resolve working directory: %v", err)
			return "", false
		}
	}
	return filepath.Join(root, ".appdata"), true
}

func IsDevelopment() bool {
	return true
}

//go:build prod

package appdata

import (
	"log"
	"path/filepath"

	"opentranscribe/internal/config"
)

// platformDataDir returns the data directory for production mode: the
// application's folder inside the user data directory.
func platformDataDir(string) (string, bool) {
	dataDir, err := UserDataDir()
	if err != nil {
		log.Printf("Warning: failed to get user data dir: %v", err)
		return "", false
	}
	return filepath.Join(dataDir, config.AppIdentifier), true
}

func IsDevelopment() bool {
	return false
}

package appdata

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

// UserDataDir returns the per-user base directory for application data:
// $XDG_DATA_HOME (default ~/.local/share) on Linux and the BSDs, the
// user config directory (Application Support, %AppData%) elsewhere.
func UserDataDir() (string, error) {
	switch runtime.GOOS {
	case "windows", "darwin", "ios", "plan9":
		return os.UserConfigDir()
	default:
		return xdgDataHome(os.Getenv, os.UserHomeDir)
	}
}

func xdgDataHome(getenv func(string) string, homeDir func() (string, error)) (string, error) {
	if dir := getenv("XDG_DATA_HOME"); dir != "" && filepath.IsAbs(dir) {
		return dir, nil
	}
	home, err := homeDir()
	if err != nil {
		return "", err
	}
	if home == "" {
		return "", errors.New("neither $XDG_DATA_HOME nor $HOME are defined")
	}
	return filepath.Join(home, ".local", "share"), nil
}

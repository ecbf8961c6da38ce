// Command remove-config deletes the application data directory. Installers
// run it on uninstall.
package main

import (
	"fmt"
	"io"
	"os"

	"opentranscribe/internal/appdata"
	"opentranscribe/internal/config"
	"opentranscribe/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(run(appdata.NewPlatform(cfg.DataDirOverride), os.Stdout))
}

func run(resolver appdata.PathResolver, out io.Writer) int {
	dir, ok := resolver.AppDataDir()
	if !ok || dir == "" {
		fmt.Fprintln(out, "Application data directory could not be resolved.")
		return 1
	}

	if !utils.DirectoryExists(dir) {
		fmt.Fprintf(out, "Directory not found: %s\n", dir)
		return 0
	}

	if err := os.RemoveAll(dir); err != nil {
		fmt.Fprintf(out, "Failed to remove %s: %v\n", dir, err)
		return 1
	}
	fmt.Fprintf(out, "Removed: %s\n", dir)
	return 0
}

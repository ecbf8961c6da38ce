package appdata

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatic_AppDataDir(t *testing.T) {
	dir, ok := Static("/var/lib/app").AppDataDir()
	assert.True(t, ok)
	assert.Equal(t, "/var/lib/app", dir)

	dir, ok = Static("").AppDataDir()
	assert.False(t, ok)
	assert.Equal(t, "", dir)
}

func TestPlatform_DevelopmentOverride(t *testing.T) {
	if !IsDevelopment() {
		t.Skip("override only applies to development builds")
	}
	override := t.TempDir()

	dir, ok := NewPlatform(override).AppDataDir()

	assert.True(t, ok)
	assert.Equal(t, override, dir)
}

func TestPlatform_DevelopmentDefault(t *testing.T) {
	if !IsDevelopment() {
		t.Skip("project-local directory only applies to development builds")
	}

	dir, ok := NewPlatform("").AppDataDir()

	assert.True(t, ok)
	assert.Equal(t, ".appdata", filepath.Base(dir))
}

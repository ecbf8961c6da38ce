// Package appdata locates the per-user directory the application writes its
// data to.
package appdata

// PathResolver supplies the platform application data directory. It reports
// false when the host cannot provide one.
type PathResolver interface {
	AppDataDir() (string, bool)
}

// Static resolves to a fixed directory. The empty string resolves to nothing.
type Static string

func (s Static) AppDataDir() (string, bool) {
	return string(s), s != ""
}

// Platform resolves the directory for the current build. Development builds
// honour Override; production builds always use the user config directory.
type Platform struct {
	Override string
}

func NewPlatform(override string) *Platform {
	return &Platform{Override: override}
}

func (p *Platform) AppDataDir() (string, bool) {
	return platformDataDir(p.Override)
}

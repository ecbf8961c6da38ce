package services

import (
	"context"

	"opentranscribe/internal/appdata"
	"opentranscribe/internal/repositories"
)

// Services aggregates the domain services backed by the application data
// directory.
type Services struct {
	Preferences PreferencesService
}

// NewServices constructs the service container using repositories rooted at
// the directory the resolver supplies.
func NewServices(resolver appdata.PathResolver) *Services {
	preferencesRepo := repositories.NewPreferencesRepository(resolver)

	return &Services{
		Preferences: NewPreferencesService(preferencesRepo),
	}
}

// Startup hands the Wails context to every service.
func (s *Services) Startup(ctx context.Context) {
	s.Preferences.Startup(ctx)
}

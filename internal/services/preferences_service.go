package services

import (
	"context"

	"opentranscribe/internal/events"
	"opentranscribe/internal/models"
	"opentranscribe/internal/repositories"
)

type PreferencesService interface {
	Startup(ctx context.Context)
	Load() (*models.Preferences, error)
	Save(prefs models.Preferences) error
	Defaults() models.Preferences
	Presets() []models.PromptPreset
	Path() (string, error)
}

type preferencesService struct {
	preferences repositories.PreferencesRepository
	context     context.Context
}

func NewPreferencesService(preferences repositories.PreferencesRepository) PreferencesService {
	return &preferencesService{preferences: preferences}
}

func (s *preferencesService) Startup(ctx context.Context) {
	s.context = ctx
}

func (s *preferencesService) ctx() context.Context {
	if s.context == nil {
		return context.Background()
	}
	return s.context
}

// Load returns the saved preferences, or nil when none have been saved yet.
func (s *preferencesService) Load() (*models.Preferences, error) {
	// Resolved up front so events carry the path and an unresolvable
	// directory never reaches the repository.
	path, err := s.preferences.Path()
	if err != nil {
		events.Emit(s.ctx(), events.PreferencesError,
			events.NewError("failed to load preferences: "+err.Error()))
		return nil, err
	}

	prefs, err := s.preferences.Get()
	if err != nil {
		events.Emit(s.ctx(), events.PreferencesError,
			events.NewError("failed to load preferences: "+err.Error()).WithPath(path))
		return nil, err
	}

	if prefs == nil {
		events.Emit(s.ctx(), events.PreferencesLoaded,
			events.NewInfo("no saved preferences").WithPath(path))
		return nil, nil
	}

	events.Emit(s.ctx(), events.PreferencesLoaded,
		events.NewSuccess("preferences loaded").WithPath(path))
	return prefs, nil
}

// Save replaces the saved preferences with prefs.
func (s *preferencesService) Save(prefs models.Preferences) error {
	path, err := s.preferences.Path()
	if err != nil {
		events.Emit(s.ctx(), events.PreferencesError,
			events.NewError("failed to save preferences: "+err.Error()))
		return err
	}

	if err := s.preferences.Save(&prefs); err != nil {
		events.Emit(s.ctx(), events.PreferencesError,
			events.NewError("failed to save preferences: "+err.Error()).WithPath(path))
		return err
	}

	events.Emit(s.ctx(), events.PreferencesSaved,
		events.NewSuccess("preferences saved").WithPath(path))
	return nil
}

func (s *preferencesService) Defaults() models.Preferences {
	return DefaultPreferences()
}

func (s *preferencesService) Presets() []models.PromptPreset {
	return PromptPresets()
}

func (s *preferencesService) Path() (string, error) {
	return s.preferences.Path()
}

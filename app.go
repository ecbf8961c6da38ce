package main

import (
	"context"
	"fmt"

	"opentranscribe/internal/events"
	"opentranscribe/internal/models"
	"opentranscribe/internal/services"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// App struct
type App struct {
	ctx         context.Context
	Preferences services.PreferencesService
}

// NewApp creates a new App application struct
func NewApp(preferences services.PreferencesService) *App {
	return &App{Preferences: preferences}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx

	if a.Preferences == nil {
		return
	}
	if path, err := a.Preferences.Path(); err != nil {
		events.Emit(ctx, events.PreferencesLocation,
			events.NewWarn("preferences path unavailable: "+err.Error()))
	} else {
		events.Emit(ctx, events.PreferencesLocation,
			events.NewInfo("preferences file located").WithPath(path))
	}
}

// shutdown is called when the app is closing.
func (a *App) shutdown(ctx context.Context) {
	runtime.LogInfo(ctx, "shutting down")
}

// LoadPreferences returns the saved preferences, or null on first run.
func (a *App) LoadPreferences() (*models.Preferences, error) {
	if a.Preferences == nil {
		return nil, fmt.Errorf("preferences service not available")
	}
	return a.Preferences.Load()
}

// SavePreferences replaces the saved preferences.
func (a *App) SavePreferences(preferences models.Preferences) error {
	if a.Preferences == nil {
		return fmt.Errorf("preferences service not available")
	}
	return a.Preferences.Save(preferences)
}

// DefaultPreferences returns the values a first run starts from.
func (a *App) DefaultPreferences() (models.Preferences, error) {
	if a.Preferences == nil {
		return models.Preferences{}, fmt.Errorf("preferences service not available")
	}
	return a.Preferences.Defaults(), nil
}

// PromptPresets returns the built-in prompt presets.
func (a *App) PromptPresets() ([]models.PromptPreset, error) {
	if a.Preferences == nil {
		return nil, fmt.Errorf("preferences service not available")
	}
	return a.Preferences.Presets(), nil
}

// PreferencesPath returns where preferences are stored.
func (a *App) PreferencesPath() (string, error) {
	if a.Preferences == nil {
		return "", fmt.Errorf("preferences service not available")
	}
	return a.Preferences.Path()
}

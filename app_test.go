package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opentranscribe/internal/appdata"
	"opentranscribe/internal/events"
	"opentranscribe/internal/models"
	"opentranscribe/internal/services"
)

func TestApp_SaveThenLoad(t *testing.T) {
	svc := services.NewServices(appdata.Static(t.TempDir()))
	app := NewApp(svc.Preferences)

	prefs, err := app.LoadPreferences()
	require.NoError(t, err)
	assert.Nil(t, prefs)

	want := models.Preferences{Model: "gpt-4", Prompt: "You are a helpful assistant.", APIKey: "sk-..."}
	require.NoError(t, app.SavePreferences(want))

	prefs, err = app.LoadPreferences()
	require.NoError(t, err)
	require.NotNil(t, prefs)
	assert.Equal(t, want, *prefs)
}

func TestApp_ErrorsAreMessageText(t *testing.T) {
	app := NewApp(services.NewServices(appdata.Static("")).Preferences)

	_, err := app.LoadPreferences()
	require.Error(t, err)
	assert.Equal(t, "unable to resolve app data directory", err.Error())

	_, err = app.PreferencesPath()
	assert.Error(t, err)
}

func TestApp_WithoutService(t *testing.T) {
	app := NewApp(nil)

	_, err := app.LoadPreferences()
	assert.EqualError(t, err, "preferences service not available")
	assert.EqualError(t, app.SavePreferences(models.Preferences{}), "preferences service not available")
}

func TestApp_DefaultsAndPresets(t *testing.T) {
	app := NewApp(services.NewServices(appdata.Static(t.TempDir())).Preferences)

	defaults, err := app.DefaultPreferences()
	require.NoError(t, err)
	assert.Equal(t, services.DefaultModel, defaults.Model)

	presets, err := app.PromptPresets()
	require.NoError(t, err)
	assert.Len(t, presets, 3)
	assert.Equal(t, presets[0].Prompt, defaults.Prompt)
}

func TestApp_DefaultsAndPresetsWithoutService(t *testing.T) {
	app := NewApp(nil)

	_, err := app.DefaultPreferences()
	assert.EqualError(t, err, "preferences service not available")
	_, err = app.PromptPresets()
	assert.EqualError(t, err, "preferences service not available")
}

func captureStartupEvents(t *testing.T) *[]events.PreferencesEvent {
	t.Helper()
	var captured []events.PreferencesEvent
	events.SetCustomEmitter(func(ctx context.Context, name string, evt events.PreferencesEvent) {
		if name == events.PreferencesLocation {
			captured = append(captured, evt)
		}
	})
	t.Cleanup(func() { events.SetCustomEmitter(nil) })
	return &captured
}

func TestApp_StartupReportsLocation(t *testing.T) {
	captured := captureStartupEvents(t)
	dir := t.TempDir()
	app := NewApp(services.NewServices(appdata.Static(dir)).Preferences)

	app.startup(context.Background())

	require.Len(t, *captured, 1)
	assert.Equal(t, events.EventInfo, (*captured)[0].Type)
	assert.Equal(t, filepath.Join(dir, "preferences.json"), (*captured)[0].Path)
}

func TestApp_StartupWarnsWhenPathUnavailable(t *testing.T) {
	captured := captureStartupEvents(t)
	app := NewApp(services.NewServices(appdata.Static("")).Preferences)

	app.startup(context.Background())

	require.Len(t, *captured, 1)
	assert.Equal(t, events.EventWarn, (*captured)[0].Type)
	assert.Equal(t, "preferences path unavailable: unable to resolve app data directory", (*captured)[0].Message)
	assert.Empty(t, (*captured)[0].Path)
}

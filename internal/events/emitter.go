package events

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Emit delivers an event. It is a no-op until EnableRuntimeEmitter or
// SetCustomEmitter is called, so code outside a Wails app can run freely.
var Emit = func(ctx context.Context, name string, evt PreferencesEvent) {}

// EnableRuntimeEmitter routes events to the frontend and the Wails log.
// ctx must be the context Wails passes to OnStartup.
func EnableRuntimeEmitter() {
	Emit = func(ctx context.Context, name string, evt PreferencesEvent) {
		if ctx == nil {
			return
		}
		runtime.EventsEmit(ctx, name, evt)
		logRuntimeEvent(ctx, name, evt)
	}
}

func SetCustomEmitter(f func(ctx context.Context, name string, evt PreferencesEvent)) {
	if f == nil {
		Emit = func(context.Context, string, PreferencesEvent) {}
		return
	}
	Emit = f
}

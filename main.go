package main

import (
	"context"
	"embed"
	"log"

	"opentranscribe/internal/appdata"
	"opentranscribe/internal/config"
	"opentranscribe/internal/events"
	"opentranscribe/internal/services"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	resolver := appdata.NewPlatform(cfg.DataDirOverride)
	svc := services.NewServices(resolver)
	app := NewApp(svc.Preferences)

	// Create application with options
	err = wails.Run(&options.App{
		Title:  "Open Transcribe",
		Width:  800,
		Height: 600,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			ProgramName:         "Open Transcribe",
		},
		LogLevel:           cfg.LogLevel,
		LogLevelProduction: cfg.LogLevel,
		BackgroundColour:   &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup: func(ctx context.Context) {
			events.EnableRuntimeEmitter()
			svc.Startup(ctx)
			app.startup(ctx)
		},
		OnShutdown: app.shutdown,
		Bind: []interface{}{
			app,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/flowkit-dev/flowkit/pkg/app"
	"github.com/flowkit-dev/flowkit/pkg/config"
	"github.com/flowkit-dev/flowkit/pkg/workspace"
)

const Version = "v0.1.0"

func main() {
	// Handle version flag
	if len(os.Args) > 1 {
		if os.Args[1] == "--version" || os.Args[1] == "-v" {
			fmt.Printf("FlowKit %s\n", Version)
			os.Exit(0)
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to get current directory: %v\n", err)
		os.Exit(1)
	}

	if err := config.EnsureConfigFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Cannot create config file: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Cannot load config: %v\n", err)
		os.Exit(1)
	}

	project := workspace.Detect(cwd)

	tuiApp, err := app.NewApp(cfg, project, Version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create app: %v\n", err)
		os.Exit(1)
	}

	if err := tuiApp.RegisterKeybindings(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to register keybindings: %v\n", err)
		os.Exit(1)
	}

	tuiApp.RegisterMouseBindings()

	// Reload layout geometry and rule toggles when the config file changes
	if path, err := config.ConfigPath(); err == nil {
		watcher, err := config.Watch(path, func(next *config.Config) {
			tuiApp.ApplyConfig(next)
		}, nil)
		if err == nil {
			defer watcher.Close()
		}
	}

	if err := tuiApp.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "App error: %v\n", err)
		os.Exit(1)
	}
}

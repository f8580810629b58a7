package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/AntonioJCosta/aliasview/internal/adapters/configfile"
	"github.com/AntonioJCosta/aliasview/internal/adapters/editor"
	"github.com/AntonioJCosta/aliasview/internal/core/ports"
	"github.com/AntonioJCosta/aliasview/internal/core/services/aliassearch"
	"github.com/AntonioJCosta/aliasview/internal/core/services/aliasstore"
	"github.com/AntonioJCosta/aliasview/internal/core/services/session"
	"github.com/AntonioJCosta/aliasview/internal/handlers/cli"
	"github.com/AntonioJCosta/aliasview/internal/handlers/ui"
	"github.com/AntonioJCosta/aliasview/internal/repositories/shellconfig"
)

// Version is set at build time
var Version = "dev"

func main() {
	rootCmd := cli.NewRootCommand(Version, buildApp)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}

// buildApp wires the session from the flags and the settings file.
func buildApp(opts cli.Options, logger *slog.Logger) (*session.Session, error) {
	settingsPath := opts.ConfigFile
	if settingsPath == "" {
		var err error
		settingsPath, err = configfile.DefaultSettingsPath()
		if err != nil {
			return nil, fmt.Errorf("error locating settings file: %w", err)
		}
	}

	settingsProvider, err := configfile.NewYAMLSettingsProvider(settingsPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing settings provider: %w", err)
	}
	return buildSession(opts, logger, settingsProvider)
}

func buildSession(opts cli.Options, logger *slog.Logger, settingsProvider ports.SettingsProvider) (*session.Session, error) {
	settings, err := settingsProvider.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("error reading settings: %w", err)
	}
	logger.Debug("settings loaded", "source", settings.Source, "editor", settings.Editor)

	finder := shellconfig.NewDefaultSourceFinder(opts.SourceFile, settings.Source)
	reader, err := shellconfig.NewShellConfigReader(finder)
	if err != nil {
		return nil, fmt.Errorf("error initializing shell config reader: %w", err)
	}

	launcher := editor.NewOSEditorLauncher(settings.Editor)

	return session.New(
		aliasstore.NewService(reader),
		aliassearch.NewService(),
		launcher,
		logger,
	), nil
}

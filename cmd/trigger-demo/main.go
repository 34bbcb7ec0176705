// ABOUTME: CLI entry point for the autocomplete trigger demo
// ABOUTME: Parses flags, loads config and word lists, then runs the Bubble Tea form

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	// termfix must be imported before any package that imports bubbletea.
	_ "github.com/mauromedda/autocomplete-trigger/internal/termfix"

	"golang.org/x/term"

	"github.com/mauromedda/autocomplete-trigger/internal/config"
	"github.com/mauromedda/autocomplete-trigger/internal/log"
	"github.com/mauromedda/autocomplete-trigger/internal/mode/interactive/btea"
	"github.com/mauromedda/autocomplete-trigger/pkg/tui/component"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("trigger-demo %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args cliArgs) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("trigger-demo needs an interactive terminal")
	}

	settings, err := loadSettings(args)
	if err != nil {
		return err
	}
	applyFlags(settings, args)

	closeLog, err := setupLogging(settings)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := buildDeps(ctx, settings)
	if err != nil {
		return err
	}

	log.Info("trigger-demo %s starting, trigger %q", version, deps.Trigger.Start)
	return btea.Run(ctx, deps)
}

// loadSettings reads -config when given, else the merged global and project files.
func loadSettings(args cliArgs) (*config.Settings, error) {
	if args.config != "" {
		s, err := config.LoadFile(args.config)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return s, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	s, err := config.Load(cwd)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return s, nil
}

// applyFlags overrides settings with the flags the user passed.
func applyFlags(s *config.Settings, args cliArgs) {
	if args.start != "" {
		s.Trigger.Start = args.start
	}
	if args.endSet {
		end := args.end
		s.Trigger.End = &end
	}
	s.WordFiles = append(s.WordFiles, args.words...)
	if args.minLength > 0 {
		s.MinLength = args.minLength
	}
	if args.logFile != "" {
		s.LogFile = args.logFile
	}
	if args.debug {
		s.Debug = true
	}
}

// setupLogging routes logs away from the terminal the TUI owns.
func setupLogging(s *config.Settings) (func(), error) {
	if s.Debug {
		log.SetLevel(log.LevelDebug)
	}
	if s.LogFile == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	prev := log.SetOutput(f)
	return func() {
		log.SetOutput(prev)
		_ = f.Close()
	}, nil
}

func buildDeps(ctx context.Context, s *config.Settings) (btea.AppDeps, error) {
	words, err := config.LoadWordFiles(ctx, s.WordFiles)
	if err != nil {
		return btea.AppDeps{}, fmt.Errorf("loading word lists: %w", err)
	}

	source := component.NewStaticSource(s.Suggestions...)
	source.Add(words...)

	return btea.AppDeps{
		Trigger:     s.TriggerConfig(),
		Source:      source,
		Suggestions: s.Suggestions,
		Options: component.SuggestionOptions{
			MinLength: s.MinLength,
			MaxHeight: s.MaxHeight,
		},
		Version:       version,
		WordFiles:     s.WordFiles,
		WatchInterval: config.DefaultWatchInterval,
	}, nil
}

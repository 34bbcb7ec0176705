// ABOUTME: Tests for flag parsing, flag overrides and dependency assembly
// ABOUTME: Exercises the pieces of run that do not need a terminal

package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/mauromedda/autocomplete-trigger/internal/config"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	args, err := parseFlags([]string{
		"-start", "@@", "-end", "", "-words", "a.txt, b.txt", "-words", "c.txt",
		"-min-length", "2", "-log", "/tmp/x.log", "-debug",
	}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}

	if args.start != "@@" || args.end != "" || !args.endSet {
		t.Errorf("delimiters = %q/%q set=%v", args.start, args.end, args.endSet)
	}
	if !slices.Equal(args.words, []string{"a.txt", "b.txt", "c.txt"}) {
		t.Errorf("words = %v", args.words)
	}
	if args.minLength != 2 || args.logFile != "/tmp/x.log" || !args.debug {
		t.Errorf("unexpected args: %+v", args)
	}
}

func TestParseFlags_EndNotSet(t *testing.T) {
	t.Parallel()

	args, err := parseFlags(nil, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if args.endSet {
		t.Error("endSet true without -end")
	}
}

func TestParseFlags_Unknown(t *testing.T) {
	t.Parallel()

	if _, err := parseFlags([]string{"-nope"}, io.Discard); err == nil {
		t.Error("expected error for unknown flag")
	}
}

func TestApplyFlags(t *testing.T) {
	t.Parallel()

	end := "]]"
	s := &config.Settings{
		Trigger:   config.TriggerSettings{Start: "[[", End: &end},
		WordFiles: []string{"base.txt"},
		MinLength: 1,
	}
	applyFlags(s, cliArgs{endSet: true, words: []string{"extra.txt"}, debug: true})

	if s.Trigger.Start != "[[" {
		t.Errorf("start overridden: %q", s.Trigger.Start)
	}
	if s.Trigger.End == nil || *s.Trigger.End != "" {
		t.Errorf("end = %v, want explicit empty", s.Trigger.End)
	}
	if !slices.Equal(s.WordFiles, []string{"base.txt", "extra.txt"}) {
		t.Errorf("word files = %v", s.WordFiles)
	}
	if s.MinLength != 1 || !s.Debug {
		t.Errorf("unexpected settings: %+v", s)
	}
}

func TestBuildDeps(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("Rust\nGo\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	deps, err := buildDeps(context.Background(), &config.Settings{
		Suggestions: []string{"Go", "Java"},
		WordFiles:   []string{path},
		MaxHeight:   3,
	})
	if err != nil {
		t.Fatalf("buildDeps: %v", err)
	}

	if got := deps.Source.Items(); !slices.Equal(got, []string{"Go", "Java", "Rust"}) {
		t.Errorf("items = %v", got)
	}
	if deps.Trigger.Start != "%{" || deps.Trigger.End != "}" {
		t.Errorf("trigger = %+v", deps.Trigger)
	}
	if deps.Options.MaxHeight != 3 {
		t.Errorf("max height = %d", deps.Options.MaxHeight)
	}
}

func TestBuildDeps_MissingWordFile(t *testing.T) {
	t.Parallel()

	_, err := buildDeps(context.Background(), &config.Settings{
		WordFiles: []string{filepath.Join(t.TempDir(), "missing.txt")},
	})
	if err == nil {
		t.Error("expected error for missing word file")
	}
}

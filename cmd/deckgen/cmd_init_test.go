package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/reactorkit/deckgen/internal/config"
	"gopkg.in/yaml.v3"
)

func TestInitWritesLoadableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deckgen.yaml")

	rootCmd := newRootCmd()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"init", "--path", path})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written config: %v", err)
	}

	// The scaffolded file must parse and round-trip to the built-in defaults.
	cfg := config.Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		t.Fatalf("scaffolded config does not parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("scaffolded config does not validate: %v", err)
	}
	want := config.Default()
	if cfg.RatedPowerWatts != want.RatedPowerWatts ||
		cfg.Strategy != want.Strategy ||
		cfg.OutputRoot != want.OutputRoot {
		t.Errorf("scaffolded config diverges from defaults: %+v", cfg)
	}
}

func TestInitRefusesToOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deckgen.yaml")
	if err := os.WriteFile(path, []byte("# existing\n"), 0644); err != nil {
		t.Fatalf("seeding file: %v", err)
	}

	rootCmd := newRootCmd()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"init", "--path", path})

	if err := rootCmd.Execute(); err == nil {
		t.Fatal("init should refuse to overwrite without --force")
	}

	data, _ := os.ReadFile(path)
	if string(data) != "# existing\n" {
		t.Error("init clobbered an existing file")
	}
}

func TestInitForceOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deckgen.yaml")
	if err := os.WriteFile(path, []byte("# existing\n"), 0644); err != nil {
		t.Fatalf("seeding file: %v", err)
	}

	rootCmd := newRootCmd()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"init", "--path", path, "--force"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("init --force failed: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) == "# existing\n" {
		t.Error("init --force left the old file in place")
	}
}

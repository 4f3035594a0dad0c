// Package generator runs the scenario pipeline end to end: enumerate,
// synthesize, render, and persist each deck, then write the manifest. The
// pipeline is single-threaded and fail-fast: the first error aborts the run
// and no manifest is written, because a partial manifest referencing only
// some scenarios is worse than no output at all.
package generator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/reactorkit/deckgen/internal/config"
	"github.com/reactorkit/deckgen/internal/deck"
	"github.com/reactorkit/deckgen/internal/runindex"
	"github.com/reactorkit/deckgen/internal/scenario"
	"github.com/reactorkit/deckgen/internal/synth"
)

// Summary reports what a generation run produced.
type Summary struct {
	Scenarios    []scenario.Scenario `json:"scenarios"`
	RunDirs      []string            `json:"run_dirs"`
	ManifestPath string              `json:"manifest_path"`

	// IndexPath is empty when the run index is disabled.
	IndexPath string `json:"index_path,omitempty"`
}

// Run executes the full generation pipeline described by cfg. Each scenario
// owns its own subdirectory under cfg.OutputRoot; directories left over from
// a prior run are reused. The manifest (and the run index, when enabled) is
// written only after every scenario has rendered and persisted.
func Run(ctx context.Context, cfg config.Config, log *slog.Logger) (*Summary, error) {
	template, err := deck.Load(cfg.TemplatePath)
	if err != nil {
		return nil, err
	}

	scenarios, err := scenario.Enumerate(cfg)
	if err != nil {
		return nil, err
	}
	log.Debug("enumerated scenarios", "count", len(scenarios), "strategy", string(cfg.Strategy))

	if err := os.MkdirAll(cfg.OutputRoot, 0755); err != nil {
		return nil, fmt.Errorf("creating output root: %w", err)
	}

	dirs := make([]string, 0, len(scenarios))
	records := make([]runindex.Record, 0, len(scenarios))
	for _, s := range scenarios {
		params, err := synth.Synthesize(s, cfg)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", s.RunName, err)
		}
		text, err := deck.Render(template, params)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", s.RunName, err)
		}

		dir := filepath.Join(cfg.OutputRoot, s.RunName)
		if err := writeDeck(dir, cfg.DeckFilename, text); err != nil {
			return nil, fmt.Errorf("scenario %s: %w", s.RunName, err)
		}
		log.Debug("wrote deck", "run", s.RunName, "dir", dir)

		sum := sha256.Sum256([]byte(text))
		dirs = append(dirs, dir)
		records = append(records, runindex.Record{
			RunName:     s.RunName,
			Dir:         dir,
			P0:          s.P0,
			P1:          s.P1,
			Direction:   string(s.Direction),
			Bucket:      string(s.Bucket),
			RampSeconds: s.RampSeconds,
			DeckSHA256:  hex.EncodeToString(sum[:]),
		})
	}

	if err := os.WriteFile(cfg.ManifestPath, []byte(BuildManifest(dirs)), 0644); err != nil {
		return nil, fmt.Errorf("writing manifest: %w", err)
	}

	summary := &Summary{
		Scenarios:    scenarios,
		RunDirs:      dirs,
		ManifestPath: cfg.ManifestPath,
	}

	if cfg.RunIndex {
		indexPath := filepath.Join(cfg.OutputRoot, "runs.db")
		if err := runindex.Write(ctx, indexPath, records); err != nil {
			return nil, err
		}
		summary.IndexPath = indexPath
	}

	log.Info("generation complete",
		"scenarios", len(scenarios),
		"output_root", cfg.OutputRoot,
		"manifest", cfg.ManifestPath)
	return summary, nil
}

// Validate runs the pipeline in memory: it loads the template, enumerates,
// synthesizes, and renders every scenario without touching the output tree.
// It returns the scenario count on success.
func Validate(cfg config.Config) (int, error) {
	template, err := deck.Load(cfg.TemplatePath)
	if err != nil {
		return 0, err
	}
	scenarios, err := scenario.Enumerate(cfg)
	if err != nil {
		return 0, err
	}
	for _, s := range scenarios {
		params, err := synth.Synthesize(s, cfg)
		if err != nil {
			return 0, fmt.Errorf("scenario %s: %w", s.RunName, err)
		}
		if _, err := deck.Render(template, params); err != nil {
			return 0, fmt.Errorf("scenario %s: %w", s.RunName, err)
		}
	}
	return len(scenarios), nil
}

// BuildManifest joins run directories one per line with a trailing newline,
// in generation order.
func BuildManifest(dirs []string) string {
	return strings.Join(dirs, "\n") + "\n"
}

// writeDeck creates the run directory (reusing one left by a prior run) and
// writes the rendered deck inside it.
func writeDeck(dir, filename, text string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating run directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(text), 0644); err != nil {
		return fmt.Errorf("writing deck: %w", err)
	}
	return nil
}

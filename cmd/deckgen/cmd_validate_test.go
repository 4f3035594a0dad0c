package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateCommand(t *testing.T) {
	configPath, outputRoot, _ := writeTestConfig(t)

	rootCmd := newRootCmd()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"validate", "--config", configPath})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if !strings.Contains(buf.String(), "12 scenarios render cleanly") {
		t.Errorf("unexpected output: %q", buf.String())
	}
	if _, err := os.Stat(outputRoot); !os.IsNotExist(err) {
		t.Error("validate touched the output tree")
	}
}

func TestValidateCommandVariantMismatch(t *testing.T) {
	dir := t.TempDir()
	// A bias-less template under a bias-modeling (default) configuration
	// references a placeholder the synthesizer never emits.
	templatePath := filepath.Join(dir, "input_template.py")
	if err := os.WriteFile(templatePath, []byte("delta_rho = $DELTA_RHO * units.pcm\n"), 0644); err != nil {
		t.Fatalf("writing template: %v", err)
	}
	configPath := filepath.Join(dir, "deckgen.yaml")
	content := "template_path: " + templatePath + "\n" +
		"output_root: " + filepath.Join(dir, "runs") + "\n" +
		"manifest_path: " + filepath.Join(dir, "manifest.txt") + "\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	rootCmd := newRootCmd()
	rootCmd.SetOut(&bytes.Buffer{})
	errBuf := &bytes.Buffer{}
	rootCmd.SetErr(errBuf)
	rootCmd.SetArgs([]string{"validate", "--config", configPath})

	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("validate should fail when the template variant does not match")
	}
	if !strings.Contains(err.Error(), "DELTA_RHO") {
		t.Errorf("error should name the unresolved placeholder, got: %v", err)
	}
}

package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestScenariosCommand(t *testing.T) {
	rootCmd := newRootCmd()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"scenarios"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("scenarios failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "20-30-nominal-up") {
		t.Errorf("listing missing reference scenario:\n%s", out)
	}
	if !strings.Contains(out, "12 scenarios.") {
		t.Errorf("listing missing count line:\n%s", out)
	}
}

func TestScenariosCommandJSON(t *testing.T) {
	rootCmd := newRootCmd()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"scenarios", "--json"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("scenarios --json failed: %v", err)
	}

	var scenarios []struct {
		RunName   string  `json:"run_name"`
		P0        float64 `json:"p0"`
		Direction string  `json:"direction"`
	}
	if err := json.Unmarshal(buf.Bytes(), &scenarios); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if len(scenarios) != 12 {
		t.Fatalf("got %d scenarios, want 12", len(scenarios))
	}
	if scenarios[0].RunName != "20-30-low-up" || scenarios[0].Direction != "up" {
		t.Errorf("first scenario = %+v, want 20-30-low-up", scenarios[0])
	}
}

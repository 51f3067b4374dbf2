package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ngmaloney/truewind/internal/solver"
)

func TestRun_WritesPNG(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "compass.png")

	var stdout, stderr bytes.Buffer
	err := run([]string{"truewind-png",
		"--boat-speed", "5",
		"--heading", "90",
		"--wind-speed", "15",
		"--wind-bearing", "270",
		"--orientation", "HeadUP",
		"--size", "240",
		"--config", filepath.Join(dir, "none.yaml"),
		"-o", out,
	}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if got := strings.TrimSpace(stdout.String()); got != "10.00 kn · 90.0° · Bft 3 (Brisa leve)" {
		t.Errorf("readout = %q", got)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("opening output: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if img.Bounds().Dx() != 240 || img.Bounds().Dy() != 240 {
		t.Errorf("image size = %v, want 240x240", img.Bounds())
	}
}

func TestRun_DecimalCommaAndHeadingFrame(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	err := run([]string{"truewind-png",
		"--boat-speed", "0",
		"--heading", "90",
		"--wind-speed", "10,0",
		"--wind-bearing", "0",
		"--frame", "heading",
		"--config", filepath.Join(dir, "none.yaml"),
		"-o", filepath.Join(dir, "out.png"),
	}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if got := strings.TrimSpace(stdout.String()); got != "10.00 kn · 270.0° · Bft 3 (Brisa leve)" {
		t.Errorf("readout = %q", got)
	}
}

func TestRun_InvalidInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.png")
	var stdout, stderr bytes.Buffer
	err := run([]string{"truewind-png",
		"--boat-speed", "fast",
		"--heading", "0",
		"--wind-speed", "1",
		"--wind-bearing", "0",
		"--config", filepath.Join(dir, "none.yaml"),
		"-o", out,
	}, &stdout, &stderr)
	if !errors.Is(err, solver.ErrInvalidInput) {
		t.Fatalf("run() error = %v, want ErrInvalidInput", err)
	}
	if got := strings.TrimSpace(stdout.String()); got != "Invalid input" {
		t.Errorf("stdout = %q, want Invalid input", got)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("no image should be written for invalid input")
	}
	if !strings.Contains(stderr.String(), "WARN") || !strings.Contains(stderr.String(), "rejecting reading") {
		t.Errorf("stderr = %q, want a WARN record", stderr.String())
	}
}

func TestRun_DebugLogging(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	err := run([]string{"truewind-png",
		"--boat-speed", "5",
		"--heading", "90",
		"--wind-speed", "15",
		"--wind-bearing", "270",
		"--log", "DEBUG",
		"--config", filepath.Join(dir, "none.yaml"),
		"-o", filepath.Join(dir, "out.png"),
	}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	logs := stderr.String()
	for _, want := range []string{"DEBUG", "solve", "INFO", "wrote"} {
		if !strings.Contains(logs, want) {
			t.Errorf("stderr is missing %q: %q", want, logs)
		}
	}
}

func TestRun_MissingArguments(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"truewind-png", "--heading", "0"}, &stdout, &stderr); err == nil {
		t.Error("run() without required arguments should fail")
	}
}

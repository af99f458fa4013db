package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_WritesJSONLines(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	if err := IsReady(); err != nil {
		t.Fatalf("expected ready logger: %v", err)
	}
	want := filepath.Join(root, ".tabgen", "logs", "tabgen.log")
	if Path() != want {
		t.Fatalf("expected path %s, got %s", want, Path())
	}

	L().Info("render.done", "song", "a.yaml")
	L().Debug("render.debug")
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}
	if IsReady() == nil {
		t.Fatalf("expected logger reset after cleanup")
	}

	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines (init + info), got %d:\n%s", len(lines), b)
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &rec); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if rec["msg"] != "render.done" || rec["song"] != "a.yaml" {
		t.Fatalf("unexpected record %v", rec)
	}
}

func TestSetup_EchoAndDebug(t *testing.T) {
	var echo bytes.Buffer
	cleanup, err := Setup(Config{Root: t.TempDir(), Debug: true, Echo: &echo})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	defer cleanup()

	L().With("song", "x").Debug("transpose.bar", "bar", 3)
	if !strings.Contains(echo.String(), "msg=transpose.bar") || !strings.Contains(echo.String(), "bar=3") {
		t.Fatalf("expected echoed debug line, got %q", echo.String())
	}
	if !strings.Contains(echo.String(), "song=x") {
		t.Fatalf("expected attrs carried through With, got %q", echo.String())
	}
}

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	return execCLI(t, args...)
}

// execCLI runs the command tree without touching the color setting.
func execCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func testDataDir(t *testing.T) (data, prefs string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("FLASHQ_CONFIG_PATH", home)
	data = t.TempDir()
	files := map[string]string{
		"math.csv":    "Q,A\n1+1,2\n2+2,4\n",
		"history.csv": "Year,Event\n1066,Hastings\n",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(data, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return data, filepath.Join(home, "prefs")
}

func TestRenameThenList(t *testing.T) {
	data, prefs := testDataDir(t)

	out, err := runCLI(t, "rename", "math", "Mental", "Arithmetic", "--data", data, "--prefs", prefs)
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if !strings.Contains(out, "math.csv shows as Mental Arithmetic") {
		t.Fatalf("unexpected rename output %q", out)
	}

	out, err = runCLI(t, "list", "--data", data, "--prefs", prefs)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"Datasets", "History", "Mental Arithmetic", "math.csv"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in list output %q", want, out)
		}
	}
}

func TestDrawCommand(t *testing.T) {
	data, prefs := testDataDir(t)
	noColor := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = noColor }()

	out, err := execCLI(t, "draw", "math", "-n", "2", "-c", "math.csv=A", "--data", data, "--prefs", prefs)
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	if out != "Math · A: 2\nMath · A: 4\n" {
		t.Fatalf("unexpected draw output %q", out)
	}
	if !color.NoColor {
		t.Fatalf("expected color disabled when output is not a terminal")
	}

	if _, err := runCLI(t, "draw", "--mode", "sideways", "--data", data, "--prefs", prefs); err == nil {
		t.Fatalf("expected an error for an unknown mode")
	}
}

func TestManifestCommand(t *testing.T) {
	data, prefs := testDataDir(t)
	out, err := runCLI(t, "manifest", "--data", data, "--prefs", prefs)
	if err != nil {
		t.Fatalf("manifest: %v", err)
	}
	if !strings.Contains(out, "wrote 2 datasets") {
		t.Fatalf("unexpected output %q", out)
	}
	if _, err := os.Stat(filepath.Join(data, "file-list.json")); err != nil {
		t.Fatalf("manifest not written: %v", err)
	}

	if _, err := runCLI(t, "manifest", "--data", "https://cards.example.com/data"); err == nil {
		t.Fatalf("expected an error for remote data")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "dev") {
		t.Fatalf("unexpected version output %q", out)
	}
}

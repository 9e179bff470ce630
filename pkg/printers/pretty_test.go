package printers

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/flashq/pkg/app"
	"tableflip.dev/flashq/pkg/navigator"
)

func init() {
	color.NoColor = true
}

func TestCell(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf, ShowRow: true}
	pp.Cell(navigator.Cell{DatasetKey: "math.csv", Column: "A", Row: []string{"1+1", "2"}, Value: "2"}, "Math", []string{"Q", "A"})

	out := buf.String()
	if !strings.HasPrefix(out, "Math · A: 2\n") {
		t.Fatalf("unexpected cell line %q", out)
	}
	if !strings.Contains(out, "Q  1+1") {
		t.Fatalf("expected row table; out=%q", out)
	}
}

func TestCellEmptyValue(t *testing.T) {
	var buf bytes.Buffer
	(&PrettyPrint{Out: &buf}).Cell(navigator.Cell{Column: "Hint"}, "Math", nil)
	if got := buf.String(); got != "Math · Hint: (empty)\n" {
		t.Fatalf("got %q", got)
	}
}

func TestTopics(t *testing.T) {
	var buf bytes.Buffer
	(&PrettyPrint{Out: &buf}).Topics([]app.Topic{
		{Key: "math.csv", DefaultName: "Math", DisplayName: "Sums"},
		{Key: "history.csv", DefaultName: "History", DisplayName: "History"},
	})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %q", lines)
	}
	if !strings.HasPrefix(lines[1], "Sums") || !strings.Contains(lines[1], "math.csv") || !strings.HasSuffix(strings.TrimSpace(lines[1]), "Math") {
		t.Fatalf("unexpected row %q", lines[1])
	}

	buf.Reset()
	(&PrettyPrint{Out: &buf}).Topics(nil)
	if buf.String() != " none\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Fatalf("buffer reported as a terminal")
	}
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Fatalf("regular file reported as a terminal")
	}
}

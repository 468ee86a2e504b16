package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	telegramify "github.com/riverfjs/telegramify-html"
	"github.com/riverfjs/telegramify-html/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), append([]string{"telegramify"}, args...), strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), err
}

func TestRun_Stdin(t *testing.T) {
	out, err := runCLI(t, "Hello **world**")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if out != "Hello <b>world</b>\n" {
		t.Errorf("output = %q", out)
	}
}

func TestRun_File(t *testing.T) {
	path := writeFile(t, t.TempDir(), "in.md", "# skip\n`a_b` and ~~x~~")
	out, err := runCLI(t, "", path)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if out != "# skip\n<code>a_b</code> and <s>x</s>\n" {
		t.Errorf("output = %q", out)
	}
}

func TestRun_SplitWithSeparator(t *testing.T) {
	out, err := runCLI(t, "aaaa\nbbbb\ncccc", "-m", "9", "--separator", "|")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if out != "aaaa\nbbbb|cccc\n" {
		t.Errorf("output = %q", out)
	}
}

func TestRun_JSON(t *testing.T) {
	out, err := runCLI(t, "a < b\nc", "--json", "--max-length", "5")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	var got output
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	want := output{ParseMode: "HTML", Chunks: []string{"a &lt; b", "c"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_Plain(t *testing.T) {
	out, err := runCLI(t, "**bold** _it_", "--plain", "--json")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	var got output
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	want := output{ParseMode: "", Chunks: []string{"bold it"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_Config(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "render.yaml", "tableBullet: \"-\"\n")
	out, err := runCLI(t, "| A |\n|---|\n| 1 |", "--config", cfg)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if out != "- A: 1\n" {
		t.Errorf("output = %q", out)
	}
}

func TestRun_PrintConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "render.yaml", "idTokenMinLength: 20\n")
	out, err := runCLI(t, "", "--config", cfg, "--print-config", "-m", "1000")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	for _, want := range []string{"idTokenMinLength: 20", "maxLength: 1000", "tableBullet:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestRun_Version(t *testing.T) {
	out, err := runCLI(t, "", "--version")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.HasPrefix(out, "telegramify ") {
		t.Errorf("output = %q", out)
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name     string
		stdin    string
		args     []string
		wantErr  error
		wantCode int
	}{
		{"unknown flag", "x", []string{"--nope"}, ErrUsage, ExitUsage},
		{"negative length", "x", []string{"-m", "-1"}, ErrUsage, ExitUsage},
		{"too many files", "", []string{"a.md", "b.md"}, ErrUsage, ExitUsage},
		{"missing file", "", []string{filepath.Join(dir, "missing.md")}, ErrReadInput, ExitIO},
		{"missing config", "x", []string{"-c", filepath.Join(dir, "missing.yaml")}, config.ErrConfigNotFound, ExitUsage},
		{"empty input", "  \n", nil, telegramify.ErrEmptyMarkdown, ExitUsage},
		{"watch without file", "", []string{"--watch"}, ErrWatchNeedsFile, ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.stdin, tt.args...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if code := exitCodeFor(err); code != tt.wantCode {
				t.Errorf("exitCodeFor() = %d, want %d", code, tt.wantCode)
			}
		})
	}
}

func TestExitCodeFor(t *testing.T) {
	if got := exitCodeFor(nil); got != ExitSuccess {
		t.Errorf("exitCodeFor(nil) = %d", got)
	}
	if got := exitCodeFor(errors.New("boom")); got != ExitGeneral {
		t.Errorf("exitCodeFor(other) = %d", got)
	}
}

func TestRun_Help(t *testing.T) {
	if _, err := runCLI(t, "", "--help"); err != nil {
		t.Errorf("run(--help) error = %v", err)
	}
}

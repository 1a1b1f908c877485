package publish

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tagtree.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
output_dir: dist
pretty: true
indent_width: 4
xhtml: true
title: My Site
lang: de
`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.OutputDir != "dist" {
		t.Errorf("OutputDir = %q, want %q", config.OutputDir, "dist")
	}
	if !config.Pretty {
		t.Error("Pretty = false, want true")
	}
	if config.IndentWidth != 4 {
		t.Errorf("IndentWidth = %d, want 4", config.IndentWidth)
	}
	if !config.XHTML {
		t.Error("XHTML = false, want true")
	}
	if config.Title != "My Site" {
		t.Errorf("Title = %q, want %q", config.Title, "My Site")
	}
	if config.Lang != "de" {
		t.Errorf("Lang = %q, want %q", config.Lang, "de")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "title: Sparse\n")

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := DefaultConfig()
	if config.OutputDir != want.OutputDir {
		t.Errorf("OutputDir = %q, want %q", config.OutputDir, want.OutputDir)
	}
	if config.IndentWidth != want.IndentWidth {
		t.Errorf("IndentWidth = %d, want %d", config.IndentWidth, want.IndentWidth)
	}
	if config.Lang != want.Lang {
		t.Errorf("Lang = %q, want %q", config.Lang, want.Lang)
	}
	if config.Title != "Sparse" {
		t.Errorf("Title = %q, want %q", config.Title, "Sparse")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "output_dir: [\n"))
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("empty output dir", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, `output_dir: ""`))
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "output_dir") {
			t.Errorf("error %q does not name output_dir", err)
		}
	})

	t.Run("negative indent", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "indent_width: -1\n"))
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestConfigRenderer(t *testing.T) {
	config := Config{OutputDir: "public", Pretty: true, IndentWidth: 3, XHTML: true}

	r := config.Renderer()
	got := r.Config()
	if !got.Pretty {
		t.Error("Pretty = false, want true")
	}
	if got.IndentWidth != 3 {
		t.Errorf("IndentWidth = %d, want 3", got.IndentWidth)
	}
	if !got.XHTML {
		t.Error("XHTML = false, want true")
	}
}

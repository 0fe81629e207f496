package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Dicklesworthstone/layout_drawer/pkg/drawer"
	"github.com/Dicklesworthstone/layout_drawer/pkg/layout"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.View != Default().View {
		t.Errorf("Expected default view, got %q", cfg.View)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, `
view: "lHh lpr fff"
rtl: true
left:
  size: 40
  behavior: mobile
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.View != "lHh lpr fff" || !cfg.RTL {
		t.Errorf("Expected file values to win, got view=%q rtl=%v", cfg.View, cfg.RTL)
	}
	if cfg.Left.Size != 40 || cfg.Left.Behavior != "mobile" {
		t.Errorf("Expected left overrides, got %+v", cfg.Left)
	}
	if !cfg.Left.Enabled || cfg.Left.Breakpoint != 100 {
		t.Errorf("Expected unspecified left fields to keep defaults, got %+v", cfg.Left)
	}
	if !cfg.Right.Overlay {
		t.Error("Expected right drawer defaults to survive")
	}
	if len(cfg.Pages) != len(Default().Pages) {
		t.Errorf("Expected default pages, got %d", len(cfg.Pages))
	}
}

func TestLoadResolvesPageFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "intro.md"), "# Intro\n")
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, `
pages:
  - route: /intro
    title: Intro
    file: intro.md
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	p, ok := cfg.Page("/intro")
	if !ok {
		t.Fatal("Expected /intro page")
	}
	if p.Body != "# Intro\n" {
		t.Errorf("Expected body from file, got %q", p.Body)
	}
	if _, ok := cfg.Page("/"); ok {
		t.Error("Expected configured pages to replace the defaults")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "view: [unclosed")
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Errorf("Expected parse error, got %v", err)
	}

	missingPage := filepath.Join(dir, "pages.yaml")
	writeFile(t, missingPage, "pages:\n  - route: /x\n    file: nope.md\n")
	if _, err := Load(missingPage); err == nil || !strings.Contains(err.Error(), "page /x") {
		t.Errorf("Expected page error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad view", func(c *Config) { c.View = "xyz" }, "invalid layout view"},
		{"bad behavior", func(c *Config) { c.Left.Behavior = "tablet" }, "left drawer: unknown behavior"},
		{"negative size", func(c *Config) { c.Right.Size = -1 }, "right drawer: size"},
		{"negative breakpoint", func(c *Config) { c.Left.Breakpoint = -5 }, "breakpoint must not be negative"},
		{"no pages", func(c *Config) { c.Pages = nil }, "at least one page"},
		{"duplicate route", func(c *Config) { c.Pages = append(c.Pages, Page{Route: "/"}) }, "duplicate page route"},
		{"missing route", func(c *Config) { c.Pages[0].Route = "" }, "has no route"},
		{"negative header", func(c *Config) { c.Header = -1 }, "header and footer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestValidateSkipsDisabledDrawer(t *testing.T) {
	cfg := Default()
	cfg.Right.Enabled = false
	cfg.Right.Behavior = "nonsense"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected disabled drawer to be ignored, got %v", err)
	}
}

func TestOptions(t *testing.T) {
	cfg := Default()
	cfg.Left.NoSwipeOpen = true
	cfg.Left.Class = []string{"nav"}

	opts := cfg.Drawer(layout.SideLeft).Options(layout.SideLeft)
	if opts.Side != layout.SideLeft || opts.Size != 28 || opts.Breakpoint != 100 || opts.SwipeThreshold != 8 {
		t.Errorf("Unexpected options %+v", opts)
	}
	if !opts.NoSwipeOpen || len(opts.ContentClass) != 1 {
		t.Error("Expected swipe and class settings to carry over")
	}
	if opts.Behavior != drawer.BehaviorDefault {
		t.Errorf("Expected default behavior, got %s", opts.Behavior)
	}

	right := cfg.Drawer(layout.SideRight).Options(layout.SideRight)
	if !right.Overlay || right.Side != layout.SideRight {
		t.Errorf("Expected right overlay options, got %+v", right)
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Title = "docs"
	cfg.Left.Size = 33

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Title != "docs" || loaded.Left.Size != 33 {
		t.Errorf("Expected saved values, got title=%q size=%d", loaded.Title, loaded.Left.Size)
	}
}

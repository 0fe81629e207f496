// Package config loads the YAML configuration for the drawer shell: the
// layout view string, text direction, both drawers and the routed pages.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Dicklesworthstone/layout_drawer/pkg/drawer"
	"github.com/Dicklesworthstone/layout_drawer/pkg/layout"
)

// Config is the full shell configuration.
type Config struct {
	Title  string `yaml:"title"`
	View   string `yaml:"view"`
	RTL    bool   `yaml:"rtl"`
	Header int    `yaml:"header_height"`
	Footer int    `yaml:"footer_height"`

	// Prefs is the sqlite file remembering drawer state. Empty disables it.
	Prefs string `yaml:"prefs"`

	Left  DrawerConfig `yaml:"left"`
	Right DrawerConfig `yaml:"right"`
	Pages []Page       `yaml:"pages"`

	// dir is where relative page files are resolved.
	dir string
}

// DrawerConfig is the per-side drawer configuration, in terminal cells.
type DrawerConfig struct {
	Enabled             bool              `yaml:"enabled"`
	Overlay             bool              `yaml:"overlay"`
	Behavior            string            `yaml:"behavior"`
	Breakpoint          int               `yaml:"breakpoint"`
	Size                int               `yaml:"size"`
	SwipeThreshold      int               `yaml:"swipe_threshold"`
	NoHideOnRouteChange bool              `yaml:"no_hide_on_route_change"`
	NoSwipeOpen         bool              `yaml:"no_swipe_open"`
	NoSwipeClose        bool              `yaml:"no_swipe_close"`
	Class               []string          `yaml:"class,omitempty"`
	Style               map[string]string `yaml:"style,omitempty"`
}

// Page is one routed page. Body is markdown; File, when set, is read
// relative to the config file and replaces Body.
type Page struct {
	Route string `yaml:"route"`
	Title string `yaml:"title"`
	Body  string `yaml:"body,omitempty"`
	File  string `yaml:"file,omitempty"`
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(".drawer", "config.yaml")
}

// DefaultPrefsPath returns the default preferences database location.
func DefaultPrefsPath() string {
	return filepath.Join(".drawer", "prefs.db")
}

// Default returns the built-in configuration: a fixed header and footer, a
// docked navigation drawer on the left and an overlay drawer on the right,
// sized for an 80-200 column terminal.
func Default() *Config {
	return &Config{
		Title:  "layout drawer",
		View:   "hHh lpR fFf",
		Header: 1,
		Footer: 1,
		Prefs:  DefaultPrefsPath(),
		Left: DrawerConfig{
			Enabled:        true,
			Behavior:       string(drawer.BehaviorDefault),
			Breakpoint:     100,
			Size:           28,
			SwipeThreshold: 8,
		},
		Right: DrawerConfig{
			Enabled:        true,
			Overlay:        true,
			Behavior:       string(drawer.BehaviorDefault),
			Breakpoint:     100,
			Size:           32,
			SwipeThreshold: 8,
		},
		Pages: []Page{
			{Route: "/", Title: "Home", Body: homePage},
			{Route: "/drawers", Title: "Drawers", Body: drawersPage},
			{Route: "/gestures", Title: "Gestures", Body: gesturesPage},
		},
	}
}

// Load reads the config at path over the defaults. A missing file is not an
// error: the defaults are returned as they are.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.dir = filepath.Dir(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.resolvePages(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating the directory if needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) resolvePages() error {
	for i := range c.Pages {
		p := &c.Pages[i]
		if p.File == "" {
			continue
		}
		path := p.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(c.dir, path)
		}
		body, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("page %s: %w", p.Route, err)
		}
		p.Body = string(body)
	}
	return nil
}

// Validate checks the configuration and reports every problem found.
func (c *Config) Validate() error {
	var errs []error

	if err := layout.ValidateView(c.View); err != nil {
		errs = append(errs, err)
	}
	if c.Header < 0 || c.Footer < 0 {
		errs = append(errs, fmt.Errorf("header and footer heights must not be negative"))
	}

	errs = append(errs, c.Left.validate(layout.SideLeft)...)
	errs = append(errs, c.Right.validate(layout.SideRight)...)

	if len(c.Pages) == 0 {
		errs = append(errs, fmt.Errorf("at least one page is required"))
	}
	seen := make(map[string]bool, len(c.Pages))
	for _, p := range c.Pages {
		if p.Route == "" {
			errs = append(errs, fmt.Errorf("page %q has no route", p.Title))
			continue
		}
		if seen[p.Route] {
			errs = append(errs, fmt.Errorf("duplicate page route %q", p.Route))
		}
		seen[p.Route] = true
	}

	return errors.Join(errs...)
}

func (d DrawerConfig) validate(side layout.Side) []error {
	if !d.Enabled {
		return nil
	}
	var errs []error
	if d.Behavior != "" && !drawer.Behavior(d.Behavior).Valid() {
		errs = append(errs, fmt.Errorf("%s drawer: unknown behavior %q", side, d.Behavior))
	}
	if d.Breakpoint < 0 {
		errs = append(errs, fmt.Errorf("%s drawer: breakpoint must not be negative", side))
	}
	if d.Size < 0 || d.SwipeThreshold < 0 {
		errs = append(errs, fmt.Errorf("%s drawer: size and swipe_threshold must not be negative", side))
	}
	return errs
}

// Drawer returns the configuration for side.
func (c *Config) Drawer(side layout.Side) DrawerConfig {
	if side == layout.SideRight {
		return c.Right
	}
	return c.Left
}

// Page returns the page for route.
func (c *Config) Page(route string) (Page, bool) {
	for _, p := range c.Pages {
		if p.Route == route {
			return p, true
		}
	}
	return Page{}, false
}

// Options maps the configuration onto drawer options for side. Callers add
// the runtime fields (Value, OnInput, Scheduler, Logger).
func (d DrawerConfig) Options(side layout.Side) drawer.Options {
	return drawer.Options{
		Side:                side,
		Overlay:             d.Overlay,
		Behavior:            drawer.Behavior(d.Behavior),
		Breakpoint:          d.Breakpoint,
		Size:                d.Size,
		SwipeThreshold:      d.SwipeThreshold,
		ContentClass:        d.Class,
		ContentStyle:        d.Style,
		NoHideOnRouteChange: d.NoHideOnRouteChange,
		NoSwipeOpen:         d.NoSwipeOpen,
		NoSwipeClose:        d.NoSwipeClose,
	}
}

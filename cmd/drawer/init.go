package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/Dicklesworthstone/layout_drawer/pkg/config"
	"github.com/Dicklesworthstone/layout_drawer/pkg/drawer"
	"github.com/Dicklesworthstone/layout_drawer/pkg/layout"
)

// initAnswers are the form fields; numbers stay strings until validated.
type initAnswers struct {
	title      string
	view       string
	rtl        bool
	leftMode   string
	rightMode  string
	breakpoint string
	leftSize   string
	rightSize  string
}

const (
	modeDocked   = "docked"
	modeOverlay  = "overlay"
	modeDisabled = "disabled"
)

// runInit asks for the main settings and writes a config file.
func runInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	configPath := fs.String("config", config.DefaultPath(), "Config file to write")
	force := fs.Bool("force", false, "Overwrite an existing config")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := os.Stat(*configPath); err == nil && !*force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", *configPath)
	}

	cfg := config.Default()
	a := answersFrom(cfg)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&a.title),
			huh.NewInput().
				Title("Layout view").
				Placeholder("hHh lpR fFf").
				Validate(layout.ValidateView).
				Value(&a.view),
			huh.NewConfirm().
				Title("Right-to-left?").
				Value(&a.rtl),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Left drawer").
				Options(huh.NewOptions(modeDocked, modeOverlay, modeDisabled)...).
				Value(&a.leftMode),
			huh.NewSelect[string]().
				Title("Right drawer").
				Options(huh.NewOptions(modeDocked, modeOverlay, modeDisabled)...).
				Value(&a.rightMode),
			huh.NewInput().
				Title("Breakpoint (columns)").
				Validate(positiveInt).
				Value(&a.breakpoint),
			huh.NewInput().
				Title("Left drawer width").
				Validate(positiveInt).
				Value(&a.leftSize),
			huh.NewInput().
				Title("Right drawer width").
				Validate(positiveInt).
				Value(&a.rightSize),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}

	if err := a.apply(cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(*configPath, cfg); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", *configPath)
	return nil
}

func answersFrom(cfg *config.Config) *initAnswers {
	return &initAnswers{
		title:      cfg.Title,
		view:       cfg.View,
		rtl:        cfg.RTL,
		leftMode:   modeOf(cfg.Left),
		rightMode:  modeOf(cfg.Right),
		breakpoint: strconv.Itoa(cfg.Left.Breakpoint),
		leftSize:   strconv.Itoa(cfg.Left.Size),
		rightSize:  strconv.Itoa(cfg.Right.Size),
	}
}

func modeOf(d config.DrawerConfig) string {
	switch {
	case !d.Enabled:
		return modeDisabled
	case d.Overlay:
		return modeOverlay
	default:
		return modeDocked
	}
}

func (a *initAnswers) apply(cfg *config.Config) error {
	breakpoint, err := strconv.Atoi(a.breakpoint)
	if err != nil {
		return fmt.Errorf("breakpoint: %w", err)
	}
	leftSize, err := strconv.Atoi(a.leftSize)
	if err != nil {
		return fmt.Errorf("left drawer width: %w", err)
	}
	rightSize, err := strconv.Atoi(a.rightSize)
	if err != nil {
		return fmt.Errorf("right drawer width: %w", err)
	}

	cfg.Title = a.title
	cfg.View = a.view
	cfg.RTL = a.rtl
	setMode(&cfg.Left, a.leftMode)
	setMode(&cfg.Right, a.rightMode)
	cfg.Left.Breakpoint = breakpoint
	cfg.Right.Breakpoint = breakpoint
	cfg.Left.Size = leftSize
	cfg.Right.Size = rightSize
	cfg.Left.Behavior = string(drawer.BehaviorDefault)
	cfg.Right.Behavior = string(drawer.BehaviorDefault)
	return nil
}

func setMode(d *config.DrawerConfig, mode string) {
	d.Enabled = mode != modeDisabled
	d.Overlay = mode == modeOverlay
}

func positiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.New("enter a number")
	}
	if n <= 0 {
		return errors.New("must be greater than zero")
	}
	return nil
}

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/Dicklesworthstone/layout_drawer/pkg/config"
	"github.com/Dicklesworthstone/layout_drawer/pkg/layout"
	"github.com/Dicklesworthstone/layout_drawer/pkg/prefs"
	"github.com/Dicklesworthstone/layout_drawer/pkg/ui"
	"github.com/Dicklesworthstone/layout_drawer/pkg/watcher"
)

const version = "0.1.0"

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit code. Deferred
// cleanup has run by the time it returns.
func execute(args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 && args[0] == "init" {
		if err := runInit(args[1:]); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	flags := flag.NewFlagSet("drawer", flag.ContinueOnError)
	flags.SetOutput(stderr)
	help := flags.Bool("help", false, "Show help")
	showVersion := flags.Bool("version", false, "Show version")
	configPath := flags.String("config", config.DefaultPath(), "Config file")
	prefsPath := flags.String("prefs", "", "Preferences database (overrides the config file)")
	noPrefs := flags.Bool("no-prefs", false, "Do not remember drawer state")
	logPath := flags.String("log", "", "Write logs to this file")
	snapshot := flags.Bool("snapshot", false, "Print one frame and exit")
	width := flags.Int("width", 0, "Snapshot width (default: terminal width or 100)")
	height := flags.Int("height", 0, "Snapshot height (default: terminal height or 30)")
	open := flags.String("open", "", "Snapshot with this drawer opened (left or right)")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	if *help {
		fmt.Fprintln(stdout, "Usage: drawer [options]")
		fmt.Fprintln(stdout, "       drawer init [--config path]")
		fmt.Fprintln(stdout, "\nA terminal shell with responsive, swipeable side drawers.")
		flags.SetOutput(stdout)
		flags.PrintDefaults()
		return 0
	}

	if *showVersion {
		fmt.Fprintf(stdout, "drawer version %s\n", version)
		return 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid config %s:\n%v\n", *configPath, err)
		return 1
	}

	interactive := !*snapshot && term.IsTerminal(int(os.Stdout.Fd()))

	switch {
	case *logPath != "":
		f, err := tea.LogToFile(*logPath, "drawer")
		if err != nil {
			fmt.Fprintf(stderr, "Error opening log file: %v\n", err)
			return 1
		}
		defer f.Close()
	case interactive:
		// stderr would scribble over the alt screen
		log.SetOutput(io.Discard)
	}

	dbPath := cfg.Prefs
	if *prefsPath != "" {
		dbPath = *prefsPath
	}
	var store *prefs.Store
	if !*noPrefs {
		store = prefs.TryOpen(dbPath)
		defer store.Close()
	}

	m := ui.NewModel(cfg, ui.Options{Prefs: store, Logger: log.Default()})
	defer m.Close()

	if !interactive {
		w, h := snapshotSize(*width, *height)
		fmt.Fprintln(stdout, renderSnapshot(m, w, h, layout.Side(*open)))
		return 0
	}

	if err := run(m, *configPath); err != nil {
		fmt.Fprintf(stderr, "Error running drawer: %v\n", err)
		return 1
	}
	return 0
}

// run drives the program and, when the config file's directory exists,
// hot-reloads the config alongside it.
func run(m *ui.Model, configPath string) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	w, err := watcher.New(configPath, func() {
		cfg, err := config.Load(configPath)
		if err == nil {
			err = cfg.Validate()
		}
		if err != nil {
			log.Printf("Warning: config reload: %v", err)
			return
		}
		p.Send(ui.ConfigReloadedMsg{Config: cfg})
	})
	if err != nil {
		log.Printf("Warning: not watching %s: %v", configPath, err)
	} else {
		g.Go(func() error {
			if err := w.Run(ctx); err != nil {
				log.Printf("Warning: config watcher stopped: %v", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})
	return g.Wait()
}

func snapshotSize(width, height int) (int, int) {
	if tw, th, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		if width <= 0 {
			width = tw
		}
		if height <= 0 {
			height = th
		}
	}
	if width <= 0 {
		width = 100
	}
	if height <= 0 {
		height = 30
	}
	return width, height
}

// renderSnapshot lays the shell out at a fixed size, settles every
// transition and returns the frame.
func renderSnapshot(m *ui.Model, width, height int, open layout.Side) string {
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	m.Settle()
	if open.Valid() {
		if d := m.Drawer(open); d != nil {
			d.Show()
			m.Settle()
		}
	}
	// one more pass so the page picks up the settled padding
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	m.Settle()
	return m.View()
}

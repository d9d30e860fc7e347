package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/drawerfm/drawer/internal/backend"
	"github.com/drawerfm/drawer/internal/keymap"
	"github.com/drawerfm/drawer/internal/logging"
	"github.com/drawerfm/drawer/internal/logging/events"
	"github.com/drawerfm/drawer/internal/recents"
	"github.com/drawerfm/drawer/internal/tab"
	"github.com/drawerfm/drawer/internal/trash"
	"github.com/drawerfm/drawer/internal/ui"
)

// Version is stamped by the build; the about sheet shows it.
var Version = "dev"

// Config describes user-provided application options.
type Config struct {
	StartPath    string
	Picker       string
	View         string
	ShowHidden   bool
	FoldersFirst bool
	Width        int
	Height       int
	ShowFooter   bool
	Verbose      bool
	KeymapPath   string
	DBPath       string
}

// Run bootstraps and executes the Bubble Tea program. A picker window
// prints the chosen paths to stdout, one per line, after it exits.
func Run(cfg Config) error {
	start, err := resolveStartPath(cfg.StartPath)
	if err != nil {
		return fmt.Errorf("resolve start path: %w", err)
	}
	mode, err := pickerMode(cfg.Picker)
	if err != nil {
		return err
	}

	binds := keymap.Default()
	if cfg.KeymapPath != "" {
		binds, err = keymap.LoadFile(cfg.KeymapPath)
		if err != nil {
			return fmt.Errorf("load keymap: %w", err)
		}
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = recents.DefaultPath()
	}
	// Recents and favorites are optional; browsing works without the
	// store.
	store, err := recents.Open(dbPath)
	if err != nil {
		logging.Error(err)
		store = nil
	} else {
		defer store.Close()
	}

	watcher, err := backend.NewWatcher()
	if err != nil {
		logging.Error(err)
		watcher = nil
	} else {
		defer watcher.Stop()
	}

	bin := trash.Default()
	loader := tab.Loader{Trash: bin}
	if store != nil {
		loader.Recents = store
	}

	tabCfg := tab.DefaultConfig()
	tabCfg.ShowHidden = cfg.ShowHidden
	tabCfg.FoldersFirst = cfg.FoldersFirst
	if cfg.View == "grid" {
		tabCfg.View = tab.ViewGrid
	}

	model := ui.NewModel(ui.Options{
		Start:      tab.PathLocation(start),
		Mode:       mode,
		Config:     tabCfg,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
		Version:    Version,
		Binds:      binds,
		Loader:     loader,
		Bin:        bin,
		Store:      store,
		Watcher:    watcher,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			events.App.Exit("killed")
			return nil
		}
		return err
	}
	picked := model.Picked()
	if len(picked) > 0 {
		events.App.Exit("picked")
	} else {
		events.App.Exit("quit")
	}
	for _, p := range picked {
		fmt.Println(p)
	}
	return nil
}

// resolveStartPath turns the configured path into the absolute
// directory the first tab opens. Empty means the working directory.
func resolveStartPath(path string) (string, error) {
	if path == "" {
		return os.Getwd()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", abs)
	}
	return abs, nil
}

func pickerMode(name string) (tab.Mode, error) {
	switch name {
	case "":
		return tab.Browse(), nil
	case "file":
		return tab.Picker(tab.PickerOpenFile), nil
	case "files":
		return tab.Picker(tab.PickerOpenFiles), nil
	case "folder":
		return tab.Picker(tab.PickerOpenFolder), nil
	case "save":
		return tab.Picker(tab.PickerSaveFile), nil
	default:
		return tab.Mode{}, fmt.Errorf("unknown pick mode %q", name)
	}
}

package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/drawerfm/drawer/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envPath         = "DRAWER_PATH"
	envPick         = "DRAWER_PICK"
	envView         = "DRAWER_VIEW"
	envShowHidden   = "DRAWER_SHOW_HIDDEN"
	envFoldersFirst = "DRAWER_FOLDERS_FIRST"
	envWidth        = "DRAWER_WIDTH"
	envHeight       = "DRAWER_HEIGHT"
	envShowFooter   = "DRAWER_FOOTER"
	envVerbose      = "DRAWER_VERBOSE"
	envTrace        = "DRAWER_TRACE"
	envLogFile      = "DRAWER_LOG_FILE"
	envKeymap       = "DRAWER_KEYMAP"
	envDB           = "DRAWER_DB"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("drawer", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	path := fs.String("path", envOrDefault(env, envPath, ""), "directory to open (defaults to the working directory)")
	pick := fs.String("pick", envOrDefault(env, envPick, ""), "run as a picker: file, files, folder, or save")
	view := fs.String("view", envOrDefault(env, envView, "list"), "initial listing view: list or grid")
	hidden := fs.Bool("hidden", envOrBool(env, envShowHidden, false), "show hidden files")
	foldersFirst := fs.Bool("folders-first", envOrBool(env, envFoldersFirst, true), "group directories before files")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "enable footer hint row")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for operations")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	keymap := fs.String("keymap", envOrDefault(env, envKeymap, ""), "path to a key binding override file")
	db := fs.String("db", envOrDefault(env, envDB, ""), "path to the recents/favorites database")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	startPath := *path
	if rest := fs.Args(); len(rest) > 0 {
		// A positional directory beats the flag and the environment.
		startPath = rest[0]
	}

	cfg := Config{
		App: app.Config{
			StartPath:    startPath,
			Picker:       *pick,
			View:         *view,
			ShowHidden:   *hidden,
			FoldersFirst: *foldersFirst,
			Width:        *width,
			Height:       *height,
			ShowFooter:   *footer,
			Verbose:      *verbose,
			KeymapPath:   *keymap,
			DBPath:       *db,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"path":         startPath,
			"pick":         *pick,
			"view":         *view,
			"hidden":       strconv.FormatBool(*hidden),
			"foldersFirst": strconv.FormatBool(*foldersFirst),
			"width":        strconv.Itoa(*width),
			"height":       strconv.Itoa(*height),
			"footer":       strconv.FormatBool(*footer),
			"trace":        strconv.FormatBool(*trace),
			"verbose":      strconv.FormatBool(*verbose),
			"logFile":      *logFile,
			"keymap":       *keymap,
			"db":           *db,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	switch cfg.App.Picker {
	case "", "file", "files", "folder", "save":
	default:
		return fmt.Errorf("unknown pick mode %q (want file, files, folder, or save)", cfg.App.Picker)
	}
	switch cfg.App.View {
	case "list", "grid":
	default:
		return fmt.Errorf("unknown view %q (want list or grid)", cfg.App.View)
	}
	return nil
}

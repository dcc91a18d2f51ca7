package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/jkoval/driftex"
	"github.com/jkoval/driftex/gemini"
	driftexhttp "github.com/jkoval/driftex/http"
	"github.com/jkoval/driftex/rod"
	"github.com/jkoval/driftex/selector"
	driftexslog "github.com/jkoval/driftex/slog"
	"github.com/jkoval/driftex/sqlite"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ProfileService driftex.ProfileService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("driftex"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'driftex --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DRIFTEX_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ProfileService = sqlite.NewProfileService(m.DB)
	deps.DB = m.DB
	deps.Profiles = m.ProfileService

	// Selector registry: built-in defaults, optionally replaced by a
	// selectors file.
	registry := selector.NewRegistry()
	if path := selectorsPath(cli, cmd); path != "" {
		if err := registry.Load(path); err != nil {
			return fmt.Errorf("failed to load selectors from %q: %w", path, err)
		}
	}
	deps.Registry = registry

	if cmd == "extract" {
		if cli.Extract.Static {
			deps.Navigator = driftexhttp.NewNavigator()
		} else {
			manager, err := rod.NewBrowserManager()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			defer manager.Close()

			navigator := rod.NewNavigator(manager)
			defer navigator.Close()
			deps.Navigator = navigator
		}

		if cli.Extract.Heal {
			apiKey := os.Getenv("GEMINI_API_KEY")
			if apiKey == "" {
				fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
				return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
			}

			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}

			deps.Healer = driftexslog.NewLoggingHealer(gemini.NewHealer(client), deps.Logger)
		}
	}

	return kongCtx.Run(deps)
}

// selectorsPath returns the selectors file the current command wants loaded,
// if any.
func selectorsPath(cli *CLI, cmd string) string {
	switch cmd {
	case "extract":
		return cli.Extract.Selectors
	case "selectors":
		return cli.Selectors.File
	}
	return ""
}

func defaultDBPath() string {
	if path := os.Getenv("DRIFTEX_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "driftex.db"
	}
	dir := filepath.Join(home, ".driftex")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "driftex.db")
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/redlens/redlens"
	"github.com/redlens/redlens/config"
	redhttp "github.com/redlens/redlens/http"
	"github.com/redlens/redlens/redlib"
	redslog "github.com/redlens/redlens/slog"
	"github.com/redlens/redlens/sqlite"
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
	// Config used to wire the client. Set before calling Run() to skip
	// the config file.
	Config *config.Config

	// SQLite database backing the archive, opened only when a database
	// path is configured.
	DB *sqlite.DB

	// Client built during Run, exposed for end-to-end testing.
	Client *redlib.Client
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
		kong.Name("redlens"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'redlens --help' to see available commands")
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

	cfg := m.Config
	if cfg == nil {
		cfg, err = config.LoadDefault()
		if err != nil {
			return err
		}
	}
	if cli.Instance != "" {
		cfg.Instance = cli.Instance
	}
	if cli.Database != "" {
		cfg.Database = cli.Database
	}

	if cfg.Database != "" {
		m.DB = sqlite.NewDB(cfg.Database)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set REDLENS_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", cfg.Database, err)
		}
		defer m.Close()
		deps.Archive = sqlite.NewArchive(m.DB)
	}

	// Wire the fetch pipeline: HTTP fetcher, optional logging decorator,
	// snapshot recording when an archive is configured.
	var fetcherOpts []redhttp.Option
	if cfg.UserAgent != "" {
		fetcherOpts = append(fetcherOpts, redhttp.WithUserAgent(cfg.UserAgent))
	}
	if cfg.Auth.Username != "" {
		fetcherOpts = append(fetcherOpts, redhttp.WithBasicAuth(cfg.Auth.Username, cfg.Auth.Password))
	}

	var fetcher redlens.Fetcher = redhttp.NewFetcher(fetcherOpts...)
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		fetcher = redslog.NewLoggingFetcher(fetcher, logger)
	}
	if deps.Archive != nil {
		fetcher = NewSnapshotFetcher(fetcher, deps.Archive, stderr)
	}

	m.Client = &redlib.Client{
		BaseURL: cfg.Instance,
		Fetcher: fetcher,
		Limiter: redlib.NewHostLimiter(cfg.RateLimit),
	}
	deps.Client = m.Client

	return kongCtx.Run(deps)
}

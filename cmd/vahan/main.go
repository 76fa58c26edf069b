package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/kalyug-papa-bolo/vahan"
	"github.com/kalyug-papa-bolo/vahan/goquery"
	vahanhttp "github.com/kalyug-papa-bolo/vahan/http"
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
	// ConfigPath points at the YAML config file. Set before calling
	// Run(); empty means built-in defaults.
	ConfigPath string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: os.Getenv("VAHAN_CONFIG"),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg := vahan.DefaultConfig()
	if m.ConfigPath != "" {
		loaded, err := vahan.LoadConfig(m.ConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config %q: %w", m.ConfigPath, err)
		}
		cfg = loaded
	}

	// Keys may always come from the environment, config file or not.
	if key := os.Getenv("VAHAN_ADMIN_KEY"); key != "" {
		cfg.Access.AdminKey = key
	}
	if key := os.Getenv("VAHAN_TEMP_KEY"); key != "" {
		cfg.Access.TempKey = key
	}
	if brand := os.Getenv("BRAND"); brand != "" {
		cfg.Brand = brand
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Config: cfg,
		Fetcher: vahanhttp.NewFetcher(
			vahanhttp.WithBaseURL(cfg.Fetch.BaseURL),
			vahanhttp.WithTimeout(cfg.Fetch.Timeout()),
			vahanhttp.WithRateLimit(cfg.Fetch.RatePerSecond),
		),
		Parser: goquery.NewParser(),
	}
	defer deps.Fetcher.Close()

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("vahan"),
		kong.Description("Vehicle registration (RC) lookup service."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'vahan --help' to see available commands")
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	return kongCtx.Run(deps)
}

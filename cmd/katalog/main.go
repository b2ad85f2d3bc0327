// cmd/katalog/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"katalog/internal/builder"
	"katalog/internal/config"
	kerrors "katalog/internal/errors"
	"katalog/internal/logfields"
	"katalog/internal/scaffold"
)

var version = "dev"

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (default: site.yaml if present)"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build BuildCmd `cmd:"" default:"1" help:"Generate the catalog site (default command)"`
	Init  InitCmd  `cmd:"" help:"Create a new catalog project"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// siteConfig loads the configured file, or site.yaml when it exists.
func (c *CLI) siteConfig() (config.SiteConfig, error) {
	path, explicit := c.Config, c.Config != ""
	if !explicit {
		path = config.DefaultFile
	}
	site, err := config.LoadSiteConfig(path, explicit)
	if err != nil {
		return config.SiteConfig{}, kerrors.ConfigInvalid(path, err)
	}
	return site, nil
}

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output  string `short:"o" help:"Override the output directory"`
	Workers int    `help:"Number of pages rendered concurrently (overrides config)"`
	Unsafe  bool   `help:"Disable HTML sanitization of product descriptions"`
}

func (b *BuildCmd) Run(ctx context.Context, root *CLI) error {
	site, err := root.siteConfig()
	if err != nil {
		return err
	}
	if b.Output != "" {
		site.Paths.Output = b.Output
	}
	if b.Workers > 0 {
		site.Workers = b.Workers
	}
	if b.Unsafe {
		site.Unsafe = true
	}

	logger := slog.Default().With(logfields.BuildID(uuid.NewString()))
	fmt.Println("--- Generating catalog site ---")
	res, err := builder.BuildSite(ctx, site, logger)
	if err != nil {
		return fmt.Errorf("site generation failed: %w", err)
	}
	fmt.Printf("✅ Success! Generated %d pages for %d products in %d categories.\n", res.Pages, res.Products, res.Tags)
	return nil
}

// InitCmd implements the 'init' command.
type InitCmd struct {
	Dir string `arg:"" optional:"" default:"." help:"Directory to create the project in"`
}

func (i *InitCmd) Run() error {
	fmt.Println("Scaffolding new catalog in:", i.Dir)
	written, err := scaffold.CreateNewSite(i.Dir)
	if err != nil {
		return kerrors.Wrap(err, kerrors.CategoryFileSystem, "scaffolding failed").WithContext("dir", i.Dir)
	}
	for _, path := range written {
		fmt.Println("Created:", path)
	}
	fmt.Println("Catalog scaffolded. You can now:")
	fmt.Println("  cd", i.Dir)
	fmt.Println("  katalog")
	return nil
}

func run(ctx context.Context, args []string) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("katalog"),
		kong.Description("katalog - a static site generator for small product catalogs"),
		kong.Vars{"version": version},
		kong.UsageOnError(),
	)
	if err != nil {
		return kerrors.Wrap(err, kerrors.CategoryInternal, "invalid command definition")
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return kerrors.Wrap(err, kerrors.CategoryValidation, "invalid arguments")
	}
	kctx.BindTo(ctx, (*context.Context)(nil))
	return kctx.Run(&cli)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		slog.Error("Operation failed",
			logfields.Category(string(kerrors.GetCategory(err))),
			logfields.Error(err))
		fmt.Fprintf(os.Stderr, "❌ Operation failed: %v\n", err)
		stop()
		os.Exit(kerrors.ExitCode(err))
	}
}

// Package main is the entry point for the lsg directory lister.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	urfavecli "github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/gersbach/lsg/internal/app"
	"github.com/gersbach/lsg/internal/buildinfo"
	"github.com/gersbach/lsg/internal/config"
	"github.com/gersbach/lsg/internal/display"
	"github.com/gersbach/lsg/internal/gitstatus"
	"github.com/gersbach/lsg/internal/icons"
	"github.com/gersbach/lsg/internal/log"
	"github.com/gersbach/lsg/internal/meta"
	"github.com/gersbach/lsg/internal/render"
	"github.com/gersbach/lsg/internal/theme"
)

func main() {
	log.InitFromEnv()

	cliApp := &urfavecli.Command{
		Name:      "lsg",
		Usage:     "List directory contents with git status, colors and icons",
		Version:   buildinfo.Resolve().String(),
		ArgsUsage: "[path ...]",
		Flags:     globalFlags(),
		Action:    run,
	}

	err := cliApp.Run(context.Background(), os.Args)
	_ = log.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *urfavecli.Command) error {
	if cmd.Bool("list-themes") {
		for _, name := range theme.AvailableThemes() {
			fmt.Println(name)
		}
		return nil
	}

	if debugLog := cmd.String("debug-log"); debugLog != "" {
		expanded, err := config.ExpandPath(debugLog)
		if err != nil {
			expanded = debugLog
		}
		if err := log.SetFile(expanded); err != nil {
			fmt.Fprintf(os.Stderr, "Error opening debug log file %q: %v\n", expanded, err)
		}
	}

	cfg, err := config.LoadConfig(cmd.String("config-file"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		cfg = config.DefaultConfig()
	}
	applyFlags(cfg, cmd)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cmd.String("debug-log") == "" && cfg.DebugLog != "" {
		if expanded, err := config.ExpandPath(cfg.DebugLog); err == nil {
			_ = log.SetFile(expanded)
		}
	}

	renderer, err := buildRenderer(cfg)
	if err != nil {
		return err
	}
	backend, err := gitstatus.NewBackend(cfg.GitBackend)
	if err != nil {
		return err
	}

	opts := display.Options{
		Layout:     cfg.Layout,
		All:        cfg.All,
		Git:        cfg.Git,
		Sort:       meta.SortKey(cfg.Sort),
		Reverse:    cfg.Reverse,
		DateFormat: cfg.DateFormat,
		Width:      terminalWidth(),
	}

	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		paths = []string{"."}
	}

	if cmd.Bool("watch") {
		if len(paths) > 1 {
			return fmt.Errorf("--watch takes a single path")
		}
		return runWatch(paths[0], renderer, backend, opts)
	}

	for i, path := range paths {
		cache := gitstatus.New(ctx, path, backend)
		lister := display.NewLister(renderer, cache, opts)
		out, err := lister.RenderDir(path)
		if err != nil {
			return err
		}
		if len(paths) > 1 {
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("%s:\n", path)
		}
		fmt.Println(out)
	}
	return nil
}

// applyFlags overlays command-line flags onto the loaded configuration.
func applyFlags(cfg *config.AppConfig, cmd *urfavecli.Command) {
	if cmd.Bool("all") {
		cfg.All = true
	}
	switch {
	case cmd.Bool("long"):
		cfg.Layout = display.LayoutLong
	case cmd.Bool("tree"):
		cfg.Layout = display.LayoutTree
	case cmd.Bool("oneline"):
		cfg.Layout = display.LayoutOneline
	}
	if cmd.Bool("git") {
		cfg.Git = true
	}
	if cmd.Bool("no-git") {
		cfg.Git = false
	}
	if v := cmd.String("git-backend"); v != "" {
		cfg.GitBackend = v
	}
	if v := cmd.String("theme"); v != "" {
		cfg.Theme = v
	}
	if v := cmd.String("icons"); v != "" {
		cfg.Icons = v
	}
	if v := cmd.String("sort"); v != "" {
		cfg.Sort = v
	}
	if cmd.Bool("reverse") {
		cfg.Reverse = true
	}
	if v := cmd.String("debug-log"); v != "" {
		cfg.DebugLog = v
	}
}

// buildRenderer assembles palette, icon set and overrides from the
// configuration plus the LS_COLORS environment.
func buildRenderer(cfg *config.AppConfig) (*render.Renderer, error) {
	palette := theme.NewPalette(theme.GetTheme(cfg.Theme))
	iconSet := icons.NewSet(icons.Theme(cfg.Icons))

	overrides := &theme.Overrides{}
	overrides.ParseLSColors(os.Getenv("LS_COLORS"))
	// Config rules beat LS_COLORS; sort for deterministic precedence
	// among themselves.
	patterns := make([]string, 0, len(cfg.Colors))
	for pattern := range cfg.Colors {
		patterns = append(patterns, pattern)
	}
	sort.Strings(patterns)
	for _, pattern := range patterns {
		overrides.AddGlob(pattern, cfg.Colors[pattern])
	}

	return render.New(palette, iconSet, overrides)
}

func runWatch(dir string, renderer *render.Renderer, backend gitstatus.Backend, opts display.Options) error {
	model := app.NewModel(dir, renderer, backend, opts)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	model.Close()
	if err != nil {
		return err
	}
	return model.Err()
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

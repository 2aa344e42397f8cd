package main

import (
	urfavecli "github.com/urfave/cli/v3"
)

// globalFlags returns all flags for the application.
// Note: --version is provided automatically by urfave/cli.
func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.BoolFlag{
			Name:    "all",
			Aliases: []string{"a"},
			Usage:   "Include entries starting with a dot",
		},
		&urfavecli.BoolFlag{
			Name:    "long",
			Aliases: []string{"l"},
			Usage:   "Long format (permissions, owner, size, date)",
		},
		&urfavecli.BoolFlag{
			Name:  "tree",
			Usage: "Recurse into directories and draw a tree",
		},
		&urfavecli.BoolFlag{
			Name:    "oneline",
			Aliases: []string{"1"},
			Usage:   "One entry per line",
		},
		&urfavecli.BoolFlag{
			Name:    "git",
			Aliases: []string{"g"},
			Usage:   "Show the git status cell next to entries",
		},
		&urfavecli.BoolFlag{
			Name:  "no-git",
			Usage: "Hide the git status cell even when configured on",
		},
		&urfavecli.StringFlag{
			Name:  "git-backend",
			Usage: "Git backend: \"cli\" or \"native\" (default: automatic)",
		},
		&urfavecli.StringFlag{
			Name:    "theme",
			Aliases: []string{"t"},
			Usage:   "Color theme name",
		},
		&urfavecli.StringFlag{
			Name:  "icons",
			Usage: "Icon theme: \"nerd\", \"unicode\" or \"none\"",
		},
		&urfavecli.StringFlag{
			Name:  "sort",
			Usage: "Sort key: \"name\", \"size\" or \"time\"",
		},
		&urfavecli.BoolFlag{
			Name:    "reverse",
			Aliases: []string{"r"},
			Usage:   "Reverse the sort order",
		},
		&urfavecli.BoolFlag{
			Name:    "watch",
			Aliases: []string{"w"},
			Usage:   "Keep the listing on screen and refresh on changes",
		},
		&urfavecli.BoolFlag{
			Name:  "list-themes",
			Usage: "Print available theme names and exit",
		},
		&urfavecli.StringFlag{
			Name:  "config-file",
			Usage: "Path to configuration file",
		},
		&urfavecli.StringFlag{
			Name:  "debug-log",
			Usage: "Path to debug log file",
		},
	}
}

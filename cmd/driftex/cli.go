package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/jkoval/driftex"
	"github.com/jkoval/driftex/selector"
	"github.com/jkoval/driftex/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	DB        *sqlite.DB
	Profiles  driftex.ProfileService
	Registry  *selector.Registry
	Navigator driftex.Navigator
	Healer    driftex.HealProvider
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract   ExtractCmd   `cmd:"" help:"Extract a profile from a document URL"`
	Profiles  ProfilesCmd  `cmd:"" help:"Manage stored profile snapshots"`
	Selectors SelectorsCmd `cmd:"" help:"Manage selector versions"`

	Verbose bool `short:"v" help:"Enable debug logging"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URLs        []string `arg:"" help:"Document URLs to extract"`
	Sections    []string `short:"s" help:"Sections to extract (default: all)"`
	Threshold   float64  `short:"t" default:"0.5" help:"Confidence threshold for strategy acceptance"`
	Selectors   string   `short:"S" help:"Selector file to load before extracting"`
	Heal        bool     `help:"Generate replacement selectors on section total failure (requires GEMINI_API_KEY)"`
	Static      bool     `help:"Fetch over plain HTTP without a browser (static markup only)"`
	Concurrency int      `short:"c" default:"2" help:"Concurrent visit limit when extracting multiple URLs"`
	JSON        bool     `help:"Print the extracted profile as JSON instead of a summary"`
	Out         string   `short:"o" help:"Also export each profile as a JSON file under this directory"`
}

// ProfilesCmd groups the profile snapshot subcommands.
type ProfilesCmd struct {
	List   ProfilesListCmd   `cmd:"" help:"List stored profiles"`
	Show   ProfilesShowCmd   `cmd:"" help:"Print a stored profile as JSON"`
	Delete ProfilesDeleteCmd `cmd:"" help:"Delete a stored profile"`
}

// ProfilesListCmd is the "profiles list" subcommand.
type ProfilesListCmd struct {
	URL string `help:"Filter by source URL"`
}

// ProfilesShowCmd is the "profiles show" subcommand.
type ProfilesShowCmd struct {
	ID string `arg:"" help:"Profile ID"`
}

// ProfilesDeleteCmd is the "profiles delete" subcommand.
type ProfilesDeleteCmd struct {
	ID    string `arg:"" help:"Profile ID"`
	Force bool   `help:"Confirm deletion"`
}

// SelectorsCmd groups the selector version subcommands.
type SelectorsCmd struct {
	File string `short:"f" help:"Selector file to load before running the subcommand"`

	List     SelectorsListCmd     `cmd:"" help:"List registered selector versions"`
	Export   SelectorsExportCmd   `cmd:"" help:"Write the active selector version to a file"`
	Import   SelectorsImportCmd   `cmd:"" help:"Load selector versions from a file"`
	Activate SelectorsActivateCmd `cmd:"" help:"Switch the active selector version"`
}

// SelectorsListCmd is the "selectors list" subcommand.
type SelectorsListCmd struct{}

// SelectorsExportCmd is the "selectors export" subcommand.
type SelectorsExportCmd struct {
	Path string `arg:"" help:"Destination file"`
}

// SelectorsImportCmd is the "selectors import" subcommand.
type SelectorsImportCmd struct {
	Path string `arg:"" help:"Selector file to load"`
	Out  string `short:"o" help:"Re-export the merged registry to this file"`
}

// SelectorsActivateCmd is the "selectors activate" subcommand.
type SelectorsActivateCmd struct {
	Version string `arg:"" help:"Version id to activate"`
	Out     string `short:"o" help:"Export the registry with the new active version to this file"`
}

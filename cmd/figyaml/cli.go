package main

import (
	"context"
	"io"

	"github.com/figyaml/figyaml"
	"github.com/figyaml/figyaml/classify"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Fetcher   figyaml.FileFetcher
	Loader    figyaml.FileLoader
	Converter *classify.Converter
	Store     figyaml.ScreenStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Fetch   FetchCmd   `cmd:"" help:"Download a Figma file as JSON"`
	Convert ConvertCmd `cmd:"" help:"Convert a Figma JSON export to YAML screens"`
	Screens ScreensCmd `cmd:"" help:"List the screens in a Figma JSON export"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL    string   `arg:"" help:"Figma file URL or bare file key"`
	Out    string   `short:"o" help:"Output JSON path (defaults to <key>.json)"`
	Token  string   `env:"FIGMA_TOKEN" help:"Figma personal access token (defaults to $FIGMA_TOKEN)"`
	NodeID []string `name:"node-id" help:"Restrict the download to specific node IDs (repeatable)"`
	APIURL string   `name:"api-url" hidden:"" env:"FIGMA_API_URL" help:"Override the Figma API base URL"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Input       string   `arg:"" help:"Path to a Figma JSON export"`
	OutDir      string   `short:"d" name:"out-dir" default:"generated" help:"Output directory for YAML screens"`
	IconMaxSize float64  `name:"icon-max-size" default:"32" help:"Max dimension for the small-vector icon heuristic"`
	IconToken   []string `name:"icon-token" help:"Extra icon name tokens (repeatable)"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent screen conversions"`
}

// ScreensCmd is the "screens" subcommand.
type ScreensCmd struct {
	Input string `arg:"" help:"Path to a Figma JSON export"`
}

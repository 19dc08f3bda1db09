package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/tonyzdev/jobparse"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Corpus    jobparse.Corpus
	Extractor jobparse.PostingExtractor
	Store     jobparse.PostingStore
	Seen      jobparse.ContentSet

	Classifier   jobparse.Classifier
	Requirements jobparse.RequirementWriter

	Postings jobparse.PostingFinder
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Enable debug logging"`
	DB      string `env:"JOBPARSE_DB" help:"Mirror results into this SQLite database"`

	Extract ExtractCmd `cmd:"" help:"Extract postings from a directory of captured pages"`
	Parse   ParseCmd   `cmd:"" help:"Classify the requirements of extracted postings"`
	Run     RunCmd     `cmd:"" help:"Extract postings and classify their requirements"`
	Check   CheckCmd   `cmd:"" help:"Validate a postings or requirements JSON file"`
	List    ListCmd    `cmd:"" help:"List postings mirrored in the database"`
	Show    ShowCmd    `cmd:"" help:"Show a posting mirrored in the database"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Corpus      string `arg:"" help:"Directory of captured .html pages"`
	Name        string `arg:"" help:"Name for the output directory and aggregate file"`
	Path        string `arg:"" optional:"" default:"." help:"Base path for output (default: current directory)"`
	Concurrency int    `short:"c" default:"4" env:"JOBPARSE_CONCURRENCY" help:"Concurrent extraction limit"`
	Markdown    bool   `help:"Also write each description as markdown"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Postings   string `arg:"" help:"Aggregate postings JSON file"`
	Prefix     string `arg:"" help:"Output prefix for the .csv and .json files"`
	Vocabulary string `env:"JOBPARSE_VOCABULARY" help:"YAML vocabulary file (default: built-in)"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	Corpus      string `arg:"" help:"Directory of captured .html pages"`
	Name        string `arg:"" help:"Name for the output directory and aggregate file"`
	Path        string `arg:"" optional:"" default:"." help:"Base path for output (default: current directory)"`
	Concurrency int    `short:"c" default:"4" env:"JOBPARSE_CONCURRENCY" help:"Concurrent extraction limit"`
	Markdown    bool   `help:"Also write each description as markdown"`
	Vocabulary  string `env:"JOBPARSE_VOCABULARY" help:"YAML vocabulary file (default: built-in)"`
}

// Prefix returns the output prefix of the classification step.
func (c *RunCmd) Prefix() string {
	return filepath.Join(c.Path, c.Name+"_parsed")
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	File string `arg:"" help:"Postings or requirements JSON file"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Filename string `arg:"" help:"Capture file name of the posting"`
}

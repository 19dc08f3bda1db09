package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/tonyzdev/jobparse"
	"github.com/tonyzdev/jobparse/batch"
	"github.com/tonyzdev/jobparse/bloom"
	"github.com/tonyzdev/jobparse/fs"
	"github.com/tonyzdev/jobparse/goquery"
	"github.com/tonyzdev/jobparse/htmltomarkdown"
	jpslog "github.com/tonyzdev/jobparse/slog"
	"github.com/tonyzdev/jobparse/sqlite"
	"github.com/tonyzdev/jobparse/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// A missing .env file is not an error.
	_ = godotenv.Load()

	m := NewMain()

	err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite mirror, opened when --db is set.
	DB *sqlite.DB
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
		kong.Name("jobparse"),
		kong.Description("Extract job postings from captured pages and classify their requirements"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'jobparse --help' to see available commands")
	}

	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.Verbose)

	cmd := strings.Fields(kongCtx.Command())[0]

	if cli.DB != "" && cmd != "check" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set JOBPARSE_DB to use a different database path")
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()
	}

	switch cmd {
	case "extract":
		m.wireExtract(deps, cli.Extract.Corpus, cli.Extract.Name, cli.Extract.Path, cli.Extract.Markdown)
	case "parse":
		if err := m.wireParse(deps, cli.Parse.Vocabulary, cli.Parse.Prefix); err != nil {
			return err
		}
	case "list", "show":
		if m.DB == nil {
			fmt.Fprintln(stderr, "Hint: Pass --db or set JOBPARSE_DB to the database written by extract")
			return jobparse.Errorf(jobparse.EINVALID, "%s requires a database", cmd)
		}
		deps.Postings = sqlite.NewPostingService(m.DB)
	case "run":
		m.wireExtract(deps, cli.Run.Corpus, cli.Run.Name, cli.Run.Path, cli.Run.Markdown)
		if err := m.wireParse(deps, cli.Run.Vocabulary, cli.Run.Prefix()); err != nil {
			return err
		}
	}

	return kongCtx.Run(deps)
}

// wireExtract connects the corpus, extractor and output stores.
func (m *Main) wireExtract(deps *Dependencies, corpus, name, path string, markdown bool) {
	logger := deps.Logger

	deps.Corpus = jpslog.NewLoggingCorpus(fs.NewCorpus(corpus), logger)
	deps.Extractor = jpslog.NewLoggingExtractor(goquery.NewExtractor(), logger)
	deps.Seen = bloom.NewDefaultFilter()

	var opts []fs.FileStoreOption
	if markdown {
		opts = append(opts, fs.WithMarkdown(fs.NewMarkdownWriter(htmltomarkdown.NewConverter())))
	}

	stores := []jobparse.PostingStore{
		jpslog.NewLoggingStore(fs.NewFileStore(path, name, opts...), "files", logger),
	}
	if m.DB != nil {
		stores = append(stores, jpslog.NewLoggingStore(sqlite.NewPostingService(m.DB), "sqlite", logger))
	}
	deps.Store = batch.NewMultiStore(stores...)
}

// wireParse loads the vocabulary and connects the requirement writers.
func (m *Main) wireParse(deps *Dependencies, vocabularyPath, prefix string) error {
	vocab, err := loadVocabulary(vocabularyPath)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobparse.ErrorMessage(err))
		return err
	}
	deps.Classifier = jobparse.NewRequirementClassifier(vocab)

	writers := batch.MultiWriter{fs.NewRequirementWriter(prefix)}
	if m.DB != nil {
		writers = append(writers, sqlite.NewRequirementService(m.DB))
	}
	deps.Requirements = writers

	return nil
}

func loadVocabulary(path string) (*jobparse.Vocabulary, error) {
	if path == "" {
		return yaml.DefaultVocabulary()
	}
	return yaml.LoadVocabulary(path)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// outputPaths returns the per-item directory and aggregate file of a run.
func outputPaths(path, name string) (dir, aggregate string) {
	dir = filepath.Join(path, name)
	return dir, dir + ".json"
}

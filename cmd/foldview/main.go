package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fwojciec/foldview"
	"github.com/fwojciec/foldview/bubbletea"
	"github.com/fwojciec/foldview/chroma"
	"github.com/fwojciec/foldview/clipboard"
	"github.com/fwojciec/foldview/diffmatchpatch"
	"github.com/fwojciec/foldview/git"
	"github.com/fwojciec/foldview/gitdiff"
	"github.com/fwojciec/foldview/jsondiff"
	"github.com/fwojciec/foldview/lipgloss"
)

// ErrNoChanges is returned when the diff contains no changes to display.
var ErrNoChanges = errors.New("no changes to display")

// App encapsulates the application logic for testing. Stdin is set only
// when a diff is piped in; otherwise the diff comes from the git runner.
type App struct {
	Stdin      io.Reader
	Parser     foldview.Parser
	JSONParser foldview.Parser
	Git        foldview.GitRunner
	Viewer     foldview.Viewer
	Out        io.Writer

	JSON         bool   // Stdin carries the JSON chunk payload
	Plain        bool   // Print plain text to Out instead of opening the TUI
	ContextLines int    // Context window width for plain output
	Repo         string // Repository path for git extraction
	Commit       string // Show this commit instead of the worktree diff
}

// Run loads the diff and either prints it or hands it to the viewer.
func (a *App) Run(ctx context.Context) error {
	diff, err := a.loadDiff(ctx)
	if err != nil {
		return err
	}
	if len(diff.Files) == 0 {
		return ErrNoChanges
	}

	if a.Plain {
		formatter := &foldview.TextFormatter{ContextLines: a.ContextLines}
		_, err := io.WriteString(a.Out, formatter.Format(diff, nil))
		return err
	}
	return a.Viewer.View(ctx, diff)
}

// loadDiff resolves the diff source: an explicit commit, then piped
// stdin, then the worktree diff of the configured repository.
func (a *App) loadDiff(ctx context.Context) (*foldview.Diff, error) {
	if a.Commit != "" {
		out, err := a.Git.Show(ctx, a.Repo, a.Commit)
		if err != nil {
			return nil, err
		}
		return a.Parser.Parse(strings.NewReader(out))
	}

	if a.Stdin != nil {
		if a.JSON {
			return a.JSONParser.Parse(a.Stdin)
		}
		return a.Parser.Parse(a.Stdin)
	}

	out, err := a.Git.Diff(ctx, a.Repo)
	if err != nil {
		return nil, err
	}
	return a.Parser.Parse(strings.NewReader(out))
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("foldview", flag.ExitOnError)
	jsonInput := fs.Bool("json", false, "read the JSON chunk payload instead of a git patch")
	compact := fs.Bool("compact", false, "use the compact two-line context window")
	contextLines := fs.Int("context", 0, "context window width (default 3)")
	light := fs.Bool("light", false, "use the light theme")
	plain := fs.Bool("plain", false, "print plain text instead of opening the TUI")
	repo := fs.String("repo", ".", "repository to diff when no input is piped")
	commit := fs.String("commit", "", "show the diff for a commit hash")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// An explicit -context wins over -compact
	width := *contextLines
	if width <= 0 {
		width = foldview.DefaultContextLines
		if *compact {
			width = foldview.CompactContextLines
		}
	}

	var selected foldview.Theme = lipgloss.DefaultTheme()
	if *light {
		selected = lipgloss.LightTheme()
	}

	tokenizer, err := chroma.NewTokenizer(chroma.StyleFromPalette(selected.Palette()))
	if err != nil {
		return err
	}

	app := &App{
		Parser:     gitdiff.NewParser(),
		JSONParser: jsondiff.NewParser(),
		Git:        &git.Runner{ContextLines: git.FullContext},
		Viewer: bubbletea.NewViewer(selected,
			bubbletea.WithContextLines(width),
			bubbletea.WithLanguageDetector(chroma.NewDetector()),
			bubbletea.WithTokenizer(tokenizer),
			bubbletea.WithWordDiffer(diffmatchpatch.NewWordDiffer()),
			bubbletea.WithClipboard(clipboard.NewPBCopy()),
		),
		Out:          os.Stdout,
		JSON:         *jsonInput,
		Plain:        *plain,
		ContextLines: width,
		Repo:         *repo,
		Commit:       *commit,
	}

	// Pipe mode: read the diff from stdin when it is not a terminal
	stat, err := os.Stdin.Stat()
	if err != nil {
		return fmt.Errorf("error checking stdin: %w", err)
	}
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		app.Stdin = os.Stdin
	}

	// Fall back to plain output when stdout is not a terminal
	if outStat, err := os.Stdout.Stat(); err == nil {
		if (outStat.Mode() & os.ModeCharDevice) == 0 {
			app.Plain = true
		}
	}

	return app.Run(ctx)
}

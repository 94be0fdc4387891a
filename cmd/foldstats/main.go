// Command foldstats summarizes how a diff folds: per-file line counts,
// section counts, and the number of lines hidden behind collapsed gaps at a
// given context width. It reads the same inputs as foldview (stdin, a
// repository worktree, or a single commit) and prints a table.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/fwojciec/foldview"
	"github.com/fwojciec/foldview/git"
	"github.com/fwojciec/foldview/gitdiff"
	"github.com/fwojciec/foldview/jsondiff"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/sync/errgroup"
)

// ErrNoChanges is returned when the diff contains no files.
var ErrNoChanges = errors.New("no changes to summarize")

// DefaultWorkers is the default number of files measured concurrently.
const DefaultWorkers = 4

// App holds the dependencies and configuration for the foldstats command.
type App struct {
	Stdin      io.Reader
	Parser     foldview.Parser
	JSONParser foldview.Parser
	Git        foldview.GitRunner
	Out        io.Writer

	JSON         bool
	ContextLines int
	Workers      int
	Repo         string
	Commit       string
	Collapsed    foldview.CollapsedFiles
}

// Run loads the diff, measures each file, and writes the summary table.
func (a *App) Run(ctx context.Context) error {
	diff, err := a.loadDiff(ctx)
	if err != nil {
		return err
	}

	if len(diff.Files) == 0 {
		return ErrNoChanges
	}

	rows, err := a.measure(ctx, diff)
	if err != nil {
		return err
	}

	a.writeTable(rows)
	return nil
}

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

// fileRow holds the measurements for one file. Collapsed files keep only
// their header stats; the fold-derived columns stay blank.
type fileRow struct {
	path      string
	inserted  int
	deleted   int
	lines     int
	sections  int
	hidden    int
	collapsed bool
}

// measure folds every file at the configured width and collects one row per
// file. Files are measured concurrently; results land at their original
// position so the table preserves diff order.
func (a *App) measure(ctx context.Context, diff *foldview.Diff) ([]fileRow, error) {
	workers := a.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	rows := make([]fileRow, len(diff.Files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range diff.Files {
		file := diff.Files[i]

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows[i] = a.measureFile(file)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return rows, nil
}

func (a *App) measureFile(file foldview.FileDiff) fileRow {
	row := fileRow{path: file.Path}
	row.inserted, row.deleted = file.Stats()

	if a.Collapsed.Collapsed(file.Path) {
		row.collapsed = true
		return row
	}

	lines := foldview.Linearize(file.Chunks)
	row.lines = len(lines)

	sections := foldview.Fold(file.Path, lines, a.ContextLines, nil)
	row.sections = len(sections)
	for _, section := range sections {
		if section.Collapsed() {
			row.hidden += section.Gap.Span()
		}
	}

	return row
}

func (a *App) writeTable(rows []fileRow) {
	table := tablewriter.NewWriter(a.Out)
	table.SetHeader([]string{"File", "+", "-", "Lines", "Sections", "Hidden"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	var totalIns, totalDel, totalLines, totalSections, totalHidden int
	for _, row := range rows {
		totalIns += row.inserted
		totalDel += row.deleted

		if row.collapsed {
			table.Append([]string{
				row.path + " (collapsed)",
				strconv.Itoa(row.inserted),
				strconv.Itoa(row.deleted),
				"", "", "",
			})
			continue
		}

		totalLines += row.lines
		totalSections += row.sections
		totalHidden += row.hidden
		table.Append([]string{
			row.path,
			strconv.Itoa(row.inserted),
			strconv.Itoa(row.deleted),
			strconv.Itoa(row.lines),
			strconv.Itoa(row.sections),
			strconv.Itoa(row.hidden),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(rows)),
		strconv.Itoa(totalIns),
		strconv.Itoa(totalDel),
		strconv.Itoa(totalLines),
		strconv.Itoa(totalSections),
		strconv.Itoa(totalHidden),
	})

	table.Render()
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("foldstats", flag.ExitOnError)
	jsonInput := fs.Bool("json", false, "Read pre-computed chunked diff JSON from stdin")
	contextLines := fs.Int("context", foldview.DefaultContextLines, "Context window width used when folding")
	workers := fs.Int("workers", DefaultWorkers, "Number of files measured in parallel")
	repo := fs.String("repo", ".", "Repository path for git input")
	commit := fs.String("commit", "", "Summarize the diff of a single commit")
	collapse := fs.String("collapse", "", "Comma-separated file paths reported as header stats only")

	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	collapsed := foldview.NewCollapsedFiles()
	if *collapse != "" {
		for _, path := range strings.Split(*collapse, ",") {
			if path = strings.TrimSpace(path); path != "" {
				collapsed.Toggle(path)
			}
		}
	}

	app := &App{
		Parser:       gitdiff.NewParser(),
		JSONParser:   jsondiff.NewParser(),
		Git:          &git.Runner{ContextLines: git.FullContext},
		Out:          os.Stdout,
		JSON:         *jsonInput,
		ContextLines: *contextLines,
		Workers:      *workers,
		Repo:         *repo,
		Commit:       *commit,
		Collapsed:    collapsed,
	}

	if stat, err := os.Stdin.Stat(); err == nil && stat.Mode()&os.ModeCharDevice == 0 {
		app.Stdin = os.Stdin
	}

	return app.Run(ctx)
}

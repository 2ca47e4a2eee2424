package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/rshade/tablepager/internal/cli/pagination"
	"github.com/rshade/tablepager/internal/config"
	"github.com/rshade/tablepager/internal/htmldom"
	"github.com/rshade/tablepager/internal/logging"
	"github.com/rshade/tablepager/internal/pager"
)

// stdinName is the file argument that reads the document from stdin.
const stdinName = "-"

var (
	errStdinTwice       = errors.New("stdin (\"-\") can be read only once")
	errDuplicateOutName = errors.New("inputs would write the same output file")
)

type renderOptions struct {
	selector string
	page     int
	clicks   string
	output   string
	outDir   string
	flags    *pagination.Flags
}

// renderResult is the outcome for one input file.
type renderResult struct {
	File   string                      `json:"file"   yaml:"file"`
	Pagers []pagination.PaginationMeta `json:"pagers" yaml:"pagers"`

	rows     int
	rendered []byte
}

// NewRenderCmd creates the render command, which paginates tables inside
// HTML documents.
func NewRenderCmd() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render [files...]",
		Short: "Paginate the tables of HTML documents",
		Long: `Parses each HTML document, attaches a pager to every element matching
--selector and writes the document back with the generated controls and the
rows outside the current page hidden.

With --output json or yaml the page metadata of every pager is written instead.
Files are processed concurrently. With no file, or "-", the document is read
from stdin.`,
		Example: `  tablepager render report.html --selector table
  tablepager render report.html --selector '#orders' --page 2 --next-text '»'
  cat report.html | tablepager render --selector table --output yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, &opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.selector, "selector", "table", "CSS selector of the host elements")
	cmd.Flags().IntVar(&opts.page, "page", 0, "jump every pager to this page after initialization")
	cmd.Flags().StringVar(&opts.clicks, "click", "", "controls to activate in order, e.g. next,next,prev")
	cmd.Flags().StringVar(&opts.output, "output", "", "output format: html, json or yaml (default from config)")
	cmd.Flags().StringVar(&opts.outDir, "out-dir", "", "write one output file per input into this directory")
	opts.flags = pagination.BindFlags(cmd)

	return cmd
}

func runRender(cmd *cobra.Command, opts *renderOptions, files []string) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	cfg := config.GetGlobalConfig()
	pagerCfg := opts.flags.Apply(cmd, cfg.Pager)
	if err := pagerCfg.Validate(); err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = cfg.Output.Format
	}
	if output != config.FormatHTML && output != config.FormatJSON && output != config.FormatYAML {
		return fmt.Errorf("unsupported output format %q (want html, json or yaml)", output)
	}

	if cmd.Flags().Changed("page") {
		if err := pagination.ValidatePage(opts.page); err != nil {
			return err
		}
	}
	clicks, err := pagination.ParseClicks(opts.clicks)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		files = []string{stdinName}
	}
	if err = checkRenderInputs(files, output, opts.outDir); err != nil {
		return err
	}
	if opts.outDir != "" {
		if mkErr := os.MkdirAll(opts.outDir, 0o750); mkErr != nil {
			return fmt.Errorf("creating output directory: %w", mkErr)
		}
	}

	job := renderJob{
		selector: opts.selector,
		cfg:      pagerCfg,
		page:     opts.page,
		goTo:     cmd.Flags().Changed("page"),
		clicks:   clicks,
		output:   output,
		stdin:    cmd.InOrStdin(),
	}

	results := make([]renderResult, len(files))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			res, runErr := job.run(gCtx, file)
			if runErr != nil {
				return fmt.Errorf("%s: %w", file, runErr)
			}
			results[i] = res
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		log.Error().Ctx(ctx).Err(err).Msg("render failed")
		return err
	}

	if err = writeRenderResults(cmd.OutOrStdout(), results, output, opts.outDir); err != nil {
		return err
	}

	printRenderSummary(cmd.ErrOrStderr(), results)
	return nil
}

// checkRenderInputs rejects argument lists whose outputs would collide
// before any file is read.
func checkRenderInputs(files []string, output, outDir string) error {
	stdinCount := 0
	for _, f := range files {
		if f == stdinName {
			stdinCount++
		}
	}
	if stdinCount > 1 {
		return errStdinTwice
	}
	if outDir == "" {
		return nil
	}
	if stdinCount > 0 {
		return errors.New("--out-dir cannot be used with stdin input")
	}

	seen := make(map[string]string, len(files))
	for _, f := range files {
		name := outputName(f, output)
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("%w: %s and %s both map to %s", errDuplicateOutName, prev, f, name)
		}
		seen[name] = f
	}
	return nil
}

// renderJob holds everything one file needs; it is read-only once built so
// files can be processed concurrently.
type renderJob struct {
	selector string
	cfg      pager.Config
	page     int
	goTo     bool
	clicks   []pager.Control
	output   string
	stdin    io.Reader
}

func (j renderJob) run(ctx context.Context, file string) (renderResult, error) {
	log := logging.FromContext(ctx)

	r, closeFn, err := j.open(file)
	if err != nil {
		return renderResult{}, err
	}
	defer closeFn()

	doc, err := htmldom.Parse(r)
	if err != nil {
		return renderResult{}, err
	}

	sel, err := htmldom.Select(doc, j.selector).SimplePagination(ctx, j.cfg)
	if err != nil {
		return renderResult{}, err
	}
	if sel.Len() == 0 {
		log.Warn().Ctx(ctx).Str("file", file).Str("selector", j.selector).Msg("selector matched no element")
	}

	if j.goTo {
		for _, p := range sel.Pagers() {
			p.GoTo(j.page)
		}
	}
	for _, c := range j.clicks {
		sel.ClickAll(c)
	}

	res := renderResult{File: file, Pagers: make([]pagination.PaginationMeta, 0, sel.Len())}
	for i, p := range sel.Pagers() {
		res.Pagers = append(res.Pagers, pagination.NewPaginationMeta(sel.HostName(i), p))
		res.rows += p.RowCount()
	}

	if j.output == config.FormatHTML {
		var buf bytes.Buffer
		if err = htmldom.Render(&buf, doc); err != nil {
			return renderResult{}, err
		}
		res.rendered = buf.Bytes()
	}

	log.Debug().Ctx(ctx).Str("file", file).Int("pagers", len(res.Pagers)).Int("rows", res.rows).Msg("file rendered")
	return res, nil
}

func (j renderJob) open(file string) (io.Reader, func(), error) {
	if file == stdinName {
		return j.stdin, func() {}, nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// writeRenderResults writes outputs in input order, either to w or to one
// file per input under outDir.
func writeRenderResults(w io.Writer, results []renderResult, output, outDir string) error {
	if outDir == "" {
		if output == config.FormatHTML {
			for _, res := range results {
				if _, err := w.Write(res.rendered); err != nil {
					return err
				}
			}
			return nil
		}
		data, err := encodeMeta(results, output)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	for _, res := range results {
		data := res.rendered
		if output != config.FormatHTML {
			var err error
			if data, err = encodeMeta(res, output); err != nil {
				return err
			}
		}
		path := filepath.Join(outDir, outputName(res.File, output))
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}

func encodeMeta(v any, output string) ([]byte, error) {
	if output == config.FormatYAML {
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		return data, nil
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding json: %w", err)
	}
	return append(data, '\n'), nil
}

// outputName maps an input path to its file name under --out-dir.
func outputName(file, output string) string {
	base := filepath.Base(file)
	if output == config.FormatHTML {
		return base
	}
	return strings.TrimSuffix(base, filepath.Ext(base)) + "." + output
}

func printRenderSummary(w io.Writer, results []renderResult) {
	var pagers, rows int
	for _, res := range results {
		pagers += len(res.Pagers)
		rows += res.rows
	}

	p := message.NewPrinter(language.English)
	_, _ = p.Fprintf(w, "Paginated %d tables (%d rows) across %d files\n", pagers, rows, len(results))
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/tablepager/internal/cli/pagination"
	"github.com/rshade/tablepager/internal/config"
	"github.com/rshade/tablepager/internal/logging"
	"github.com/rshade/tablepager/internal/source"
	"github.com/rshade/tablepager/internal/tui"
)

type browseOptions struct {
	from     string
	path     string
	selector string
	header   bool
	dsn      string
	table    string
	orderBy  string
	limit    int
	sort     string
	mode     string
	title    string
	flags    *pagination.Flags
}

// NewBrowseCmd creates the browse command, which pages through a table in
// the terminal.
func NewBrowseCmd() *cobra.Command {
	var opts browseOptions

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Page through a table in the terminal",
		Long: `Loads a snapshot of rows from an HTML table, a CSV file or a SQL table and
shows it one page at a time.

Keys: ←/p previous, →/n next, home/f first, end/l last, tab and enter to use
the on-screen buttons, q to quit. When stdout is not a terminal the current
page is printed instead.`,
		Example: `  tablepager browse --from csv --path orders.csv --per-page 20
  tablepager browse --from html --path report.html --selector '#orders'
  tablepager browse --from sql --dsn mysql://user:pw@tcp(localhost:3306)/shop --table orders --order-by id`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", string(source.KindCSV), "row source: html, csv or sql")
	cmd.Flags().StringVar(&opts.path, "path", "", "input file for html and csv sources")
	cmd.Flags().StringVar(&opts.selector, "selector", "table", "CSS selector of the table (html source)")
	cmd.Flags().BoolVar(&opts.header, "header", true, "treat the first CSV record as column titles")
	cmd.Flags().StringVar(&opts.dsn, "dsn", "", "database DSN, postgres:// or mysql:// (sql source)")
	cmd.Flags().StringVar(&opts.table, "table", "", "table name (sql source)")
	cmd.Flags().StringVar(&opts.orderBy, "order-by", "", "column the database orders rows by (sql source)")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "maximum rows to load, 0 for all (sql source)")
	cmd.Flags().StringVar(&opts.sort, "sort", "", "sort rows by column before paging: field or field:asc|desc")
	cmd.Flags().StringVar(&opts.mode, "mode", "", "auto, plain, styled or interactive (default from config)")
	cmd.Flags().StringVar(&opts.title, "title", "", "title shown above the table")
	opts.flags = pagination.BindFlags(cmd)

	return cmd
}

func runBrowse(cmd *cobra.Command, opts *browseOptions) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	cfg := config.GetGlobalConfig()
	pagerCfg := opts.flags.Apply(cmd, cfg.Pager)

	kind, err := source.ParseKind(opts.from)
	if err != nil {
		return err
	}

	tbl, err := loadTable(ctx, kind, opts)
	if err != nil {
		return err
	}
	log.Debug().Ctx(ctx).Str("source", string(kind)).Str("name", tbl.Name).Int("rows", tbl.Len()).Msg("rows loaded")

	rows := tbl.Rows
	if opts.sort != "" {
		field, order, sortErr := pagination.ParseSort(opts.sort)
		if sortErr != nil {
			return sortErr
		}
		if rows, err = pagination.NewRowSorter(tbl.Columns).Sort(rows, field, order); err != nil {
			return err
		}
	}

	title := opts.title
	if title == "" {
		title = tbl.Name
	}

	model, err := tui.NewPagerModel(ctx, title, tbl.Columns, rows, pagerCfg)
	if err != nil {
		return err
	}

	modeName := opts.mode
	if modeName == "" {
		modeName = cfg.Output.Mode
	}
	mode, err := resolveOutputMode(modeName, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if mode != tui.OutputModeInteractive {
		return tui.RenderPage(cmd.OutOrStdout(), model, mode)
	}

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err = program.Run(); err != nil {
		return fmt.Errorf("running pager: %w", err)
	}
	return nil
}

func loadTable(ctx context.Context, kind source.Kind, opts *browseOptions) (source.Table, error) {
	switch kind {
	case source.KindSQL:
		if opts.dsn == "" || opts.table == "" {
			return source.Table{}, errors.New("--from sql needs --dsn and --table")
		}
		db, err := source.Open(opts.dsn)
		if err != nil {
			return source.Table{}, err
		}
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			defer sqlDB.Close()
		}
		return source.FromSQL(ctx, db, source.SQLQuery{Table: opts.table, OrderBy: opts.orderBy, Limit: opts.limit})
	default:
		if opts.path == "" {
			return source.Table{}, fmt.Errorf("--from %s needs --path", kind)
		}
		f, err := os.Open(opts.path)
		if err != nil {
			return source.Table{}, fmt.Errorf("opening %s: %w", opts.path, err)
		}
		defer f.Close()

		if kind == source.KindHTML {
			return source.FromHTML(f, opts.selector)
		}
		return source.FromCSV(f, filepath.Base(opts.path), opts.header)
	}
}

// resolveOutputMode maps a mode name to an output mode. "auto" asks the
// terminal, and never picks interaction when out is not the process stdout.
func resolveOutputMode(name string, out io.Writer) (tui.OutputMode, error) {
	switch name {
	case config.ModePlain:
		return tui.OutputModePlain, nil
	case config.ModeStyled:
		return tui.OutputModeStyled, nil
	case config.ModeInteractive:
		return tui.OutputModeInteractive, nil
	case config.ModeAuto, "":
		if f, ok := out.(*os.File); !ok || f != os.Stdout {
			return tui.OutputModePlain, nil
		}
		return tui.DetectOutputMode(false, false, false), nil
	default:
		return 0, fmt.Errorf("unknown output mode %q (want auto, plain, styled or interactive)", name)
	}
}

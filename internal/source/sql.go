package source

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrUnsupportedDSN is returned by Open for DSNs without a known scheme.
var ErrUnsupportedDSN = errors.New("unsupported dsn scheme")

// ErrInvalidQuery is returned when a SQLQuery fails validation.
var ErrInvalidQuery = errors.New("invalid sql query")

var identifierSymbols = append([]rune("_."), lo.AlphanumericCharset...)

// SQLQuery selects the rows of a single table.
type SQLQuery struct {
	Table string
	// OrderBy is a column name; rows keep the database's order when empty.
	OrderBy string
	// Limit caps the snapshot. Zero means no cap.
	Limit int
}

func (q SQLQuery) validate() error {
	if q.Table == "" {
		return fmt.Errorf("%w: table name is required", ErrInvalidQuery)
	}
	// Identifiers are interpolated by GORM, so only plain names are allowed.
	if !lo.Every(identifierSymbols, []rune(q.Table)) {
		return fmt.Errorf("%w: table name contains forbidden symbols %q", ErrInvalidQuery, q.Table)
	}
	if !lo.Every(identifierSymbols, []rune(q.OrderBy)) {
		return fmt.Errorf("%w: order column contains forbidden symbols %q", ErrInvalidQuery, q.OrderBy)
	}
	if q.Limit < 0 {
		return fmt.Errorf("%w: limit must be >= 0, got %d", ErrInvalidQuery, q.Limit)
	}
	return nil
}

// Dialector picks a GORM dialector from the DSN scheme. postgres:// and
// postgresql:// go to the PostgreSQL driver; mysql:// is stripped and the
// remainder handed to the MySQL driver.
func Dialector(dsn string) (gorm.Dialector, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return postgres.Open(dsn), nil
	case strings.HasPrefix(dsn, "mysql://"):
		return mysql.Open(strings.TrimPrefix(dsn, "mysql://")), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(dsn))
	}
}

// Open connects to dsn with GORM's own logging silenced.
func Open(dsn string) (*gorm.DB, error) {
	dialector, err := Dialector(dsn)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

// FromSQL snapshots the rows selected by q. Every value is rendered as text;
// NULL becomes the empty string.
func FromSQL(ctx context.Context, db *gorm.DB, q SQLQuery) (Table, error) {
	if err := q.validate(); err != nil {
		return Table{}, err
	}

	tx := db.WithContext(ctx).Table(q.Table)
	if q.OrderBy != "" {
		tx = tx.Order(q.OrderBy)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	rows, err := tx.Rows()
	if err != nil {
		return Table{}, fmt.Errorf("querying %s: %w", q.Table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return Table{}, fmt.Errorf("reading columns of %s: %w", q.Table, err)
	}

	t := Table{Name: q.Table, Columns: columns}
	values := make([]sql.NullString, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return Table{}, fmt.Errorf("scanning %s: %w", q.Table, err)
		}
		t.Rows = append(t.Rows, lo.Map(values, func(v sql.NullString, _ int) string {
			return v.String
		}))
	}
	if err := rows.Err(); err != nil {
		return Table{}, fmt.Errorf("iterating %s: %w", q.Table, err)
	}

	return t, nil
}

// redactDSN drops everything after the scheme so credentials never reach logs.
func redactDSN(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i] + "://…"
	}
	return "…"
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"hero_seguros/internal/adapter/persistence/sqlite/migrations"
	"hero_seguros/internal/domain/entities"

	"github.com/shopspring/decimal"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// DefaultPath is used when Open receives an empty path.
const DefaultPath = "data/quotations.db"

// Store is a SQLite database holding every aggregate. Foreign keys, unique
// codes and emails and the check constraints live in the schema, so the
// per-aggregate repositories only translate driver errors.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the database at path and applies pending
// migrations.
func Open(path string) (*Store, error) {
	if path == "" {
		path = DefaultPath
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	dsn := "file:" + path + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// a single writer connection keeps transactions serialized and lets
	// :memory: databases survive across calls
	db.SetMaxOpenConns(1)

	s := &Store{db: db, path: path}
	if err := s.Migrate(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Destinations() *DestinationRepository {
	return &DestinationRepository{db: s.db}
}

func (s *Store) RiskFactors() *RiskFactorRepository {
	return &RiskFactorRepository{db: s.db}
}

func (s *Store) Plans() *PlanRepository {
	return &PlanRepository{db: s.db}
}

func (s *Store) Quotations() *QuotationRepository {
	return &QuotationRepository{db: s.db}
}

func (s *Store) Users() *UserRepository {
	return &UserRepository{db: s.db}
}

func (s *Store) Payments() *PaymentRepository {
	return &PaymentRepository{db: s.db}
}

// Version returns the highest applied migration.
func (s *Store) Version(ctx context.Context) (int, error) {
	var v int
	err := s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&v)
	return v, err
}

// Migrate applies every embedded *.up.sql newer than the current version.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at TEXT NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	current, err := s.Version(ctx)
	if err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	files, err := migrationFiles(".up.sql")
	if err != nil {
		return err
	}
	for _, m := range files {
		if m.version <= current {
			continue
		}
		content, err := fs.ReadFile(migrations.FS, m.name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", m.name, err)
		}
		err = s.inTx(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, string(content)); err != nil {
				return fmt.Errorf("executing migration %s: %w", m.name, err)
			}
			_, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)", m.version, timeText(time.Now()))
			return err
		})
		if err != nil {
			return err
		}
		log.Printf("[storage][sqlite] migration applied version=%d file=%s", m.version, m.name)
	}
	return nil
}

// Rollback reverts the latest applied migration. It returns the version that
// was reverted, or 0 when nothing was applied.
func (s *Store) Rollback(ctx context.Context) (int, error) {
	current, err := s.Version(ctx)
	if err != nil || current == 0 {
		return 0, err
	}
	files, err := migrationFiles(".down.sql")
	if err != nil {
		return 0, err
	}
	for _, m := range files {
		if m.version != current {
			continue
		}
		content, err := fs.ReadFile(migrations.FS, m.name)
		if err != nil {
			return 0, fmt.Errorf("reading migration %s: %w", m.name, err)
		}
		err = s.inTx(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, string(content)); err != nil {
				return fmt.Errorf("executing migration %s: %w", m.name, err)
			}
			_, err := tx.ExecContext(ctx, "DELETE FROM schema_migrations WHERE version = ?", m.version)
			return err
		})
		if err != nil {
			return 0, err
		}
		log.Printf("[storage][sqlite] migration reverted version=%d file=%s", m.version, m.name)
		return current, nil
	}
	return 0, fmt.Errorf("no down migration for version %d", current)
}

type migrationFile struct {
	version int
	name    string
}

func migrationFiles(suffix string) ([]migrationFile, error) {
	entries, err := fs.ReadDir(migrations.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("reading migrations directory: %w", err)
	}
	var out []migrationFile
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, suffix) {
			continue
		}
		// "001_initial.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		out = append(out, migrationFile{version: version, name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].version < out[j].version })
	return out, nil
}

func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return inTx(ctx, s.db, fn)
}

func inTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// mapError translates driver constraint failures into the entities error
// taxonomy. Other errors pass through unchanged.
func mapError(err error, what string) error {
	if err == nil {
		return nil
	}
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return err
	}
	code := se.Code()
	if code&0xff != sqlite3.SQLITE_CONSTRAINT {
		return err
	}
	msg := se.Error()
	switch {
	case code == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY || strings.Contains(msg, "FOREIGN KEY"):
		return fmt.Errorf("%s: %w", what, entities.ErrReferentialIntegrity)
	case code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY || strings.Contains(msg, "UNIQUE"):
		return fmt.Errorf("%s: %w", what, entities.ErrConstraintViolation)
	case code == sqlite3.SQLITE_CONSTRAINT_CHECK || strings.Contains(msg, "CHECK"):
		return fmt.Errorf("%s: %w: %s", what, entities.ErrValidation, msg)
	default:
		return fmt.Errorf("%s: %w", what, entities.ErrConstraintViolation)
	}
}

func timeText(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTimeText(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func parseDecimalText(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

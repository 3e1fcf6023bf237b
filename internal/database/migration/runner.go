package migration

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

const lockKey int64 = 0x5173_0b1d

var (
	ErrChecksumMismatch = errors.New("migration changed after it was applied")

	fileRe = regexp.MustCompile(`^V(\d+)__([A-Za-z0-9_.-]+)\.sql$`)
)

// Migration is one V<version>__<name>.sql file.
type Migration struct {
	Version  int64
	Name     string
	Filename string
	SQL      string
	Checksum string
}

// Report lists what a run did.
type Report struct {
	Applied []Migration
	Current int
}

// Runner applies versioned SQL files from FS in ascending order. Applied
// checksums are pinned: editing a file after it ran fails the next run.
type Runner struct {
	FS     fs.FS
	Dir    string
	Logger zerolog.Logger
}

// NewRunner returns a runner over the site schema embedded in this package.
func NewRunner(logger zerolog.Logger) Runner {
	return Runner{FS: embedded, Dir: "sql", Logger: logger}
}

// Run applies pending migrations on a single pinned connection holding a
// session advisory lock, so concurrent instances apply each file once.
func (r Runner) Run(ctx context.Context, db *sql.DB) error {
	_, err := r.Apply(ctx, db)
	return err
}

func (r Runner) Apply(ctx context.Context, db *sql.DB) (Report, error) {
	if db == nil {
		return Report{}, errors.New("migration: nil db")
	}
	if r.FS == nil {
		return Report{}, errors.New("migration: nil fs")
	}

	migs, err := loadMigrations(r.FS, r.Dir)
	if err != nil || len(migs) == 0 {
		return Report{}, err
	}

	conn, err := db.Conn(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("migration: acquire conn: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, `SELECT pg_advisory_lock($1)`, lockKey); err != nil {
		return Report{}, fmt.Errorf("migration: lock: %w", err)
	}
	defer func() {
		if _, err := conn.ExecContext(context.WithoutCancel(ctx), `SELECT pg_advisory_unlock($1)`, lockKey); err != nil {
			r.Logger.Warn().Err(err).Msg("migration unlock failed")
		}
	}()

	if _, err := conn.ExecContext(ctx, createHistoryTable); err != nil {
		return Report{}, fmt.Errorf("migration: history table: %w", err)
	}

	applied, err := appliedChecksums(ctx, conn)
	if err != nil {
		return Report{}, err
	}

	pending, err := plan(migs, applied)
	if err != nil {
		return Report{}, err
	}

	report := Report{Current: len(migs) - len(pending)}
	for _, m := range pending {
		if err := applyOne(ctx, conn, m); err != nil {
			return report, err
		}
		report.Applied = append(report.Applied, m)
		r.Logger.Info().Int64("version", m.Version).Str("name", m.Name).Msg("migration applied")
	}
	if len(pending) == 0 {
		r.Logger.Debug().Int("migrations", len(migs)).Msg("schema up to date")
	}
	return report, nil
}

// plan returns the migrations not yet in applied, failing on any applied
// version whose checksum differs from the file.
func plan(migs []Migration, applied map[int64]string) ([]Migration, error) {
	pending := make([]Migration, 0, len(migs))
	for _, m := range migs {
		sum, ok := applied[m.Version]
		if !ok {
			pending = append(pending, m)
			continue
		}
		if sum != m.Checksum {
			return nil, fmt.Errorf("%w: %s", ErrChecksumMismatch, m.Filename)
		}
	}
	return pending, nil
}

func loadMigrations(fsys fs.FS, dir string) ([]Migration, error) {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	entries, err := fs.ReadDir(fsys, dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var migs []Migration
	for _, e := range entries {
		m := fileRe.FindStringSubmatch(e.Name())
		if e.IsDir() || m == nil {
			continue
		}
		version, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("migration: bad version in %s", e.Name())
		}

		raw, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		body := strings.TrimSpace(string(raw))
		if body == "" {
			return nil, fmt.Errorf("migration: %s is empty", e.Name())
		}

		sum := sha256.Sum256([]byte(body))
		migs = append(migs, Migration{
			Version:  version,
			Name:     m[2],
			Filename: e.Name(),
			SQL:      body,
			Checksum: hex.EncodeToString(sum[:]),
		})
	}

	sort.Slice(migs, func(i, j int) bool { return migs[i].Version < migs[j].Version })
	for i := 1; i < len(migs); i++ {
		if migs[i].Version == migs[i-1].Version {
			return nil, fmt.Errorf("migration: duplicate version %d", migs[i].Version)
		}
	}
	return migs, nil
}

const createHistoryTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version    BIGINT PRIMARY KEY,
	name       TEXT NOT NULL,
	checksum   TEXT NOT NULL,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

func appliedChecksums(ctx context.Context, conn *sql.Conn) (map[int64]string, error) {
	rows, err := conn.QueryContext(ctx, `SELECT version, checksum FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("migration: read history: %w", err)
	}
	defer rows.Close()

	out := map[int64]string{}
	for rows.Next() {
		var (
			v   int64
			sum string
		)
		if err := rows.Scan(&v, &sum); err != nil {
			return nil, err
		}
		out[v] = sum
	}
	return out, rows.Err()
}

func applyOne(ctx context.Context, conn *sql.Conn, m Migration) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
		return fmt.Errorf("migration: apply %s: %w", m.Filename, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, name, checksum) VALUES ($1, $2, $3)`,
		m.Version, m.Name, m.Checksum,
	); err != nil {
		return fmt.Errorf("migration: record %s: %w", m.Filename, err)
	}
	return tx.Commit()
}

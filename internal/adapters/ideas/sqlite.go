package ideas

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/randomtoy/ideawheel/internal/domain"
)

// Safe to run on every open.
const schema = `
CREATE TABLE IF NOT EXISTS idea (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    note TEXT NOT NULL DEFAULT '',
    archived INTEGER NOT NULL DEFAULT 0,
    favorite INTEGER NOT NULL DEFAULT 0,
    position INTEGER NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_idea_position ON idea(position);
`

const ideaColumns = `id, title, note, archived, favorite, position, created_at`

// SQLiteStore persists ideas in a SQLite database.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLite opens (creating if needed) the database at path. Use ":memory:"
// for a throwaway database.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One connection keeps ":memory:" a single database and serializes writers.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &SQLiteStore{db: db, now: time.Now}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIdea(r rowScanner) (domain.Idea, error) {
	var (
		idea               domain.Idea
		archived, favorite int
		created            int64
	)
	if err := r.Scan(&idea.ID, &idea.Title, &idea.Note, &archived, &favorite, &idea.Position, &created); err != nil {
		return domain.Idea{}, err
	}
	idea.Archived = archived != 0
	idea.Favorite = favorite != 0
	idea.CreatedAt = time.Unix(0, created).UTC()
	return idea, nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]domain.Idea, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+ideaColumns+` FROM idea ORDER BY position, created_at`)
	if err != nil {
		return nil, fmt.Errorf("query ideas: %w", err)
	}
	defer rows.Close()

	var out []domain.Idea
	for rows.Next() {
		idea, err := scanIdea(rows)
		if err != nil {
			return nil, fmt.Errorf("scan idea: %w", err)
		}
		out = append(out, idea)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (domain.Idea, error) {
	idea, err := scanIdea(s.db.QueryRowContext(ctx, `SELECT `+ideaColumns+` FROM idea WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Idea{}, domain.ErrIdeaNotFound
	}
	if err != nil {
		return domain.Idea{}, fmt.Errorf("get idea: %w", err)
	}
	return idea, nil
}

func (s *SQLiteStore) Add(ctx context.Context, title, note string) (domain.Idea, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO idea (id, title, note, position, created_at)
		VALUES (?, ?, ?, (SELECT COALESCE(MAX(position) + 1, 0) FROM idea), ?)
	`, id, title, note, s.now().UnixNano())
	if err != nil {
		return domain.Idea{}, fmt.Errorf("insert idea: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *SQLiteStore) Update(ctx context.Context, id, title, note string) (domain.Idea, error) {
	return s.updateOne(ctx, id, `UPDATE idea SET title = ?, note = ? WHERE id = ?`, title, note, id)
}

func (s *SQLiteStore) SetArchived(ctx context.Context, id string, archived bool) (domain.Idea, error) {
	return s.updateOne(ctx, id, `UPDATE idea SET archived = ? WHERE id = ?`, boolInt(archived), id)
}

func (s *SQLiteStore) SetFavorite(ctx context.Context, id string, favorite bool) (domain.Idea, error) {
	return s.updateOne(ctx, id, `UPDATE idea SET favorite = ? WHERE id = ?`, boolInt(favorite), id)
}

func (s *SQLiteStore) updateOne(ctx context.Context, id, query string, args ...any) (domain.Idea, error) {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return domain.Idea{}, fmt.Errorf("update idea: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.Idea{}, domain.ErrIdeaNotFound
	}
	return s.Get(ctx, id)
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM idea WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete idea: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrIdeaNotFound
	}

	ids, err := orderedIDs(ctx, tx)
	if err != nil {
		return err
	}
	if err := writePositions(ctx, tx, ids); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) Reorder(ctx context.Context, ids []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	current, err := orderedIDs(ctx, tx)
	if err != nil {
		return err
	}
	if err := checkOrder(current, ids); err != nil {
		return err
	}
	if err := writePositions(ctx, tx, ids); err != nil {
		return err
	}
	return tx.Commit()
}

func orderedIDs(ctx context.Context, tx *sql.Tx) ([]string, error) {
	rows, err := tx.QueryContext(ctx, `SELECT id FROM idea ORDER BY position, created_at`)
	if err != nil {
		return nil, fmt.Errorf("query idea ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan idea id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func writePositions(ctx context.Context, tx *sql.Tx, ids []string) error {
	stmt, err := tx.PrepareContext(ctx, `UPDATE idea SET position = ? WHERE id = ?`)
	if err != nil {
		return fmt.Errorf("prepare reorder: %w", err)
	}
	defer stmt.Close()

	for pos, id := range ids {
		if _, err := stmt.ExecContext(ctx, pos, id); err != nil {
			return fmt.Errorf("set position: %w", err)
		}
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

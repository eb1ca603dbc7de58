// Package sqlite provides the SQLite-backed item collection.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/idilsaglam/shoplist/internal/logger"
	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/store"
	"github.com/idilsaglam/shoplist/internal/store/sqlite/migrations"
)

// Store persists items in a single SQLite table.
type Store struct {
	db  *sql.DB
	log logger.Logger
}

var _ store.ItemStore = (*Store)(nil)

// Open opens (creating if needed) the database at path and brings its schema
// up to store.SchemaVersion.
func Open(ctx context.Context, path string, log logger.Logger) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	if log == nil {
		log = logger.Nop{}
	}
	dsn, err := fileDSN(path)
	if err != nil {
		log.Error("database failed to open: ", err)
		return nil, err
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Error("database failed to open: ", err)
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One connection serializes transactions against the collection.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		log.Error("database failed to open: ", err)
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	upgraded, err := applyMigrations(ctx, db, migrations.FS)
	if err != nil {
		_ = db.Close()
		log.Error("database failed to open: ", err)
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	if upgraded {
		log.Info("database setup complete")
	}
	log.Info("database opened successfully")
	return &Store{db: db, log: log}, nil
}

// fileDSN builds a file: URI so '?', '#' and '%' in path stay part of the file name.
func fileDSN(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve storage path: %w", err)
	}
	u := &url.URL{
		Scheme:   "file",
		Path:     filepath.ToSlash(abs),
		RawQuery: "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)",
	}
	return u.String(), nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Version reports the schema version recorded in the database.
func (s *Store) Version(ctx context.Context) (int, error) {
	return schemaVersion(ctx, s.db)
}

func (s *Store) Add(ctx context.Context, title string) (model.Item, error) {
	if err := ctx.Err(); err != nil {
		return model.Item{}, err
	}
	res, err := s.db.ExecContext(ctx, `INSERT INTO shopping_list_os (title) VALUES (?)`, title)
	if err != nil {
		s.log.Error("transaction not opened due to error: ", err)
		return model.Item{}, fmt.Errorf("insert item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Item{}, fmt.Errorf("insert item: last insert id: %w", err)
	}
	s.log.Info("transaction completed: database modification finished")
	return model.Item{ID: id, Title: title}, nil
}

func (s *Store) Each(ctx context.Context, fn func(model.Item) error) error {
	return s.each(ctx, fn, `SELECT id, title FROM shopping_list_os ORDER BY id ASC`)
}

func (s *Store) List(ctx context.Context) ([]model.Item, error) {
	return store.Collect(ctx, s)
}

func (s *Store) FindByTitle(ctx context.Context, title string) ([]model.Item, error) {
	items := []model.Item{}
	err := s.each(ctx, func(it model.Item) error {
		items = append(items, it)
		return nil
	}, `SELECT id, title FROM shopping_list_os INDEXED BY idx_shopping_list_os_title WHERE title = ? ORDER BY id ASC`, title)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM shopping_list_os WHERE id = ?`, id)
	if err != nil {
		s.log.Error("transaction not opened due to error: ", err)
		return fmt.Errorf("delete item %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete item %d: rows affected: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("delete item %d: %w", id, store.ErrNotFound)
	}
	s.log.Info("item ", id, " deleted")
	return nil
}

func (s *Store) each(ctx context.Context, fn func(model.Item) error, query string, args ...any) error {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.log.Error("transaction not opened due to error: ", err)
		return fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it model.Item
		if err := rows.Scan(&it.ID, &it.Title); err != nil {
			return fmt.Errorf("scan item: %w", err)
		}
		if err := fn(it); err != nil {
			if errors.Is(err, store.ErrStop) {
				return nil
			}
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate items: %w", err)
	}
	return nil
}

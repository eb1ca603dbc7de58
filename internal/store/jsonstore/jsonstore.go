// Package jsonstore keeps the item collection in a single human-readable JSON file.
package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/idilsaglam/shoplist/internal/logger"
	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/store"
)

// No cross-process locking; fine for a local single-user list.

type document struct {
	Version    int          `json:"version"`
	Collection string       `json:"collection"`
	NextID     int64        `json:"next_id"`
	Items      []model.Item `json:"items"`
}

// Store is a file-backed store.ItemStore.
type Store struct {
	path string
	log  logger.Logger
	mu   sync.Mutex
}

var _ store.ItemStore = (*Store)(nil)

// Open creates the file at path if it is missing and upgrades older documents.
func Open(ctx context.Context, path string, log logger.Logger) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	if log == nil {
		log = logger.Nop{}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := &Store{path: filepath.Clean(path), log: log}

	doc, err := s.load()
	if err != nil {
		log.Error("database failed to open: ", err)
		return nil, err
	}
	if doc.Version < store.SchemaVersion {
		doc.Version = store.SchemaVersion
		doc.Collection = store.CollectionName
		if err := s.save(doc); err != nil {
			log.Error("database failed to open: ", err)
			return nil, err
		}
		log.Info("database setup complete")
	}
	log.Info("database opened successfully")
	return s, nil
}

func (s *Store) Close() error { return nil }

func (s *Store) Add(ctx context.Context, title string) (model.Item, error) {
	if err := ctx.Err(); err != nil {
		return model.Item{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		s.log.Error("transaction not opened due to error: ", err)
		return model.Item{}, err
	}
	it := model.Item{ID: doc.NextID, Title: title}
	doc.Items = append(doc.Items, it)
	doc.NextID++
	if err := s.save(doc); err != nil {
		s.log.Error("transaction not opened due to error: ", err)
		return model.Item{}, err
	}
	s.log.Info("transaction completed: database modification finished")
	return it, nil
}

func (s *Store) Each(ctx context.Context, fn func(model.Item) error) error {
	items, err := s.snapshot(ctx)
	if err != nil {
		return err
	}
	for _, it := range items {
		if err := fn(it); err != nil {
			if errors.Is(err, store.ErrStop) {
				return nil
			}
			return err
		}
	}
	return nil
}

func (s *Store) List(ctx context.Context) ([]model.Item, error) {
	return store.Collect(ctx, s)
}

func (s *Store) FindByTitle(ctx context.Context, title string) ([]model.Item, error) {
	items, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := []model.Item{}
	for _, it := range items {
		if it.Title == title {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		s.log.Error("transaction not opened due to error: ", err)
		return err
	}
	idx := -1
	for i, it := range doc.Items {
		if it.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("delete item %d: %w", id, store.ErrNotFound)
	}
	doc.Items = append(doc.Items[:idx], doc.Items[idx+1:]...)
	if err := s.save(doc); err != nil {
		s.log.Error("transaction not opened due to error: ", err)
		return err
	}
	s.log.Info("item ", id, " deleted")
	return nil
}

// snapshot returns the items sorted by ascending identifier.
func (s *Store) snapshot(ctx context.Context) ([]model.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	doc, err := s.load()
	s.mu.Unlock()
	if err != nil {
		s.log.Error("transaction not opened due to error: ", err)
		return nil, err
	}
	sort.Slice(doc.Items, func(i, j int) bool { return doc.Items[i].ID < doc.Items[j].ID })
	return doc.Items, nil
}

func (s *Store) load() (*document, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &document{NextID: 1, Items: []model.Item{}}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var doc document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if doc.Items == nil {
		doc.Items = []model.Item{}
	}
	// Older files carried no counter; never hand out an id at or below one in use.
	for _, it := range doc.Items {
		if it.ID >= doc.NextID {
			doc.NextID = it.ID + 1
		}
	}
	if doc.NextID < 1 {
		doc.NextID = 1
	}
	return &doc, nil
}

// save replaces the file atomically via rename.
func (s *Store) save(doc *document) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename file: %w", err)
	}
	return nil
}

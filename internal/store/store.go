// Package store defines the keyed item collection shared by every backend.
package store

import (
	"context"
	"errors"

	"github.com/idilsaglam/shoplist/internal/model"
)

// CollectionName names the item collection inside the list database.
const CollectionName = "shopping_list_os"

// SchemaVersion is bumped whenever the collection layout changes.
const SchemaVersion = 2

var (
	// ErrNotFound is returned when a key is absent from the collection.
	ErrNotFound = errors.New("item not found")
	// ErrStop ends an Each iteration early without reporting an error.
	ErrStop = errors.New("stop iteration")
)

// ItemStore is a durable collection of items keyed by an auto-incrementing
// identifier with a non-unique index on title.
//
// Every method returns only after the underlying write or read has completed.
type ItemStore interface {
	// Add inserts an item with a freshly generated identifier.
	Add(ctx context.Context, title string) (model.Item, error)
	// Each visits items in ascending identifier order until fn returns an error.
	// fn must not call back into the store.
	Each(ctx context.Context, fn func(model.Item) error) error
	// List returns all items in ascending identifier order.
	List(ctx context.Context) ([]model.Item, error)
	// FindByTitle returns the items whose title equals title, by ascending identifier.
	FindByTitle(ctx context.Context, title string) ([]model.Item, error)
	// Delete removes the item with the given identifier, or returns ErrNotFound.
	Delete(ctx context.Context, id int64) error
	Close() error
}

// Collect drains Each into a slice.
func Collect(ctx context.Context, s ItemStore) ([]model.Item, error) {
	items := []model.Item{}
	err := s.Each(ctx, func(it model.Item) error {
		items = append(items, it)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

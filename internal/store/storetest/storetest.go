// Package storetest holds behavior tests shared by every store.ItemStore backend.
package storetest

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/store"
)

// OpenFunc opens a backend at path. Calling it twice with the same path must
// reopen the same collection.
type OpenFunc func(t *testing.T, path string) store.ItemStore

// Run exercises the collection contract against a fresh database under t.TempDir().
func Run(t *testing.T, fileName string, open OpenFunc) {
	t.Helper()

	fresh := func(t *testing.T) (store.ItemStore, string) {
		path := filepath.Join(t.TempDir(), fileName)
		s := open(t, path)
		t.Cleanup(func() { _ = s.Close() })
		return s, path
	}

	t.Run("add assigns increasing ids", func(t *testing.T) {
		ctx := context.Background()
		s, _ := fresh(t)

		milk, err := s.Add(ctx, "Milk")
		require.NoError(t, err)
		eggs, err := s.Add(ctx, "Eggs")
		require.NoError(t, err)

		assert.Equal(t, "Milk", milk.Title)
		assert.Greater(t, milk.ID, int64(0))
		assert.Greater(t, eggs.ID, milk.ID)
	})

	t.Run("adding milk yields exactly one row", func(t *testing.T) {
		ctx := context.Background()
		s, _ := fresh(t)

		_, err := s.Add(ctx, "Milk")
		require.NoError(t, err)

		items, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Milk", items[0].Title)
	})

	t.Run("list is ordered by ascending id", func(t *testing.T) {
		ctx := context.Background()
		s, _ := fresh(t)

		titles := []string{"Milk", "Bread", "Apples", "Bread", ""}
		for _, title := range titles {
			_, err := s.Add(ctx, title)
			require.NoError(t, err)
		}

		items, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, len(titles))
		for i := range items {
			assert.Equal(t, titles[i], items[i].Title)
			if i > 0 {
				assert.Less(t, items[i-1].ID, items[i].ID)
			}
		}
	})

	t.Run("empty list", func(t *testing.T) {
		s, _ := fresh(t)
		items, err := s.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("delete removes exactly that item", func(t *testing.T) {
		ctx := context.Background()
		s, _ := fresh(t)

		a, err := s.Add(ctx, "Milk")
		require.NoError(t, err)
		b, err := s.Add(ctx, "Eggs")
		require.NoError(t, err)
		c, err := s.Add(ctx, "Flour")
		require.NoError(t, err)

		require.NoError(t, s.Delete(ctx, b.ID))

		items, err := s.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []model.Item{a, c}, items)
	})

	t.Run("delete of a missing id", func(t *testing.T) {
		ctx := context.Background()
		s, _ := fresh(t)

		a, err := s.Add(ctx, "Milk")
		require.NoError(t, err)

		err = s.Delete(ctx, a.ID+100)
		require.Error(t, err)
		assert.True(t, errors.Is(err, store.ErrNotFound))

		items, err := s.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []model.Item{a}, items)
	})

	t.Run("ids are never reused", func(t *testing.T) {
		ctx := context.Background()
		s, path := fresh(t)

		_, err := s.Add(ctx, "Milk")
		require.NoError(t, err)
		last, err := s.Add(ctx, "Eggs")
		require.NoError(t, err)
		require.NoError(t, s.Delete(ctx, last.ID))

		next, err := s.Add(ctx, "Butter")
		require.NoError(t, err)
		assert.Greater(t, next.ID, last.ID)

		require.NoError(t, s.Close())
		reopened := open(t, path)
		t.Cleanup(func() { _ = reopened.Close() })
		require.NoError(t, reopened.Delete(ctx, next.ID))

		after, err := reopened.Add(ctx, "Cheese")
		require.NoError(t, err)
		assert.Greater(t, after.ID, next.ID)
	})

	t.Run("reopen preserves items", func(t *testing.T) {
		ctx := context.Background()
		s, path := fresh(t)

		var want []model.Item
		for _, title := range []string{"Milk", "Eggs", "Tea"} {
			it, err := s.Add(ctx, title)
			require.NoError(t, err)
			want = append(want, it)
		}
		require.NoError(t, s.Close())

		reopened := open(t, path)
		t.Cleanup(func() { _ = reopened.Close() })
		got, err := reopened.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("find by title uses non-unique matches", func(t *testing.T) {
		ctx := context.Background()
		s, _ := fresh(t)

		first, err := s.Add(ctx, "Bread")
		require.NoError(t, err)
		_, err = s.Add(ctx, "Milk")
		require.NoError(t, err)
		second, err := s.Add(ctx, "Bread")
		require.NoError(t, err)

		got, err := s.FindByTitle(ctx, "Bread")
		require.NoError(t, err)
		assert.Equal(t, []model.Item{first, second}, got)

		none, err := s.FindByTitle(ctx, "Cheese")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("each stops early", func(t *testing.T) {
		ctx := context.Background()
		s, _ := fresh(t)
		for _, title := range []string{"a", "b", "c"} {
			_, err := s.Add(ctx, title)
			require.NoError(t, err)
		}

		var seen []string
		err := s.Each(ctx, func(it model.Item) error {
			seen = append(seen, it.Title)
			if len(seen) == 2 {
				return store.ErrStop
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, seen)

		boom := errors.New("boom")
		err = s.Each(ctx, func(model.Item) error { return boom })
		assert.ErrorIs(t, err, boom)
	})

	t.Run("canceled context", func(t *testing.T) {
		s, _ := fresh(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := s.Add(ctx, "Milk")
		assert.ErrorIs(t, err, context.Canceled)
		assert.ErrorIs(t, s.Delete(ctx, 1), context.Canceled)
	})
}

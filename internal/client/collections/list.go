package collections

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/signon/internal/client/models"
	"github.com/dmitrijs2005/signon/internal/client/store"
	"github.com/dmitrijs2005/signon/internal/idx"
)

// list is the shared read-mutate-write core of History and Favorites.
type list[T models.Record] struct {
	mu    sync.Mutex
	store store.Store
	key   store.Key
	ids   *idx.Generator
	now   func() time.Time
}

func (l *list[T]) load(ctx context.Context) ([]T, error) {
	var items []T
	if _, err := l.store.Get(ctx, l.key, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (l *list[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	return l.store.Put(ctx, l.key, items)
}

func (l *list[T]) List(ctx context.Context, f Filter) ([]T, error) {
	items, err := l.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if f.match(it) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (l *list[T]) Get(ctx context.Context, id idx.ID) (T, bool, error) {
	var zero T
	items, err := l.load(ctx)
	if err != nil {
		return zero, false, err
	}
	for _, it := range items {
		if it.RecordID() == id {
			return it, true, nil
		}
	}
	return zero, false, nil
}

func (l *list[T]) Count(ctx context.Context) (int, error) {
	items, err := l.load(ctx)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// prepend stamps a new entry via build and inserts it at the head.
func (l *list[T]) prepend(ctx context.Context, build func(id idx.ID, ts time.Time) T) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var zero T
	items, err := l.load(ctx)
	if err != nil {
		return zero, err
	}

	ts := l.now()
	entry := build(l.ids.NewAt(ts), ts)

	next := make([]T, 0, len(items)+1)
	next = append(next, entry)
	next = append(next, items...)
	if err := l.save(ctx, next); err != nil {
		return zero, err
	}
	return entry, nil
}

// Remove deletes the entry with id. Absent ids are a no-op.
func (l *list[T]) Remove(ctx context.Context, id idx.ID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	items, err := l.load(ctx)
	if err != nil {
		return err
	}
	next := make([]T, 0, len(items))
	for _, it := range items {
		if it.RecordID() != id {
			next = append(next, it)
		}
	}
	if len(next) == len(items) {
		return nil
	}
	return l.save(ctx, next)
}

// ClearAll empties the list.
func (l *list[T]) ClearAll(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.save(ctx, []T{})
}

// update replaces the entry with id by fn(entry). Reports whether it existed.
func (l *list[T]) update(ctx context.Context, id idx.ID, fn func(T) T) (T, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var zero T
	items, err := l.load(ctx)
	if err != nil {
		return zero, false, err
	}
	next := make([]T, len(items))
	copy(next, items)
	for i, it := range next {
		if it.RecordID() == id {
			next[i] = fn(it)
			if err := l.save(ctx, next); err != nil {
				return zero, false, err
			}
			return next[i], true, nil
		}
	}
	return zero, false, nil
}

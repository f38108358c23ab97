package collections

import (
	"context"
	"time"

	"github.com/dmitrijs2005/signon/internal/client/models"
	"github.com/dmitrijs2005/signon/internal/client/store"
	"github.com/dmitrijs2005/signon/internal/common"
	"github.com/dmitrijs2005/signon/internal/idx"
)

// HistoryDraft is a history entry before it gets an id and timestamp.
type HistoryDraft struct {
	Kind   models.Kind
	Input  string
	Output string
}

// FavoriteDraft is a favorite before it gets an id and timestamp.
type FavoriteDraft struct {
	Kind        models.Kind
	Content     string
	Translation string
	Tags        []string
}

type History struct {
	list[models.HistoryEntry]
}

// Add records a completed translation at the head of the history.
func (h *History) Add(ctx context.Context, d HistoryDraft) (models.HistoryEntry, error) {
	kind, err := storedKind(d.Kind)
	if err != nil {
		return models.HistoryEntry{}, err
	}
	return h.prepend(ctx, func(id idx.ID, ts time.Time) models.HistoryEntry {
		return models.HistoryEntry{ID: id, Kind: kind, Input: d.Input, Output: d.Output, Timestamp: ts}
	})
}

// storedKind rejects KindAll, blanks and unknown kinds.
func storedKind(k models.Kind) (models.Kind, error) {
	kind, err := models.ParseKind(string(k))
	if err != nil {
		return "", common.NewValidationError("type", "must be one of audio, video, text")
	}
	return kind, nil
}

type Favorites struct {
	list[models.FavoriteEntry]
}

// Add stores a favorite at the head of the list.
func (f *Favorites) Add(ctx context.Context, d FavoriteDraft) (models.FavoriteEntry, error) {
	kind, err := storedKind(d.Kind)
	if err != nil {
		return models.FavoriteEntry{}, err
	}
	tags := models.NormalizeTags(d.Tags)
	return f.prepend(ctx, func(id idx.ID, ts time.Time) models.FavoriteEntry {
		return models.FavoriteEntry{ID: id, Kind: kind, Content: d.Content, Translation: d.Translation, Timestamp: ts, Tags: tags}
	})
}

// Promote copies a history entry into favorites under a new id and
// timestamp. The history entry is left in place.
func (f *Favorites) Promote(ctx context.Context, h models.HistoryEntry) (models.FavoriteEntry, error) {
	return f.Add(ctx, FavoriteDraft{Kind: h.Kind, Content: h.Input, Translation: h.Output})
}

// SetTags replaces the tags of favorite id. found is false for unknown ids.
func (f *Favorites) SetTags(ctx context.Context, id idx.ID, tags []string) (models.FavoriteEntry, bool, error) {
	norm := models.NormalizeTags(tags)
	return f.update(ctx, id, func(e models.FavoriteEntry) models.FavoriteEntry {
		e.Tags = norm
		return e
	})
}

// SuggestedTags lists the tags offered when tagging a favorite.
func (f *Favorites) SuggestedTags() []string {
	out := make([]string, len(models.SuggestedTags))
	copy(out, models.SuggestedTags)
	return out
}

// Manager bundles the two collections over one store.
type Manager struct {
	History   *History
	Favorites *Favorites
}

type Option func(*options)

type options struct {
	ids *idx.Generator
	now func() time.Time
}

// WithClock overrides time.Now for entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithGenerator overrides the id generator shared by both collections.
func WithGenerator(g *idx.Generator) Option {
	return func(o *options) { o.ids = g }
}

func New(st store.Store, opts ...Option) *Manager {
	o := options{ids: idx.NewGenerator(), now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	now := func() time.Time { return o.now().UTC() }

	return &Manager{
		History:   &History{list[models.HistoryEntry]{store: st, key: store.KeyHistory, ids: o.ids, now: now}},
		Favorites: &Favorites{list[models.FavoriteEntry]{store: st, key: store.KeyFavorites, ids: o.ids, now: now}},
	}
}

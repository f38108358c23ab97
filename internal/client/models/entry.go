package models

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/signon/internal/idx"
)

// Record is what the collection layer needs from a stored entry.
type Record interface {
	RecordID() idx.ID
	RecordKind() Kind
	// SearchText returns the fields a free-text query is matched against.
	SearchText() []string
}

// HistoryEntry is one completed translation.
type HistoryEntry struct {
	ID        idx.ID    `json:"id"`
	Kind      Kind      `json:"type"`
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	Timestamp time.Time `json:"timestamp"`
}

func (h HistoryEntry) RecordID() idx.ID     { return h.ID }
func (h HistoryEntry) RecordKind() Kind     { return h.Kind }
func (h HistoryEntry) SearchText() []string { return []string{h.Input, h.Output} }

// FavoriteEntry is a translation the user chose to keep.
type FavoriteEntry struct {
	ID          idx.ID    `json:"id"`
	Kind        Kind      `json:"type"`
	Content     string    `json:"content"`
	Translation string    `json:"translation"`
	Timestamp   time.Time `json:"timestamp"`
	Tags        []string  `json:"tags,omitempty"`
}

func (f FavoriteEntry) RecordID() idx.ID     { return f.ID }
func (f FavoriteEntry) RecordKind() Kind     { return f.Kind }
func (f FavoriteEntry) SearchText() []string { return []string{f.Content, f.Translation} }

// HasTag reports whether f carries tag (case-insensitive).
func (f FavoriteEntry) HasTag(tag string) bool {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, t := range f.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// SuggestedTags are offered when tagging a favorite.
var SuggestedTags = []string{"work", "school", "greetings", "family", "daily", "emergency"}

// NormalizeTags trims, lower-cases and de-duplicates tags, keeping first
// occurrence order and dropping blanks.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

package collections

import (
	"strings"

	"github.com/dmitrijs2005/signon/internal/client/models"
)

// Filter narrows a listing. The zero value matches everything.
type Filter struct {
	// Kind restricts to one medium; "" or models.KindAll match any.
	Kind models.Kind
	// Query is a case-insensitive substring matched against the entry's text
	// fields, spaces included. An all-blank query matches everything.
	Query string
	// Tag keeps only favorites carrying the tag. Ignored for history.
	Tag string
}

type tagged interface {
	HasTag(tag string) bool
}

func (f Filter) match(r models.Record) bool {
	if !r.RecordKind().Matches(f.Kind) {
		return false
	}
	if f.Tag != "" {
		t, ok := r.(tagged)
		if ok && !t.HasTag(f.Tag) {
			return false
		}
	}
	if strings.TrimSpace(f.Query) == "" {
		return true
	}
	q := strings.ToLower(f.Query)
	for _, s := range r.SearchText() {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

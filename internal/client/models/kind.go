// Package models defines the records the signon client persists: the user
// profile, history entries and favorites.
package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind is the source medium of a translation. It is a closed set; every
// switch over Kind handles all three members.
type Kind string

const (
	KindAudio Kind = "audio"
	KindVideo Kind = "video"
	KindText  Kind = "text"
)

// KindAll is a filter-only value matching every Kind. It is never stored.
const KindAll Kind = "all"

// Kinds lists the stored kinds in display order.
var Kinds = []Kind{KindAudio, KindVideo, KindText}

// ParseKind accepts a stored kind name (case-insensitive).
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case KindAudio, KindVideo, KindText:
		return k, nil
	default:
		return "", fmt.Errorf("unknown kind %q", s)
	}
}

// ParseKindFilter is ParseKind plus "all" and "" (both meaning KindAll).
func ParseKindFilter(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(KindAll):
		return KindAll, nil
	}
	return ParseKind(s)
}

func (k *Kind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Label is the human name of the medium.
func (k Kind) Label() string {
	switch k {
	case KindAudio:
		return "Audio"
	case KindVideo:
		return "Video"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Glyph is the short marker the terminal shell prints next to an entry.
func (k Kind) Glyph() string {
	switch k {
	case KindAudio:
		return "[mic]"
	case KindVideo:
		return "[vid]"
	case KindText:
		return "[txt]"
	default:
		return "[ ? ]"
	}
}

// Matches reports whether k passes a filter value (KindAll matches anything).
func (k Kind) Matches(filter Kind) bool {
	return filter == KindAll || filter == "" || k == filter
}

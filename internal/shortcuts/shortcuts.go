// Package shortcuts manages the quick-access site list shown under the
// search box.
package shortcuts

import (
	"errors"
	"fmt"

	"github.com/iburimskiy/purpletab/internal/config"
	"github.com/iburimskiy/purpletab/internal/search"
)

// MaxShortcuts caps the list.
const MaxShortcuts = config.MaxShortcuts

var (
	ErrLimitReached = errors.New("shortcuts: limit reached")
	ErrDuplicate    = errors.New("shortcuts: already added")
	ErrOutOfRange   = errors.New("shortcuts: index out of range")
)

// Shortcut is one saved site.
type Shortcut struct {
	URL string `json:"url" yaml:"url"`
}

// List is an ordered, capped set of shortcuts. The zero value is empty and
// ready to use.
type List struct {
	items []Shortcut
}

// NewList copies items into a list, keeping at most MaxShortcuts.
func NewList(items []Shortcut) *List {
	if len(items) > MaxShortcuts {
		items = items[:MaxShortcuts]
	}
	return &List{items: append([]Shortcut(nil), items...)}
}

// Items returns a copy of the current shortcuts.
func (l *List) Items() []Shortcut {
	return append([]Shortcut(nil), l.items...)
}

// Len reports the number of shortcuts.
func (l *List) Len() int { return len(l.items) }

// Add validates raw and appends it. On error the list is unchanged.
func (l *List) Add(raw string) (Shortcut, error) {
	if len(l.items) >= MaxShortcuts {
		return Shortcut{}, fmt.Errorf("%w (%d)", ErrLimitReached, MaxShortcuts)
	}
	u, err := search.NormalizeURL(raw)
	if err != nil {
		return Shortcut{}, err
	}
	for _, s := range l.items {
		if s.URL == u {
			return Shortcut{}, fmt.Errorf("%w: %s", ErrDuplicate, u)
		}
	}
	s := Shortcut{URL: u}
	l.items = append(l.items, s)
	return s, nil
}

// Remove deletes the shortcut at index i.
func (l *List) Remove(i int) (Shortcut, error) {
	if i < 0 || i >= len(l.items) {
		return Shortcut{}, fmt.Errorf("%w: %d", ErrOutOfRange, i)
	}
	s := l.items[i]
	l.items = append(l.items[:i], l.items[i+1:]...)
	return s, nil
}

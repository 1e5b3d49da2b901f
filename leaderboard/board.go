package leaderboard

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"
)

// DefaultSize is the number of entries a board keeps
const DefaultSize = 5

// DefaultInitials stands in when the pilot leaves initials blank
const DefaultInitials = "AAA"

const maxInitials = 3

var ErrEmptyInitials = errors.New("leaderboard: empty initials")

// Entry is one row of the table; Score is the displayed score
type Entry struct {
	Initials string `toml:"initials"`
	Score    int    `toml:"score"`
	Craft    string `toml:"craft"`
	Date     string `toml:"date"`
}

// Store persists the table between runs
type Store interface {
	Load() ([]Entry, error)
	Save(entries []Entry) error
}

// Board is a top-N table sorted by descending score
// Ties keep arrival order, so an equal score ranks below the existing entry
type Board struct {
	mu      sync.Mutex
	size    int
	entries []Entry
	store   Store
}

// NewBoard loads the table from store and trims it to size
func NewBoard(store Store, size int) (*Board, error) {
	if size <= 0 {
		size = DefaultSize
	}
	entries, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load leaderboard: %w", err)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > size {
		entries = entries[:size]
	}
	return &Board{size: size, entries: entries, store: store}, nil
}

// Qualifies returns the 1-based rank score would take
func (b *Board) Qualifies(score int) (int, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rankLocked(score)
}

func (b *Board) rankLocked(score int) (int, bool) {
	i := sort.Search(len(b.entries), func(i int) bool {
		return b.entries[i].Score < score
	})
	if i >= b.size {
		return 0, false
	}
	return i + 1, true
}

// Submit inserts e if it qualifies and persists the table
// Returns the rank taken, 0 if the score missed the table
// The table changes only after a successful save; a failed save leaves it as it was
func (b *Board) Submit(e Entry) (int, error) {
	e.Initials = NormalizeInitials(e.Initials)
	if e.Initials == "" {
		return 0, ErrEmptyInitials
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	rank, ok := b.rankLocked(e.Score)
	if !ok {
		return 0, nil
	}

	next := slices.Insert(slices.Clone(b.entries), rank-1, e)
	if len(next) > b.size {
		next = next[:b.size]
	}

	if err := b.store.Save(next); err != nil {
		return 0, fmt.Errorf("save leaderboard: %w", err)
	}
	b.entries = next
	return rank, nil
}

// Entries returns a copy of the table, best first
func (b *Board) Entries() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Size returns the table capacity
func (b *Board) Size() int {
	return b.size
}

// NormalizeInitials upper-cases raw and keeps at most three letters A-Z
func NormalizeInitials(raw string) string {
	var sb strings.Builder
	for _, r := range strings.ToUpper(raw) {
		if r < 'A' || r > 'Z' {
			continue
		}
		sb.WriteRune(r)
		if sb.Len() == maxInitials {
			break
		}
	}
	return sb.String()
}

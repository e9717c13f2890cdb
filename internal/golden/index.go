package golden

import (
	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/app/models"
	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/internal/normalizer"
)

// Entry một record golden source đã được compose + normalize.
// Normalized is never empty for an indexed entry; DisplayAddress and
// Record are immutable once built.
type Entry struct {
	Normalized     string
	DisplayAddress string
	Record         models.Record
}

// Index holds every indexed entry in load order plus an exact-lookup map
// grouping entries that share a normalized form. Built once at startup and
// read-only afterwards, so concurrent lookups need no locking.
type Index struct {
	entries []*Entry
	exact   map[string][]*Entry
}

// BuildIndex compose + normalize từng record và xây dựng index.
//
// Records whose composed address normalizes to the empty string cannot
// participate in matching and are skipped. Load order is preserved: it is
// the tie-break for duplicate normalized forms and for equal fuzzy scores.
func BuildIndex(records []models.Record, defaultState string) *Index {
	ix := &Index{
		entries: make([]*Entry, 0, len(records)),
		exact:   make(map[string][]*Entry),
	}
	for _, rec := range records {
		display := Compose(rec, defaultState)
		normalized := normalizer.Normalize(display)
		if normalized == "" {
			continue
		}
		entry := &Entry{
			Normalized:     normalized,
			DisplayAddress: display,
			Record:         rec,
		}
		ix.entries = append(ix.entries, entry)
		ix.exact[normalized] = append(ix.exact[normalized], entry)
	}
	return ix
}

// Exact trả về entry đầu tiên (theo load order) có normalized form trùng
// khớp, nếu có.
func (ix *Index) Exact(normalized string) (*Entry, bool) {
	group, ok := ix.exact[normalized]
	if !ok || len(group) == 0 {
		return nil, false
	}
	return group[0], true
}

// ExactGroup trả về toàn bộ group entries trùng normalized form, giữ load
// order.
func (ix *Index) ExactGroup(normalized string) []*Entry {
	return ix.exact[normalized]
}

// Entries trả về toàn bộ entries theo load order. Callers must not mutate.
func (ix *Index) Entries() []*Entry { return ix.entries }

// Len số lượng entries trong index
func (ix *Index) Len() int { return len(ix.entries) }

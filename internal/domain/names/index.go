package names

import (
	"github.com/okian/pucktally/internal/domain/model"
)

// Collision records two roster entries whose names normalize to the same
// key. The first entry wins; the later one is dropped from the index.
type Collision struct {
	Key     string
	Kept    model.RosterEntry
	Dropped model.RosterEntry
}

// Index maps normalized player names to NHL roster entries. Build it once
// per run with NewIndex; it is read-only afterwards.
type Index struct {
	byKey      map[string]model.RosterEntry
	collisions []Collision
}

// NewIndex builds the lookup from all roster entries. Collisions resolve
// first-seen-wins, which is deterministic because callers feed teams in
// the fixed team-code order and each roster in API order. Every dropped
// entry is recorded and retrievable via Collisions.
func NewIndex(entries []model.RosterEntry) *Index {
	ix := &Index{
		byKey: make(map[string]model.RosterEntry, len(entries)),
	}
	for _, e := range entries {
		key := Normalize(e.Name)
		if key == "" {
			continue
		}
		if kept, seen := ix.byKey[key]; seen {
			ix.collisions = append(ix.collisions, Collision{Key: key, Kept: kept, Dropped: e})
			continue
		}
		ix.byKey[key] = e
	}
	return ix
}

// Match resolves a scraped display name to a team code. The second
// return is false when no roster entry exists for the normalized name;
// that is an expected outcome, not an error.
func (ix *Index) Match(name string) (string, bool) {
	e, ok := ix.byKey[Normalize(name)]
	if !ok {
		return "", false
	}
	return e.TeamCode, true
}

// Len returns the number of distinct normalized names indexed.
func (ix *Index) Len() int { return len(ix.byKey) }

// Collisions returns the entries dropped by the first-seen-wins policy.
func (ix *Index) Collisions() []Collision { return ix.collisions }

// Package aggregate folds matched Olympic stats into per-team rollups.
package aggregate

import (
	"fmt"
	"sort"

	"github.com/okian/pucktally/internal/domain/model"
	"github.com/okian/pucktally/internal/domain/names"
)

// Aggregate matches each player against the roster index and accumulates
// goals and assists into per-team rollups, creating each rollup on first
// touch. Players without a roster entry are returned as unmatched and
// contribute nothing. Contributors end up sorted by points descending,
// ties broken by display name ascending.
//
// Input is a precondition: adapters validate records at the ingestion
// boundary, so a malformed record here is a contract violation and the
// whole pass aborts with ErrInvalidRecord.
func Aggregate(players []model.PlayerStat, ix *names.Index) (map[string]*model.TeamAggregate, []model.PlayerStat, error) {
	teams := make(map[string]*model.TeamAggregate)
	var unmatched []model.PlayerStat

	for _, p := range players {
		if err := validate(p); err != nil {
			return nil, nil, err
		}

		code, ok := ix.Match(p.Name)
		if !ok {
			unmatched = append(unmatched, p)
			continue
		}

		agg := teams[code]
		if agg == nil {
			agg = &model.TeamAggregate{TeamCode: code}
			teams[code] = agg
		}
		agg.TotalGoals += p.Goals
		agg.TotalAssists += p.Assists
		agg.TotalPoints += p.Points()
		agg.Contributors = append(agg.Contributors, model.Contributor{
			Name:    p.Name,
			Goals:   p.Goals,
			Assists: p.Assists,
			Points:  p.Points(),
		})
	}

	for _, agg := range teams {
		sortContributors(agg.Contributors)
	}
	return teams, unmatched, nil
}

// MergeByName collapses players that normalize to the same key, summing
// their stats. The stats site lists a player once per country page, but
// a duplicate across pages must not double-create a contributor. The
// first-seen display name and country are kept and input order is
// preserved.
func MergeByName(players []model.PlayerStat) []model.PlayerStat {
	merged := make([]model.PlayerStat, 0, len(players))
	at := make(map[string]int, len(players))

	for _, p := range players {
		key := names.Normalize(p.Name)
		if i, seen := at[key]; seen {
			merged[i].Goals += p.Goals
			merged[i].Assists += p.Assists
			continue
		}
		at[key] = len(merged)
		merged = append(merged, p)
	}
	return merged
}

func sortContributors(cs []model.Contributor) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Points != cs[j].Points {
			return cs[i].Points > cs[j].Points
		}
		return cs[i].Name < cs[j].Name
	})
}

func validate(p model.PlayerStat) error {
	switch {
	case p.Name == "":
		return fmt.Errorf("%w: empty player name", ErrInvalidRecord)
	case p.Goals < 0:
		return fmt.Errorf("%w: negative goals for %q", ErrInvalidRecord, p.Name)
	case p.Assists < 0:
		return fmt.Errorf("%w: negative assists for %q", ErrInvalidRecord, p.Name)
	}
	return nil
}

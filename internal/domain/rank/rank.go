// Package rank orders team rollups for the report.
package rank

import (
	"sort"

	"github.com/okian/pucktally/internal/domain/model"
)

// Rank turns the aggregation map into the ranked sequence consumed by
// the renderers: total points descending, then contributor count
// descending (more contributing players ranks higher), then team code
// ascending as the deterministic final tie-break.
//
// A team with zero contributors never appears; absence from the Olympic
// rosters means absence from the report, not a zero row.
func Rank(teams map[string]*model.TeamAggregate) []model.TeamAggregate {
	ranked := make([]model.TeamAggregate, 0, len(teams))
	for _, t := range teams {
		if t == nil || t.ContributorCount() == 0 {
			continue
		}
		ranked = append(ranked, *t)
	}

	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.TotalPoints != b.TotalPoints {
			return a.TotalPoints > b.TotalPoints
		}
		if a.ContributorCount() != b.ContributorCount() {
			return a.ContributorCount() > b.ContributorCount()
		}
		return a.TeamCode < b.TeamCode
	})
	return ranked
}

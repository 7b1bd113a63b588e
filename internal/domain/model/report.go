// Package model contains domain records passed between pipeline stages.
package model

import "time"

// PlayerStat is one Olympic player's tournament totals as scraped.
// Records are immutable once parsed; the ingestion adapters validate
// them before they reach the aggregator.
type PlayerStat struct {
	Name    string // display name as scraped, may carry diacritics or suffixes
	Country string // tournament roster slug, e.g. "canada"
	Goals   int
	Assists int
}

// Points returns the scoring metric: goals + assists.
func (p PlayerStat) Points() int { return p.Goals + p.Assists }

// RosterEntry is one NHL roster slot as returned by the league API.
// It is the source of truth for "is this player currently NHL-rostered".
type RosterEntry struct {
	TeamCode string // 3-letter team abbreviation, e.g. "COL"
	Name     string
}

// Contributor is a matched player's line inside a team rollup.
type Contributor struct {
	Name    string
	Goals   int
	Assists int
	Points  int
}

// TeamAggregate is one NHL team's Olympic points rollup. It is created
// lazily on the first matched player, accumulated during the aggregation
// pass, finalized (contributors sorted) before ranking, and never
// mutated afterwards.
type TeamAggregate struct {
	TeamCode     string
	TotalPoints  int
	TotalGoals   int
	TotalAssists int
	Contributors []Contributor
}

// ContributorCount returns the number of matched players in the rollup.
func (t TeamAggregate) ContributorCount() int { return len(t.Contributors) }

// Report is the finished, ranked output consumed by the renderers.
type Report struct {
	RunID       string
	GeneratedAt time.Time

	// Teams is the ranked sequence: total points desc, contributor
	// count desc, team code asc. Teams without contributors are absent.
	Teams []TeamAggregate

	// OlympicPlayers counts every scraped player with points,
	// matched or not. Unmatched holds those without a roster entry.
	OlympicPlayers int
	Unmatched      []PlayerStat
}

// TotalPoints sums points over all ranked teams.
func (r Report) TotalPoints() int {
	var total int
	for _, t := range r.Teams {
		total += t.TotalPoints
	}
	return total
}

// MatchedPlayers sums contributors over all ranked teams.
func (r Report) MatchedPlayers() int {
	var total int
	for _, t := range r.Teams {
		total += t.ContributorCount()
	}
	return total
}

// Package app wires the adapters and domain stages into the report
// pipeline.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/okian/pucktally/internal/domain/aggregate"
	"github.com/okian/pucktally/internal/domain/model"
	"github.com/okian/pucktally/internal/domain/names"
	"github.com/okian/pucktally/internal/domain/rank"
	"github.com/okian/pucktally/pkg/logger"
	"github.com/okian/pucktally/pkg/metrics"
)

// StatsSource scrapes one Olympic team page per country slug.
type StatsSource interface {
	TeamStats(ctx context.Context, country string) ([]model.PlayerStat, error)
}

// RosterSource fetches one NHL roster per team code.
type RosterSource interface {
	Roster(ctx context.Context, teamCode string) ([]model.RosterEntry, error)
}

// Pipeline runs the scrape, join, aggregate and rank stages and
// produces one report per Run call.
type Pipeline struct {
	stats   StatsSource
	rosters RosterSource

	countries []string
	teamCodes []string

	logger logger.Logger
}

// Option applies a configuration option to the Pipeline.
type Option func(*Pipeline)

// WithStatsSource sets the Olympic stats source.
func WithStatsSource(src StatsSource) Option {
	return func(p *Pipeline) {
		if src != nil {
			p.stats = src
		}
	}
}

// WithRosterSource sets the NHL roster source.
func WithRosterSource(src RosterSource) Option {
	return func(p *Pipeline) {
		if src != nil {
			p.rosters = src
		}
	}
}

// WithCountries sets the country slugs to scrape, in order.
func WithCountries(countries []string) Option {
	return func(p *Pipeline) {
		if len(countries) > 0 {
			p.countries = countries
		}
	}
}

// WithTeamCodes sets the NHL team codes to fetch rosters for, in order.
func WithTeamCodes(codes []string) Option {
	return func(p *Pipeline) {
		if len(codes) > 0 {
			p.teamCodes = codes
		}
	}
}

// WithLogger sets a custom logger for the pipeline.
func WithLogger(lg logger.Logger) Option {
	return func(p *Pipeline) {
		if lg != nil {
			p.logger = lg
		}
	}
}

// New constructs a Pipeline. A stats source, a roster source, countries
// and team codes are all required; Run fails without them.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{}

	// Apply all options
	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = logger.Named("pipeline")
	}

	return p
}

// Run executes the whole pipeline once. Individual country or team
// fetch failures are logged and skipped; the run only fails when no
// data arrives at all or the context is cancelled.
func (p *Pipeline) Run(ctx context.Context) (model.Report, error) {
	start := time.Now()

	if p.stats == nil || p.rosters == nil {
		return model.Report{}, ErrNotConfigured
	}
	if len(p.countries) == 0 || len(p.teamCodes) == 0 {
		return model.Report{}, ErrNotConfigured
	}

	players, err := p.scrapeAll(ctx)
	if err != nil {
		return model.Report{}, err
	}

	entries, err := p.fetchRosters(ctx)
	if err != nil {
		return model.Report{}, err
	}

	if len(players) == 0 && len(entries) == 0 {
		return model.Report{}, ErrNoData
	}

	ix := names.NewIndex(entries)
	for _, col := range ix.Collisions() {
		p.logger.Warn(ctx, "roster name collision, keeping first entry",
			logger.String("name", col.Key),
			logger.String("kept", col.Kept.TeamCode),
			logger.String("dropped", col.Dropped.TeamCode))
	}
	metrics.AddNameCollisions(len(ix.Collisions()))

	rollups, unmatched, err := aggregate.Aggregate(players, ix)
	if err != nil {
		return model.Report{}, fmt.Errorf("aggregate: %w", err)
	}

	teams := rank.Rank(rollups)

	rep := model.Report{
		RunID:          uuid.NewString(),
		GeneratedAt:    time.Now(),
		Teams:          teams,
		OlympicPlayers: len(players),
		Unmatched:      unmatched,
	}

	metrics.AddPlayersMatched(rep.MatchedPlayers())
	metrics.AddPlayersUnmatched(len(unmatched))
	metrics.UpdateTeamsRanked(len(teams))
	metrics.RecordReportBuildDuration(time.Since(start).Seconds())

	p.logger.Info(ctx, "report built",
		logger.String("runID", rep.RunID),
		logger.Int("olympicPlayers", len(players)),
		logger.Int("rosterEntries", len(entries)),
		logger.Int("teams", len(teams)),
		logger.Int("unmatched", len(unmatched)))

	return rep, nil
}

// scrapeAll collects player stats for every configured country and
// collapses duplicate names across pages.
func (p *Pipeline) scrapeAll(ctx context.Context) ([]model.PlayerStat, error) {
	var all []model.PlayerStat

	for _, country := range p.countries {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("scrape stats: %w", err)
		}

		players, err := p.stats.TeamStats(ctx, country)
		if err != nil {
			p.logger.Warn(ctx, "skipping country after failed scrape",
				logger.String("country", country),
				logger.Error(err))
			continue
		}

		p.logger.Info(ctx, "country scraped",
			logger.String("country", country),
			logger.Int("players", len(players)))
		all = append(all, players...)
	}

	return aggregate.MergeByName(all), nil
}

// fetchRosters collects roster entries for every configured team.
func (p *Pipeline) fetchRosters(ctx context.Context) ([]model.RosterEntry, error) {
	var all []model.RosterEntry

	for _, code := range p.teamCodes {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("fetch rosters: %w", err)
		}

		entries, err := p.rosters.Roster(ctx, code)
		if err != nil {
			p.logger.Warn(ctx, "skipping team after failed roster fetch",
				logger.String("team", code),
				logger.Error(err))
			continue
		}

		all = append(all, entries...)
	}

	return all, nil
}

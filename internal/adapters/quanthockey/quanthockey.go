// Package quanthockey scrapes Olympic tournament player stats from the
// QuantHockey team pages.
package quanthockey

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/okian/pucktally/internal/domain/model"
	"github.com/okian/pucktally/pkg/logger"
	"github.com/okian/pucktally/pkg/metrics"
)

// Stats table layout on the team pages:
// 0=Rank, 1=(blank), 2=Name, 3=Team, 4=Age, 5=Pos, 6=GP, 7=G, 8=A, 9=P.
const (
	headerRows = 2
	minColumns = 9
	nameCol    = 2
	goalsCol   = 7
	assistsCol = 8
)

// Fetcher is the retrying HTTP client the scraper pulls pages with.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Scraper fetches and parses one team page per country.
type Scraper struct {
	fetcher Fetcher
	baseURL string
	logger  logger.Logger
}

// New creates a scraper rooted at baseURL, e.g.
// "https://www.quanthockey.com/olympics".
func New(fetcher Fetcher, baseURL string) *Scraper {
	return &Scraper{
		fetcher: fetcher,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logger.Named("quanthockey"),
	}
}

// TeamStats returns every player on the country's Olympic team page who
// has at least one point. Country is a page slug like "canada" or
// "czech-republic".
func (s *Scraper) TeamStats(ctx context.Context, country string) ([]model.PlayerStat, error) {
	url := fmt.Sprintf("%s/en/teams/team-%s-players-2026-olympics-stats.html", s.baseURL, country)

	body, err := s.fetcher.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s stats: %w", country, err)
	}

	players, err := parse(body, country)
	if err != nil {
		return nil, fmt.Errorf("parse %s stats: %w", country, err)
	}

	s.logger.Debug(ctx, "team page parsed",
		logger.String("country", country),
		logger.Int("players", len(players)))
	metrics.AddPlayersScraped(len(players))

	return players, nil
}

func parse(body []byte, country string) ([]model.PlayerStat, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}

	var players []model.PlayerStat

	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		table.Find("tr").Each(func(rowIdx int, row *goquery.Selection) {
			if rowIdx < headerRows {
				return
			}

			// Header cells appear mid-table, so take both kinds
			cells := row.Find("td, th")
			if cells.Length() < minColumns {
				return
			}

			name := cellText(cells.Eq(nameCol))
			if name == "" {
				return
			}

			goals := cellInt(cells.Eq(goalsCol))
			assists := cellInt(cells.Eq(assistsCol))
			if goals+assists <= 0 {
				return
			}

			players = append(players, model.PlayerStat{
				Name:    name,
				Country: country,
				Goals:   goals,
				Assists: assists,
			})
		})
	})

	return players, nil
}

// cellText prefers the player link text over the raw cell text.
func cellText(cell *goquery.Selection) string {
	if link := cell.Find("a").First(); link.Length() > 0 {
		return strings.TrimSpace(link.Text())
	}
	return strings.TrimSpace(cell.Text())
}

// cellInt reads a non-negative integer, treating anything else as zero.
func cellInt(cell *goquery.Selection) int {
	n, err := strconv.Atoi(strings.TrimSpace(cell.Text()))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

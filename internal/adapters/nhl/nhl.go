// Package nhl fetches current team rosters from the NHL web API.
package nhl

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/okian/pucktally/internal/domain/model"
	"github.com/okian/pucktally/pkg/logger"
	"github.com/okian/pucktally/pkg/metrics"
)

// Fetcher is the retrying HTTP client the roster source pulls JSON with.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Client reads rosters from the NHL API, one request per team.
type Client struct {
	fetcher Fetcher
	baseURL string
	logger  logger.Logger
}

// New creates a roster client rooted at baseURL, e.g.
// "https://api-web.nhle.com".
func New(fetcher Fetcher, baseURL string) *Client {
	return &Client{
		fetcher: fetcher,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logger.Named("nhl"),
	}
}

// rosterResponse mirrors the /v1/roster payload. Names arrive as
// localized objects; only the default locale is used.
type rosterResponse struct {
	Forwards   []rosterPlayer `json:"forwards"`
	Defensemen []rosterPlayer `json:"defensemen"`
	Goalies    []rosterPlayer `json:"goalies"`
}

type rosterPlayer struct {
	FirstName localizedName `json:"firstName"`
	LastName  localizedName `json:"lastName"`
}

type localizedName struct {
	Default string `json:"default"`
}

// Roster returns the current roster for a three-letter team code.
// Players missing a first or last name are skipped.
func (c *Client) Roster(ctx context.Context, teamCode string) ([]model.RosterEntry, error) {
	url := fmt.Sprintf("%s/v1/roster/%s/current", c.baseURL, teamCode)

	body, err := c.fetcher.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s roster: %w", teamCode, err)
	}

	var resp rosterResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecodeFailed, teamCode, err)
	}

	var entries []model.RosterEntry
	for _, group := range [][]rosterPlayer{resp.Forwards, resp.Defensemen, resp.Goalies} {
		for _, p := range group {
			first := strings.TrimSpace(p.FirstName.Default)
			last := strings.TrimSpace(p.LastName.Default)
			if first == "" || last == "" {
				continue
			}
			entries = append(entries, model.RosterEntry{
				TeamCode: teamCode,
				Name:     first + " " + last,
			})
		}
	}

	c.logger.Debug(ctx, "roster fetched",
		logger.String("team", teamCode),
		logger.Int("entries", len(entries)))
	metrics.AddRosterEntries(len(entries))

	return entries, nil
}

package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/okian/pucktally/internal/domain/model"
)

//go:embed static/report.html.tmpl
var templateFS embed.FS

var reportTemplate = template.Must(template.ParseFS(templateFS, "static/report.html.tmpl"))

// teamRow is one ranked row, precomputed so the template stays flat.
type teamRow struct {
	Rank         int
	Medal        int // 1..3 for medal styling, 0 for none
	TeamCode     string
	LogoURL      string
	Points       int
	Goals        int
	Assists      int
	PlayerCount  int
	Contributors []model.Contributor
}

// htmlPage is the full template payload.
type htmlPage struct {
	GeneratedAt    string
	RunID          string
	TeamCount      int
	MatchedPlayers int
	TotalPoints    int
	OlympicPlayers int
	UnmatchedCount int
	Rows           []teamRow
}

// WriteHTML renders the static report page.
func WriteHTML(w io.Writer, rep model.Report) error {
	page := htmlPage{
		GeneratedAt:    rep.GeneratedAt.Format("January 2, 2006 at 3:04 PM"),
		RunID:          rep.RunID,
		TeamCount:      len(rep.Teams),
		MatchedPlayers: rep.MatchedPlayers(),
		TotalPoints:    rep.TotalPoints(),
		OlympicPlayers: rep.OlympicPlayers,
		UnmatchedCount: len(rep.Unmatched),
		Rows:           buildRows(rep.Teams),
	}

	if err := reportTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("render html report: %w", err)
	}
	return nil
}

func buildRows(teams []model.TeamAggregate) []teamRow {
	rows := make([]teamRow, 0, len(teams))
	for i, team := range teams {
		rank := i + 1
		medal := 0
		if rank <= 3 {
			medal = rank
		}
		rows = append(rows, teamRow{
			Rank:         rank,
			Medal:        medal,
			TeamCode:     team.TeamCode,
			LogoURL:      fmt.Sprintf("https://assets.nhle.com/logos/nhl/svg/%s_light.svg", team.TeamCode),
			Points:       team.TotalPoints,
			Goals:        team.TotalGoals,
			Assists:      team.TotalAssists,
			PlayerCount:  team.ContributorCount(),
			Contributors: team.Contributors,
		})
	}
	return rows
}

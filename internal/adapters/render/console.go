// Package render writes the finished report to the console and to a
// static HTML page.
package render

import (
	"fmt"
	"io"

	"github.com/okian/pucktally/internal/domain/model"
)

const rule = "======================================================================"
const thinRule = "----------------------------------------------------------------------"

// errWriter keeps the first write error so the report code can print
// without checking every line.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// WriteConsole prints the ranked team table. Each team row is followed
// by its top contributors, at most topN of them.
func WriteConsole(w io.Writer, rep model.Report, topN int) error {
	ew := &errWriter{w: w}

	ew.printf("%s\nNHL TEAM RANKINGS BY OLYMPIC POINTS\n%s\n", rule, rule)

	if len(rep.Teams) == 0 {
		ew.printf("\nNo NHL players found with Olympic points.\n")
		writeUnmatchedNote(ew, rep)
		if ew.err != nil {
			return fmt.Errorf("write console report: %w", ew.err)
		}
		return nil
	}

	ew.printf("\n%-6s %-6s %-8s %-8s %-8s %-8s\n", "Rank", "Team", "Points", "Goals", "Assists", "Players")
	ew.printf("%s\n", thinRule)

	for i, team := range rep.Teams {
		ew.printf("%-6d %-6s %-8d %-8d %-8d %-8d\n",
			i+1, team.TeamCode, team.TotalPoints, team.TotalGoals, team.TotalAssists, team.ContributorCount())

		for _, c := range topContributors(team, topN) {
			ew.printf("         └─ %s: %dG + %dA = %dP\n", c.Name, c.Goals, c.Assists, c.Points)
		}
	}

	ew.printf("\n%s\n", rule)
	ew.printf("Total NHL teams with points: %d\n", len(rep.Teams))
	ew.printf("Total NHL players with points: %d\n", rep.MatchedPlayers())

	writeUnmatchedNote(ew, rep)

	if ew.err != nil {
		return fmt.Errorf("write console report: %w", ew.err)
	}
	return nil
}

func writeUnmatchedNote(ew *errWriter, rep model.Report) {
	if len(rep.Unmatched) == 0 {
		return
	}
	ew.printf("\nNote: %d players with points were not matched to NHL rosters\n"+
		"(likely playing in European leagues or other non-NHL leagues)\n", len(rep.Unmatched))
}

// topContributors returns up to n contributors; they are already
// sorted by points within the aggregate.
func topContributors(team model.TeamAggregate, n int) []model.Contributor {
	if n <= 0 || n >= len(team.Contributors) {
		return team.Contributors
	}
	return team.Contributors[:n]
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/danielhkuo/class-ballot/models"
)

type TallyReport struct {
	Stats []models.CandidateStats
}

func NewTallyReport(stats []models.CandidateStats) *TallyReport {
	return &TallyReport{
		Stats: stats,
	}
}

// TotalVotes is the number of votes cast across all candidates.
func (tr *TallyReport) TotalVotes() int {
	total := 0
	for _, s := range tr.Stats {
		total += s.TotalVotes
	}
	return total
}

// PrintTallyTable writes one row per candidate, most votes first.
func (tr *TallyReport) PrintTallyTable(writer io.Writer) {
	rows := make([]models.CandidateStats, len(tr.Stats))
	copy(rows, tr.Stats)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalVotes > rows[j].TotalVotes
	})

	total := tr.TotalVotes()

	table := tablewriter.NewWriter(writer)
	table.SetHeader([]string{"Rank", "Candidate", "Group", "Votes", "Share", "By group"})

	// Configure for Markdown table formatting
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetAutoWrapText(false)

	for i, s := range rows {
		table.Append([]string{
			fmt.Sprint(i + 1),
			s.Name + " " + s.Surname,
			s.Group,
			humanize.Comma(int64(s.TotalVotes)),
			share(s.TotalVotes, total),
			breakdown(s.VotesByGroup),
		})
	}

	table.SetFooter([]string{"", "", "Total", humanize.Comma(int64(total)), "", ""})
	table.Render()
}

func share(votes, total int) string {
	if total == 0 {
		return "-"
	}
	return humanize.FtoaWithDigits(100*float64(votes)/float64(total), 1) + "%"
}

// breakdown renders a group->count map as "1a: 2, 1b: 1" in group order.
func breakdown(byGroup map[string]int) string {
	groups := make([]string, 0, len(byGroup))
	for g := range byGroup {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		parts = append(parts, g+": "+humanize.Comma(int64(byGroup[g])))
	}
	return strings.Join(parts, ", ")
}

// Package report renders tracker results as human-readable text.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/putr/putr/internal/model"
	"github.com/putr/putr/internal/stats"
	"github.com/putr/putr/internal/tracker"
)

// PrintApplyReport prints the outcome of one apply-session operation: the
// per-player nets and a confirmation on success, the unresolved nicknames
// otherwise.
func PrintApplyReport(w io.Writer, r *tracker.ApplyReport) {
	if r.Applied {
		for _, name := range r.Names() {
			fmt.Fprintf(w, "%s %v\n", name, r.Result[name])
		}
		fmt.Fprintf(w, "Poker game on %s added\n", r.Key)
		return
	}
	for _, name := range r.Unresolved {
		fmt.Fprintln(w, name)
	}
	fmt.Fprintln(w, "Not all players known")
}

// PrintSessionResult prints one session's nets sorted descending.
func PrintSessionResult(w io.Writer, result map[string]float64) {
	type entry struct {
		name string
		net  float64
	}
	entries := make([]entry, 0, len(result))
	for n, v := range result {
		entries = append(entries, entry{n, v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].net != entries[j].net {
			return entries[i].net > entries[j].net
		}
		return entries[i].name < entries[j].name
	})
	for _, e := range entries {
		fmt.Fprintf(w, "%s: %v\n", e.name, e.net)
	}
}

// PrintCombined prints a multi-session report: total net per player, each
// annotated with the session keys the player appeared in.
func PrintCombined(w io.Writer, totals []stats.CombinedTotal, nLedgers int) {
	fmt.Fprintf(w, "Combined results for %d ledgers:\n", nLedgers)
	for _, t := range totals {
		fmt.Fprintf(w, "%s: %.2f  (%s)\n", t.Name, t.Net, strings.Join(t.Keys, ", "))
	}
}

// PrintLastSessions walks the player's net curve backward up to n entries,
// printing each day's cumulative net and its delta from the prior entry,
// then the total and average change across the walked window.
func PrintLastSessions(w io.Writer, name string, p *model.Player, n int) {
	days := p.CurveDays
	walk := n
	if walk > len(days)-1 {
		walk = len(days) - 1
	}
	if walk < 0 {
		walk = 0
	}

	fmt.Fprintf(w, "Last %d games for %s:\n\n", walk, name)
	for i := 0; i < walk && i < len(days)-1; i++ {
		day := days[len(days)-1-i]
		prev := days[len(days)-2-i]
		total := p.NetCurve[day]
		fmt.Fprintf(w, "%s %.2f (%.2f)\n", day, total, total-p.NetCurve[prev])
	}
	if walk == 0 {
		fmt.Fprintf(w, "Net: %.2f\n", 0.0)
		fmt.Fprintf(w, "Average: %.2f\n", 0.0)
		return
	}
	fmt.Fprintln(w)
	netTotal := p.NetCurve[days[len(days)-1]] - p.NetCurve[days[len(days)-1-walk]]
	fmt.Fprintf(w, "Net: %.2f\n", netTotal)
	fmt.Fprintf(w, "Average: %.2f\n", netTotal/float64(walk))
}

// PrintStandings prints the whole directory as a table, sorted by net
// descending.
func PrintStandings(w io.Writer, dir model.Directory) {
	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))

	table.Header(
		"PLAYER", "NET", "GAMES", "AVG", "BEST", "WORST", "HIGH", "LOW",
		"UP", "DOWN", "UP-MOST", "DOWN-MOST",
	)

	ids := dir.IDs()
	sort.SliceStable(ids, func(i, j int) bool {
		return dir[ids[i]].Net > dir[ids[j]].Net
	})
	for _, id := range ids {
		p := dir[id]
		table.Append(
			id,
			fmt.Sprintf("%.2f", p.Net),
			strconv.Itoa(len(p.GamesPlayed)),
			fmt.Sprintf("%.2f", p.AverageNet),
			fmt.Sprintf("%.2f", p.BiggestWin),
			fmt.Sprintf("%.2f", p.BiggestLoss),
			fmt.Sprintf("%.2f", p.HighestNet),
			fmt.Sprintf("%.2f", p.LowestNet),
			strconv.Itoa(p.GamesUp),
			strconv.Itoa(p.GamesDown),
			strconv.Itoa(p.GamesUpMost),
			strconv.Itoa(p.GamesDownMost),
		)
	}
	table.Render()
}

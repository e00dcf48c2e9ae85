// Package stats computes per-session net results and folds them into the
// players' cumulative statistics.
package stats

import (
	"sort"

	"github.com/putr/putr/internal/ledger"
	"github.com/putr/putr/internal/model"
)

// CurveKeyLen is how many leading characters of a session key identify a
// point on the net curve. Multiple sub-sessions of the same day (e.g.
// "23_10_20_2") truncate to one curve point.
const CurveKeyLen = 8

// NetWinnings groups ledger rows by nickname, sums net cents and converts to
// dollars. Nicknames in exclude are dropped before grouping.
func NetWinnings(rows []ledger.Row, exclude []string) map[string]float64 {
	skip := make(map[string]bool, len(exclude))
	for _, n := range exclude {
		skip[n] = true
	}
	cents := make(map[string]int64)
	for _, r := range rows {
		if skip[r.Nickname] {
			continue
		}
		cents[r.Nickname] += r.NetCents
	}
	out := make(map[string]float64, len(cents))
	for n, c := range cents {
		out[n] = float64(c) / 100
	}
	return out
}

// Extremes returns every nickname tied at the session's maximum net and
// every nickname tied at the minimum. Both lists are empty for an empty
// session. Ties are kept, not broken; each list is sorted for determinism.
func Extremes(result map[string]float64) (upMost, downMost []string) {
	if len(result) == 0 {
		return []string{}, []string{}
	}
	first := true
	var max, min float64
	for _, v := range result {
		if first {
			max, min = v, v
			first = false
			continue
		}
		if v > max {
			max = v
		}
		if v < min {
			min = v
		}
	}
	upMost = []string{}
	downMost = []string{}
	for n, v := range result {
		if v == max {
			upMost = append(upMost, n)
		}
		if v == min {
			downMost = append(downMost, n)
		}
	}
	sort.Strings(upMost)
	sort.Strings(downMost)
	return upMost, downMost
}

// ApplySession folds a session's results into the directory, one resolved
// player at a time. Unresolved nicknames are skipped, not counted and not
// an error; the caller decides whether the whole update stands. Returns the
// number of players updated and their nicknames.
func ApplySession(dir model.Directory, result map[string]float64, key string, upMost, downMost []string) (int, []string) {
	updated := []string{}
	for _, nick := range sortedNames(result) {
		id, ok := dir.Resolve(nick)
		if !ok {
			continue
		}
		applyPlayer(dir[id], nick, result[nick], key, upMost, downMost)
		updated = append(updated, nick)
	}
	return len(updated), updated
}

func applyPlayer(p *model.Player, nick string, net float64, key string, upMost, downMost []string) {
	p.Net += net
	p.GamesPlayed = append(p.GamesPlayed, key)
	if net > p.BiggestWin {
		p.BiggestWin = net
	}
	if net < p.BiggestLoss {
		p.BiggestLoss = net
	}
	// Cumulative extremes use the already-updated net.
	if p.Net > p.HighestNet {
		p.HighestNet = p.Net
	}
	if p.Net < p.LowestNet {
		p.LowestNet = p.Net
	}
	p.RecordCurvePoint(truncateKey(key), p.Net)
	p.AverageNet = p.Net / float64(len(p.GamesPlayed))

	if contains(upMost, nick) {
		p.GamesUpMost++
	}
	if contains(downMost, nick) {
		p.GamesDownMost++
	}
	switch {
	case net > 0:
		p.GamesUp++
	case net < 0:
		p.GamesDown++
	}
}

func truncateKey(key string) string {
	if len(key) > CurveKeyLen {
		return key[:CurveKeyLen]
	}
	return key
}

// Session is one parsed ledger handed to Combine.
type Session struct {
	Key  string
	Rows []ledger.Row
}

// CombinedTotal is one player's line in a multi-session report.
type CombinedTotal struct {
	Name string   // canonical id when resolvable, raw nickname otherwise
	Net  float64  // summed net dollars across the combined sessions
	Keys []string // deduplicated, sorted session keys the player appeared in
}

// Combine totals net results across several sessions. Unlike ApplySession it
// tolerates unknown nicknames: they are carried through under the raw name.
func Combine(dir model.Directory, sessions []Session) []CombinedTotal {
	totals := make(map[string]float64)
	keysByName := make(map[string]map[string]bool)

	for _, s := range sessions {
		result := NetWinnings(s.Rows, nil)
		for _, nick := range sortedNames(result) {
			name := nick
			if id, ok := dir.Resolve(nick); ok {
				name = id
			}
			totals[name] += result[nick]
			if keysByName[name] == nil {
				keysByName[name] = make(map[string]bool)
			}
			keysByName[name][s.Key] = true
		}
	}

	out := make([]CombinedTotal, 0, len(totals))
	for name, net := range totals {
		keys := make([]string, 0, len(keysByName[name]))
		for k := range keysByName[name] {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out = append(out, CombinedTotal{Name: name, Net: net, Keys: keys})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Net != out[j].Net {
			return out[i].Net > out[j].Net
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func sortedNames(m map[string]float64) []string {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

package model

import (
	"fmt"
	"sort"
)

// InitialCurveKey seeds a fresh player's net curve so the last-N walk always
// has a baseline entry to diff against.
const InitialCurveKey = "01_01"

// Player is the canonical, persisted statistics record for one player.
// JSON field names match the persisted document.
type Player struct {
	Nicknames []string `json:"player_nicknames"`

	Net         float64  `json:"net"`
	GamesPlayed []string `json:"games_played"`

	// Single-session extremes.
	BiggestWin  float64 `json:"biggest_win"`
	BiggestLoss float64 `json:"biggest_loss"`

	// Cumulative-net extremes, evaluated after each session is folded in.
	HighestNet float64 `json:"highest_net"`
	LowestNet  float64 `json:"lowest_net"`

	// Truncated session key → cumulative net at that point. Insertion order
	// matters to the last-N walk, so it is tracked in CurveDays alongside
	// the map.
	NetCurve  map[string]float64 `json:"net_dictionary"`
	CurveDays []string           `json:"net_dictionary_days"`

	GamesUpMost   int `json:"games_up_most"`
	GamesDownMost int `json:"games_down_most"`
	GamesUp       int `json:"games_up"`
	GamesDown     int `json:"games_down"`

	AverageNet float64 `json:"average_net"`
}

// NewPlayer returns a zeroed record with the given nicknames.
func NewPlayer(nicknames ...string) *Player {
	p := &Player{Nicknames: append([]string(nil), nicknames...)}
	p.Reset()
	return p
}

// Reset zeroes every net-derived field, keeping only the nickname set.
func (p *Player) Reset() {
	p.Net = 0
	p.GamesPlayed = []string{}
	p.BiggestWin = 0
	p.BiggestLoss = 0
	p.HighestNet = 0
	p.LowestNet = 0
	p.NetCurve = map[string]float64{InitialCurveKey: 0}
	p.CurveDays = []string{InitialCurveKey}
	p.GamesUpMost = 0
	p.GamesDownMost = 0
	p.GamesUp = 0
	p.GamesDown = 0
	p.AverageNet = 0
}

// RecordCurvePoint sets the net-curve value for day, preserving insertion
// order and overwriting on key collision (last write wins).
func (p *Player) RecordCurvePoint(day string, net float64) {
	if p.NetCurve == nil {
		p.NetCurve = make(map[string]float64)
	}
	if _, seen := p.NetCurve[day]; !seen {
		p.CurveDays = append(p.CurveDays, day)
	}
	p.NetCurve[day] = net
}

// EnsureCurveOrder rebuilds CurveDays from the map when a stored record
// predates the explicit order list. Keys sort chronologically because they
// are date prefixes.
func (p *Player) EnsureCurveOrder() {
	if len(p.CurveDays) == len(p.NetCurve) {
		return
	}
	days := make([]string, 0, len(p.NetCurve))
	for d := range p.NetCurve {
		days = append(days, d)
	}
	sort.Strings(days)
	p.CurveDays = days
}

// HasNickname reports whether nick is one of the player's aliases.
func (p *Player) HasNickname(nick string) bool {
	for _, n := range p.Nicknames {
		if n == nick {
			return true
		}
	}
	return false
}

// Directory maps canonical player id → statistics record. It is loaded and
// saved as one unit; mutation happens on the in-memory value only.
type Directory map[string]*Player

// IDs returns all player ids in sorted order.
func (d Directory) IDs() []string {
	ids := make([]string, 0, len(d))
	for id := range d {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Resolve returns the id of the first player (in sorted-id order) whose
// nickname set contains nick.
func (d Directory) Resolve(nick string) (string, bool) {
	for _, id := range d.IDs() {
		if d[id].HasNickname(nick) {
			return id, true
		}
	}
	return "", false
}

// Validate rejects directories that break the nickname-uniqueness invariant:
// no nickname may belong to two players, and every record needs at least one.
func (d Directory) Validate() error {
	owner := make(map[string]string)
	for _, id := range d.IDs() {
		p := d[id]
		if len(p.Nicknames) == 0 {
			return fmt.Errorf("player %q has no nicknames", id)
		}
		for _, n := range p.Nicknames {
			if prev, dup := owner[n]; dup {
				return fmt.Errorf("nickname %q belongs to both %q and %q", n, prev, id)
			}
			owner[n] = id
		}
	}
	return nil
}

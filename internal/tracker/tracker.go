// Package tracker wires the ledger parser, the aggregator and the directory
// store into the apply-session operation shared by the CLI and the HTTP
// boundary.
package tracker

import (
	"fmt"
	"sort"

	"github.com/putr/putr/internal/ledger"
	"github.com/putr/putr/internal/stats"
	"github.com/putr/putr/internal/store"
)

// Tracker applies session ledgers to the player directory.
type Tracker struct {
	Ledgers string // session ledger folder
	Store   store.Store
}

// ApplyReport describes the outcome of one apply-session operation.
type ApplyReport struct {
	Key        string
	Result     map[string]float64 // nickname → net dollars, after exclusions
	Applied    bool               // true when every nickname resolved and the directory was saved
	Unresolved []string           // nicknames with no directory record, sorted
}

// Names returns the session's nicknames in sorted order.
func (r *ApplyReport) Names() []string {
	names := make([]string, 0, len(r.Result))
	for n := range r.Result {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// AddSession applies the ledger identified by key.
func (t *Tracker) AddSession(key string, exclude []string) (*ApplyReport, error) {
	return t.AddSessionFile(ledger.Path(t.Ledgers, key), exclude)
}

// AddSessionFile parses the ledger at path and folds it into the directory.
// The update is all-or-nothing: if any nickname cannot be resolved, the
// mutated directory is discarded and nothing is persisted.
func (t *Tracker) AddSessionFile(path string, exclude []string) (*ApplyReport, error) {
	dir, err := t.Store.Load()
	if err != nil {
		return nil, fmt.Errorf("load directory: %w", err)
	}

	rows, key, err := ledger.Parse(path)
	if err != nil {
		return nil, err
	}

	result := stats.NetWinnings(rows, exclude)
	upMost, downMost := stats.Extremes(result)
	updated, updatedNames := stats.ApplySession(dir, result, key, upMost, downMost)

	report := &ApplyReport{Key: key, Result: result}
	if updated != len(result) {
		report.Unresolved = missing(report.Names(), updatedNames)
		return report, nil
	}

	if err := t.Store.Save(dir); err != nil {
		return nil, fmt.Errorf("save directory: %w", err)
	}
	report.Applied = true
	return report, nil
}

// AddAll applies every ledger in the folder in sorted filename order.
// Sessions with unresolved nicknames are reported and skipped; the batch
// keeps going. Hard errors (unreadable ledger, store failure) abort.
func (t *Tracker) AddAll(exclude []string) ([]*ApplyReport, error) {
	keys, err := ledger.Sessions(t.Ledgers)
	if err != nil {
		return nil, err
	}
	reports := make([]*ApplyReport, 0, len(keys))
	for _, key := range keys {
		r, err := t.AddSession(key, exclude)
		if err != nil {
			return reports, fmt.Errorf("session %s: %w", key, err)
		}
		reports = append(reports, r)
	}
	return reports, nil
}

func missing(all, have []string) []string {
	got := make(map[string]bool, len(have))
	for _, n := range have {
		got[n] = true
	}
	out := []string{}
	for _, n := range all {
		if !got[n] {
			out = append(out, n)
		}
	}
	return out
}

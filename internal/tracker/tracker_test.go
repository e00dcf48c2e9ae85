package tracker

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/putr/putr/internal/ledger"
	"github.com/putr/putr/internal/model"
	"github.com/putr/putr/internal/store"
)

const sessionCSV = `player_nickname,player_id,buy_in,buy_out,net
Alice,a1,1000,1550,550
Bob,b1,1000,575,-425
Charlie,c1,500,375,-125
`

// newTestTracker seeds a ledger folder and a JSON-file store with the three
// sample players, and returns the tracker plus the store path.
func newTestTracker(t *testing.T) (*Tracker, string, string) {
	t.Helper()
	base := t.TempDir()

	ledgers := filepath.Join(base, "ledgers")
	require.NoError(t, os.Mkdir(ledgers, 0755))

	dbPath := filepath.Join(base, "data.json")
	st := store.OpenJSONFile(dbPath)
	dir := model.Directory{
		"Alice":   model.NewPlayer("Alice", "al1ce"),
		"Bob":     model.NewPlayer("Bob"),
		"Charlie": model.NewPlayer("Charlie"),
	}
	require.NoError(t, st.Save(dir))

	return &Tracker{Ledgers: ledgers, Store: st}, ledgers, dbPath
}

func writeLedger(t *testing.T, dir, key, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ledger"+key+".csv"), []byte(content), 0644))
}

func TestAddSession_AllResolved(t *testing.T) {
	tr, ledgers, _ := newTestTracker(t)
	writeLedger(t, ledgers, "01_01", sessionCSV)

	rep, err := tr.AddSession("01_01", nil)
	require.NoError(t, err)
	require.True(t, rep.Applied)
	require.Empty(t, rep.Unresolved)
	require.Equal(t, "01_01", rep.Key)
	require.Equal(t, map[string]float64{"Alice": 5.5, "Bob": -4.25, "Charlie": -1.25}, rep.Result)

	dir, err := tr.Store.Load()
	require.NoError(t, err)
	require.Equal(t, 5.5, dir["Alice"].Net)
	require.Equal(t, -4.25, dir["Bob"].Net)
	require.Equal(t, 1, dir["Alice"].GamesUpMost)
	require.Equal(t, 1, dir["Bob"].GamesDownMost)
	require.Equal(t, 0, dir["Charlie"].GamesDownMost)
}

func TestAddSession_UnresolvedLeavesStoreUntouched(t *testing.T) {
	tr, ledgers, dbPath := newTestTracker(t)
	writeLedger(t, ledgers, "01_01", sessionCSV+"Stranger,x9,100,0,-100\n")

	before, err := os.ReadFile(dbPath)
	require.NoError(t, err)

	rep, err := tr.AddSession("01_01", nil)
	require.NoError(t, err)
	require.False(t, rep.Applied)
	require.Equal(t, []string{"Stranger"}, rep.Unresolved)

	after, err := os.ReadFile(dbPath)
	require.NoError(t, err)
	require.Equal(t, before, after, "a partial resolution must not persist anything")
}

func TestAddSession_ExcludeMakesUnknownIrrelevant(t *testing.T) {
	tr, ledgers, _ := newTestTracker(t)
	writeLedger(t, ledgers, "01_01", sessionCSV+"Stranger,x9,100,0,-100\n")

	rep, err := tr.AddSession("01_01", []string{"Stranger"})
	require.NoError(t, err)
	require.True(t, rep.Applied)
	require.NotContains(t, rep.Result, "Stranger")
}

func TestAddSession_MissingLedger(t *testing.T) {
	tr, _, _ := newTestTracker(t)
	_, err := tr.AddSession("99_99", nil)
	require.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestAddAll_ContinuesPastPartialResolution(t *testing.T) {
	tr, ledgers, _ := newTestTracker(t)
	writeLedger(t, ledgers, "01_01", sessionCSV+"Stranger,x9,100,0,-100\n")
	writeLedger(t, ledgers, "01_02", sessionCSV)

	reports, err := tr.AddAll(nil)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	require.False(t, reports[0].Applied)
	require.True(t, reports[1].Applied)

	dir, err := tr.Store.Load()
	require.NoError(t, err)
	// Only the clean session landed.
	require.Equal(t, []string{"01_02"}, dir["Alice"].GamesPlayed)
}

func TestAddAll_SortedOrder(t *testing.T) {
	tr, ledgers, _ := newTestTracker(t)
	writeLedger(t, ledgers, "01_02", sessionCSV)
	writeLedger(t, ledgers, "01_01", sessionCSV)

	reports, err := tr.AddAll(nil)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	require.Equal(t, "01_01", reports[0].Key)
	require.Equal(t, "01_02", reports[1].Key)

	dir, err := tr.Store.Load()
	require.NoError(t, err)
	require.Equal(t, []string{"01_01", "01_02"}, dir["Alice"].GamesPlayed)
}

func TestAddSessionFile_BadExtension(t *testing.T) {
	tr, ledgers, _ := newTestTracker(t)
	path := filepath.Join(ledgers, "ledger01_01.txt")
	require.NoError(t, os.WriteFile(path, []byte(sessionCSV), 0644))

	_, err := tr.AddSessionFile(path, nil)
	require.True(t, errors.Is(err, ledger.ErrFormat))
}

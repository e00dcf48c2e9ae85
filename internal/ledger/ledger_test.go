package ledger

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const sampleCSV = `player_nickname,player_id,buy_in,buy_out,net
Alice,a1b2,1000,1550,550
Bob,c3d4,1000,575,-425
Charlie,e5f6,500,375,-125
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestParse(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "ledger23_10_20.csv", sampleCSV)

	rows, key, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if key != "23_10_20" {
		t.Errorf("key = %q, want 23_10_20", key)
	}
	want := []Row{
		{Nickname: "Alice", NetCents: 550},
		{Nickname: "Bob", NetCents: -425},
		{Nickname: "Charlie", NetCents: -125},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %v, want %v", rows, want)
	}
}

func TestParse_Idempotent(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "ledger01_01.csv", sampleCSV)

	rows1, key1, err := Parse(path)
	if err != nil {
		t.Fatalf("first Parse: %v", err)
	}
	rows2, key2, err := Parse(path)
	if err != nil {
		t.Fatalf("second Parse: %v", err)
	}
	if key1 != key2 || !reflect.DeepEqual(rows1, rows2) {
		t.Error("parsing the same source twice should yield identical results")
	}
}

func TestParse_NotFound(t *testing.T) {
	_, _, err := Parse(filepath.Join(t.TempDir(), "ledger01_01.csv"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestParse_WrongExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "ledger01_01.txt", sampleCSV)

	_, _, err := Parse(path)
	if !errors.Is(err, ErrFormat) {
		t.Errorf("err = %v, want ErrFormat", err)
	}
}

func TestParse_UnextractableKey(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "session01_01.csv", sampleCSV)

	_, _, err := Parse(path)
	if !errors.Is(err, ErrFormat) {
		t.Errorf("err = %v, want ErrFormat", err)
	}
}

func TestParse_MissingColumns(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "ledger01_01.csv", "name,amount\nAlice,550\n")

	_, _, err := Parse(path)
	if !errors.Is(err, ErrFormat) {
		t.Errorf("err = %v, want ErrFormat", err)
	}
}

func TestParse_BadNetValue(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "ledger01_01.csv", "player_nickname,net\nAlice,lots\n")

	_, _, err := Parse(path)
	if !errors.Is(err, ErrFormat) {
		t.Errorf("err = %v, want ErrFormat", err)
	}
}

func TestSessionKey(t *testing.T) {
	cases := []struct {
		name string
		want string
		ok   bool
	}{
		{"ledger23_10_20.csv", "23_10_20", true},
		{"ledger23_10_20_2.csv", "23_10_20_2", true},
		{"notes.csv", "", false},
	}
	for _, c := range cases {
		got, err := SessionKey(c.name)
		if c.ok && (err != nil || got != c.want) {
			t.Errorf("SessionKey(%q) = %q, %v; want %q", c.name, got, err, c.want)
		}
		if !c.ok && err == nil {
			t.Errorf("SessionKey(%q) should fail", c.name)
		}
	}
}

func TestSessions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ledger01_02.csv", sampleCSV)
	writeFile(t, dir, "ledger01_01.csv", sampleCSV)
	writeFile(t, dir, "README.md", "not a ledger")
	writeFile(t, dir, "scratch.csv", sampleCSV) // CSV but not a ledger export

	keys, err := Sessions(dir)
	if err != nil {
		t.Fatalf("Sessions: %v", err)
	}
	if !reflect.DeepEqual(keys, []string{"01_01", "01_02"}) {
		t.Errorf("keys = %v, want [01_01 01_02]", keys)
	}
}

func TestSessions_MissingFolder(t *testing.T) {
	_, err := Sessions(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestPath(t *testing.T) {
	got := Path("ledgers", "01_01")
	want := filepath.Join("ledgers", "ledger01_01.csv")
	if got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
}

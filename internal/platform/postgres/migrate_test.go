package postgres

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoadMigrations_Embedded(t *testing.T) {
	all, err := LoadMigrations()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) == 0 {
		t.Fatalf("expected embedded migrations")
	}
	if all[0].Version != 1 || all[0].Name != "init" {
		t.Fatalf("unexpected first migration %d_%s", all[0].Version, all[0].Name)
	}

	for _, table := range []string{"performance_daily", "rankings_daily", "saved_reports"} {
		if !strings.Contains(all[0].UpSQL, "CREATE TABLE IF NOT EXISTS "+table) {
			t.Errorf("expected %s in init migration", table)
		}
	}
	if !strings.Contains(all[0].UpSQL, "UNIQUE (chatter_id, shift_date)") {
		t.Errorf("expected performance natural key constraint")
	}
	if !strings.Contains(all[0].UpSQL, "PRIMARY KEY (shift_date, metric, chatter_id)") {
		t.Errorf("expected rankings natural key")
	}
	if all[0].DownSQL == "" {
		t.Errorf("expected down script")
	}
}

func TestLoadMigrations_SortsAndSkips(t *testing.T) {
	fsys := fstest.MapFS{
		"m/010_views.up.sql":   {Data: []byte("CREATE VIEW v AS SELECT 1")},
		"m/002_index.up.sql":   {Data: []byte("CREATE INDEX i ON t (c)")},
		"m/002_index.down.sql": {Data: []byte("DROP INDEX i")},
		"m/README.md":          {Data: []byte("notes")},
	}

	all, err := loadMigrations(fsys, "m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(all))
	}
	if all[0].Version != 2 || all[1].Version != 10 {
		t.Fatalf("expected versions 2, 10; got %d, %d", all[0].Version, all[1].Version)
	}
	if all[0].DownSQL != "DROP INDEX i" || all[1].DownSQL != "" {
		t.Fatalf("unexpected down scripts %q / %q", all[0].DownSQL, all[1].DownSQL)
	}
}

func TestPending(t *testing.T) {
	all := []Migration{{Version: 1}, {Version: 2}, {Version: 3}}

	if got := Pending(all, 0); len(got) != 3 {
		t.Fatalf("expected 3 pending, got %d", len(got))
	}
	got := Pending(all, 2)
	if len(got) != 1 || got[0].Version != 3 {
		t.Fatalf("expected only version 3, got %+v", got)
	}
	if got := Pending(all, 3); len(got) != 0 {
		t.Fatalf("expected none pending, got %+v", got)
	}
}

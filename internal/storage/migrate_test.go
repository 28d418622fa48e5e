// ABOUTME: Tests for data migration between storage backends.
// ABOUTME: Covers sqlite-to-badger, badger-to-sqlite, and directory checks.
package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMigrateDataSQLiteToBadger(t *testing.T) {
	src := setupTestDB(t)
	for _, n := range []int{1, 2, 3} {
		if err := src.UpsertWeek(sampleWeek(n, float64(56-n))); err != nil {
			t.Fatalf("UpsertWeek(%d) failed: %v", n, err)
		}
	}

	dst := setupTestBadger(t)

	summary, err := MigrateData(src, dst)
	if err != nil {
		t.Fatalf("MigrateData failed: %v", err)
	}
	if summary.Weeks != 3 {
		t.Errorf("migrated %d weeks, want 3", summary.Weeks)
	}

	weeks, err := dst.ListWeeks()
	if err != nil {
		t.Fatalf("ListWeeks failed: %v", err)
	}
	if len(weeks) != 3 {
		t.Fatalf("destination has %d weeks, want 3", len(weeks))
	}
	if weeks[2].TotalHours != 53 {
		t.Errorf("week 3 TotalHours = %v, want 53", weeks[2].TotalHours)
	}
}

func TestMigrateDataBadgerToSQLite(t *testing.T) {
	src := setupTestBadger(t)
	want := sampleWeek(1, 55)
	if err := src.UpsertWeek(want); err != nil {
		t.Fatalf("UpsertWeek failed: %v", err)
	}

	dst := setupTestDB(t)
	summary, err := MigrateData(src, dst)
	if err != nil {
		t.Fatalf("MigrateData failed: %v", err)
	}
	if summary.Weeks != 1 {
		t.Errorf("migrated %d weeks, want 1", summary.Weeks)
	}

	got, err := dst.GetWeek(1)
	if err != nil {
		t.Fatalf("GetWeek failed: %v", err)
	}
	if got.Raw() != want.Raw() || got.Derived() != want.Derived() {
		t.Errorf("migrated record differs:\n got %+v\nwant %+v", got, want)
	}
}

func TestMigrateDataEmptySource(t *testing.T) {
	summary, err := MigrateData(setupTestDB(t), setupTestBadger(t))
	if err != nil {
		t.Fatalf("MigrateData failed: %v", err)
	}
	if summary.Weeks != 0 {
		t.Errorf("migrated %d weeks, want 0", summary.Weeks)
	}
}

func TestIsDirNonEmpty(t *testing.T) {
	dir := t.TempDir()

	nonEmpty, err := IsDirNonEmpty(filepath.Join(dir, "missing"))
	if err != nil || nonEmpty {
		t.Errorf("missing dir: got (%v, %v), want (false, nil)", nonEmpty, err)
	}

	nonEmpty, err = IsDirNonEmpty(dir)
	if err != nil || nonEmpty {
		t.Errorf("empty dir: got (%v, %v), want (false, nil)", nonEmpty, err)
	}

	if err := os.WriteFile(filepath.Join(dir, "x"), []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	nonEmpty, err = IsDirNonEmpty(dir)
	if err != nil || !nonEmpty {
		t.Errorf("populated dir: got (%v, %v), want (true, nil)", nonEmpty, err)
	}
}

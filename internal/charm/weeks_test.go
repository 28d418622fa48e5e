// ABOUTME: Unit tests for Charm-based week storage.
// ABOUTME: Tests key layout and record encoding without a live Charm account.
package charm

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/harperreed/scorecard/internal/models"
	"github.com/harperreed/scorecard/internal/storage"
)

func TestWeekKeyFormat(t *testing.T) {
	key := storage.WeekKey(3)

	if !strings.HasPrefix(key, "week:") {
		t.Errorf("Expected key to start with 'week:', got: %s", key)
	}
	if key != "week:00000003" {
		t.Errorf("Expected zero-padded key, got: %s", key)
	}
}

func TestRecordEncoding(t *testing.T) {
	raw := models.RawWeeklyInput{WeekNumber: 2, TotalHours: 52, AutomatedHours: 15, ActiveClients: 3, RevenueRatio: 1.05}
	r := models.NewWeeklyRecord(raw, models.DerivedMetrics{AutomationIndex: 28.8}, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC))

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	got, err := unmarshalJSON[models.WeeklyRecord](data)
	if err != nil {
		t.Fatalf("unmarshalJSON failed: %v", err)
	}
	if got.Raw() != r.Raw() || got.AutomationIndex != 28.8 {
		t.Errorf("decoded record = %+v, want %+v", got, r)
	}
	if !got.SubmissionDate.Equal(r.SubmissionDate) {
		t.Errorf("SubmissionDate = %v, want %v", got.SubmissionDate, r.SubmissionDate)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	if _, err := unmarshalJSON[models.WeeklyRecord]([]byte("{not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestDecodeWeeksSorts(t *testing.T) {
	var values [][]byte
	for _, n := range []int{3, 1, 2} {
		r := models.NewWeeklyRecord(models.RawWeeklyInput{WeekNumber: n, TotalHours: 50}, models.DerivedMetrics{}, time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC))
		data, err := json.Marshal(r)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		values = append(values, data)
	}

	weeks, err := decodeWeeks(values)
	if err != nil {
		t.Fatalf("decodeWeeks failed: %v", err)
	}
	for i, w := range weeks {
		if w.WeekNumber != i+1 {
			t.Errorf("weeks[%d].WeekNumber = %d, want %d", i, w.WeekNumber, i+1)
		}
	}
}

func TestDecodeWeeksRejectsCorruptEntry(t *testing.T) {
	good, err := json.Marshal(models.NewWeeklyRecord(models.RawWeeklyInput{WeekNumber: 1}, models.DerivedMetrics{}, time.Now()))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	weeks, err := decodeWeeks([][]byte{good, []byte("{not json")})
	if err == nil {
		t.Fatal("expected error for corrupt entry")
	}
	var se *storage.StorageError
	if !errors.As(err, &se) {
		t.Errorf("expected *storage.StorageError, got %T", err)
	}
	if weeks != nil {
		t.Errorf("expected no weeks, got %d", len(weeks))
	}
}

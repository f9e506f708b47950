package feed

import (
	"context"
	"testing"
	"time"
)

func TestSampleStoreCoversBothDirections(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return now }
	defer func() { timeNow = time.Now }()

	entries, err := SampleStore{}.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("expected sample entries")
	}

	seen := map[string]bool{}
	past, future := 0, 0
	for i, e := range entries {
		if e.ID == "" || e.Title == "" {
			t.Errorf("entry %d missing ID or title: %+v", i, e)
		}
		if seen[e.ID] {
			t.Errorf("duplicate entry ID %s", e.ID)
		}
		seen[e.ID] = true
		if !e.At.Valid() {
			t.Errorf("entry %s has an invalid instant", e.ID)
			continue
		}
		if e.At.Time().Before(now) {
			past++
		} else {
			future++
		}
		if i > 0 && e.At.Before(entries[i-1].At) {
			t.Errorf("entries out of order at index %d: %v before %v", i, e.At.Time(), entries[i-1].At.Time())
		}
	}
	if past == 0 || future == 0 {
		t.Fatalf("expected entries on both sides of now, got %d past / %d future", past, future)
	}
}

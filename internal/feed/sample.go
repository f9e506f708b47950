package feed

import (
	"context"
	"fmt"
	"time"

	"timeago/internal/distance"
)

var timeNow = time.Now

// SampleStore serves a built-in timeline so the app runs without a database.
// The entries are spread from seconds to years on both sides of now, oldest
// first, matching the ordering the SQLite store produces.
type SampleStore struct{}

type sampleSpec struct {
	title string
	note  string
	at    func(now time.Time) time.Time
}

var sampleSpecs = []sampleSpec{
	{
		title: "v0.1.0 tagged",
		note:  "First public tag. **Changelog** seeded from the release notes.",
		at:    func(now time.Time) time.Time { return now.AddDate(-3, 0, -10) },
	},
	{
		title: "Storage backend swapped to WAL mode",
		note:  "Readers no longer block the writer. See `docs/storage.md`.",
		at:    func(now time.Time) time.Time { return now.AddDate(-1, -4, 0) },
	},
	{
		title: "v0.9.0 released",
		note:  "Last release before the API freeze.",
		at:    func(now time.Time) time.Time { return now.AddDate(0, -11, 0) },
	},
	{
		title: "Docs site launched",
		note:  "Rendered straight from the repo on every merge.",
		at:    func(now time.Time) time.Time { return now.AddDate(0, -2, 0) },
	},
	{
		title: "Nightly job moved to 02:00 UTC",
		at:    func(now time.Time) time.Time { return now.AddDate(0, 0, -21) },
	},
	{
		title: "Incident #42 resolved",
		note:  "Root cause: clock skew on the ingest node.\n\n- NTP re-enabled\n- alert threshold lowered to 250ms",
		at:    func(now time.Time) time.Time { return now.AddDate(0, 0, -6) },
	},
	{
		title: "v1.2.3 released",
		note:  "Patch release.\n\n- fixes the off-by-one in pagination\n- bumps the SQLite driver",
		at:    func(now time.Time) time.Time { return now.Add(-26 * time.Hour) },
	},
	{
		title: "Cache warmup finished",
		at:    func(now time.Time) time.Time { return now.Add(-5 * time.Hour) },
	},
	{
		title: "Deploy to staging",
		note:  "Rolled out with `deploy --env staging`.",
		at:    func(now time.Time) time.Time { return now.Add(-50 * time.Minute) },
	},
	{
		title: "CI pipeline green",
		at:    func(now time.Time) time.Time { return now.Add(-7 * time.Minute) },
	},
	{
		title: "Heartbeat received",
		at:    func(now time.Time) time.Time { return now.Add(-42 * time.Second) },
	},
	{
		title: "Build started",
		at:    func(now time.Time) time.Time { return now.Add(-20 * time.Second) },
	},
	{
		title: "Maintenance window opens",
		note:  "Up to ten minutes of read-only mode.",
		at:    func(now time.Time) time.Time { return now.Add(90 * time.Second) },
	},
	{
		title: "Certificate renewal due",
		at:    func(now time.Time) time.Time { return now.AddDate(0, 0, 3) },
	},
	{
		title: "Beta program ends",
		note:  "Feedback issues close automatically afterwards.",
		at:    func(now time.Time) time.Time { return now.AddDate(0, 6, 0) },
	},
	{
		title: "Domain registration expires",
		at:    func(now time.Time) time.Time { return now.AddDate(2, 0, 15) },
	},
}

func (SampleStore) List(ctx context.Context) ([]Entry, error) {
	now := timeNow()
	entries := make([]Entry, 0, len(sampleSpecs))
	for i, s := range sampleSpecs {
		entries = append(entries, Entry{
			ID:    fmt.Sprintf("evt-%03d", i+1),
			Title: s.title,
			Note:  s.note,
			At:    distance.NewInstant(s.at(now)),
		})
	}
	return entries, nil
}

package salaryconfig

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Source tags how a resolution was obtained so the batch generator can
// log when the risky fallback path was taken.
type Source string

const (
	// SourcePolicy: entries resolved under the normal date filter.
	SourcePolicy Source = "policy"
	// SourceFallback: no entry was valid as of the date, so the single
	// most-recently-dated entry was used regardless of validity.
	SourceFallback Source = "fallback"
	// SourceEmpty: the employee has no configuration at all.
	SourceEmpty Source = "empty"
)

type Resolution struct {
	Source  Source
	Entries map[uuid.UUID]Entry
}

func dateValid(e Entry, asOf time.Time) bool {
	if e.EffectiveDate.After(asOf) {
		return false
	}
	return e.ExpiryDate == nil || !e.ExpiryDate.Before(asOf)
}

// Resolve picks the effective configuration set for one employee as of
// a date: per item, the valid entry with the latest effective date
// wins. When nothing is valid but history exists, the single latest
// entry overall is returned tagged as a fallback, so a generation run
// never silently computes against zero configuration.
func Resolve(entries []Entry, asOf time.Time) Resolution {
	if len(entries) == 0 {
		return Resolution{Source: SourceEmpty, Entries: map[uuid.UUID]Entry{}}
	}

	winners := make(map[uuid.UUID]Entry)
	for _, e := range entries {
		if !dateValid(e, asOf) {
			continue
		}
		current, ok := winners[e.ItemID]
		if !ok || e.EffectiveDate.After(current.EffectiveDate) {
			winners[e.ItemID] = e
		}
	}

	if len(winners) > 0 {
		return Resolution{Source: SourcePolicy, Entries: winners}
	}

	// Fallback: latest-dated entry across all items, ignoring dates.
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].EffectiveDate.After(sorted[j].EffectiveDate)
	})
	latest := sorted[0]

	return Resolution{
		Source:  SourceFallback,
		Entries: map[uuid.UUID]Entry{latest.ItemID: latest},
	}
}

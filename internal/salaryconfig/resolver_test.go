package salaryconfig

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func entry(itemID uuid.UUID, effective time.Time, expiry *time.Time, value string) Entry {
	return Entry{
		ID:            uuid.New(),
		EmployeeID:    uuid.New(),
		ItemID:        itemID,
		Value:         decimal.RequireFromString(value),
		IsActive:      true,
		EffectiveDate: effective,
		ExpiryDate:    expiry,
	}
}

func TestResolve_LatestWinsPerItem(t *testing.T) {
	itemID := uuid.New()
	jan := entry(itemID, day(2024, time.January, 1), nil, "100")
	mar := entry(itemID, day(2024, time.March, 1), nil, "200")

	res := Resolve([]Entry{jan, mar}, day(2024, time.April, 1))

	assert.Equal(t, SourcePolicy, res.Source)
	assert.Len(t, res.Entries, 1)
	assert.Equal(t, mar.ID, res.Entries[itemID].ID)
}

func TestResolve_IndependentItems(t *testing.T) {
	itemA := uuid.New()
	itemB := uuid.New()
	a := entry(itemA, day(2024, time.January, 1), nil, "100")
	b := entry(itemB, day(2024, time.February, 1), nil, "50")

	res := Resolve([]Entry{a, b}, day(2024, time.June, 1))

	assert.Equal(t, SourcePolicy, res.Source)
	assert.Len(t, res.Entries, 2)
	assert.Equal(t, a.ID, res.Entries[itemA].ID)
	assert.Equal(t, b.ID, res.Entries[itemB].ID)
}

func TestResolve_ExpiredEntriesExcluded(t *testing.T) {
	itemID := uuid.New()
	expiry := day(2024, time.February, 28)
	expired := entry(itemID, day(2024, time.January, 1), &expiry, "100")
	current := entry(itemID, day(2024, time.March, 1), nil, "200")

	res := Resolve([]Entry{expired, current}, day(2024, time.April, 1))

	assert.Equal(t, SourcePolicy, res.Source)
	assert.Equal(t, current.ID, res.Entries[itemID].ID)
}

func TestResolve_ExpiryDateInclusive(t *testing.T) {
	itemID := uuid.New()
	expiry := day(2024, time.April, 1)
	e := entry(itemID, day(2024, time.January, 1), &expiry, "100")

	res := Resolve([]Entry{e}, day(2024, time.April, 1))

	assert.Equal(t, SourcePolicy, res.Source)
	assert.Equal(t, e.ID, res.Entries[itemID].ID)
}

func TestResolve_FallbackWhenNothingValid(t *testing.T) {
	itemA := uuid.New()
	itemB := uuid.New()
	// Both entries only become effective after the as-of date.
	older := entry(itemA, day(2024, time.June, 1), nil, "100")
	newer := entry(itemB, day(2024, time.July, 1), nil, "200")

	res := Resolve([]Entry{older, newer}, day(2024, time.March, 1))

	assert.Equal(t, SourceFallback, res.Source)
	assert.Len(t, res.Entries, 1)
	assert.Equal(t, newer.ID, res.Entries[itemB].ID)
}

func TestResolve_EmptyHistory(t *testing.T) {
	res := Resolve(nil, day(2024, time.March, 1))

	assert.Equal(t, SourceEmpty, res.Source)
	assert.Empty(t, res.Entries)
}

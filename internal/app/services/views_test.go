package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/emin/backlot/internal/app/models"
)

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestSortAvailabilityByStart(t *testing.T) {
	records := []*models.AvailabilityRecord{
		{ID: 1, StartDate: date("2024-03-01")},
		{ID: 2, StartDate: date("2024-01-15")},
		{ID: 3, StartDate: date("2024-02-10")},
	}

	sorted := SortAvailabilityByStart(records)

	assert.Equal(t, []int64{2, 3, 1}, []int64{sorted[0].ID, sorted[1].ID, sorted[2].ID})
	// Input order is preserved
	assert.Equal(t, int64(1), records[0].ID)
}

func TestSortAvailabilityByStart_Deterministic(t *testing.T) {
	records := []*models.AvailabilityRecord{
		{ID: 1, StartDate: date("2024-02-10")},
		{ID: 2, StartDate: date("2024-01-15")},
		{ID: 3, StartDate: date("2024-02-10")},
	}

	first := SortAvailabilityByStart(records)
	second := SortAvailabilityByStart(records)

	assert.Equal(t, first, second, "sorting the same list twice must yield the same order")
	// Stable: equal start dates keep their original relative order
	assert.Equal(t, int64(1), first[1].ID)
	assert.Equal(t, int64(3), first[2].ID)
}

func TestSortCreditsByNewest(t *testing.T) {
	base := date("2024-01-01")
	credits := []*models.CreditSubmission{
		{ID: 1, Position: "A", CreatedAt: base},
		{ID: 2, Position: "B", CreatedAt: base.Add(time.Hour)},
		{ID: 3, Position: "C", CreatedAt: base.Add(2 * time.Hour)},
	}

	sorted := SortCreditsByNewest(credits)

	assert.Equal(t, []string{"C", "B", "A"}, []string{sorted[0].Position, sorted[1].Position, sorted[2].Position})
}

package services

import (
	"sort"

	"github.com/emin/backlot/internal/app/models"
)

// Pure view transforms applied to loaded lists. Each returns a new slice and
// leaves its input untouched; sorting is stable so equal keys keep their
// relative load order.

// SortAvailabilityByStart orders availability records by start date ascending,
// soonest first.
func SortAvailabilityByStart(records []*models.AvailabilityRecord) []*models.AvailabilityRecord {
	sorted := make([]*models.AvailabilityRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartDate.Before(sorted[j].StartDate)
	})
	return sorted
}

// SortCreditsByNewest orders credit submissions by creation time descending,
// most recently submitted first.
func SortCreditsByNewest(credits []*models.CreditSubmission) []*models.CreditSubmission {
	sorted := make([]*models.CreditSubmission, len(credits))
	copy(sorted, credits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}

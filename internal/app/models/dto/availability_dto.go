package dto

import (
	"time"

	"github.com/emin/backlot/internal/app/models"
)

const (
	timeFormat = time.RFC3339
	dateFormat = "2006-01-02"
)

// AvailabilityResponse represents one row of the availability roster
type AvailabilityResponse struct {
	ID        int64           `json:"id"`
	StartDate string          `json:"startDate" example:"2024-01-15"`
	EndDate   string          `json:"endDate" example:"2024-02-10"`
	Notes     *string         `json:"notes,omitempty"`
	CreatedAt string          `json:"createdAt"`
	Profile   *ProfileSummary `json:"profile,omitempty"`
}

// FromAvailabilityRecord converts an availability model to its response representation
func FromAvailabilityRecord(record *models.AvailabilityRecord, link LinkBuilder) AvailabilityResponse {
	return AvailabilityResponse{
		ID:        record.ID,
		StartDate: record.StartDate.Format(dateFormat),
		EndDate:   record.EndDate.Format(dateFormat),
		Notes:     record.Notes,
		CreatedAt: record.CreatedAt.Format(timeFormat),
		Profile:   FromProfileSummary(record.Profile, link),
	}
}

// FromAvailabilityRecords converts a slice of availability models
func FromAvailabilityRecords(records []*models.AvailabilityRecord, link LinkBuilder) []AvailabilityResponse {
	responses := make([]AvailabilityResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, FromAvailabilityRecord(record, link))
	}
	return responses
}

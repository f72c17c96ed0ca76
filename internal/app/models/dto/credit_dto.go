package dto

import "github.com/emin/backlot/internal/app/models"

// RejectCreditRequest carries the mandatory justification for a rejection
type RejectCreditRequest struct {
	Note string `json:"note" binding:"required"`
}

// ProductionData represents production information embedded in credit responses
type ProductionData struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Year  int    `json:"year"`
}

// CreditResponse represents a credit submission on the review screen
type CreditResponse struct {
	ID            int64           `json:"id"`
	Position      string          `json:"position"`
	Status        string          `json:"status"`
	RejectionNote *string         `json:"rejectionNote,omitempty"`
	CreatedAt     string          `json:"createdAt"`
	ReviewedAt    *string         `json:"reviewedAt,omitempty"`
	Submitter     *ProfileSummary `json:"submitter,omitempty"`
	Production    *ProductionData `json:"production,omitempty"`
}

// FromCreditSubmission converts a credit model to its response representation
func FromCreditSubmission(credit *models.CreditSubmission, link LinkBuilder) CreditResponse {
	resp := CreditResponse{
		ID:            credit.ID,
		Position:      credit.Position,
		Status:        string(credit.Status),
		RejectionNote: credit.RejectionNote,
		CreatedAt:     credit.CreatedAt.Format(timeFormat),
		Submitter:     FromProfileSummary(credit.Submitter, link),
	}
	if credit.ReviewedAt != nil {
		formatted := credit.ReviewedAt.Format(timeFormat)
		resp.ReviewedAt = &formatted
	}
	if credit.Production != nil {
		resp.Production = &ProductionData{
			ID:    credit.Production.ID,
			Title: credit.Production.Title,
			Year:  credit.Production.Year,
		}
	}
	return resp
}

// FromCreditSubmissions converts a slice of credit models
func FromCreditSubmissions(credits []*models.CreditSubmission, link LinkBuilder) []CreditResponse {
	responses := make([]CreditResponse, 0, len(credits))
	for _, credit := range credits {
		responses = append(responses, FromCreditSubmission(credit, link))
	}
	return responses
}

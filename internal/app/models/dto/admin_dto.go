package dto

import "github.com/emin/backlot/internal/app/models"

// CollabAdminResponse represents a collab posting on the community admin screen
type CollabAdminResponse struct {
	ID        int64           `json:"id"`
	Title     string          `json:"title"`
	Status    string          `json:"status"`
	CreatedAt string          `json:"createdAt"`
	Owner     *ProfileSummary `json:"owner,omitempty"`
}

// FromCollab converts a collab model to its admin representation
func FromCollab(collab *models.Collab, link LinkBuilder) CollabAdminResponse {
	return CollabAdminResponse{
		ID:        collab.ID,
		Title:     collab.Title,
		Status:    string(collab.Status),
		CreatedAt: collab.CreatedAt.Format(timeFormat),
		Owner:     FromProfileSummary(collab.Owner, link),
	}
}

// FromCollabs converts a slice of collab models
func FromCollabs(collabs []*models.Collab, link LinkBuilder) []CollabAdminResponse {
	responses := make([]CollabAdminResponse, 0, len(collabs))
	for _, collab := range collabs {
		responses = append(responses, FromCollab(collab, link))
	}
	return responses
}

// ReportResponse represents a content report on the community admin screen
type ReportResponse struct {
	ID         int64           `json:"id"`
	TargetType string          `json:"targetType"`
	TargetID   int64           `json:"targetId"`
	Reason     string          `json:"reason"`
	Status     string          `json:"status"`
	CreatedAt  string          `json:"createdAt"`
	Reporter   *ProfileSummary `json:"reporter,omitempty"`
}

// FromReport converts a report model to its response representation
func FromReport(report *models.ContentReport, link LinkBuilder) ReportResponse {
	return ReportResponse{
		ID:         report.ID,
		TargetType: string(report.TargetType),
		TargetID:   report.TargetID,
		Reason:     report.Reason,
		Status:     string(report.Status),
		CreatedAt:  report.CreatedAt.Format(timeFormat),
		Reporter:   FromProfileSummary(report.Reporter, link),
	}
}

// FromReports converts a slice of report models
func FromReports(reports []*models.ContentReport, link LinkBuilder) []ReportResponse {
	responses := make([]ReportResponse, 0, len(reports))
	for _, report := range reports {
		responses = append(responses, FromReport(report, link))
	}
	return responses
}

// MuteResponse represents an active mute on the community admin screen
type MuteResponse struct {
	ID        int64           `json:"id"`
	Reason    string          `json:"reason"`
	CreatedAt string          `json:"createdAt"`
	ExpiresAt *string         `json:"expiresAt,omitempty"`
	Profile   *ProfileSummary `json:"profile,omitempty"`
	MutedBy   *ProfileSummary `json:"mutedBy,omitempty"`
}

// FromMute converts a mute model to its response representation
func FromMute(mute *models.Mute, link LinkBuilder) MuteResponse {
	resp := MuteResponse{
		ID:        mute.ID,
		Reason:    mute.Reason,
		CreatedAt: mute.CreatedAt.Format(timeFormat),
		Profile:   FromProfileSummary(mute.Profile, link),
		MutedBy:   FromProfileSummary(mute.MutedBy, link),
	}
	if mute.ExpiresAt != nil {
		formatted := mute.ExpiresAt.Format(timeFormat)
		resp.ExpiresAt = &formatted
	}
	return resp
}

// FromMutes converts a slice of mute models
func FromMutes(mutes []*models.Mute, link LinkBuilder) []MuteResponse {
	responses := make([]MuteResponse, 0, len(mutes))
	for _, mute := range mutes {
		responses = append(responses, FromMute(mute, link))
	}
	return responses
}

// ModerationEventResponse represents an audit trail entry
type ModerationEventResponse struct {
	ID         string          `json:"id"`
	Action     string          `json:"action"`
	TargetType string          `json:"targetType"`
	TargetID   int64           `json:"targetId"`
	Note       *string         `json:"note,omitempty"`
	CreatedAt  string          `json:"createdAt"`
	Actor      *ProfileSummary `json:"actor,omitempty"`
}

// FromModerationEvent converts an audit model to its response representation
func FromModerationEvent(event *models.ModerationEvent, link LinkBuilder) ModerationEventResponse {
	return ModerationEventResponse{
		ID:         event.ID.String(),
		Action:     string(event.Action),
		TargetType: event.TargetType,
		TargetID:   event.TargetID,
		Note:       event.Note,
		CreatedAt:  event.CreatedAt.Format(timeFormat),
		Actor:      FromProfileSummary(event.Actor, link),
	}
}

// FromModerationEvents converts a slice of audit models
func FromModerationEvents(events []*models.ModerationEvent, link LinkBuilder) []ModerationEventResponse {
	responses := make([]ModerationEventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, FromModerationEvent(event, link))
	}
	return responses
}

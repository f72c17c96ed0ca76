package dto

import "github.com/emin/backlot/internal/app/models"

// ProfileSummary is the compact profile representation embedded in admin
// list responses. ProfileURL points at the user-facing profile page.
type ProfileSummary struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	ProfileURL  string `json:"profileUrl"`
}

// LinkBuilder turns a username into a user-facing profile URL
type LinkBuilder func(username string) string

// FromProfileSummary converts a profile model to its summary representation
func FromProfileSummary(profile *models.Profile, link LinkBuilder) *ProfileSummary {
	if profile == nil {
		return nil
	}
	summary := &ProfileSummary{
		ID:          profile.ID,
		Username:    profile.Username,
		DisplayName: profile.DisplayName,
	}
	if link != nil {
		summary.ProfileURL = link(profile.Username)
	}
	return summary
}

// AdminProfileResponse is the full profile row shown on the member admin screen
type AdminProfileResponse struct {
	ProfileSummary
	Email       string  `json:"email"`
	Role        string  `json:"role"`
	IsActive    bool    `json:"isActive"`
	CreatedAt   string  `json:"createdAt"`
	LastLoginAt *string `json:"lastLoginAt,omitempty"`
}

// FromAdminProfile converts a profile model to its admin list representation
func FromAdminProfile(profile *models.Profile, link LinkBuilder) AdminProfileResponse {
	resp := AdminProfileResponse{
		Email:     profile.Email,
		Role:      string(profile.Role),
		IsActive:  profile.IsActive,
		CreatedAt: profile.CreatedAt.Format(timeFormat),
	}
	if summary := FromProfileSummary(profile, link); summary != nil {
		resp.ProfileSummary = *summary
	}
	if profile.LastLoginAt != nil {
		formatted := profile.LastLoginAt.Format(timeFormat)
		resp.LastLoginAt = &formatted
	}
	return resp
}

// FromAdminProfiles converts a slice of profile models
func FromAdminProfiles(profiles []*models.Profile, link LinkBuilder) []AdminProfileResponse {
	responses := make([]AdminProfileResponse, 0, len(profiles))
	for _, profile := range profiles {
		responses = append(responses, FromAdminProfile(profile, link))
	}
	return responses
}

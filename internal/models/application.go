package models

import (
	"time"

	"github.com/google/uuid"
)

// Application is an influencer's expression of interest in a campaign.
// One per (campaign, influencer); immutable once created except for its
// append-only response thread.
type Application struct {
	ID               uuid.UUID `json:"id"`
	CampaignID       uuid.UUID `json:"campaign_id"`
	InfluencerUserID uuid.UUID `json:"influencer_user_id"`
	Message          string    `json:"message"`
	CreatedAt        time.Time `json:"created_at"`
}

// ApplicationWithCampaign embeds Application and adds campaign info to avoid
// N+1 queries on list views.
type ApplicationWithCampaign struct {
	Application
	CampaignName   string    `json:"campaign_name"`
	CompanyUserID  uuid.UUID `json:"company_user_id"`
	InfluencerName string    `json:"influencer_name"`
}

// Participants returns the two users allowed to read and write the
// application's response thread.
func (a *ApplicationWithCampaign) Participants() [2]uuid.UUID {
	return [2]uuid.UUID{a.CompanyUserID, a.InfluencerUserID}
}

// IsParticipant reports whether userID is the campaign's owning company or
// the applying influencer.
func (a *ApplicationWithCampaign) IsParticipant(userID uuid.UUID) bool {
	return userID == a.CompanyUserID || userID == a.InfluencerUserID
}

// Response is a single message in the flat thread attached to one application.
type Response struct {
	ID            uuid.UUID `json:"id"`
	ApplicationID uuid.UUID `json:"application_id"`
	UserID        uuid.UUID `json:"user_id"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
}

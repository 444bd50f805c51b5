package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type Campaign struct {
	ID            uuid.UUID  `json:"id"`
	CompanyUserID uuid.UUID  `json:"company_user_id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Budget        string     `json:"budget"` // numeric(10,2) as string
	Deadline      time.Time  `json:"deadline"`
	Views         int        `json:"views"`
	Likes         int        `json:"likes"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	Categories    []Category `json:"categories"`
}

func (c *Campaign) CategorySet() []Category { return c.Categories }

// IsActive reports whether the deadline has not passed yet.
func (c *Campaign) IsActive() bool {
	return !time.Now().After(c.Deadline)
}

// EngagementRate is 100*(likes+comments)/views rounded to 2 decimals
// (half to even), or 0.0 when the campaign has no views. Derived at read
// time, never stored. The numerator is scaled before dividing so exact
// halves like 0.125 survive to the rounding step.
func EngagementRate(likes, comments, views int) float64 {
	if views <= 0 {
		return 0.0
	}
	return math.RoundToEven(float64(10000*(likes+comments))/float64(views)) / 100
}

// FeedCampaign is a campaign annotated for one influencer's feed.
type FeedCampaign struct {
	Campaign
	IsActive       bool    `json:"is_active"`
	CommentCount   int     `json:"comment_count"`
	EngagementRate float64 `json:"engagement_rate"`
	HasApplied     bool    `json:"has_applied"`
	Liked          bool    `json:"liked"`
}

type Comment struct {
	ID         uuid.UUID `json:"id"`
	CampaignID uuid.UUID `json:"campaign_id"`
	UserID     uuid.UUID `json:"user_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// CampaignViewRecord marks that a user has already been counted toward a
// campaign's view counter. One row per (campaign, user), never deleted.
type CampaignViewRecord struct {
	CampaignID uuid.UUID `json:"campaign_id"`
	UserID     uuid.UUID `json:"user_id"`
	ViewedAt   time.Time `json:"viewed_at"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the base record every user owns at most once. Exactly one of
// CompanyProfile / InfluencerProfile attaches to it, chosen by the owner's
// user type.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Bio       string    `json:"bio"`
	Website   string    `json:"website"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

// Company size brackets
const (
	CompanySize1to10    = "1-10"
	CompanySize11to50   = "11-50"
	CompanySize51to200  = "51-200"
	CompanySize201to500 = "201-500"
	CompanySize501Plus  = "501+"
)

var AllCompanySizes = []string{
	CompanySize1to10, CompanySize11to50, CompanySize51to200,
	CompanySize201to500, CompanySize501Plus,
}

func IsValidCompanySize(s string) bool {
	for _, cs := range AllCompanySizes {
		if cs == s {
			return true
		}
	}
	return false
}

// Audience size brackets
const (
	AudienceSizeMicro  = "micro"  // 1K-10K
	AudienceSizeSmall  = "small"  // 10K-50K
	AudienceSizeMedium = "medium" // 50K-100K
	AudienceSizeLarge  = "large"  // 100K-500K
	AudienceSizeMacro  = "macro"  // 500K-1M
	AudienceSizeMega   = "mega"   // 1M+
)

var AllAudienceSizes = []string{
	AudienceSizeMicro, AudienceSizeSmall, AudienceSizeMedium,
	AudienceSizeLarge, AudienceSizeMacro, AudienceSizeMega,
}

func IsValidAudienceSize(s string) bool {
	for _, as := range AllAudienceSizes {
		if as == s {
			return true
		}
	}
	return false
}

type SocialLinks struct {
	InstagramURL *string `json:"instagram_url,omitempty"`
	YouTubeURL   *string `json:"youtube_url,omitempty"`
	FacebookURL  *string `json:"facebook_url,omitempty"`
	XURL         *string `json:"x_url,omitempty"`
}

type CompanyProfile struct {
	ID          uuid.UUID   `json:"id"`
	ProfileID   uuid.UUID   `json:"profile_id"`
	CompanySize string      `json:"company_size"`
	Description string      `json:"description"`
	SocialLinks SocialLinks `json:"social_links"`
	Categories  []Category  `json:"categories"`
}

func (p *CompanyProfile) CategorySet() []Category { return p.Categories }

type InfluencerProfile struct {
	ID           uuid.UUID   `json:"id"`
	ProfileID    uuid.UUID   `json:"profile_id"`
	Platforms    string      `json:"platforms"` // free text, e.g. "Instagram, TikTok"
	AudienceSize string      `json:"audience_size"`
	Bio          string      `json:"bio"`
	SocialLinks  SocialLinks `json:"social_links"`
	Categories   []Category  `json:"categories"`
}

func (p *InfluencerProfile) CategorySet() []Category { return p.Categories }

// ProfileView is the read projection combining the base profile with
// whichever specialization exists.
type ProfileView struct {
	Profile
	UserName   string             `json:"user_name"`
	UserType   string             `json:"user_type"`
	Company    *CompanyProfile    `json:"company,omitempty"`
	Influencer *InfluencerProfile `json:"influencer,omitempty"`
}

// DirectoryEntry is one row of the public company/influencer listings.
type DirectoryEntry struct {
	UserID     uuid.UUID          `json:"user_id"`
	UserName   string             `json:"user_name"`
	Location   string             `json:"location"`
	Company    *CompanyProfile    `json:"company,omitempty"`
	Influencer *InfluencerProfile `json:"influencer,omitempty"`
}

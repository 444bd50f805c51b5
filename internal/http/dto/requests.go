package dto

import "time"

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	UserType string `json:"user_type"` // company / influencer
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Profiles

type SocialLinksRequest struct {
	InstagramURL *string `json:"instagram_url,omitempty"`
	YouTubeURL   *string `json:"youtube_url,omitempty"`
	FacebookURL  *string `json:"facebook_url,omitempty"`
	XURL         *string `json:"x_url,omitempty"`
}

type CreateProfileRequest struct {
	Bio         string              `json:"bio"`
	Website     string              `json:"website,omitempty"`
	Location    string              `json:"location,omitempty"`
	CategoryIDs []string            `json:"category_ids"`
	SocialLinks *SocialLinksRequest `json:"social_links,omitempty"`

	// Company fields
	CompanySize string `json:"company_size,omitempty"`
	Description string `json:"description,omitempty"`

	// Influencer fields
	Platforms    string `json:"platforms,omitempty"`
	AudienceSize string `json:"audience_size,omitempty"`
	AboutMe      string `json:"about_me,omitempty"`
}

type UpdateProfileRequest struct {
	Bio         *string             `json:"bio,omitempty"`
	Website     *string             `json:"website,omitempty"`
	Location    *string             `json:"location,omitempty"`
	CategoryIDs []string            `json:"category_ids,omitempty"`
	SocialLinks *SocialLinksRequest `json:"social_links,omitempty"`

	CompanySize *string `json:"company_size,omitempty"`
	Description *string `json:"description,omitempty"`

	Platforms    *string `json:"platforms,omitempty"`
	AudienceSize *string `json:"audience_size,omitempty"`
	AboutMe      *string `json:"about_me,omitempty"`
}

// Campaigns

type CreateCampaignRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Budget      string    `json:"budget"`
	Deadline    time.Time `json:"deadline"`
	CategoryIDs []string  `json:"category_ids"`
}

type UpdateCampaignRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Budget      string    `json:"budget"`
	Deadline    time.Time `json:"deadline"`
	CategoryIDs []string  `json:"category_ids"`
}

type CommentRequest struct {
	Content string `json:"content"`
}

// Applications

type ApplyRequest struct {
	Message string `json:"message"`
}

type RespondRequest struct {
	Content string `json:"content"`
}

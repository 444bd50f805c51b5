package services

import (
	"context"
	"fmt"

	"github.com/collabmatch/backend/internal/metrics"
	"github.com/collabmatch/backend/internal/models"
	"github.com/collabmatch/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FeedService builds the influencer-facing campaign feed: category matching,
// per-user view counting and read-time annotations.
type FeedService struct {
	campaignRepo *repositories.CampaignRepo
	profileRepo  *repositories.ProfileRepo
	log          *zap.Logger
}

func NewFeedService(
	campaignRepo *repositories.CampaignRepo,
	profileRepo *repositories.ProfileRepo,
	log *zap.Logger,
) *FeedService {
	return &FeedService{
		campaignRepo: campaignRepo,
		profileRepo:  profileRepo,
		log:          log,
	}
}

// InfluencerFeed selects campaigns whose category set intersects the
// caller's, optionally narrowed by a case-insensitive substring search over
// name/description. Listing counts a view once per (campaign, user) pair for
// the campaign's lifetime.
func (s *FeedService) InfluencerFeed(ctx context.Context, influencerUserID uuid.UUID, search string) ([]models.FeedCampaign, error) {
	if _, err := s.profileRepo.GetInfluencerByUserID(ctx, influencerUserID); err != nil {
		return nil, fmt.Errorf("influencer profile %w", ErrNotFound)
	}

	feed, err := s.campaignRepo.ListMatching(ctx, influencerUserID, search)
	if err != nil {
		return nil, err
	}

	for i := range feed {
		counted, err := s.campaignRepo.RecordView(ctx, feed[i].ID, influencerUserID)
		if err != nil {
			s.log.Error("failed to record campaign view",
				zap.String("campaign_id", feed[i].ID.String()), zap.Error(err))
		} else if counted {
			feed[i].Views++
			metrics.FeedViewsRecorded.Inc()
		}

		feed[i].IsActive = feed[i].Campaign.IsActive()
		feed[i].EngagementRate = models.EngagementRate(feed[i].Likes, feed[i].CommentCount, feed[i].Views)
	}

	return feed, nil
}

// MatchingInfluencers lists influencer directory entries whose category set
// intersects the campaign's, for the owning company.
func (s *FeedService) MatchingInfluencers(ctx context.Context, companyUserID, campaignID uuid.UUID) ([]models.DirectoryEntry, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil || campaign.CompanyUserID != companyUserID {
		return nil, fmt.Errorf("campaign %w", ErrNotFound)
	}

	entries, err := s.profileRepo.ListInfluencers(ctx)
	if err != nil {
		return nil, err
	}

	var matched []models.DirectoryEntry
	for _, e := range entries {
		if e.Influencer != nil && models.CategoriesIntersect(campaign, e.Influencer) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

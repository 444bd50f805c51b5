package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/collabmatch/backend/internal/metrics"
	"github.com/collabmatch/backend/internal/models"
	"github.com/collabmatch/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CampaignService struct {
	campaignRepo *repositories.CampaignRepo
	categoryRepo *repositories.CategoryRepo
	auditRepo    *repositories.AuditRepo
	log          *zap.Logger
}

func NewCampaignService(
	campaignRepo *repositories.CampaignRepo,
	categoryRepo *repositories.CategoryRepo,
	auditRepo *repositories.AuditRepo,
	log *zap.Logger,
) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		categoryRepo: categoryRepo,
		auditRepo:    auditRepo,
		log:          log,
	}
}

func (s *CampaignService) resolveCategories(ctx context.Context, ids []uuid.UUID) ([]models.Category, error) {
	cats, err := s.categoryRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(cats) != len(ids) {
		return nil, fmt.Errorf("%w: unknown category id", ErrInvalid)
	}
	return cats, nil
}

func (s *CampaignService) Create(ctx context.Context, companyUserID uuid.UUID, c *models.Campaign, categoryIDs []uuid.UUID) error {
	cats, err := s.resolveCategories(ctx, categoryIDs)
	if err != nil {
		return err
	}

	c.CompanyUserID = companyUserID
	if err := s.campaignRepo.Create(ctx, c, categoryIDs); err != nil {
		return err
	}
	c.Categories = cats

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &companyUserID,
		ActorType:   "user",
		Action:      "campaign_created",
		EntityType:  "campaign",
		EntityID:    &c.ID,
	})

	return nil
}

// GetOwned loads a campaign only if companyUserID owns it. A wrong owner
// gets the same "not found" as a missing id.
func (s *CampaignService) GetOwned(ctx context.Context, id, companyUserID uuid.UUID) (*models.Campaign, error) {
	c, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("campaign %w", ErrNotFound)
	}
	if c.CompanyUserID != companyUserID {
		return nil, fmt.Errorf("campaign %w", ErrNotFound)
	}
	return c, nil
}

// ListOwned returns every campaign the company owns, unfiltered by deadline.
func (s *CampaignService) ListOwned(ctx context.Context, companyUserID uuid.UUID) ([]models.Campaign, error) {
	return s.campaignRepo.ListByCompany(ctx, companyUserID)
}

func (s *CampaignService) Update(ctx context.Context, id, companyUserID uuid.UUID, c *models.Campaign, categoryIDs []uuid.UUID) (*models.Campaign, error) {
	existing, err := s.GetOwned(ctx, id, companyUserID)
	if err != nil {
		return nil, err
	}

	if _, err := s.resolveCategories(ctx, categoryIDs); err != nil {
		return nil, err
	}

	c.ID = existing.ID
	c.CompanyUserID = existing.CompanyUserID
	if err := s.campaignRepo.Update(ctx, c, categoryIDs); err != nil {
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &companyUserID,
		ActorType:   "user",
		Action:      "campaign_updated",
		EntityType:  "campaign",
		EntityID:    &c.ID,
	})

	return s.campaignRepo.GetByID(ctx, id)
}

func (s *CampaignService) AddComment(ctx context.Context, userID, campaignID uuid.UUID, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrInvalid)
	}

	if _, err := s.campaignRepo.GetByID(ctx, campaignID); err != nil {
		return nil, fmt.Errorf("campaign %w", ErrNotFound)
	}

	cm := &models.Comment{
		CampaignID: campaignID,
		UserID:     userID,
		Content:    content,
	}
	if err := s.campaignRepo.CreateComment(ctx, cm); err != nil {
		return nil, err
	}
	return cm, nil
}

// ToggleLike flips the caller's membership in the campaign's liked-by set.
// Returns the new liked state and the absolute like count.
func (s *CampaignService) ToggleLike(ctx context.Context, userID, campaignID uuid.UUID) (bool, int, error) {
	if _, err := s.campaignRepo.GetByID(ctx, campaignID); err != nil {
		return false, 0, fmt.Errorf("campaign %w", ErrNotFound)
	}

	liked, likes, err := s.campaignRepo.ToggleLike(ctx, campaignID, userID)
	if err != nil {
		return false, 0, err
	}

	state := "unliked"
	if liked {
		state = "liked"
	}
	metrics.LikeToggles.WithLabelValues(state).Inc()

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "campaign_" + state,
		EntityType:  "campaign",
		EntityID:    &campaignID,
		Meta:        map[string]any{"likes": likes},
	})

	return liked, likes, nil
}

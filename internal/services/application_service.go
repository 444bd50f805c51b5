package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/collabmatch/backend/internal/events"
	"github.com/collabmatch/backend/internal/metrics"
	"github.com/collabmatch/backend/internal/models"
	"github.com/collabmatch/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApplicationService struct {
	applicationRepo *repositories.ApplicationRepo
	campaignRepo    *repositories.CampaignRepo
	auditRepo       *repositories.AuditRepo
	publisher       events.Publisher
	log             *zap.Logger
}

func NewApplicationService(
	applicationRepo *repositories.ApplicationRepo,
	campaignRepo *repositories.CampaignRepo,
	auditRepo *repositories.AuditRepo,
	publisher events.Publisher,
	log *zap.Logger,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		campaignRepo:    campaignRepo,
		auditRepo:       auditRepo,
		publisher:       publisher,
		log:             log,
	}
}

// Apply creates the one application an influencer may hold per campaign.
// A second apply for the same pair fails with a conflict.
func (s *ApplicationService) Apply(ctx context.Context, influencerUserID, campaignID uuid.UUID, message string) (*models.Application, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", ErrInvalid)
	}

	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("campaign %w", ErrNotFound)
	}

	a := &models.Application{
		CampaignID:       campaignID,
		InfluencerUserID: influencerUserID,
		Message:          message,
	}
	if err := s.applicationRepo.Create(ctx, a); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, fmt.Errorf("%w: already applied to this campaign", ErrConflict)
		}
		return nil, err
	}
	metrics.ApplicationsCreated.Inc()

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &influencerUserID,
		ActorType:   "user",
		Action:      "application_created",
		EntityType:  "application",
		EntityID:    &a.ID,
	})

	_ = s.publisher.Publish(ctx, events.StreamThreads, events.Event{
		Type:       events.EventApplicationCreated,
		Recipients: []string{campaign.CompanyUserID.String(), influencerUserID.String()},
		Payload: map[string]any{
			"application_id": a.ID.String(),
			"campaign_id":    campaignID.String(),
			"campaign_name":  campaign.Name,
		},
	})

	return a, nil
}

// ListForCampaign is the owning company's view of a campaign's applications.
// A wrong owner gets "not found", same as a missing campaign.
func (s *ApplicationService) ListForCampaign(ctx context.Context, companyUserID, campaignID uuid.UUID) ([]models.ApplicationWithCampaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil || campaign.CompanyUserID != companyUserID {
		return nil, fmt.Errorf("campaign %w", ErrNotFound)
	}
	return s.applicationRepo.ListByCampaign(ctx, campaignID)
}

func (s *ApplicationService) ListForInfluencer(ctx context.Context, influencerUserID uuid.UUID) ([]models.ApplicationWithCampaign, error) {
	return s.applicationRepo.ListByInfluencer(ctx, influencerUserID)
}

func (s *ApplicationService) loadForParticipant(ctx context.Context, userID, applicationID uuid.UUID) (*models.ApplicationWithCampaign, error) {
	a, err := s.applicationRepo.GetByIDWithCampaign(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("application %w", ErrNotFound)
	}
	if !a.IsParticipant(userID) {
		return nil, fmt.Errorf("%w: not a participant in this conversation", ErrForbidden)
	}
	return a, nil
}

// Respond appends a message to the application's thread and returns the full
// thread in ascending order. Only the campaign's owning company and the
// applying influencer may write.
func (s *ApplicationService) Respond(ctx context.Context, userID, applicationID uuid.UUID, content string) ([]models.Response, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrInvalid)
	}

	a, err := s.loadForParticipant(ctx, userID, applicationID)
	if err != nil {
		return nil, err
	}

	resp := &models.Response{
		ApplicationID: applicationID,
		UserID:        userID,
		Content:       content,
	}
	if err := s.applicationRepo.CreateResponse(ctx, resp); err != nil {
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "response_created",
		EntityType:  "application",
		EntityID:    &applicationID,
	})

	_ = s.publisher.Publish(ctx, events.StreamThreads, events.Event{
		Type:       events.EventResponseCreated,
		Recipients: []string{a.CompanyUserID.String(), a.InfluencerUserID.String()},
		Payload: map[string]any{
			"application_id": applicationID.String(),
			"response_id":    resp.ID.String(),
			"author_id":      userID.String(),
		},
	})

	return s.applicationRepo.ListResponses(ctx, applicationID)
}

// Thread returns the ordered response list for one of the two participants.
func (s *ApplicationService) Thread(ctx context.Context, userID, applicationID uuid.UUID) ([]models.Response, error) {
	if _, err := s.loadForParticipant(ctx, userID, applicationID); err != nil {
		return nil, err
	}
	return s.applicationRepo.ListResponses(ctx, applicationID)
}

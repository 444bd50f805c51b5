package handlers

import (
	"github.com/collabmatch/backend/internal/http/dto"
	"github.com/collabmatch/backend/internal/middleware"
	"github.com/collabmatch/backend/internal/models"
	"github.com/collabmatch/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CampaignHandler struct {
	campaignService *services.CampaignService
	feedService     *services.FeedService
	log             *zap.Logger
}

func NewCampaignHandler(campaignService *services.CampaignService, feedService *services.FeedService, log *zap.Logger) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService, feedService: feedService, log: log}
}

func (h *CampaignHandler) CreateCampaign(c *fiber.Ctx) error {
	var req dto.CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	if req.Name == "" || req.Budget == "" || req.Deadline.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "name, budget, and deadline are required"})
	}

	categoryIDs, err := parseUUIDs(req.CategoryIDs)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid category id"})
	}

	campaign := &models.Campaign{
		Name:        req.Name,
		Description: req.Description,
		Budget:      req.Budget,
		Deadline:    req.Deadline,
	}

	userID := middleware.GetUserID(c)
	if err := h.campaignService.Create(c.Context(), userID, campaign, categoryIDs); err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

// ListCampaigns branches on caller type: companies see their own campaigns,
// influencers see the matching feed (which also counts first views).
func (h *CampaignHandler) ListCampaigns(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	if middleware.GetUserType(c) == models.UserTypeCompany {
		campaigns, err := h.campaignService.ListOwned(c.Context(), userID)
		if err != nil {
			h.log.Error("list campaigns failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
		}
		return c.JSON(dto.SuccessResponse{OK: true, Data: campaigns})
	}

	feed, err := h.feedService.InfluencerFeed(c.Context(), userID, c.Query("q"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: feed})
}

func (h *CampaignHandler) GetCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	userID := middleware.GetUserID(c)
	campaign, err := h.campaignService.GetOwned(c.Context(), id, userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) UpdateCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	var req dto.UpdateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	if req.Name == "" || req.Budget == "" || req.Deadline.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "name, budget, and deadline are required"})
	}

	categoryIDs, err := parseUUIDs(req.CategoryIDs)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid category id"})
	}

	campaign := &models.Campaign{
		Name:        req.Name,
		Description: req.Description,
		Budget:      req.Budget,
		Deadline:    req.Deadline,
	}

	userID := middleware.GetUserID(c)
	updated, err := h.campaignService.Update(c.Context(), id, userID, campaign, categoryIDs)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: updated})
}

func (h *CampaignHandler) AddComment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	userID := middleware.GetUserID(c)
	comment, err := h.campaignService.AddComment(c.Context(), userID, id, req.Content)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: comment})
}

func (h *CampaignHandler) ToggleLike(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	userID := middleware.GetUserID(c)
	liked, likes, err := h.campaignService.ToggleLike(c.Context(), userID, id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: dto.LikeResponse{Liked: liked, LikesCount: likes}})
}

// MatchingInfluencers lists influencers whose profile categories intersect
// the campaign's. Owner only.
func (h *CampaignHandler) MatchingInfluencers(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	userID := middleware.GetUserID(c)
	entries, err := h.feedService.MatchingInfluencers(c.Context(), userID, id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: entries})
}

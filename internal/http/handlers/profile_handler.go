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

type ProfileHandler struct {
	profileService *services.ProfileService
	log            *zap.Logger
}

func NewProfileHandler(profileService *services.ProfileService, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, log: log}
}

func socialLinksFromRequest(r *dto.SocialLinksRequest) models.SocialLinks {
	if r == nil {
		return models.SocialLinks{}
	}
	return models.SocialLinks{
		InstagramURL: r.InstagramURL,
		YouTubeURL:   r.YouTubeURL,
		FacebookURL:  r.FacebookURL,
		XURL:         r.XURL,
	}
}

func (h *ProfileHandler) CreateProfile(c *fiber.Ctx) error {
	var req dto.CreateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	categoryIDs, err := parseUUIDs(req.CategoryIDs)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid category id"})
	}

	userID := middleware.GetUserID(c)
	view, err := h.profileService.Create(c.Context(), userID, services.ProfileInput{
		Bio:          req.Bio,
		Website:      req.Website,
		Location:     req.Location,
		CategoryIDs:  categoryIDs,
		SocialLinks:  socialLinksFromRequest(req.SocialLinks),
		CompanySize:  req.CompanySize,
		Description:  req.Description,
		Platforms:    req.Platforms,
		AudienceSize: req.AudienceSize,
		AboutMe:      req.AboutMe,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: view})
}

func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	var categoryIDs []uuid.UUID
	if req.CategoryIDs != nil {
		ids, err := parseUUIDs(req.CategoryIDs)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid category id"})
		}
		categoryIDs = ids
	}

	var links *models.SocialLinks
	if req.SocialLinks != nil {
		l := socialLinksFromRequest(req.SocialLinks)
		links = &l
	}

	userID := middleware.GetUserID(c)
	view, err := h.profileService.Edit(c.Context(), userID, services.ProfileUpdate{
		Bio:          req.Bio,
		Website:      req.Website,
		Location:     req.Location,
		CategoryIDs:  categoryIDs,
		SocialLinks:  links,
		CompanySize:  req.CompanySize,
		Description:  req.Description,
		Platforms:    req.Platforms,
		AudienceSize: req.AudienceSize,
		AboutMe:      req.AboutMe,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: view})
}

func (h *ProfileHandler) MyProfile(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	view, err := h.profileService.View(c.Context(), userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: view})
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid profile id"})
	}
	view, err := h.profileService.ViewByProfileID(c.Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: view})
}

func (h *ProfileHandler) ListCompanies(c *fiber.Ctx) error {
	entries, err := h.profileService.Companies(c.Context())
	if err != nil {
		h.log.Error("list companies failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: entries})
}

func (h *ProfileHandler) ListInfluencers(c *fiber.Ctx) error {
	entries, err := h.profileService.Influencers(c.Context())
	if err != nil {
		h.log.Error("list influencers failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: entries})
}

package handlers

import (
	"github.com/collabmatch/backend/internal/http/dto"
	"github.com/collabmatch/backend/internal/models"
	"github.com/collabmatch/backend/internal/repositories"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type MetaHandler struct {
	categoryRepo *repositories.CategoryRepo
	log          *zap.Logger
}

func NewMetaHandler(categoryRepo *repositories.CategoryRepo, log *zap.Logger) *MetaHandler {
	return &MetaHandler{categoryRepo: categoryRepo, log: log}
}

func (h *MetaHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.categoryRepo.List(c.Context())
	if err != nil {
		h.log.Error("list categories failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: categories})
}

func (h *MetaHandler) GetCompanySizes(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: models.AllCompanySizes})
}

func (h *MetaHandler) GetAudienceSizes(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: models.AllAudienceSizes})
}

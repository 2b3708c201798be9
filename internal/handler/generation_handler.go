package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"aifolio/internal/service"
)

// GenerationHandler handles the content generator endpoints.
type GenerationHandler struct {
	svc service.GenerationService
}

// NewGenerationHandler creates a new generation handler.
func NewGenerationHandler(svc service.GenerationService) *GenerationHandler {
	return &GenerationHandler{svc: svc}
}

// GenerateRequest represents a content generation request.
type GenerateRequest struct {
	Prompt    string `json:"prompt" validate:"required"`
	UserID    int    `json:"userId"`
	ModelUsed string `json:"modelUsed"`
}

// Generate godoc
// @Summary Generate content from a prompt
// @Tags generations
// @Accept json
// @Produce json
// @Param request body GenerateRequest true "Generation request"
// @Success 201 {object} model.Generation
// @Failure 400 {object} errors.ValidationErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /generate [post]
func (h *GenerationHandler) Generate(c echo.Context) error {
	var req GenerateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	generation, err := h.svc.Generate(c.Request().Context(), req.UserID, req.Prompt, req.ModelUsed)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, generation)
}

// History godoc
// @Summary List a user's generation history
// @Tags generations
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} model.Generation
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /generations/{userId} [get]
func (h *GenerationHandler) History(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id format")
	}

	generations, err := h.svc.History(c.Request().Context(), userID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, generations)
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"aifolio/internal/model"
	"aifolio/internal/service"
)

// CaseStudyHandler handles portfolio case-study endpoints.
type CaseStudyHandler struct {
	svc service.CaseStudyService
}

// NewCaseStudyHandler creates a new case-study handler.
func NewCaseStudyHandler(svc service.CaseStudyService) *CaseStudyHandler {
	return &CaseStudyHandler{svc: svc}
}

// CreateCaseStudyRequest represents a case-study creation request.
type CreateCaseStudyRequest struct {
	Title        string   `json:"title" validate:"required"`
	Slug         string   `json:"slug" validate:"required"`
	Summary      string   `json:"summary" validate:"required"`
	Content      string   `json:"content" validate:"required"`
	ImageURL     string   `json:"imageUrl"`
	Status       string   `json:"status" validate:"omitempty,oneof=draft published"`
	Category     string   `json:"category" validate:"required"`
	ClientName   string   `json:"clientName"`
	Technologies []string `json:"technologies"`
}

// UpdateCaseStudyRequest is a partial update: absent fields are preserved.
type UpdateCaseStudyRequest struct {
	Title        *string   `json:"title"`
	Slug         *string   `json:"slug"`
	Summary      *string   `json:"summary"`
	Content      *string   `json:"content"`
	ImageURL     *string   `json:"imageUrl"`
	Status       *string   `json:"status" validate:"omitempty,oneof=draft published"`
	Category     *string   `json:"category"`
	ClientName   *string   `json:"clientName"`
	Technologies *[]string `json:"technologies"`
}

// List godoc
// @Summary List all case studies
// @Tags case-studies
// @Produce json
// @Success 200 {array} model.CaseStudy
// @Failure 500 {object} errors.ErrorResponse
// @Router /case-studies [get]
func (h *CaseStudyHandler) List(c echo.Context) error {
	studies, err := h.svc.List(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, studies)
}

// GetBySlug godoc
// @Summary Get a case study by slug
// @Tags case-studies
// @Produce json
// @Param slug path string true "Case study slug"
// @Success 200 {object} model.CaseStudy
// @Failure 404 {object} errors.ErrorResponse
// @Router /case-studies/{slug} [get]
func (h *CaseStudyHandler) GetBySlug(c echo.Context) error {
	study, err := h.svc.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, study)
}

// Create godoc
// @Summary Create a case study
// @Tags case-studies
// @Accept json
// @Produce json
// @Param request body CreateCaseStudyRequest true "Case study payload"
// @Success 201 {object} model.CaseStudy
// @Failure 400 {object} errors.ValidationErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /case-studies [post]
func (h *CaseStudyHandler) Create(c echo.Context) error {
	var req CreateCaseStudyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	study, err := h.svc.Create(c.Request().Context(), model.InsertCaseStudy{
		Title:        req.Title,
		Slug:         req.Slug,
		Summary:      req.Summary,
		Content:      req.Content,
		ImageURL:     req.ImageURL,
		Status:       req.Status,
		Category:     req.Category,
		ClientName:   req.ClientName,
		Technologies: req.Technologies,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, study)
}

// Update godoc
// @Summary Update a case study
// @Tags case-studies
// @Accept json
// @Produce json
// @Param id path int true "Case study ID"
// @Param request body UpdateCaseStudyRequest true "Fields to update"
// @Success 200 {object} model.CaseStudy
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /case-studies/{id} [patch]
func (h *CaseStudyHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id format")
	}

	var req UpdateCaseStudyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	study, err := h.svc.Update(c.Request().Context(), id, model.UpdateCaseStudy{
		Title:        req.Title,
		Slug:         req.Slug,
		Summary:      req.Summary,
		Content:      req.Content,
		ImageURL:     req.ImageURL,
		Status:       req.Status,
		Category:     req.Category,
		ClientName:   req.ClientName,
		Technologies: req.Technologies,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, study)
}

// Delete godoc
// @Summary Delete a case study
// @Tags case-studies
// @Param id path int true "Case study ID"
// @Success 204 "deleted"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /case-studies/{id} [delete]
func (h *CaseStudyHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id format")
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

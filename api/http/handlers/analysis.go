package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/rapt-app/rapt/api/http/presenter"
	"github.com/rapt-app/rapt/pkg/analysis"
)

type AnalysisHandler struct {
	uc analysis.UseCase
}

func NewAnalysisHandler(uc analysis.UseCase) *AnalysisHandler { return &AnalysisHandler{uc: uc} }

type createAnalysisRequest struct {
	ResumeID string `json:"resumeId"`
}

// Create runs the ATS engine over a stored resume and persists the result.
// @Summary Create ATS analysis for a resume
// @Tags    analyses
// @Accept  json
// @Produce json
// @Param   input body createAnalysisRequest true "resumeId"
// @Security BearerAuth
// @Success 201 {object} analysis.Analysis
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /analyses [post]
func (h *AnalysisHandler) Create(c *fiber.Ctx) error {
	var req createAnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	resumeID, err := uuid.Parse(req.ResumeID)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid resumeId")
	}
	actorID, isAdmin, err := actor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "failed to identify user")
	}

	out, err := h.uc.Create(c.Context(), actorID, isAdmin, resumeID)
	if err != nil {
		// missing record and no access look the same to the caller
		return presenter.Error(c, http.StatusNotFound, err.Error())
	}
	return presenter.JSON(c, http.StatusCreated, out)
}

// Get returns one analysis by id (owner or admin).
// @Summary Get analysis
// @Tags    analyses
// @Produce json
// @Param   id path string true "analysis ID (UUID)"
// @Security BearerAuth
// @Success 200 {object} analysis.Analysis
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /analyses/{id} [get]
func (h *AnalysisHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	actorID, isAdmin, err := actor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "failed to identify user")
	}
	out, err := h.uc.Get(c.Context(), actorID, isAdmin, id)
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "analysis not found")
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// List returns the current user's analyses (admin sees all).
// @Summary List analyses
// @Tags    analyses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} analysis.Analysis
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /analyses [get]
func (h *AnalysisHandler) List(c *fiber.Ctx) error {
	actorID, isAdmin, err := actor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "failed to identify user")
	}
	limit, offset := parseLimitOffset(c, 50)
	items, err := h.uc.List(c.Context(), actorID, isAdmin, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list analyses")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// ListByResume returns analyses for one resume (resume owner or admin).
// @Summary List analyses for a resume
// @Tags    analyses
// @Produce json
// @Param   id path string true "resume ID (UUID)"
// @Security BearerAuth
// @Success 200 {array} analysis.Analysis
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resumes/{id}/analyses [get]
func (h *AnalysisHandler) ListByResume(c *fiber.Ctx) error {
	resumeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	actorID, isAdmin, err := actor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "failed to identify user")
	}
	limit, offset := parseLimitOffset(c, 50)
	items, err := h.uc.ListByResume(c.Context(), actorID, isAdmin, resumeID, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "analyses not found")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Delete removes an analysis (owner or admin).
// @Summary Delete analysis
// @Tags    analyses
// @Param   id path string true "analysis ID (UUID)"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /analyses/{id} [delete]
func (h *AnalysisHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	actorID, isAdmin, err := actor(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "failed to identify user")
	}
	if err := h.uc.Delete(c.Context(), actorID, isAdmin, id); err != nil {
		return presenter.Error(c, http.StatusNotFound, "analysis not found")
	}
	return c.SendStatus(http.StatusNoContent)
}

func actor(c *fiber.Ctx) (uuid.UUID, bool, error) {
	userIDStr, _ := c.Locals("userId").(string)
	actorID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, false, err
	}
	isAdmin, _ := c.Locals("isAdmin").(bool)
	return actorID, isAdmin, nil
}

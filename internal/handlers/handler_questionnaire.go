package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/profileiq/profileiq-backend/internal/apperrors"
	portssvc "github.com/profileiq/profileiq-backend/internal/core/ports/services"
	"github.com/profileiq/profileiq-backend/internal/dto"
	"github.com/profileiq/profileiq-backend/internal/middleware"
)

// questionnaireHandler handles HTTP requests related to questionnaires.
type questionnaireHandler struct {
	questionnaireService portssvc.QuestionnaireSvcFacade
}

// newQuestionnaireHandler creates a new questionnaireHandler.
func newQuestionnaireHandler(qs portssvc.QuestionnaireSvcFacade) *questionnaireHandler {
	return &questionnaireHandler{
		questionnaireService: qs,
	}
}

// registerQuestionnaireRoutes registers routes related to questionnaires.
func registerQuestionnaireRoutes(rg *gin.RouterGroup, questionnaireService portssvc.QuestionnaireSvcFacade) {
	h := newQuestionnaireHandler(questionnaireService)

	questionnaires := rg.Group("/questionnaires")
	{
		questionnaires.POST("", h.createQuestionnaire)
		questionnaires.GET("", h.listQuestionnaires)
		questionnaires.GET("/:questionnaireID", h.getQuestionnaireByID)
		questionnaires.PUT("/:questionnaireID", h.updateQuestionnaire)
		questionnaires.DELETE("/:questionnaireID", h.deleteQuestionnaire)
	}
}

// createQuestionnaire godoc
// @Summary Create a questionnaire
// @Description Creates a questionnaire with its questions in payload order
// @Tags questionnaires
// @Accept json
// @Produce json
// @Param questionnaire body dto.CreateQuestionnaireRequest true "Questionnaire details"
// @Success 201 {object} dto.QuestionnaireResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create questionnaire"
// @Security BearerAuth
// @Router /questionnaires [post]
func (h *questionnaireHandler) createQuestionnaire(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateQuestionnaireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateQuestionnaire", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.questionnaireService.CreateQuestionnaire(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create questionnaire", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create questionnaire"})
		}
		return
	}

	logger.Info("Questionnaire created", slog.String("questionnaire_id", created.QuestionnaireID))
	c.JSON(http.StatusCreated, dto.ToQuestionnaireResponse(created))
}

// listQuestionnaires godoc
// @Summary List questionnaires
// @Tags questionnaires
// @Produce json
// @Success 200 {object} dto.ListQuestionnairesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list questionnaires"
// @Security BearerAuth
// @Router /questionnaires [get]
func (h *questionnaireHandler) listQuestionnaires(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	questionnaires, err := h.questionnaireService.ListQuestionnaires(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list questionnaires", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list questionnaires"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListQuestionnairesResponse(questionnaires))
}

// getQuestionnaireByID godoc
// @Summary Get a questionnaire by ID
// @Tags questionnaires
// @Produce json
// @Param questionnaireID path string true "Questionnaire ID"
// @Success 200 {object} dto.QuestionnaireResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Questionnaire not found"
// @Failure 500 {object} map[string]string "Failed to retrieve questionnaire"
// @Security BearerAuth
// @Router /questionnaires/{questionnaireID} [get]
func (h *questionnaireHandler) getQuestionnaireByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	questionnaireID := c.Param("questionnaireID")

	questionnaire, err := h.questionnaireService.GetQuestionnaireByID(c.Request.Context(), questionnaireID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Questionnaire not found"})
		} else {
			logger.Error("Failed to get questionnaire", slog.String("questionnaire_id", questionnaireID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve questionnaire"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToQuestionnaireResponse(questionnaire))
}

// updateQuestionnaire godoc
// @Summary Update a questionnaire
// @Description Updates a questionnaire; a provided question list replaces the existing one
// @Tags questionnaires
// @Accept json
// @Produce json
// @Param questionnaireID path string true "Questionnaire ID"
// @Param questionnaire body dto.UpdateQuestionnaireRequest true "Fields to update"
// @Success 200 {object} dto.QuestionnaireResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Questionnaire not found"
// @Failure 500 {object} map[string]string "Failed to update questionnaire"
// @Security BearerAuth
// @Router /questionnaires/{questionnaireID} [put]
func (h *questionnaireHandler) updateQuestionnaire(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	questionnaireID := c.Param("questionnaireID")

	var req dto.UpdateQuestionnaireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateQuestionnaire", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.questionnaireService.UpdateQuestionnaire(c.Request.Context(), questionnaireID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Questionnaire not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update questionnaire", slog.String("questionnaire_id", questionnaireID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update questionnaire"})
		}
		return
	}

	logger.Info("Questionnaire updated", slog.String("questionnaire_id", questionnaireID))
	c.JSON(http.StatusOK, dto.ToQuestionnaireResponse(updated))
}

// deleteQuestionnaire godoc
// @Summary Delete a questionnaire
// @Tags questionnaires
// @Produce json
// @Param questionnaireID path string true "Questionnaire ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Questionnaire not found"
// @Failure 500 {object} map[string]string "Failed to delete questionnaire"
// @Security BearerAuth
// @Router /questionnaires/{questionnaireID} [delete]
func (h *questionnaireHandler) deleteQuestionnaire(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	questionnaireID := c.Param("questionnaireID")

	if err := h.questionnaireService.DeleteQuestionnaire(c.Request.Context(), questionnaireID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Questionnaire not found"})
		} else {
			logger.Error("Failed to delete questionnaire", slog.String("questionnaire_id", questionnaireID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete questionnaire"})
		}
		return
	}

	logger.Info("Questionnaire deleted", slog.String("questionnaire_id", questionnaireID))
	c.Status(http.StatusNoContent)
}

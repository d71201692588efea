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

// chatbotHandler handles HTTP requests related to canned chatbot responses.
type chatbotHandler struct {
	chatbotService portssvc.ChatbotSvcFacade
}

// newChatbotHandler creates a new chatbotHandler.
func newChatbotHandler(cs portssvc.ChatbotSvcFacade) *chatbotHandler {
	return &chatbotHandler{
		chatbotService: cs,
	}
}

// registerChatbotRoutes registers routes related to the chatbot.
func registerChatbotRoutes(rg *gin.RouterGroup, chatbotService portssvc.ChatbotSvcFacade) {
	h := newChatbotHandler(chatbotService)

	chatbot := rg.Group("/chatbot")
	{
		chatbot.GET("/answer", h.getAnswer)
		chatbot.POST("/responses", h.createResponse)
		chatbot.GET("/responses", h.listResponses)
		chatbot.DELETE("/responses/:responseID", h.deleteResponse)
	}
}

// getAnswer godoc
// @Summary Look up a chatbot answer
// @Description Returns the canned answer for a profile, section and question, or a fixed fallback message
// @Tags chatbot
// @Produce json
// @Param profileID query string true "Profile ID"
// @Param section query string true "Section"
// @Param question query string true "Question"
// @Success 200 {object} dto.ChatbotAnswerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to look up answer"
// @Security BearerAuth
// @Router /chatbot/answer [get]
func (h *chatbotHandler) getAnswer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ChatbotLookupParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for GetAnswer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	answer, err := h.chatbotService.GetResponse(c.Request.Context(), params.ProfileID, params.Section, params.Question)
	if err != nil {
		logger.Error("Failed to look up chatbot answer", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up answer"})
		return
	}

	c.JSON(http.StatusOK, dto.ChatbotAnswerResponse{Response: answer})
}

// createResponse godoc
// @Summary Author a canned response
// @Tags chatbot
// @Accept json
// @Produce json
// @Param response body dto.CreateChatbotResponseRequest true "Response details"
// @Success 201 {object} dto.ChatbotResponseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create response"
// @Security BearerAuth
// @Router /chatbot/responses [post]
func (h *chatbotHandler) createResponse(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateChatbotResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateResponse", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.chatbotService.CreateResponse(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create chatbot response", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create response"})
		}
		return
	}

	logger.Info("Chatbot response created", slog.String("response_id", created.ResponseID))
	c.JSON(http.StatusCreated, dto.ToChatbotResponseResponse(created))
}

// listResponses godoc
// @Summary List canned responses
// @Tags chatbot
// @Produce json
// @Success 200 {object} dto.ListChatbotResponsesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list responses"
// @Security BearerAuth
// @Router /chatbot/responses [get]
func (h *chatbotHandler) listResponses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	responses, err := h.chatbotService.ListResponses(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list chatbot responses", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list responses"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListChatbotResponsesResponse(responses))
}

// deleteResponse godoc
// @Summary Delete a canned response
// @Tags chatbot
// @Produce json
// @Param responseID path string true "Response ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Response not found"
// @Failure 500 {object} map[string]string "Failed to delete response"
// @Security BearerAuth
// @Router /chatbot/responses/{responseID} [delete]
func (h *chatbotHandler) deleteResponse(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	responseID := c.Param("responseID")

	if err := h.chatbotService.DeleteResponse(c.Request.Context(), responseID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Response not found"})
		} else {
			logger.Error("Failed to delete chatbot response", slog.String("response_id", responseID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete response"})
		}
		return
	}

	logger.Info("Chatbot response deleted", slog.String("response_id", responseID))
	c.Status(http.StatusNoContent)
}

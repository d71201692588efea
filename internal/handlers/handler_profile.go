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

// profileHandler handles HTTP requests related to behavioral profiles.
type profileHandler struct {
	profileService portssvc.ProfileSvcFacade
}

// newProfileHandler creates a new profileHandler.
func newProfileHandler(ps portssvc.ProfileSvcFacade) *profileHandler {
	return &profileHandler{
		profileService: ps,
	}
}

// registerProfileRoutes registers routes related to profiles.
func registerProfileRoutes(rg *gin.RouterGroup, profileService portssvc.ProfileSvcFacade) {
	h := newProfileHandler(profileService)

	profiles := rg.Group("/profiles")
	{
		profiles.POST("", h.createProfile)
		profiles.GET("", h.listProfiles)
		profiles.GET("/:profileID", h.getProfileByID)
		profiles.PUT("/:profileID", h.updateProfile)
		profiles.DELETE("/:profileID", h.deleteProfile)
	}
}

// createProfile godoc
// @Summary Create a profile
// @Description Creates a behavioral profile with its threshold rules
// @Tags profiles
// @Accept json
// @Produce json
// @Param profile body dto.CreateProfileRequest true "Profile details"
// @Success 201 {object} dto.ProfileResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create profile"
// @Security BearerAuth
// @Router /profiles [post]
func (h *profileHandler) createProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateProfile", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.profileService.CreateProfile(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create profile", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create profile"})
		}
		return
	}

	logger.Info("Profile created", slog.String("profile_id", created.ProfileID))
	c.JSON(http.StatusCreated, dto.ToProfileResponse(created))
}

// listProfiles godoc
// @Summary List profiles
// @Tags profiles
// @Produce json
// @Success 200 {object} dto.ListProfilesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list profiles"
// @Security BearerAuth
// @Router /profiles [get]
func (h *profileHandler) listProfiles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	profiles, err := h.profileService.ListProfiles(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list profiles", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list profiles"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListProfilesResponse(profiles))
}

// getProfileByID godoc
// @Summary Get a profile by ID
// @Tags profiles
// @Produce json
// @Param profileID path string true "Profile ID"
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Profile not found"
// @Failure 500 {object} map[string]string "Failed to retrieve profile"
// @Security BearerAuth
// @Router /profiles/{profileID} [get]
func (h *profileHandler) getProfileByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	profileID := c.Param("profileID")

	profile, err := h.profileService.GetProfileByID(c.Request.Context(), profileID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		} else {
			logger.Error("Failed to get profile", slog.String("profile_id", profileID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// updateProfile godoc
// @Summary Update a profile
// @Description Updates a profile; a provided rule list replaces the existing one
// @Tags profiles
// @Accept json
// @Produce json
// @Param profileID path string true "Profile ID"
// @Param profile body dto.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Profile not found"
// @Failure 500 {object} map[string]string "Failed to update profile"
// @Security BearerAuth
// @Router /profiles/{profileID} [put]
func (h *profileHandler) updateProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	profileID := c.Param("profileID")

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateProfile", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.profileService.UpdateProfile(c.Request.Context(), profileID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update profile", slog.String("profile_id", profileID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		}
		return
	}

	logger.Info("Profile updated", slog.String("profile_id", profileID))
	c.JSON(http.StatusOK, dto.ToProfileResponse(updated))
}

// deleteProfile godoc
// @Summary Delete a profile
// @Tags profiles
// @Produce json
// @Param profileID path string true "Profile ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Profile not found"
// @Failure 500 {object} map[string]string "Failed to delete profile"
// @Security BearerAuth
// @Router /profiles/{profileID} [delete]
func (h *profileHandler) deleteProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	profileID := c.Param("profileID")

	if err := h.profileService.DeleteProfile(c.Request.Context(), profileID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		} else {
			logger.Error("Failed to delete profile", slog.String("profile_id", profileID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete profile"})
		}
		return
	}

	logger.Info("Profile deleted", slog.String("profile_id", profileID))
	c.Status(http.StatusNoContent)
}

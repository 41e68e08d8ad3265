package handler

import (
	"net/http"

	"github.com/JSharma2K/cofounded/internal/usecase/profile"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUseCase *profile.UseCase
}

func NewProfileHandler(profileUseCase *profile.UseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

// UpsertUser handles PUT /onboarding/user
// @Summary Save basic user info
// @Description Onboarding step 1: display name, age band, timezone, role
// @Tags onboarding
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body profile.UserInfoRequest true "User info"
// @Success 200 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /onboarding/user [put]
func (h *ProfileHandler) UpsertUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req profile.UserInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	user, err := h.profileUseCase.UpsertUser(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpsertProfile handles PUT /onboarding/profile
// @Summary Save profile
// @Description Onboarding step 2: headline, bio, domains, skills, stage
// @Tags onboarding
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body profile.ProfileRequest true "Profile data"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /onboarding/profile [put]
func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req profile.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	p, err := h.profileUseCase.UpsertProfile(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// UpsertIntent handles PUT /onboarding/intent
// @Summary Save matching intent
// @Description Onboarding step 3: who the user is looking for
// @Tags onboarding
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body profile.IntentRequest true "Intent data"
// @Success 200 {object} domain.Intent
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /onboarding/intent [put]
func (h *ProfileHandler) UpsertIntent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req profile.IntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	intent, err := h.profileUseCase.UpsertIntent(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, intent)
}

// OnboardingStatus handles GET /onboarding/status
// @Summary Get onboarding progress
// @Tags onboarding
// @Security BearerAuth
// @Produce json
// @Success 200 {object} profile.OnboardingStatus
// @Failure 401 {object} ErrorResponse
// @Router /onboarding/status [get]
func (h *ProfileHandler) OnboardingStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	status, err := h.profileUseCase.Status(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// GetMyProfile handles GET /profile/me
// @Summary Get my full profile
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.Candidate
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /profile/me [get]
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	bundle, err := h.profileUseCase.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bundle)
}

// GetProfileByUserID handles GET /profile/:user_id
// @Summary Get another user's profile
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} domain.Candidate
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /profile/{user_id} [get]
func (h *ProfileHandler) GetProfileByUserID(c *gin.Context) {
	bundle, err := h.profileUseCase.Get(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bundle)
}

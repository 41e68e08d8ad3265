package handler

import (
	"net/http"

	"github.com/JSharma2K/cofounded/internal/usecase/auth"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase *auth.UseCase
}

func NewAuthHandler(authUseCase *auth.UseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// SendCodeRequest represents a one-time code request
type SendCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyCodeRequest represents code verification
type VerifyCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

// SendCode handles POST /auth/code
// @Summary Request sign-in code
// @Description Email a one-time sign-in code to the given address
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SendCodeRequest true "Email address"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /auth/code [post]
func (h *AuthHandler) SendCode(c *gin.Context) {
	var req SendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	if err := h.authUseCase.SendCode(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "code sent",
	})
}

// VerifyCode handles POST /auth/verify
// @Summary Verify sign-in code
// @Description Exchange a one-time code for a session token. First
// verification creates the user record.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body VerifyCodeRequest true "Email and code"
// @Success 200 {object} auth.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/verify [post]
func (h *AuthHandler) VerifyCode(c *gin.Context) {
	var req VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	result, err := h.authUseCase.VerifyCode(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Logout handles POST /auth/logout
// @Summary Sign out
// @Description Revoke the current session
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, exists := c.Get("session_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	if err := h.authUseCase.SignOut(c.Request.Context(), sessionID.(string)); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "logout failed",
		})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "signed out",
	})
}

// Me handles GET /auth/me
// @Summary Get current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.User
// @Failure 401 {object} ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.authUseCase.Me(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteAccount handles DELETE /auth/account
// @Summary Delete account
// @Description Remove the user and all dependent records
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/account [delete]
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	sessionID, _ := c.Get("session_id")

	if err := h.authUseCase.DeleteAccount(c.Request.Context(), userID, sessionID.(string)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "account deleted",
	})
}

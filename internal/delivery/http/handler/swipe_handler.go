package handler

import (
	"net/http"
	"strconv"

	"github.com/JSharma2K/cofounded/internal/domain"
	"github.com/JSharma2K/cofounded/internal/usecase/swipe"
	"github.com/gin-gonic/gin"
)

type SwipeHandler struct {
	swipeUseCase *swipe.UseCase
}

func NewSwipeHandler(swipeUseCase *swipe.UseCase) *SwipeHandler {
	return &SwipeHandler{
		swipeUseCase: swipeUseCase,
	}
}

// SwipeRequest represents a swipe submission
type SwipeRequest struct {
	TargetID  string `json:"target_id" binding:"required"`
	Direction string `json:"direction" binding:"required,oneof=like pass"`
}

// CreateSwipe handles POST /swipes
// @Summary Record a swipe
// @Description Record a like or pass. A reciprocal like creates the match
// and returns it in the same response.
// @Tags swipe
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body SwipeRequest true "Swipe data"
// @Success 200 {object} swipe.Result
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /swipes [post]
func (h *SwipeHandler) CreateSwipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req SwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	result, err := h.swipeUseCase.Record(c.Request.Context(), userID, req.TargetID, domain.SwipeDirection(req.Direction))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetLikesReceived handles GET /swipes/likes-received
// @Summary List likes received
// @Description Users who liked the current user, most recent first
// @Tags swipe
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} swipe.LikeReceived
// @Failure 401 {object} ErrorResponse
// @Router /swipes/likes-received [get]
func (h *SwipeHandler) GetLikesReceived(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	likes, err := h.swipeUseCase.LikesReceived(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"likes": likes,
		"count": len(likes),
	})
}

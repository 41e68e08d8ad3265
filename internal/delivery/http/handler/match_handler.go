package handler

import (
	"net/http"
	"strconv"

	"github.com/JSharma2K/cofounded/internal/usecase/match"
	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchUseCase *match.UseCase
}

func NewMatchHandler(matchUseCase *match.UseCase) *MatchHandler {
	return &MatchHandler{
		matchUseCase: matchUseCase,
	}
}

// GetMatches handles GET /matches
// @Summary List matches
// @Description All matches of the current user with both participants
// @Tags match
// @Security BearerAuth
// @Produce json
// @Success 200 {array} match.MatchWithUsers
// @Failure 401 {object} ErrorResponse
// @Router /matches [get]
func (h *MatchHandler) GetMatches(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	matches, err := h.matchUseCase.Matches(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"matches": matches,
		"count":   len(matches),
	})
}

// GetMessages handles GET /matches/:id/messages
// @Summary List messages
// @Description Message history of a match, oldest first
// @Tags match
// @Security BearerAuth
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {array} domain.Message
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /matches/{id}/messages [get]
func (h *MatchHandler) GetMessages(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	matchID, err := parseMatchID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid match id"})
		return
	}

	messages, err := h.matchUseCase.Messages(c.Request.Context(), userID, matchID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages": messages,
		"count":    len(messages),
	})
}

// SendMessage handles POST /matches/:id/messages
// @Summary Send a message
// @Tags match
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param request body match.SendMessageRequest true "Message body"
// @Success 201 {object} domain.Message
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /matches/{id}/messages [post]
func (h *MatchHandler) SendMessage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	matchID, err := parseMatchID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid match id"})
		return
	}

	var req match.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	message, err := h.matchUseCase.SendMessage(c.Request.Context(), userID, matchID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

func parseMatchID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

package handler

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/JSharma2K/cofounded/internal/domain"
	"github.com/JSharma2K/cofounded/internal/infrastructure/realtime"
	"github.com/JSharma2K/cofounded/internal/usecase/match"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WSHandler struct {
	hub          *realtime.Hub
	matchUseCase *match.UseCase
}

func NewWSHandler(hub *realtime.Hub, matchUseCase *match.UseCase) *WSHandler {
	return &WSHandler{
		hub:          hub,
		matchUseCase: matchUseCase,
	}
}

// Subscribe handles GET /ws?topic=...
// Topics are user:<id> (own events only) and match:<id> (participants
// only). The connection receives the topic's events as JSON frames.
func (h *WSHandler) Subscribe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	topic := c.Query("topic")
	if err := h.authorizeTopic(c, userID, topic); err != nil {
		respondError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}

	h.hub.Register(conn, topic)
}

func (h *WSHandler) authorizeTopic(c *gin.Context, userID, topic string) error {
	switch {
	case topic == realtime.UserTopic(userID):
		return nil
	case strings.HasPrefix(topic, "match:"):
		matchID, err := strconv.ParseInt(strings.TrimPrefix(topic, "match:"), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: malformed match topic", domain.ErrInvalidArgument)
		}
		return h.matchUseCase.CheckParticipant(c.Request.Context(), userID, matchID)
	default:
		return fmt.Errorf("%w: unknown topic", domain.ErrInvalidArgument)
	}
}

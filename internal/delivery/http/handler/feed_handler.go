package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/JSharma2K/cofounded/internal/domain"
	"github.com/JSharma2K/cofounded/internal/usecase/feed"
	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedUseCase *feed.UseCase
}

func NewFeedHandler(feedUseCase *feed.UseCase) *FeedHandler {
	return &FeedHandler{
		feedUseCase: feedUseCase,
	}
}

// GetCandidates handles GET /candidates
// @Summary Get candidate feed
// @Description List candidates the user has not swiped on yet, newest
// first. Filters are combined with AND; list filters match on overlap.
// @Tags feed
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Max candidates to return"
// @Param max_age query int false "Upper age bound"
// @Param seeking query string false "Comma-separated seeking values"
// @Param domains query string false "Comma-separated domains"
// @Param skills query string false "Comma-separated skills"
// @Param expertise query string false "Comma-separated expertise areas"
// @Param stage query string false "Startup stage"
// @Param experience_level query string false "Experience level"
// @Param investor_type query string false "Investor type"
// @Success 200 {array} domain.Candidate
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /candidates [get]
func (h *FeedHandler) GetCandidates(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be between 1 and 100"})
			return
		}
		limit = n
	}

	filters, err := parseFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	candidates, err := h.feedUseCase.Candidates(c.Request.Context(), userID, limit, filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"candidates": candidates,
		"count":      len(candidates),
	})
}

func parseFilters(c *gin.Context) (*feed.FilterParams, error) {
	f := &feed.FilterParams{
		Domains:   splitCSV(c.Query("domains")),
		Skills:    splitCSV(c.Query("skills")),
		Expertise: splitCSV(c.Query("expertise")),
	}

	if raw := c.Query("max_age"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 16 {
			return nil, errInvalidFilter("max_age")
		}
		f.MaxAge = n
	}

	for _, s := range splitCSV(c.Query("seeking")) {
		seeking := domain.Seeking(s)
		if !seeking.IsValid() {
			return nil, errInvalidFilter("seeking")
		}
		f.Seeking = append(f.Seeking, seeking)
	}

	if raw := c.Query("stage"); raw != "" {
		stage := domain.Stage(raw)
		if !stage.IsValid() {
			return nil, errInvalidFilter("stage")
		}
		f.Stage = &stage
	}

	if raw := c.Query("experience_level"); raw != "" {
		f.ExperienceLevel = &raw
	}
	if raw := c.Query("investor_type"); raw != "" {
		f.InvestorType = &raw
	}

	return f, nil
}

type filterError string

func errInvalidFilter(field string) error {
	return filterError("invalid filter value for " + field)
}

func (e filterError) Error() string { return string(e) }

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

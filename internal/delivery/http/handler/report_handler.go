package handler

import (
	"net/http"

	"github.com/JSharma2K/cofounded/internal/usecase/report"
	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportUseCase *report.UseCase
}

func NewReportHandler(reportUseCase *report.UseCase) *ReportHandler {
	return &ReportHandler{
		reportUseCase: reportUseCase,
	}
}

// CreateReport handles POST /reports
// @Summary Report a user
// @Tags report
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body report.SubmitRequest true "Report data"
// @Success 201 {object} domain.Report
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /reports [post]
func (h *ReportHandler) CreateReport(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req report.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	result, err := h.reportUseCase.Submit(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"devstudio/internal/repository"
	"devstudio/pkg/constants"
	apperrors "devstudio/pkg/errors"
)

type ReportHandler struct {
	reports *repository.ReportRepository
}

func NewReportHandler(reports *repository.ReportRepository) *ReportHandler {
	return &ReportHandler{reports: reports}
}

type CreateReportRequest struct {
	Month                int     `json:"month" binding:"required,min=1,max=12"`
	Year                 int     `json:"year" binding:"required,min=2020"`
	Revenue              float64 `json:"revenue"`
	ClientCount          int     `json:"client_count"`
	ActiveSubscriptions  int     `json:"active_subscriptions"`
	PastDueSubscriptions int     `json:"past_due_subscriptions"`
	NewQuotes            int     `json:"new_quotes"`
	CompletedProjects    int     `json:"completed_projects"`
}

func (h *ReportHandler) CreateReport(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reports.Create(c.Request.Context(), repository.NewMonthlyReport{
		Month:                req.Month,
		Year:                 req.Year,
		Revenue:              req.Revenue,
		ClientCount:          req.ClientCount,
		ActiveSubscriptions:  req.ActiveSubscriptions,
		PastDueSubscriptions: req.PastDueSubscriptions,
		NewQuotes:            req.NewQuotes,
		CompletedProjects:    req.CompletedProjects,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateReport) {
			c.JSON(http.StatusConflict, gin.H{"error": constants.ErrDuplicatePeriod})
			return
		}
		log.Printf("CreateReport error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create report"})
		return
	}
	c.JSON(http.StatusCreated, report)
}

func (h *ReportHandler) GetAllReports(c *gin.Context) {
	reports, err := h.reports.GetAll(c.Request.Context())
	if err != nil {
		log.Printf("GetAllReports error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reports"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

func (h *ReportHandler) GetReportByPeriod(c *gin.Context) {
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
		return
	}
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}

	report, err := h.reports.GetByPeriod(c.Request.Context(), month, year)
	if err != nil {
		log.Printf("GetReportByPeriod error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get report"})
		return
	}
	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}
	c.JSON(http.StatusOK, report)
}

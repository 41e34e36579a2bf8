package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"devstudio/internal/models"
	"devstudio/internal/repository"
	"devstudio/internal/validation"
	"devstudio/pkg/constants"
	"devstudio/pkg/email"
	"devstudio/pkg/telegram"
)

type QuoteHandler struct {
	quotes          *repository.QuoteRepository
	emailService    *email.EmailService
	telegramService *telegram.TelegramService
	adminEmail      string
}

func NewQuoteHandler(quotes *repository.QuoteRepository, emailService *email.EmailService, telegramService *telegram.TelegramService, adminEmail string) *QuoteHandler {
	return &QuoteHandler{
		quotes:          quotes,
		emailService:    emailService,
		telegramService: telegramService,
		adminEmail:      adminEmail,
	}
}

// SubmitQuoteRequest is the composed five-step form. Each step is re-checked
// here; the frontend validates per step as the user advances.
type SubmitQuoteRequest struct {
	UserID       *uint    `json:"user_id"`
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	CountryCode  string   `json:"country_code"`
	ServiceType  string   `json:"service_type"`
	BusinessArea string   `json:"business_area"`
	Features     []string `json:"features"`
	Description  *string  `json:"description"`
}

// ValidateStep checks one step of the quote form without persisting anything.
func (h *QuoteHandler) ValidateStep(c *gin.Context) {
	step, err := strconv.Atoi(c.Param("step"))
	if err != nil || step < 1 || step > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid step"})
		return
	}

	var fieldErrors []validation.FieldError
	switch step {
	case 1:
		var form validation.QuoteStep1
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		fieldErrors = validation.ValidateQuoteStep1(&form)
	case 2:
		var form validation.QuoteStep2
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		fieldErrors = validation.ValidateQuoteStep2(&form)
	case 3:
		var form validation.QuoteStep3
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		fieldErrors = validation.ValidateQuoteStep3(&form)
	case 4:
		var form validation.QuoteStep4
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		fieldErrors = validation.ValidateQuoteStep4(&form)
	case 5:
		var form validation.QuoteStep5
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		fieldErrors = validation.ValidateQuoteStep5(&form)
	}

	if len(fieldErrors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrors})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true})
}

func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	var req SubmitQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	step1 := validation.QuoteStep1{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		CountryCode: req.CountryCode,
	}
	fieldErrors := validation.ValidateQuoteStep1(&step1)
	fieldErrors = append(fieldErrors, validation.ValidateQuoteStep2(&validation.QuoteStep2{ServiceType: req.ServiceType})...)
	fieldErrors = append(fieldErrors, validation.ValidateQuoteStep3(&validation.QuoteStep3{BusinessArea: req.BusinessArea})...)
	fieldErrors = append(fieldErrors, validation.ValidateQuoteStep4(&validation.QuoteStep4{Features: req.Features})...)
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrors})
		return
	}

	quote, err := h.quotes.Create(c.Request.Context(), repository.NewQuote{
		UserID:       req.UserID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		CountryCode:  step1.CountryCode,
		ServiceType:  models.ServiceType(req.ServiceType),
		BusinessArea: req.BusinessArea,
		Features:     req.Features,
		Description:  req.Description,
	})
	if err != nil {
		log.Printf("SubmitQuote error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create quote"})
		return
	}

	clientName := req.FirstName + " " + req.LastName
	if err := h.emailService.SendQuoteNotification(h.adminEmail, clientName, req.Email, req.ServiceType, req.BusinessArea); err != nil {
		log.Printf("SubmitQuote warning: Failed to send email notification: %v", err)
	}
	if err := h.telegramService.SendQuoteNotification(clientName, req.Email, req.ServiceType, req.BusinessArea, time.Now()); err != nil {
		log.Printf("SubmitQuote warning: Failed to send Telegram notification: %v", err)
	}

	c.JSON(http.StatusCreated, quote)
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quote id"})
		return
	}

	quote, err := h.quotes.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		log.Printf("GetQuote error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get quote"})
		return
	}
	if quote == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": constants.ErrQuoteNotFound})
		return
	}
	c.JSON(http.StatusOK, quote)
}

func (h *QuoteHandler) GetAllQuotes(c *gin.Context) {
	quotes, err := h.quotes.GetAll(c.Request.Context())
	if err != nil {
		log.Printf("GetAllQuotes error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list quotes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotes": quotes})
}

func (h *QuoteHandler) GetQuotesByUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	quotes, err := h.quotes.GetByUser(c.Request.Context(), uint(userID))
	if err != nil {
		log.Printf("GetQuotesByUser error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list quotes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotes": quotes})
}

type UpdateQuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *QuoteHandler) UpdateQuoteStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quote id"})
		return
	}

	var req UpdateQuoteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := models.QuoteStatus(req.Status)
	if !status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidStatus})
		return
	}

	quote, err := h.quotes.UpdateStatus(c.Request.Context(), uint(id), status)
	if err != nil {
		log.Printf("UpdateQuoteStatus error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update quote status"})
		return
	}
	if quote == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": constants.ErrQuoteNotFound})
		return
	}
	c.JSON(http.StatusOK, quote)
}

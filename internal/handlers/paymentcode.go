package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v72"
	"gorm.io/gorm"

	"devstudio/internal/models"
	"devstudio/internal/repository"
	"devstudio/internal/validation"
	"devstudio/pkg/billing"
	"devstudio/pkg/constants"
	apperrors "devstudio/pkg/errors"
)

// billingClient is the slice of billing.StripeService the redemption flow
// uses.
type billingClient interface {
	CreateCustomer(email, name string) (string, error)
	CreatePaymentIntent(amount int64, currency string, customerID *string) (*stripe.PaymentIntent, error)
}

// redemptionNotifier is satisfied by telegram.TelegramService.
type redemptionNotifier interface {
	SendRedemptionNotification(code, name string, amount float64, redeemedAt time.Time) error
}

type PaymentCodeHandler struct {
	codes           *repository.PaymentCodeRepository
	payments        *repository.PaymentRepository
	stripeService   billingClient
	telegramService redemptionNotifier
}

func NewPaymentCodeHandler(codes *repository.PaymentCodeRepository, payments *repository.PaymentRepository, stripeService billingClient, telegramService redemptionNotifier) *PaymentCodeHandler {
	return &PaymentCodeHandler{
		codes:           codes,
		payments:        payments,
		stripeService:   stripeService,
		telegramService: telegramService,
	}
}

type CreatePaymentCodeRequest struct {
	Code        string  `json:"code" binding:"required,len=6"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description *string `json:"description"`
}

func (h *PaymentCodeHandler) CreatePaymentCode(c *gin.Context) {
	var req CreatePaymentCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	code, err := h.codes.Create(c.Request.Context(), repository.NewPaymentCode{
		Code:        req.Code,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Payment code already exists"})
			return
		}
		log.Printf("CreatePaymentCode error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment code"})
		return
	}
	c.JSON(http.StatusCreated, code)
}

func (h *PaymentCodeHandler) GetAllPaymentCodes(c *gin.Context) {
	codes, err := h.codes.GetAll(c.Request.Context())
	if err != nil {
		log.Printf("GetAllPaymentCodes error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payment codes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment_codes": codes})
}

func (h *PaymentCodeHandler) GetUsedPaymentCodes(c *gin.Context) {
	codes, err := h.codes.GetUsed(c.Request.Context())
	if err != nil {
		log.Printf("GetUsedPaymentCodes error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list used payment codes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment_codes": codes})
}

func (h *PaymentCodeHandler) DeletePaymentCode(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment code id"})
		return
	}

	deleted, err := h.codes.Delete(c.Request.Context(), uint(id))
	if err != nil {
		log.Printf("DeletePaymentCode error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment code"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": constants.ErrPaymentCodeNotFound})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// RedeemPaymentCode opens a Stripe payment for the code amount and marks the
// code used in one conditional update. A second redemption of the same code
// gets a conflict, not a silent overwrite.
func (h *PaymentCodeHandler) RedeemPaymentCode(c *gin.Context) {
	var form validation.RedeemForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if fieldErrors := validation.ValidateRedeemForm(&form); len(fieldErrors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrors})
		return
	}

	existing, err := h.codes.GetByCode(c.Request.Context(), form.Code)
	if err != nil {
		log.Printf("RedeemPaymentCode error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up payment code"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": constants.ErrPaymentCodeNotFound})
		return
	}
	if existing.IsUsed {
		c.JSON(http.StatusConflict, gin.H{"error": constants.ErrCodeAlreadyUsed})
		return
	}

	var customerRef *string
	customerID, err := h.stripeService.CreateCustomer(form.Email, form.Name)
	if err != nil {
		// The charge can still go through anonymously.
		log.Printf("RedeemPaymentCode warning: Failed to create Stripe customer: %v", err)
	} else {
		customerRef = &customerID
	}

	intent, err := h.stripeService.CreatePaymentIntent(billing.AmountToCents(existing.Amount), "eur", customerRef)
	if err != nil {
		log.Printf("RedeemPaymentCode error: Failed to create payment intent: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to start payment"})
		return
	}

	code, err := h.codes.MarkAsUsed(c.Request.Context(), form.Code, form.Email, form.Name, intent.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCodeAlreadyUsed) {
			c.JSON(http.StatusConflict, gin.H{"error": constants.ErrCodeAlreadyUsed})
			return
		}
		log.Printf("RedeemPaymentCode error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to redeem payment code"})
		return
	}
	if code == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": constants.ErrPaymentCodeNotFound})
		return
	}

	payment, err := h.payments.Create(c.Request.Context(), repository.NewPayment{
		StripePaymentID: intent.ID,
		Amount:          code.Amount,
		Currency:        constants.DefaultCurrency,
		Status:          models.PaymentStatusPending,
		PaymentType:     models.PaymentTypeCodePayment,
		PaymentCodeID:   &code.ID,
	})
	if err != nil {
		log.Printf("RedeemPaymentCode warning: Failed to record payment: %v", err)
	}

	if err := h.telegramService.SendRedemptionNotification(code.Code, form.Name, code.Amount, time.Now()); err != nil {
		log.Printf("RedeemPaymentCode warning: Failed to send Telegram notification: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"payment_code":  code,
		"payment":       payment,
		"client_secret": intent.ClientSecret,
	})
}

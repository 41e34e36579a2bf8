package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"devstudio/internal/models"
	"devstudio/internal/repository"
	"devstudio/pkg/constants"
)

type PaymentHandler struct {
	payments *repository.PaymentRepository
}

func NewPaymentHandler(payments *repository.PaymentRepository) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

type CreatePaymentRequest struct {
	UserID          *uint   `json:"user_id"`
	StripePaymentID string  `json:"stripe_payment_id" binding:"required"`
	Amount          float64 `json:"amount" binding:"required,gt=0"`
	Currency        string  `json:"currency"`
	PaymentType     string  `json:"payment_type" binding:"required,oneof=maintenance_site maintenance_app code_payment custom"`
	PaymentCodeID   *uint   `json:"payment_code_id"`
}

func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.payments.Create(c.Request.Context(), repository.NewPayment{
		UserID:          req.UserID,
		StripePaymentID: req.StripePaymentID,
		Amount:          req.Amount,
		Currency:        req.Currency,
		PaymentType:     models.PaymentType(req.PaymentType),
		PaymentCodeID:   req.PaymentCodeID,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown user or payment code"})
			return
		}
		log.Printf("CreatePayment error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment"})
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment id"})
		return
	}

	payment, err := h.payments.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		log.Printf("GetPayment error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get payment"})
		return
	}
	if payment == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": constants.ErrPaymentNotFound})
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) GetAllPayments(c *gin.Context) {
	payments, err := h.payments.GetAll(c.Request.Context())
	if err != nil {
		log.Printf("GetAllPayments error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

func (h *PaymentHandler) GetPaymentsByUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	payments, err := h.payments.GetByUser(c.Request.Context(), uint(userID))
	if err != nil {
		log.Printf("GetPaymentsByUser error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending succeeded failed"`
}

func (h *PaymentHandler) UpdatePaymentStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment id"})
		return
	}

	var req UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.payments.UpdateStatus(c.Request.Context(), uint(id), models.PaymentStatus(req.Status))
	if err != nil {
		log.Printf("UpdatePaymentStatus error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment status"})
		return
	}
	if payment == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": constants.ErrPaymentNotFound})
		return
	}
	c.JSON(http.StatusOK, payment)
}

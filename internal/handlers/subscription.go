package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"devstudio/internal/models"
	"devstudio/internal/repository"
	"devstudio/pkg/constants"
)

type SubscriptionHandler struct {
	subscriptions *repository.SubscriptionRepository
}

func NewSubscriptionHandler(subscriptions *repository.SubscriptionRepository) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptions: subscriptions}
}

type CreateSubscriptionRequest struct {
	UserID               uint       `json:"user_id" binding:"required"`
	StripeSubscriptionID string     `json:"stripe_subscription_id" binding:"required"`
	StripeCustomerID     string     `json:"stripe_customer_id" binding:"required"`
	PlanType             string     `json:"plan_type" binding:"required,oneof=site_maintenance app_maintenance"`
	Amount               float64    `json:"amount" binding:"required,gt=0"`
	CurrentPeriodStart   *time.Time `json:"current_period_start"`
	CurrentPeriodEnd     *time.Time `json:"current_period_end"`
}

func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := h.subscriptions.Create(c.Request.Context(), repository.NewSubscription{
		UserID:               req.UserID,
		StripeSubscriptionID: req.StripeSubscriptionID,
		StripeCustomerID:     req.StripeCustomerID,
		PlanType:             models.PlanType(req.PlanType),
		Amount:               req.Amount,
		CurrentPeriodStart:   req.CurrentPeriodStart,
		CurrentPeriodEnd:     req.CurrentPeriodEnd,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			c.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrUserNotFound})
			return
		}
		log.Printf("CreateSubscription error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create subscription"})
		return
	}
	c.JSON(http.StatusCreated, sub)
}

func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subscription id"})
		return
	}

	sub, err := h.subscriptions.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		log.Printf("GetSubscription error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get subscription"})
		return
	}
	if sub == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
		return
	}
	c.JSON(http.StatusOK, sub)
}

// GetAllSubscriptions lists subscriptions with their owners attached.
func (h *SubscriptionHandler) GetAllSubscriptions(c *gin.Context) {
	subs, err := h.subscriptions.GetAllWithUsers(c.Request.Context())
	if err != nil {
		log.Printf("GetAllSubscriptions error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list subscriptions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscriptions": subs})
}

func (h *SubscriptionHandler) GetSubscriptionsByUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	subs, err := h.subscriptions.GetByUser(c.Request.Context(), uint(userID))
	if err != nil {
		log.Printf("GetSubscriptionsByUser error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list subscriptions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscriptions": subs})
}

type UpdateSubscriptionStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active past_due canceled unpaid"`
}

func (h *SubscriptionHandler) UpdateSubscriptionStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subscription id"})
		return
	}

	var req UpdateSubscriptionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := h.subscriptions.UpdateStatus(c.Request.Context(), uint(id), models.SubscriptionStatus(req.Status))
	if err != nil {
		log.Printf("UpdateSubscriptionStatus error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update subscription status"})
		return
	}
	if sub == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
		return
	}
	c.JSON(http.StatusOK, sub)
}

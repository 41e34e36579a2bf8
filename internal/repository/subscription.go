package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"devstudio/internal/models"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

type NewSubscription struct {
	UserID               uint
	StripeSubscriptionID string
	StripeCustomerID     string
	PlanType             models.PlanType
	Amount               float64
	Status               models.SubscriptionStatus
	CurrentPeriodStart   *time.Time
	CurrentPeriodEnd     *time.Time
}

func (r *SubscriptionRepository) Create(ctx context.Context, input NewSubscription) (*models.Subscription, error) {
	sub := models.Subscription{
		UserID:               input.UserID,
		StripeSubscriptionID: input.StripeSubscriptionID,
		StripeCustomerID:     input.StripeCustomerID,
		PlanType:             input.PlanType,
		Amount:               input.Amount,
		Status:               input.Status,
		CurrentPeriodStart:   input.CurrentPeriodStart,
		CurrentPeriodEnd:     input.CurrentPeriodEnd,
	}
	if sub.Status == "" {
		sub.Status = models.SubscriptionStatusActive
	}
	if err := r.db.WithContext(ctx).Create(&sub).Error; err != nil {
		return nil, fmt.Errorf("create subscription: %w", err)
	}
	return &sub, nil
}

func (r *SubscriptionRepository) GetByID(ctx context.Context, id uint) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.WithContext(ctx).First(&sub, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return &sub, nil
}

func (r *SubscriptionRepository) GetAll(ctx context.Context) ([]models.Subscription, error) {
	subs := make([]models.Subscription, 0)
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&subs).Error
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	return subs, nil
}

func (r *SubscriptionRepository) GetByUser(ctx context.Context, userID uint) ([]models.Subscription, error) {
	subs := make([]models.Subscription, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&subs).Error
	if err != nil {
		return nil, fmt.Errorf("list subscriptions by user: %w", err)
	}
	return subs, nil
}

// GetAllWithUsers lists subscriptions with owners attached through a single
// left join, so a subscription whose user row is gone still comes back with a
// nil User.
func (r *SubscriptionRepository) GetAllWithUsers(ctx context.Context) ([]models.Subscription, error) {
	subs := make([]models.Subscription, 0)
	err := r.db.WithContext(ctx).
		Joins("User").
		Order("subscriptions.created_at DESC").
		Find(&subs).Error
	if err != nil {
		return nil, fmt.Errorf("list subscriptions with users: %w", err)
	}
	for i := range subs {
		if subs[i].User != nil && subs[i].User.ID == 0 {
			subs[i].User = nil
		}
	}
	return subs, nil
}

func (r *SubscriptionRepository) UpdateStatus(ctx context.Context, id uint, status models.SubscriptionStatus) (*models.Subscription, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, fmt.Errorf("update subscription status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

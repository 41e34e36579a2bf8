package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"devstudio/internal/models"
	"devstudio/pkg/constants"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

type NewPayment struct {
	UserID          *uint
	StripePaymentID string
	Amount          float64
	Currency        string
	Status          models.PaymentStatus
	PaymentType     models.PaymentType
	PaymentCodeID   *uint
}

func (r *PaymentRepository) Create(ctx context.Context, input NewPayment) (*models.Payment, error) {
	payment := models.Payment{
		UserID:          input.UserID,
		StripePaymentID: input.StripePaymentID,
		Amount:          input.Amount,
		Currency:        input.Currency,
		Status:          input.Status,
		PaymentType:     input.PaymentType,
		PaymentCodeID:   input.PaymentCodeID,
	}
	if payment.Currency == "" {
		payment.Currency = constants.DefaultCurrency
	}
	if payment.Status == "" {
		payment.Status = models.PaymentStatusPending
	}
	if err := r.db.WithContext(ctx).Create(&payment).Error; err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}
	return &payment, nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id uint) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.WithContext(ctx).First(&payment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &payment, nil
}

func (r *PaymentRepository) GetAll(ctx context.Context) ([]models.Payment, error) {
	payments := make([]models.Payment, 0)
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

func (r *PaymentRepository) GetByUser(ctx context.Context, userID uint) ([]models.Payment, error) {
	payments := make([]models.Payment, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("list payments by user: %w", err)
	}
	return payments, nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, id uint, status models.PaymentStatus) (*models.Payment, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, fmt.Errorf("update payment status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

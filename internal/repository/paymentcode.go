package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"devstudio/internal/models"
	apperrors "devstudio/pkg/errors"
)

type PaymentCodeRepository struct {
	db *gorm.DB
}

func NewPaymentCodeRepository(db *gorm.DB) *PaymentCodeRepository {
	return &PaymentCodeRepository{db: db}
}

// NewPaymentCode is the create-time field set for a single-use code. The
// usage fields are only ever written by MarkAsUsed.
type NewPaymentCode struct {
	Code        string
	Amount      float64
	Description *string
}

func (r *PaymentCodeRepository) Create(ctx context.Context, input NewPaymentCode) (*models.PaymentCode, error) {
	code := models.PaymentCode{
		Code:        input.Code,
		Amount:      input.Amount,
		Description: input.Description,
	}
	if err := r.db.WithContext(ctx).Create(&code).Error; err != nil {
		return nil, fmt.Errorf("create payment code: %w", err)
	}
	return &code, nil
}

func (r *PaymentCodeRepository) GetByID(ctx context.Context, id uint) (*models.PaymentCode, error) {
	var code models.PaymentCode
	err := r.db.WithContext(ctx).First(&code, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get payment code: %w", err)
	}
	return &code, nil
}

func (r *PaymentCodeRepository) GetByCode(ctx context.Context, code string) (*models.PaymentCode, error) {
	var pc models.PaymentCode
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&pc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get payment code by code: %w", err)
	}
	return &pc, nil
}

func (r *PaymentCodeRepository) GetAll(ctx context.Context) ([]models.PaymentCode, error) {
	codes := make([]models.PaymentCode, 0)
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&codes).Error
	if err != nil {
		return nil, fmt.Errorf("list payment codes: %w", err)
	}
	return codes, nil
}

// GetUsed lists redeemed codes, most recently redeemed first.
func (r *PaymentCodeRepository) GetUsed(ctx context.Context) ([]models.PaymentCode, error) {
	codes := make([]models.PaymentCode, 0)
	err := r.db.WithContext(ctx).
		Where("is_used = ?", true).
		Order("used_at DESC").
		Find(&codes).Error
	if err != nil {
		return nil, fmt.Errorf("list used payment codes: %w", err)
	}
	return codes, nil
}

// MarkAsUsed redeems a code: one conditional update sets the usage flag, the
// redeemer's email and name, the Stripe payment reference and the redemption
// time. The update only matches while is_used is still false, so of two
// concurrent redemptions exactly one wins; the loser gets ErrCodeAlreadyUsed.
// An unknown code returns (nil, nil).
func (r *PaymentCodeRepository) MarkAsUsed(ctx context.Context, code, email, name, stripePaymentID string) (*models.PaymentCode, error) {
	now := time.Now()
	res := r.db.WithContext(ctx).
		Model(&models.PaymentCode{}).
		Where("code = ? AND is_used = ?", code, false).
		Updates(map[string]interface{}{
			"is_used":           true,
			"used_by_email":     email,
			"used_by_name":      name,
			"stripe_payment_id": stripePaymentID,
			"used_at":           now,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("mark payment code as used: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		existing, err := r.GetByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, nil
		}
		return nil, apperrors.ErrCodeAlreadyUsed
	}
	return r.GetByCode(ctx, code)
}

func (r *PaymentCodeRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.PaymentCode{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete payment code: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"devstudio/internal/models"
	"devstudio/pkg/constants"
)

type QuoteRepository struct {
	db *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

// NewQuote is the create-time field set for a quote request, composed by the
// handler from the five validated form steps. UserID stays nil for anonymous
// submissions.
type NewQuote struct {
	UserID       *uint
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	CountryCode  string
	ServiceType  models.ServiceType
	BusinessArea string
	Features     []string
	Description  *string
}

func (r *QuoteRepository) Create(ctx context.Context, input NewQuote) (*models.Quote, error) {
	quote := models.Quote{
		UserID:       input.UserID,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Phone:        input.Phone,
		CountryCode:  input.CountryCode,
		ServiceType:  input.ServiceType,
		BusinessArea: input.BusinessArea,
		Features:     pq.StringArray(input.Features),
		Description:  input.Description,
		Status:       models.QuoteStatusPending,
	}
	if quote.CountryCode == "" {
		quote.CountryCode = constants.DefaultCountryCode
	}
	if err := r.db.WithContext(ctx).Create(&quote).Error; err != nil {
		return nil, fmt.Errorf("create quote: %w", err)
	}
	return &quote, nil
}

func (r *QuoteRepository) GetByID(ctx context.Context, id uint) (*models.Quote, error) {
	var quote models.Quote
	err := r.db.WithContext(ctx).First(&quote, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get quote: %w", err)
	}
	return &quote, nil
}

func (r *QuoteRepository) GetAll(ctx context.Context) ([]models.Quote, error) {
	quotes := make([]models.Quote, 0)
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&quotes).Error
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	return quotes, nil
}

func (r *QuoteRepository) GetByUser(ctx context.Context, userID uint) ([]models.Quote, error) {
	quotes := make([]models.Quote, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&quotes).Error
	if err != nil {
		return nil, fmt.Errorf("list quotes by user: %w", err)
	}
	return quotes, nil
}

// UpdateStatus moves a quote to the given status. Returns (nil, nil) when the
// quote does not exist.
func (r *QuoteRepository) UpdateStatus(ctx context.Context, id uint, status models.QuoteStatus) (*models.Quote, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Quote{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, fmt.Errorf("update quote status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

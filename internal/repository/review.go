package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"devstudio/internal/models"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// NewReview is the create-time field set for a review. Approval is server
// controlled and starts false.
type NewReview struct {
	UserID  uint
	Rating  int
	Comment *string
}

func (r *ReviewRepository) Create(ctx context.Context, input NewReview) (*models.Review, error) {
	review := models.Review{
		UserID:  input.UserID,
		Rating:  input.Rating,
		Comment: input.Comment,
	}
	if err := r.db.WithContext(ctx).Create(&review).Error; err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return &review, nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).First(&review, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}
	return &review, nil
}

func (r *ReviewRepository) GetAll(ctx context.Context) ([]models.Review, error) {
	reviews := make([]models.Review, 0)
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

func (r *ReviewRepository) GetByUser(ctx context.Context, userID uint) ([]models.Review, error) {
	reviews := make([]models.Review, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("list reviews by user: %w", err)
	}
	return reviews, nil
}

// GetApproved returns approved reviews with their authors attached. Each
// author is fetched by id after the review query; a review whose user row is
// gone keeps a nil User instead of failing the whole read.
func (r *ReviewRepository) GetApproved(ctx context.Context) ([]models.Review, error) {
	reviews := make([]models.Review, 0)
	err := r.db.WithContext(ctx).
		Where("is_approved = ?", true).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("list approved reviews: %w", err)
	}

	for i := range reviews {
		var user models.User
		err := r.db.WithContext(ctx).First(&user, reviews[i].UserID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("attach review author: %w", err)
		}
		reviews[i].User = &user
	}
	return reviews, nil
}

// Approve flips the approval flag on. Calling it on an already approved
// review is a no-op that still returns the row.
func (r *ReviewRepository) Approve(ctx context.Context, id uint) (*models.Review, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("id = ?", id).
		Update("is_approved", true)
	if res.Error != nil {
		return nil, fmt.Errorf("approve review: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

func (r *ReviewRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Review{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete review: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

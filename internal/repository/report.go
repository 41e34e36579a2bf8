package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"devstudio/internal/models"
	apperrors "devstudio/pkg/errors"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

type NewMonthlyReport struct {
	Month                int
	Year                 int
	Revenue              float64
	ClientCount          int
	ActiveSubscriptions  int
	PastDueSubscriptions int
	NewQuotes            int
	CompletedProjects    int
}

// Create inserts the report for one period. A second report for the same
// (month, year) hits the unique index and comes back as ErrDuplicateReport.
func (r *ReportRepository) Create(ctx context.Context, input NewMonthlyReport) (*models.MonthlyReport, error) {
	report := models.MonthlyReport{
		Month:                input.Month,
		Year:                 input.Year,
		Revenue:              input.Revenue,
		ClientCount:          input.ClientCount,
		ActiveSubscriptions:  input.ActiveSubscriptions,
		PastDueSubscriptions: input.PastDueSubscriptions,
		NewQuotes:            input.NewQuotes,
		CompletedProjects:    input.CompletedProjects,
	}
	if err := r.db.WithContext(ctx).Create(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("create monthly report %d/%d: %w", input.Month, input.Year, apperrors.ErrDuplicateReport)
		}
		return nil, fmt.Errorf("create monthly report: %w", err)
	}
	return &report, nil
}

func (r *ReportRepository) GetByID(ctx context.Context, id uint) (*models.MonthlyReport, error) {
	var report models.MonthlyReport
	err := r.db.WithContext(ctx).First(&report, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get monthly report: %w", err)
	}
	return &report, nil
}

func (r *ReportRepository) GetByPeriod(ctx context.Context, month, year int) (*models.MonthlyReport, error) {
	var report models.MonthlyReport
	err := r.db.WithContext(ctx).
		Where("month = ? AND year = ?", month, year).
		First(&report).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get monthly report by period: %w", err)
	}
	return &report, nil
}

// GetAll returns reports newest period first.
func (r *ReportRepository) GetAll(ctx context.Context) ([]models.MonthlyReport, error) {
	reports := make([]models.MonthlyReport, 0)
	err := r.db.WithContext(ctx).
		Order("year DESC, month DESC").
		Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("list monthly reports: %w", err)
	}
	return reports, nil
}

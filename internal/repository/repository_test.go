package repository

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"devstudio/internal/models"
	apperrors "devstudio/pkg/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set, skipping database tests")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Quote{},
		&models.Project{},
		&models.Review{},
		&models.PaymentCode{},
		&models.Payment{},
		&models.Subscription{},
		&models.MonthlyReport{},
		&models.ChatMessage{},
	))

	cleanup := func() {
		db.Exec("DELETE FROM payments")
		db.Exec("DELETE FROM subscriptions")
		db.Exec("DELETE FROM payment_codes")
		db.Exec("DELETE FROM reviews")
		db.Exec("DELETE FROM quotes")
		db.Exec("DELETE FROM projects")
		db.Exec("DELETE FROM monthly_reports")
		db.Exec("DELETE FROM chat_messages")
		db.Exec("DELETE FROM users")
	}
	cleanup()
	t.Cleanup(cleanup)

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email, username string) *models.User {
	user, err := NewUserRepository(db).Create(context.Background(), NewUser{
		Email:    email,
		Username: username,
		Name:     "Test User",
	})
	require.NoError(t, err)
	return user
}

func TestUserCreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user, err := repo.Create(ctx, NewUser{
		Email:    "maria@example.com",
		Username: "maria",
		Name:     "Maria Silva",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.False(t, user.IsAdmin)

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "maria@example.com", got.Email)

	byEmail, err := repo.GetByEmail(ctx, "maria@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, user.ID, byEmail.ID)

	missing, err := repo.GetByID(ctx, user.ID+1000)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, NewUser{Email: "dup@example.com", Username: "first", Name: "First"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, NewUser{Email: "dup@example.com", Username: "second", Name: "Second"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestQuoteLifecycle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewQuoteRepository(db)
	ctx := context.Background()

	quote, err := repo.Create(ctx, NewQuote{
		FirstName:    "João",
		LastName:     "Costa",
		Email:        "joao@example.com",
		Phone:        "912345678",
		ServiceType:  models.ServiceTypeWebsite,
		BusinessArea: "padaria",
		Features:     []string{"seo", "booking"},
	})
	require.NoError(t, err)
	assert.Nil(t, quote.UserID)
	assert.Equal(t, models.QuoteStatusPending, quote.Status)
	assert.Equal(t, "+351", quote.CountryCode)

	got, err := repo.GetByID(ctx, quote.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{"seo", "booking"}, []string(got.Features))

	updated, err := repo.UpdateStatus(ctx, quote.ID, models.QuoteStatusInProgress)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, models.QuoteStatusInProgress, updated.Status)

	missing, err := repo.UpdateStatus(ctx, quote.ID+1000, models.QuoteStatusCompleted)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestQuotesByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewQuoteRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "owner@example.com", "owner")

	_, err := repo.Create(ctx, NewQuote{
		UserID:       &user.ID,
		FirstName:    "Ana",
		LastName:     "Lopes",
		Email:        "ana@example.com",
		Phone:        "913333333",
		ServiceType:  models.ServiceTypeApp,
		BusinessArea: "fitness",
	})
	require.NoError(t, err)

	mine, err := repo.GetByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	none, err := repo.GetByUser(ctx, user.ID+1000)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProjectOrderingAndDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	for _, order := range []int{5, 1, 3} {
		_, err := repo.Create(ctx, NewProject{Title: "Project", DisplayOrder: order})
		require.NoError(t, err)
	}

	projects, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, 1, projects[0].DisplayOrder)
	assert.Equal(t, 3, projects[1].DisplayOrder)
	assert.Equal(t, 5, projects[2].DisplayOrder)
	assert.Equal(t, models.MediaTypeImage, projects[0].MediaType)
	assert.True(t, projects[0].IsActive)

	deleted, err := repo.Delete(ctx, projects[0].ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	gone, err := repo.GetByID(ctx, projects[0].ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	deleted, err = repo.Delete(ctx, projects[0].ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestProjectPartialUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	project, err := repo.Create(ctx, NewProject{Title: "Old title", DisplayOrder: 2})
	require.NoError(t, err)

	inactive := false
	updated, err := repo.Update(ctx, project.ID, UpdateProject{IsActive: &inactive})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Old title", updated.Title)
	assert.Equal(t, 2, updated.DisplayOrder)

	missing, err := repo.Update(ctx, project.ID+1000, UpdateProject{IsActive: &inactive})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestReviewApproveIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "reviewer@example.com", "reviewer")
	comment := "Excellent work, highly recommended."

	review, err := repo.Create(ctx, NewReview{UserID: user.ID, Rating: 5, Comment: &comment})
	require.NoError(t, err)
	assert.False(t, review.IsApproved)

	approved, err := repo.Approve(ctx, review.ID)
	require.NoError(t, err)
	require.NotNil(t, approved)
	assert.True(t, approved.IsApproved)
	assert.Equal(t, 5, approved.Rating)
	assert.Equal(t, comment, *approved.Comment)

	again, err := repo.Approve(ctx, review.ID)
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.True(t, again.IsApproved)

	missing, err := repo.Approve(ctx, review.ID+1000)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestApprovedReviewsWithMissingAuthor(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author@example.com", "author")
	ghost := createTestUser(t, db, "ghost@example.com", "ghost")

	for _, userID := range []uint{author.ID, ghost.ID} {
		comment := "Solid delivery and good communication."
		review, err := repo.Create(ctx, NewReview{UserID: userID, Rating: 4, Comment: &comment})
		require.NoError(t, err)
		_, err = repo.Approve(ctx, review.ID)
		require.NoError(t, err)
	}

	// Simulate an author removed out-of-band.
	require.NoError(t, db.Exec("DELETE FROM users WHERE id = ?", ghost.ID).Error)

	reviews, err := repo.GetApproved(ctx)
	require.NoError(t, err)
	require.Len(t, reviews, 2)

	var withUser, withoutUser int
	for _, rev := range reviews {
		if rev.User != nil {
			withUser++
			assert.Equal(t, author.ID, rev.User.ID)
		} else {
			withoutUser++
		}
	}
	assert.Equal(t, 1, withUser)
	assert.Equal(t, 1, withoutUser)
}

func TestPaymentCodeRedemption(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPaymentCodeRepository(db)
	ctx := context.Background()

	code, err := repo.Create(ctx, NewPaymentCode{Code: "AB12CD", Amount: 150.00})
	require.NoError(t, err)
	assert.False(t, code.IsUsed)
	assert.Nil(t, code.UsedAt)

	used, err := repo.MarkAsUsed(ctx, "AB12CD", "client@example.com", "Client Name", "pi_123")
	require.NoError(t, err)
	require.NotNil(t, used)
	assert.True(t, used.IsUsed)
	require.NotNil(t, used.UsedByEmail)
	assert.Equal(t, "client@example.com", *used.UsedByEmail)
	require.NotNil(t, used.UsedByName)
	assert.Equal(t, "Client Name", *used.UsedByName)
	require.NotNil(t, used.StripePaymentID)
	assert.Equal(t, "pi_123", *used.StripePaymentID)
	require.NotNil(t, used.UsedAt)
	assert.WithinDuration(t, time.Now(), *used.UsedAt, time.Minute)

	// Second redemption is a conflict, not an overwrite.
	_, err = repo.MarkAsUsed(ctx, "AB12CD", "other@example.com", "Other", "pi_456")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrCodeAlreadyUsed))

	still, err := repo.GetByCode(ctx, "AB12CD")
	require.NoError(t, err)
	assert.Equal(t, "client@example.com", *still.UsedByEmail)

	unknown, err := repo.MarkAsUsed(ctx, "ZZ99ZZ", "x@example.com", "X", "pi_789")
	require.NoError(t, err)
	assert.Nil(t, unknown)
}

func TestUsedPaymentCodesOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPaymentCodeRepository(db)
	ctx := context.Background()

	for _, c := range []string{"CODE01", "CODE02"} {
		_, err := repo.Create(ctx, NewPaymentCode{Code: c, Amount: 50})
		require.NoError(t, err)
	}

	_, err := repo.MarkAsUsed(ctx, "CODE01", "a@example.com", "A", "pi_a")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	_, err = repo.MarkAsUsed(ctx, "CODE02", "b@example.com", "B", "pi_b")
	require.NoError(t, err)

	used, err := repo.GetUsed(ctx)
	require.NoError(t, err)
	require.Len(t, used, 2)
	assert.Equal(t, "CODE02", used[0].Code)
	assert.Equal(t, "CODE01", used[1].Code)
}

func TestPaymentCreateWithDefaults(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	payment, err := repo.Create(ctx, NewPayment{
		StripePaymentID: "pi_abc",
		Amount:          99.90,
		PaymentType:     models.PaymentTypeCustom,
	})
	require.NoError(t, err)
	assert.Equal(t, "EUR", payment.Currency)
	assert.Equal(t, models.PaymentStatusPending, payment.Status)
	assert.Nil(t, payment.UserID)

	updated, err := repo.UpdateStatus(ctx, payment.ID, models.PaymentStatusSucceeded)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, models.PaymentStatusSucceeded, updated.Status)
}

func TestPaymentForeignKeyViolation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	badUser := uint(999999)
	_, err := repo.Create(ctx, NewPayment{
		UserID:          &badUser,
		StripePaymentID: "pi_bad",
		Amount:          10,
		PaymentType:     models.PaymentTypeCustom,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrForeignKeyViolated))
}

func TestSubscriptionsWithUsers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "sub@example.com", "subowner")

	sub, err := repo.Create(ctx, NewSubscription{
		UserID:               user.ID,
		StripeSubscriptionID: "sub_123",
		StripeCustomerID:     "cus_123",
		PlanType:             models.PlanTypeSiteMaintenance,
		Amount:               29.90,
	})
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionStatusActive, sub.Status)

	subs, err := repo.GetAllWithUsers(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	require.NotNil(t, subs[0].User)
	assert.Equal(t, "sub@example.com", subs[0].User.Email)

	updated, err := repo.UpdateStatus(ctx, sub.ID, models.SubscriptionStatusPastDue)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, models.SubscriptionStatusPastDue, updated.Status)
}

func TestMonthlyReportUniquePeriod(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReportRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, NewMonthlyReport{Month: 3, Year: 2026, Revenue: 1200})
	require.NoError(t, err)

	_, err = repo.Create(ctx, NewMonthlyReport{Month: 3, Year: 2026})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrDuplicateReport))
}

func TestMonthlyReportOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReportRepository(db)
	ctx := context.Background()

	periods := []struct{ month, year int }{
		{11, 2025}, {2, 2026}, {12, 2025},
	}
	for _, p := range periods {
		_, err := repo.Create(ctx, NewMonthlyReport{Month: p.month, Year: p.year})
		require.NoError(t, err)
	}

	reports, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 3)
	assert.Equal(t, 2026, reports[0].Year)
	assert.Equal(t, 12, reports[1].Month)
	assert.Equal(t, 11, reports[2].Month)

	byPeriod, err := repo.GetByPeriod(ctx, 12, 2025)
	require.NoError(t, err)
	require.NotNil(t, byPeriod)

	missing, err := repo.GetByPeriod(ctx, 1, 2020)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestChatMessagesBySession(t *testing.T) {
	db := setupTestDB(t)
	repo := NewChatRepository(db)
	ctx := context.Background()

	first := "Olá, preciso de um site."
	reply := "Claro! Que tipo de negócio tem?"
	second := "Tenho uma pastelaria."
	third := "Fica em Lisboa."

	// No pauses between inserts: messages landing in the same timestamp tick
	// must still come back in insertion order.
	_, err := repo.Create(ctx, NewChatMessage{SessionID: "s1", Message: &first, Response: &reply})
	require.NoError(t, err)
	_, err = repo.Create(ctx, NewChatMessage{SessionID: "s1", Message: &second})
	require.NoError(t, err)
	_, err = repo.Create(ctx, NewChatMessage{SessionID: "s1", Message: &third})
	require.NoError(t, err)
	_, err = repo.Create(ctx, NewChatMessage{SessionID: "s2", Message: &first})
	require.NoError(t, err)

	conversation, err := repo.GetBySession(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, conversation, 3)
	assert.Equal(t, first, *conversation[0].Message)
	assert.Equal(t, second, *conversation[1].Message)
	assert.Equal(t, third, *conversation[2].Message)

	empty, err := repo.GetBySession(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

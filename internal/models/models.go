package models

import (
	"time"

	"github.com/lib/pq"
)

type ServiceType string

const (
	ServiceTypeWebsite ServiceType = "website"
	ServiceTypeApp     ServiceType = "app"
)

func (s ServiceType) IsValid() bool {
	return s == ServiceTypeWebsite || s == ServiceTypeApp
}

type QuoteStatus string

const (
	QuoteStatusPending    QuoteStatus = "pending"
	QuoteStatusInProgress QuoteStatus = "in_progress"
	QuoteStatusCompleted  QuoteStatus = "completed"
	QuoteStatusRejected   QuoteStatus = "rejected"
)

func (s QuoteStatus) IsValid() bool {
	switch s {
	case QuoteStatusPending, QuoteStatusInProgress, QuoteStatusCompleted, QuoteStatusRejected:
		return true
	default:
		return false
	}
}

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

func (m MediaType) IsValid() bool {
	return m == MediaTypeImage || m == MediaTypeVideo
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	PaymentStatusFailed    PaymentStatus = "failed"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusSucceeded, PaymentStatusFailed:
		return true
	default:
		return false
	}
}

type PaymentType string

const (
	PaymentTypeMaintenanceSite PaymentType = "maintenance_site"
	PaymentTypeMaintenanceApp  PaymentType = "maintenance_app"
	PaymentTypeCodePayment     PaymentType = "code_payment"
	PaymentTypeCustom          PaymentType = "custom"
)

func (t PaymentType) IsValid() bool {
	switch t {
	case PaymentTypeMaintenanceSite, PaymentTypeMaintenanceApp, PaymentTypeCodePayment, PaymentTypeCustom:
		return true
	default:
		return false
	}
}

type PlanType string

const (
	PlanTypeSiteMaintenance PlanType = "site_maintenance"
	PlanTypeAppMaintenance  PlanType = "app_maintenance"
)

func (t PlanType) IsValid() bool {
	return t == PlanTypeSiteMaintenance || t == PlanTypeAppMaintenance
}

type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusPastDue  SubscriptionStatus = "past_due"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
	SubscriptionStatusUnpaid   SubscriptionStatus = "unpaid"
)

func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionStatusActive, SubscriptionStatusPastDue, SubscriptionStatusCanceled, SubscriptionStatusUnpaid:
		return true
	default:
		return false
	}
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	GoogleID  *string   `gorm:"uniqueIndex" json:"google_id,omitempty"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Name      string    `gorm:"not null" json:"name"`
	Picture   *string   `json:"picture,omitempty"`
	IsAdmin   bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Quote struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       *uint          `gorm:"index" json:"user_id,omitempty"`
	User         *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	FirstName    string         `gorm:"not null" json:"first_name"`
	LastName     string         `gorm:"not null" json:"last_name"`
	Email        string         `gorm:"not null" json:"email"`
	Phone        string         `gorm:"not null" json:"phone"`
	CountryCode  string         `gorm:"not null;default:'+351'" json:"country_code"`
	ServiceType  ServiceType    `gorm:"type:varchar(20);not null" json:"service_type"`
	BusinessArea string         `gorm:"not null" json:"business_area"`
	Features     pq.StringArray `gorm:"type:text[]" json:"features,omitempty"`
	Description  *string        `json:"description,omitempty"`
	Status       QuoteStatus    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type Project struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Description  *string   `json:"description,omitempty"`
	ImageURL     *string   `json:"image_url,omitempty"`
	ProjectURL   *string   `json:"project_url,omitempty"`
	MediaType    MediaType `gorm:"type:varchar(10);not null;default:'image'" json:"media_type"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Review holds a client testimonial. UserID is a plain indexed column, not a
// database constraint: an author row removed out-of-band must not break the
// approved listing, which attaches the author after the fact.
type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	User       *User     `gorm:"-" json:"user,omitempty"`
	Rating     int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment    *string   `json:"comment,omitempty"`
	IsApproved bool      `gorm:"default:false" json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type PaymentCode struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Code            string     `gorm:"type:varchar(6);uniqueIndex;not null" json:"code"`
	Amount          float64    `gorm:"type:decimal(10,2);not null" json:"amount"`
	Description     *string    `json:"description,omitempty"`
	IsUsed          bool       `gorm:"default:false" json:"is_used"`
	UsedByEmail     *string    `json:"used_by_email,omitempty"`
	UsedByName      *string    `json:"used_by_name,omitempty"`
	StripePaymentID *string    `json:"stripe_payment_id,omitempty"`
	UsedAt          *time.Time `json:"used_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type Payment struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	UserID          *uint         `gorm:"index" json:"user_id,omitempty"`
	User            *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	StripePaymentID string        `gorm:"not null" json:"stripe_payment_id"`
	Amount          float64       `gorm:"type:decimal(10,2);not null" json:"amount"`
	Currency        string        `gorm:"not null;default:'EUR'" json:"currency"`
	Status          PaymentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	PaymentType     PaymentType   `gorm:"type:varchar(30);not null" json:"payment_type"`
	PaymentCodeID   *uint         `json:"payment_code_id,omitempty"`
	PaymentCode     *PaymentCode  `gorm:"foreignKey:PaymentCodeID" json:"payment_code,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type Subscription struct {
	ID                   uint               `gorm:"primaryKey" json:"id"`
	UserID               uint               `gorm:"not null;index" json:"user_id"`
	User                 *User              `gorm:"foreignKey:UserID" json:"user,omitempty"`
	StripeSubscriptionID string             `gorm:"not null" json:"stripe_subscription_id"`
	StripeCustomerID     string             `gorm:"not null" json:"stripe_customer_id"`
	PlanType             PlanType           `gorm:"type:varchar(30);not null" json:"plan_type"`
	Amount               float64            `gorm:"type:decimal(10,2);not null" json:"amount"`
	Status               SubscriptionStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CurrentPeriodStart   *time.Time         `json:"current_period_start,omitempty"`
	CurrentPeriodEnd     *time.Time         `json:"current_period_end,omitempty"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
}

// MonthlyReport aggregates business counters for one calendar month. The
// (month, year) pair is unique so a period cannot be reported twice.
type MonthlyReport struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	Month                int       `gorm:"not null;uniqueIndex:idx_reports_period" json:"month"`
	Year                 int       `gorm:"not null;uniqueIndex:idx_reports_period" json:"year"`
	Revenue              float64   `gorm:"type:decimal(10,2);default:0" json:"revenue"`
	ClientCount          int       `gorm:"default:0" json:"client_count"`
	ActiveSubscriptions  int       `gorm:"default:0" json:"active_subscriptions"`
	PastDueSubscriptions int       `gorm:"default:0" json:"past_due_subscriptions"`
	NewQuotes            int       `gorm:"default:0" json:"new_quotes"`
	CompletedProjects    int       `gorm:"default:0" json:"completed_projects"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// ChatMessage stores one exchange of the support chatbot. SessionID is an
// opaque identifier handed out by the session service, not a foreign key.
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID string    `gorm:"not null;index" json:"session_id"`
	Message   *string   `json:"message,omitempty"`
	Response  *string   `json:"response,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

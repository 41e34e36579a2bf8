package constants

const (
	// Quote Statuses
	QuoteStatusPending    = "pending"
	QuoteStatusInProgress = "in_progress"
	QuoteStatusCompleted  = "completed"
	QuoteStatusRejected   = "rejected"

	// Payment Statuses
	PaymentStatusPending   = "pending"
	PaymentStatusSucceeded = "succeeded"
	PaymentStatusFailed    = "failed"

	// Payment Types
	PaymentTypeMaintenanceSite = "maintenance_site"
	PaymentTypeMaintenanceApp  = "maintenance_app"
	PaymentTypeCodePayment     = "code_payment"
	PaymentTypeCustom          = "custom"

	// Subscription Statuses
	SubscriptionStatusActive   = "active"
	SubscriptionStatusPastDue  = "past_due"
	SubscriptionStatusCanceled = "canceled"
	SubscriptionStatusUnpaid   = "unpaid"

	// Plan Types
	PlanTypeSiteMaintenance = "site_maintenance"
	PlanTypeAppMaintenance  = "app_maintenance"

	// Service Types
	ServiceTypeWebsite = "website"
	ServiceTypeApp     = "app"

	// Defaults
	DefaultCountryCode = "+351"
	DefaultCurrency    = "EUR"

	// Payment Codes
	PaymentCodeLength = 6

	// Error Messages
	ErrQuoteNotFound       = "Quote not found"
	ErrProjectNotFound     = "Project not found"
	ErrReviewNotFound      = "Review not found"
	ErrPaymentNotFound     = "Payment not found"
	ErrPaymentCodeNotFound = "Payment code not found"
	ErrCodeAlreadyUsed     = "Payment code has already been used"
	ErrUserNotFound        = "User not found"
	ErrSessionNotFound     = "Chat session not found or expired"
	ErrInvalidStatus       = "Invalid status value"
	ErrDuplicatePeriod     = "A report for this month already exists"
)

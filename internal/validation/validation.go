// Package validation checks web form input before it reaches the repository
// layer. All checks are pure: nothing here touches the database.
package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"devstudio/pkg/constants"
)

var validate = validator.New()

// FieldError identifies a single failed constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// QuoteStep1 carries the contact details of the quote form.
type QuoteStep1 struct {
	FirstName   string `json:"first_name" validate:"required,min=2,max=50"`
	LastName    string `json:"last_name" validate:"required,min=2,max=50"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,min=9"`
	CountryCode string `json:"country_code" validate:"omitempty"`
}

// QuoteStep2 selects the requested service.
type QuoteStep2 struct {
	ServiceType string `json:"service_type" validate:"required,oneof=website app"`
}

// QuoteStep3 names the client's business area.
type QuoteStep3 struct {
	BusinessArea string `json:"business_area" validate:"required"`
}

// QuoteStep4 lists optional extra feature tags.
type QuoteStep4 struct {
	Features []string `json:"features" validate:"omitempty,dive,required"`
}

// QuoteStep5 is the optional free-text description.
type QuoteStep5 struct {
	Description string `json:"description" validate:"omitempty"`
}

type ReviewForm struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required,min=10,max=500"`
}

type RedeemForm struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6"`
}

// ValidateQuoteStep1 validates the contact step and fills in the default
// country code when the field was left empty.
func ValidateQuoteStep1(form *QuoteStep1) []FieldError {
	if form.CountryCode == "" {
		form.CountryCode = constants.DefaultCountryCode
	}
	return run(form)
}

func ValidateQuoteStep2(form *QuoteStep2) []FieldError { return run(form) }

func ValidateQuoteStep3(form *QuoteStep3) []FieldError { return run(form) }

func ValidateQuoteStep4(form *QuoteStep4) []FieldError { return run(form) }

func ValidateQuoteStep5(form *QuoteStep5) []FieldError { return run(form) }

func ValidateReviewForm(form *ReviewForm) []FieldError { return run(form) }

func ValidateRedeemForm(form *RedeemForm) []FieldError { return run(form) }

func run(form interface{}) []FieldError {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	fieldErrors := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return fieldErrors
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		if fe.Kind().String() == "int" {
			return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		if fe.Kind().String() == "int" {
			return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

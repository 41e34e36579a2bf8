package repository

import (
	"reflect"
	"testing"

	"devstudio/internal/models"
)

// The create-time input structs must stay a subset of their entity's columns,
// minus the generated ones (identity, timestamps) and the server-controlled
// flags the specialized transitions own.
func TestInputFieldsAreSubsetOfEntityColumns(t *testing.T) {
	generated := map[string]bool{
		"ID":        true,
		"CreatedAt": true,
		"UpdatedAt": true,
	}
	serverControlled := map[string]map[string]bool{
		"Review":      {"IsApproved": true},
		"PaymentCode": {"IsUsed": true, "UsedByEmail": true, "UsedByName": true, "StripePaymentID": true, "UsedAt": true},
		"User":        {"IsAdmin": true},
		"Project":     {"IsActive": true},
	}

	cases := []struct {
		input  interface{}
		entity interface{}
	}{
		{NewUser{}, models.User{}},
		{NewQuote{}, models.Quote{}},
		{NewProject{}, models.Project{}},
		{NewReview{}, models.Review{}},
		{NewPaymentCode{}, models.PaymentCode{}},
		{NewPayment{}, models.Payment{}},
		{NewSubscription{}, models.Subscription{}},
		{NewMonthlyReport{}, models.MonthlyReport{}},
		{NewChatMessage{}, models.ChatMessage{}},
	}

	for _, tc := range cases {
		inputType := reflect.TypeOf(tc.input)
		entityType := reflect.TypeOf(tc.entity)
		entityName := entityType.Name()

		columns := map[string]bool{}
		for i := 0; i < entityType.NumField(); i++ {
			columns[entityType.Field(i).Name] = true
		}

		for i := 0; i < inputType.NumField(); i++ {
			name := inputType.Field(i).Name
			if !columns[name] {
				t.Errorf("%s.%s has no matching column on %s", inputType.Name(), name, entityName)
			}
			if generated[name] {
				t.Errorf("%s.%s is a generated column and must not be caller-supplied", inputType.Name(), name)
			}
			if serverControlled[entityName][name] {
				t.Errorf("%s.%s is server controlled and must not be caller-supplied", inputType.Name(), name)
			}
		}
	}
}

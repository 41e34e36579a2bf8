package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldNames(errs []FieldError) []string {
	names := make([]string, 0, len(errs))
	for _, e := range errs {
		names = append(names, e.Field)
	}
	return names
}

func TestQuoteStep1Valid(t *testing.T) {
	form := QuoteStep1{
		FirstName:   "Maria",
		LastName:    "Silva",
		Email:       "maria@example.com",
		Phone:       "912345678",
		CountryCode: "+351",
	}
	assert.Empty(t, ValidateQuoteStep1(&form))
}

func TestQuoteStep1DefaultsCountryCode(t *testing.T) {
	form := QuoteStep1{
		FirstName: "Maria",
		LastName:  "Silva",
		Email:     "maria@example.com",
		Phone:     "912345678",
	}
	errs := ValidateQuoteStep1(&form)
	assert.Empty(t, errs)
	assert.Equal(t, "+351", form.CountryCode)
}

func TestQuoteStep1RejectsBadEmail(t *testing.T) {
	form := QuoteStep1{
		FirstName: "Maria",
		LastName:  "Silva",
		Email:     "maria.example.com",
		Phone:     "912345678",
	}
	errs := ValidateQuoteStep1(&form)
	require.Len(t, errs, 1)
	assert.Equal(t, "Email", errs[0].Field)
	assert.Contains(t, errs[0].Message, "valid email")
}

func TestQuoteStep1RejectsShortFirstName(t *testing.T) {
	form := QuoteStep1{
		FirstName: "M",
		LastName:  "Silva",
		Email:     "maria@example.com",
		Phone:     "912345678",
	}
	errs := ValidateQuoteStep1(&form)
	require.Len(t, errs, 1)
	assert.Equal(t, "FirstName", errs[0].Field)
}

func TestQuoteStep1RejectsShortPhone(t *testing.T) {
	form := QuoteStep1{
		FirstName: "Maria",
		LastName:  "Silva",
		Email:     "maria@example.com",
		Phone:     "12345678",
	}
	errs := ValidateQuoteStep1(&form)
	require.Len(t, errs, 1)
	assert.Equal(t, "Phone", errs[0].Field)
}

func TestQuoteStep1ReportsEveryFailingField(t *testing.T) {
	form := QuoteStep1{
		FirstName: "M",
		LastName:  "S",
		Email:     "not-an-email",
		Phone:     "123",
	}
	errs := ValidateQuoteStep1(&form)
	names := fieldNames(errs)
	assert.ElementsMatch(t, []string{"FirstName", "LastName", "Email", "Phone"}, names)
}

func TestQuoteStep2(t *testing.T) {
	assert.Empty(t, ValidateQuoteStep2(&QuoteStep2{ServiceType: "website"}))
	assert.Empty(t, ValidateQuoteStep2(&QuoteStep2{ServiceType: "app"}))

	errs := ValidateQuoteStep2(&QuoteStep2{ServiceType: "desktop"})
	require.Len(t, errs, 1)
	assert.Equal(t, "ServiceType", errs[0].Field)

	errs = ValidateQuoteStep2(&QuoteStep2{})
	require.Len(t, errs, 1)
	assert.Equal(t, "ServiceType", errs[0].Field)
}

func TestQuoteStep3(t *testing.T) {
	assert.Empty(t, ValidateQuoteStep3(&QuoteStep3{BusinessArea: "restauração"}))

	errs := ValidateQuoteStep3(&QuoteStep3{})
	require.Len(t, errs, 1)
	assert.Equal(t, "BusinessArea", errs[0].Field)
}

func TestQuoteStep4OptionalFeatures(t *testing.T) {
	assert.Empty(t, ValidateQuoteStep4(&QuoteStep4{}))
	assert.Empty(t, ValidateQuoteStep4(&QuoteStep4{Features: []string{"seo", "booking"}}))

	errs := ValidateQuoteStep4(&QuoteStep4{Features: []string{"seo", ""}})
	require.Len(t, errs, 1)
}

func TestQuoteStep5OptionalDescription(t *testing.T) {
	assert.Empty(t, ValidateQuoteStep5(&QuoteStep5{}))
	assert.Empty(t, ValidateQuoteStep5(&QuoteStep5{Description: "A site for my bakery."}))
}

func TestReviewFormRatingBounds(t *testing.T) {
	comment := "Great work, thanks!"

	for _, rating := range []int{1, 3, 5} {
		errs := ValidateReviewForm(&ReviewForm{Rating: rating, Comment: comment})
		assert.Empty(t, errs, "rating %d should be accepted", rating)
	}

	for _, rating := range []int{0, 6} {
		errs := ValidateReviewForm(&ReviewForm{Rating: rating, Comment: comment})
		require.Len(t, errs, 1, "rating %d should be rejected", rating)
		assert.Equal(t, "Rating", errs[0].Field)
	}
}

func TestReviewFormCommentLength(t *testing.T) {
	errs := ValidateReviewForm(&ReviewForm{Rating: 3, Comment: strings.Repeat("a", 10)})
	assert.Empty(t, errs)

	errs = ValidateReviewForm(&ReviewForm{Rating: 3, Comment: strings.Repeat("a", 9)})
	require.Len(t, errs, 1)
	assert.Equal(t, "Comment", errs[0].Field)

	errs = ValidateReviewForm(&ReviewForm{Rating: 3, Comment: strings.Repeat("a", 501)})
	require.Len(t, errs, 1)
	assert.Equal(t, "Comment", errs[0].Field)
}

func TestRedeemForm(t *testing.T) {
	errs := ValidateRedeemForm(&RedeemForm{Name: "Jo", Email: "jo@example.com", Code: "ABC123"})
	assert.Empty(t, errs)

	errs = ValidateRedeemForm(&RedeemForm{Name: "J", Email: "jo@example.com", Code: "ABC123"})
	require.Len(t, errs, 1)
	assert.Equal(t, "Name", errs[0].Field)

	errs = ValidateRedeemForm(&RedeemForm{Name: "Jo", Email: "jo@example.com", Code: "ABC12"})
	require.Len(t, errs, 1)
	assert.Equal(t, "Code", errs[0].Field)

	errs = ValidateRedeemForm(&RedeemForm{Name: "Jo", Email: "jo@", Code: "ABC123"})
	require.Len(t, errs, 1)
	assert.Equal(t, "Email", errs[0].Field)
}

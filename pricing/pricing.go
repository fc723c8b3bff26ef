package pricing

import (
	"math"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
)

// UsdToVndRate is the fixed conversion rate used by ConvertUsdToVnd
const UsdToVndRate = 24000

// 2^63, the first float64 past the int64 range
const maxVnd = float64(math.MaxInt64)

var emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.[a-zA-Z]{2,6}$`)

// ApplyDiscount returns total reduced by discountPercent, which must be
// within [0, 100].
func ApplyDiscount(total, discountPercent float64) (float64, error) {
	if !isAmount(total) || !isPercent(discountPercent) {
		return 0, ErrInvalidInput
	}
	return total - (total * discountPercent / 100), nil
}

// IsValidEmail reports whether email looks like local-part@domain.tld with a
// two to six letter top level domain.
func IsValidEmail(email string) bool {
	return validation.Validate(email,
		validation.Required,
		validation.Match(emailPattern),
	) == nil
}

// CalculateAverageOrder returns the arithmetic mean of orders
func CalculateAverageOrder(orders []float64) (float64, error) {
	if len(orders) == 0 {
		return 0, ErrEmptyList
	}

	var sum float64
	for _, o := range orders {
		sum += o
	}
	return sum / float64(len(orders)), nil
}

// ValidateOrderAmounts reports whether every order is a non negative number.
// A nil slice is invalid, an empty one is not. NaN stands in for a missing
// amount.
func ValidateOrderAmounts(orders []float64) bool {
	if orders == nil {
		return false
	}

	for _, o := range orders {
		if !isAmount(o) {
			return false
		}
	}
	return true
}

// ConvertUsdToVnd converts usd at UsdToVndRate, rounding down to a whole dong.
// Amounts beyond the int64 range, +Inf included, saturate at math.MaxInt64.
func ConvertUsdToVnd(usd float64) (int64, error) {
	if !isAmount(usd) {
		return 0, ErrInvalidInput
	}

	vnd := math.Floor(usd * UsdToVndRate)
	if vnd >= maxVnd {
		return math.MaxInt64, nil
	}
	return int64(vnd), nil
}

func isAmount(v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	return validation.Validate(v, validation.Min(0.0)) == nil
}

func isPercent(v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	return validation.Validate(v, validation.Min(0.0), validation.Max(100.0)) == nil
}

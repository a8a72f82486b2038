package finance

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenAndBalanceSplit(t *testing.T) {
	tests := []struct {
		name            string
		price           float64
		expectedToken   float64
		expectedBalance float64
	}{
		{"typical sale price", 4500000, 450000, 4050000},
		{"small price", 1000, 100, 900},
		{"zero price", 0, 0, 0},
		{"odd price rounds", 999999, 100000, 899999},
		{"negative clamps to zero", -500, 0, 0},
		{"NaN clamps to zero", math.NaN(), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedToken, TokenAmount(tt.price))
			assert.Equal(t, tt.expectedBalance, BalanceAmount(tt.price))
		})
	}
}

// Token plus balance must differ from the sanitized price by at most one rupee
// of rounding.
func TestTokenBalanceIdentity(t *testing.T) {
	prices := []float64{0, 1, 99, 1000, 12345, 999999, 4500000, 7850001, 99999999}
	for _, price := range prices {
		sum := TokenAmount(price) + BalanceAmount(price)
		assert.LessOrEqual(t, math.Abs(sum-price), 1.0, "price %v", price)
	}
}

func TestGSTAmount(t *testing.T) {
	assert.Equal(t, float64(540000), GSTAmount(4500000, GSTRatePurchaseCommercial))
	assert.Equal(t, float64(8100), GSTAmount(45000, GSTRateRentalCommercial))
	assert.Equal(t, float64(0), GSTAmount(math.NaN(), GSTRateRentalCommercial))
}

func TestDeposit(t *testing.T) {
	assert.Equal(t, float64(90000), Deposit(45000))
	assert.Equal(t, float64(9000000), Deposit(4500000))
	assert.Equal(t, float64(0), Deposit(-1))
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		months   int
		expected string
	}{
		{"plain shift", "2025-02-15", 3, "2025-05-15"},
		{"month-end clamps to shorter month", "2025-01-31", 3, "2025-04-30"},
		{"clamps to february", "2025-01-31", 1, "2025-02-28"},
		{"leap year february", "2024-01-31", 1, "2024-02-29"},
		{"year rollover", "2025-11-30", 6, "2026-05-30"},
		{"zero months", "2025-06-10", 0, "2025-06-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := time.Parse("2006-01-02", tt.start)
			assert.NoError(t, err)
			got := AddMonths(start, tt.months)
			assert.Equal(t, tt.expected, got.Format("2006-01-02"))
		})
	}
}

func TestAddDays(t *testing.T) {
	start, _ := time.Parse("2006-01-02", "2025-12-20")
	assert.Equal(t, "2026-01-19", AddDays(start, 30).Format("2006-01-02"))
	assert.Equal(t, "2026-02-03", AddDays(start, 45).Format("2006-01-02"))
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{4500000, "₹45,00,000"},
		{450000, "₹4,50,000"},
		{9000000, "₹90,00,000"},
		{45000, "₹45,000"},
		{999, "₹999"},
		{1000, "₹1,000"},
		{100000, "₹1,00,000"},
		{10000000, "₹1,00,00,000"},
		{0, "₹0"},
		{math.NaN(), "₹0"},
		{-4200, "₹0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatCurrency(tt.amount))
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "07 March 2025", FormatDate(d))
	assert.Equal(t, DatePlaceholder, FormatDate(time.Time{}))
}

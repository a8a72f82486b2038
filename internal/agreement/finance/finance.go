// internal/agreement/finance/finance.go

// Package finance holds the pure money and date arithmetic behind agreement
// documents. Every function is total over its input domain: malformed numbers
// clamp to zero and zero dates render as a placeholder, so a document stays
// renderable even from partial upstream data.
package finance

import (
	"math"
	"strings"
	"time"
)

// GST rates fixed by commercial agreement policy.
const (
	GSTRatePurchaseCommercial = 0.12
	GSTRateRentalCommercial   = 0.18
)

// Token/balance split: 10% at signing, 90% at registration.
const (
	tokenShare   = 0.10
	balanceShare = 0.90
)

// depositMonths is the rental deposit policy: two months' rent for every
// rental template, regardless of the selected duration.
const depositMonths = 2

// DatePlaceholder is rendered for absent or zero dates.
const DatePlaceholder = "—"

// sanitize clamps NaN, infinite and negative amounts to zero.
func sanitize(amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return 0
	}
	return amount
}

// TokenAmount is the upfront 10% of price paid at signing.
func TokenAmount(price float64) float64 {
	return math.Round(sanitize(price) * tokenShare)
}

// BalanceAmount is the remaining 90% due at registration.
func BalanceAmount(price float64) float64 {
	return math.Round(sanitize(price) * balanceShare)
}

// GSTAmount applies the given rate to price.
func GSTAmount(price, rate float64) float64 {
	return math.Round(sanitize(price) * sanitize(rate))
}

// Deposit is the refundable security deposit for a rental: two months' rent.
func Deposit(monthlyRent float64) float64 {
	return sanitize(monthlyRent) * depositMonths
}

// AddDays returns date shifted by n calendar days.
func AddDays(date time.Time, n int) time.Time {
	return date.AddDate(0, 0, n)
}

// AddMonths returns date shifted by n calendar months, clamping the day to the
// last day of the target month. time.AddDate overflows instead (Jan 31 + 1
// month = Mar 3), which would put lease expiry dates on the wrong day.
func AddMonths(date time.Time, n int) time.Time {
	year, month, day := date.Date()
	hour, min, sec := date.Clock()

	firstOfTarget := time.Date(year, month+time.Month(n), 1, hour, min, sec, date.Nanosecond(), date.Location())
	if last := daysInMonth(firstOfTarget.Year(), firstOfTarget.Month()); day > last {
		day = last
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, hour, min, sec, date.Nanosecond(), date.Location())
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FormatCurrency renders an amount as an Indian-locale grouped integer with a
// rupee prefix: 4500000 -> "₹45,00,000". The last three digits form one group,
// every group above that is two digits. Invalid input renders as "₹0".
func FormatCurrency(amount float64) string {
	rupees := int64(math.Round(sanitize(amount)))
	return "₹" + groupIndian(rupees)
}

func groupIndian(n int64) string {
	digits := []byte(formatInt(n))
	if len(digits) <= 3 {
		return string(digits)
	}

	var b strings.Builder
	head := digits[:len(digits)-3]
	// Two-digit groups from the right of the head.
	if rem := len(head) % 2; rem == 1 {
		b.WriteByte(head[0])
		head = head[1:]
		b.WriteByte(',')
	}
	for i := 0; i < len(head); i += 2 {
		b.Write(head[i : i+2])
		b.WriteByte(',')
	}
	b.Write(digits[len(digits)-3:])
	return b.String()
}

func formatInt(n int64) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// FormatDate renders a date as "DD Month YYYY" (en-IN style); the zero value
// renders as the placeholder dash.
func FormatDate(date time.Time) string {
	if date.IsZero() {
		return DatePlaceholder
	}
	return date.Format("02 January 2006")
}

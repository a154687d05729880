package billing

import (
	"strings"
	"time"

	"github.com/talentproph/talentpro/pkg/apperr"
)

// Card is the raw card input of a checkout. It is validated and reduced to a
// PaymentMethod; the number and CVC are never persisted.
type Card struct {
	Number   string
	ExpMonth int
	ExpYear  int
	CVC      string
	Holder   string
}

var (
	ErrCardNumber  = apperr.New(apperr.KindValidation, "card number is invalid")
	ErrCardExpired = apperr.New(apperr.KindValidation, "card is expired")
	ErrCardCVC     = apperr.New(apperr.KindValidation, "card security code is invalid")
	ErrCardHolder  = apperr.New(apperr.KindValidation, "cardholder name is required")
)

// Validate checks the card at time now and returns the storable part of it.
func (c Card) Validate(now time.Time) (PaymentMethod, error) {
	digits := strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, c.Number)
	if len(digits) < 12 || len(digits) > 19 || !allDigits(digits) || !luhn(digits) {
		return PaymentMethod{}, ErrCardNumber
	}
	if strings.TrimSpace(c.Holder) == "" {
		return PaymentMethod{}, ErrCardHolder
	}
	if c.ExpMonth < 1 || c.ExpMonth > 12 {
		return PaymentMethod{}, ErrCardExpired
	}
	year := c.ExpYear
	if year < 100 {
		year += 2000
	}
	// valid through the last day of the expiry month
	expiry := time.Date(year, time.Month(c.ExpMonth)+1, 1, 0, 0, 0, 0, time.UTC)
	if !now.Before(expiry) {
		return PaymentMethod{}, ErrCardExpired
	}
	brand := cardBrand(digits)
	cvcLen := 3
	if brand == "amex" {
		cvcLen = 4
	}
	if len(c.CVC) != cvcLen || !allDigits(c.CVC) {
		return PaymentMethod{}, ErrCardCVC
	}
	return PaymentMethod{
		Brand:    brand,
		Last4:    digits[len(digits)-4:],
		ExpMonth: c.ExpMonth,
		ExpYear:  year,
		Holder:   strings.TrimSpace(c.Holder),
	}, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func luhn(digits string) bool {
	var sum int
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

func cardBrand(digits string) string {
	switch {
	case strings.HasPrefix(digits, "4"):
		return "visa"
	case strings.HasPrefix(digits, "34"), strings.HasPrefix(digits, "37"):
		return "amex"
	case strings.HasPrefix(digits, "35"):
		return "jcb"
	case len(digits) >= 2 && digits[0] == '5' && digits[1] >= '1' && digits[1] <= '5':
		return "mastercard"
	case len(digits) >= 4 && digits[:4] >= "2221" && digits[:4] <= "2720":
		return "mastercard"
	default:
		return "card"
	}
}

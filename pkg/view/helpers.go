package view

import "fmt"

// MoneyFromCents converts cents to a human-readable currency string.
// E.g., 15000 USD -> "$150.00"
func MoneyFromCents(cents int64, currency string) string {
	whole := cents / 100
	remainder := cents % 100
	if remainder < 0 {
		remainder = -remainder
	}
	return fmt.Sprintf("%s%d.%02d", currencySymbol(currency), whole, remainder)
}

func currencySymbol(code string) string {
	switch code {
	case "USD":
		return "$"
	case "EUR":
		return "€"
	case "GBP":
		return "£"
	case "TRY":
		return "₺"
	default:
		return code + " "
	}
}

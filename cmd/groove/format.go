package main

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var output = message.NewPrinter(language.English)

// formatPrice renders a currency-unit amount with thousands separators.
func formatPrice(amount float64) string {
	return output.Sprintf("$%.2f", amount)
}

func formatCount(count int) string {
	return output.Sprintf("%d", count)
}

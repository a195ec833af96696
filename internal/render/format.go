package render

import (
	"math"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/findash/dashboard-bot/internal/model"
)

// Formatting is locale-fixed to US conventions.
var (
	usPrinter = message.NewPrinter(language.AmericanEnglish)
	usTitle   = cases.Title(language.AmericanEnglish)
)

// FormatCurrency renders an amount as US currency with digit
// grouping, e.g. 1234.5 -> "$1,234.50" and -20 -> "-$20.00".
func FormatCurrency(amount float64) string {
	d := number.Decimal(math.Abs(amount),
		number.MinFractionDigits(2), number.MaxFractionDigits(2))
	if amount < 0 {
		return usPrinter.Sprintf("-$%v", d)
	}
	return usPrinter.Sprintf("$%v", d)
}

// SignedCurrency renders a transaction amount with the sign implied
// by its type: "+$50.00" for income, "-$50.00" for expense.
func SignedCurrency(amount float64, transactionType string) string {
	if transactionType == model.TypeIncome {
		return "+" + FormatCurrency(amount)
	}
	return "-" + FormatCurrency(amount)
}

// FormatDate renders a wire-format date as a short US date ("Jan 2").
// Unparseable input is passed through unchanged.
func FormatDate(date string) string {
	t, err := model.ParseDate(date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2")
}

// TitleLabel capitalizes an enumerated value for display, e.g.
// "checking" -> "Checking".
func TitleLabel(s string) string {
	return usTitle.String(s)
}

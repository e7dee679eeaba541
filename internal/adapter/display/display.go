// Package display renders numeric amounts as locale-specific currency
// strings, keeping formatting out of the core.
package display

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/solemarket/storefront/internal/core/port"
)

var _ port.PriceFormatter = (*CurrencyFormatter)(nil)

type CurrencyFormatter struct {
	printer *message.Printer
	unit    currency.Unit
}

func NewCurrencyFormatter(locale, isoCode string) (*CurrencyFormatter, error) {
	const op = "NewCurrencyFormatter"

	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid locale %q: %w", op, locale, err)
	}

	unit, err := currency.ParseISO(isoCode)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid currency %q: %w", op, isoCode, err)
	}

	return &CurrencyFormatter{
		printer: message.NewPrinter(tag),
		unit:    unit,
	}, nil
}

func (f *CurrencyFormatter) Format(amount float64) string {
	return f.printer.Sprint(currency.Symbol(f.unit.Amount(amount)))
}

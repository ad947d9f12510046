package client

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var localeIndia = language.MustParse("en-IN")

// FormatCurrency formatea un monto para mostrar. Con código vacío o
// desconocido se asume INR, la moneda por defecto de la aplicación; los
// montos en INR usan la agrupación india (1,00,000).
func FormatCurrency(amount decimal.Decimal, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.INR
	}

	tag := language.AmericanEnglish
	if unit == currency.INR {
		tag = localeIndia
	}

	f, _ := amount.Float64()
	p := message.NewPrinter(tag)
	return p.Sprintf("%v", currency.Symbol(unit.Amount(f)))
}

// Package currency converts local-currency amounts into the reference
// currency. The rate source is injected so tests can pin deterministic
// rates; the default source reads the fixed rate from configuration.
package currency

import (
	"happyhotel/internal/domain/booking"
	"happyhotel/internal/pkg/config"
	"happyhotel/internal/pkg/errs"
)

// RateSource yields the current local-to-reference exchange rate.
type RateSource func() (float64, error)

type Converter struct {
	rate RateSource
}

func NewConverter(cfg config.CurrencyConfig) *Converter {
	return NewConverterWithSource(func() (float64, error) {
		return cfg.ReferenceRate, nil
	})
}

func NewConverterWithSource(rate RateSource) *Converter {
	return &Converter{rate: rate}
}

func (c *Converter) ToReferenceCurrency(amount float64) (float64, error) {
	rate, err := c.rate()
	if err != nil {
		return 0, errs.Mark(err, booking.ErrRateUnavailable)
	}
	if rate <= 0 {
		return 0, errs.Mark(errs.New("non-positive exchange rate"), booking.ErrRateUnavailable)
	}
	return amount * rate, nil
}

package wealth

import (
	"github.com/etnz/wealth/date"
	"github.com/shopspring/decimal"
)

// DefaultFXRate is the number of local currency units per foreign currency
// unit used when no rate is configured.
const DefaultFXRate = 1300

// DefaultProjectionMonths is the default length of a cash flow projection.
const DefaultProjectionMonths = 6

// Options holds the constants the engine needs besides the profile itself.
type Options struct {
	// FXRate converts foreign-tagged equity prices into the profile currency.
	// It is a fixed constant, never looked up. Zero means unset and uses
	// DefaultFXRate: a rate of zero cannot be configured.
	FXRate decimal.Decimal
	// ProjectionMonths is the length of the cash flow projection. Zero means
	// unset and uses DefaultProjectionMonths, a negative value projects nothing.
	ProjectionMonths int
	// Start dates the first projected month. The zero value leaves
	// projected months undated.
	Start date.Date
}

// DefaultOptions returns the options matching the built-in constants.
func DefaultOptions() Options {
	return Options{
		FXRate:           decimal.NewFromInt(DefaultFXRate),
		ProjectionMonths: DefaultProjectionMonths,
	}
}

// fx returns the configured rate, falling back to DefaultFXRate.
func (o Options) fx() decimal.Decimal {
	if o.FXRate.IsZero() {
		return decimal.NewFromInt(DefaultFXRate)
	}
	return o.FXRate
}

// months returns the configured projection length, falling back to
// DefaultProjectionMonths.
func (o Options) months() int {
	if o.ProjectionMonths == 0 {
		return DefaultProjectionMonths
	}
	return o.ProjectionMonths
}

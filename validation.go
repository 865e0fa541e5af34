package wealth

import (
	"errors"
	"fmt"
)

// Validate reports every negative amount or share count of 'p' at once, and
// every amount other than an equity price that is not in the profile
// currency.
//
// Aggregations never require a valid profile: they are total functions over
// any decoded input. Validate is for callers that want to reject nonsensical
// data before showing it.
func Validate(p *Profile) error {
	var errs []error
	c := p.Currency
	if c == "" {
		c = DefaultCurrency
	}

	for _, a := range p.amounts() {
		if a.m.IsNegative() {
			errs = append(errs, fmt.Errorf("%s is negative: %v", a.where, *a.m))
		}
		if err := checkCurrency(a.where, *a.m, c); err != nil {
			errs = append(errs, err)
		}
	}
	for _, l := range p.Loans {
		if l.Rate < 0 {
			errs = append(errs, fmt.Errorf("loan %q rate is negative: %v", l.Name, l.Rate))
		}
	}
	for _, pos := range p.Positions(DefaultOptions()) {
		e := pos.Equity
		if e.Shares.IsNegative() {
			errs = append(errs, fmt.Errorf("%s equity %q shares are negative: %v", pos.Kind, e.Name, e.Shares))
		}
		if e.Price.IsNegative() {
			errs = append(errs, fmt.Errorf("%s equity %q price is negative: %v", pos.Kind, e.Name, e.Price))
		}
	}

	return errors.Join(errs...)
}

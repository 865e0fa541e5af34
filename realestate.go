package wealth

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when removing a real estate holding that
// does not exist.
var ErrIndexOutOfRange = errors.New("index out of range")

// NewRealEstateLabel is the type given to holdings created by AddRealEstate.
const NewRealEstateLabel = "New property"

// NetValue returns the value of the property minus its loan.
func (r RealEstate) NetValue() Money { return r.Value.Sub(r.Loan) }

// Yield returns the gross annual rental yield of the property
// (rent*12/value*100). It returns false when the value is not positive, in
// which case the yield is undefined.
func (r RealEstate) Yield() (Percent, bool) {
	if !r.Value.IsPositive() {
		return 0, false
	}
	return percentOf(r.Rent.Mul(Q(12)), r.Value), true
}

// TotalRealEstateValue returns the market value of all properties.
func (p *Profile) TotalRealEstateValue() Money {
	total := p.zero()
	for _, r := range p.RealEstate {
		total = total.Add(r.Value)
	}
	return total
}

// TotalRealEstateLoan returns the loans attached to all properties.
func (p *Profile) TotalRealEstateLoan() Money {
	total := p.zero()
	for _, r := range p.RealEstate {
		total = total.Add(r.Loan)
	}
	return total
}

// TotalMonthlyRent returns the monthly rent of all properties.
func (p *Profile) TotalMonthlyRent() Money {
	total := p.zero()
	for _, r := range p.RealEstate {
		total = total.Add(r.Rent)
	}
	return total
}

// RealEstateNetValue returns the value of all properties minus their loans.
func (p *Profile) RealEstateNetValue() Money {
	return p.TotalRealEstateValue().Sub(p.TotalRealEstateLoan())
}

// RealEstateYield returns the gross annual rental yield of all properties.
// It is 0 when there is no property value to divide by.
func (p *Profile) RealEstateYield() Percent {
	return percentOf(p.TotalMonthlyRent().Mul(Q(12)), p.TotalRealEstateValue())
}

// AddRealEstate appends a zeroed holding labelled NewRealEstateLabel and
// returns its index.
func (p *Profile) AddRealEstate() int {
	z := p.zero()
	p.RealEstate = append(p.RealEstate, RealEstate{Type: NewRealEstateLabel, Value: z, Loan: z, Rent: z})
	return len(p.RealEstate) - 1
}

// RemoveRealEstate removes the holding at index i. An index out of range is
// rejected with ErrIndexOutOfRange and the list is left untouched.
func (p *Profile) RemoveRealEstate(i int) error {
	if i < 0 || i >= len(p.RealEstate) {
		return fmt.Errorf("cannot remove real estate %d of %d: %w", i, len(p.RealEstate), ErrIndexOutOfRange)
	}
	p.RealEstate = append(p.RealEstate[:i:i], p.RealEstate[i+1:]...)
	return nil
}

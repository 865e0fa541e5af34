package renderer

import (
	"github.com/etnz/wealth"
	"github.com/shopspring/decimal"
)

// Dashboard is the data every report is rendered from: the derived metrics
// of a profile, plus the raw records the tables list.
type Dashboard struct {
	*wealth.Metrics

	FXRate     string
	Positions  []wealth.Position
	Properties []Property
	Pensions   []wealth.Pension
	Loans      []wealth.Loan
}

// Property is a real estate holding ready to print.
type Property struct {
	Index int
	wealth.RealEstate
	Net   wealth.Money
	Yield string // "n/a" when the value is not positive
}

// NewDashboard computes the metrics of 'p' and collects what reports need.
func NewDashboard(p *wealth.Profile, opts wealth.Options) *Dashboard {
	if opts.FXRate.IsZero() {
		opts.FXRate = decimal.NewFromInt(wealth.DefaultFXRate)
	}
	d := &Dashboard{
		Metrics:   wealth.NewMetrics(p, opts),
		FXRate:    opts.FXRate.String(),
		Positions: p.Positions(opts),
		Pensions:  p.Pensions,
		Loans:     p.Loans,
	}
	for i, r := range p.RealEstate {
		prop := Property{Index: i, RealEstate: r, Net: r.NetValue(), Yield: "n/a"}
		if y, ok := r.Yield(); ok {
			prop.Yield = y.String()
		}
		d.Properties = append(d.Properties, prop)
	}
	return d
}

package wealth

// AssetCategory is one of the fixed categories total assets are split into.
type AssetCategory string

const (
	CategoryRealEstate AssetCategory = "real estate"
	CategoryEquities   AssetCategory = "equities"
	CategoryDeposits   AssetCategory = "deposits"
	CategoryBonds      AssetCategory = "bonds"
	CategoryPensions   AssetCategory = "pensions"
	CategoryGold       AssetCategory = "gold"
	CategoryCrypto     AssetCategory = "crypto"
)

// AssetCategories lists every category in display order.
var AssetCategories = []AssetCategory{
	CategoryRealEstate,
	CategoryEquities,
	CategoryDeposits,
	CategoryBonds,
	CategoryPensions,
	CategoryGold,
	CategoryCrypto,
}

// Allocation is the share of total assets held in one category.
type Allocation struct {
	Category AssetCategory `json:"category"`
	Amount   Money         `json:"amount"`
	Percent  Percent       `json:"percent"`
}

// TotalLoanBalance returns the outstanding balance of all loans.
func (p *Profile) TotalLoanBalance() Money {
	total := p.zero()
	for _, l := range p.Loans {
		total = total.Add(l.Balance)
	}
	return total
}

// TotalLoanPayment returns the monthly payment of all loans.
func (p *Profile) TotalLoanPayment() Money {
	total := p.zero()
	for _, l := range p.Loans {
		total = total.Add(l.Monthly)
	}
	return total
}

// TotalPensionBalance returns the accumulated balance of all pensions.
func (p *Profile) TotalPensionBalance() Money {
	total := p.zero()
	for _, x := range p.Pensions {
		total = total.Add(x.Balance)
	}
	return total
}

// TotalPensionContribution returns the monthly contribution to all pensions.
func (p *Profile) TotalPensionContribution() Money {
	total := p.zero()
	for _, x := range p.Pensions {
		total = total.Add(x.Monthly)
	}
	return total
}

// TotalExpectedPayout returns the monthly payout of all pensions once they
// have all started.
func (p *Profile) TotalExpectedPayout() Money {
	total := p.zero()
	for _, x := range p.Pensions {
		total = total.Add(x.ExpectedMonthly)
	}
	return total
}

// Allocation splits total assets into the fixed AssetCategories. The amounts
// add up exactly to TotalAssets.
func (p *Profile) Allocation(opts Options) []Allocation {
	amounts := map[AssetCategory]Money{
		CategoryRealEstate: p.TotalRealEstateValue(),
		CategoryEquities:   p.TotalEquityValue(opts),
		CategoryDeposits:   p.Other.Deposits,
		CategoryBonds:      p.Other.Bonds,
		CategoryPensions:   p.TotalPensionBalance(),
		CategoryGold:       p.Other.Gold,
		CategoryCrypto:     p.Other.Crypto,
	}
	total := p.zero()
	for _, c := range AssetCategories {
		total = total.Add(amounts[c])
	}
	res := make([]Allocation, 0, len(AssetCategories))
	for _, c := range AssetCategories {
		res = append(res, Allocation{
			Category: c,
			Amount:   amounts[c].In(p.Currency),
			Percent:  AllocationPercent(amounts[c], total),
		})
	}
	return res
}

// AllocationPercent returns amount as a percentage of total, 0 when total is zero.
func AllocationPercent(amount, total Money) Percent { return percentOf(amount, total) }

// TotalAssets returns the value of equities, other assets, pension balances
// and real estate.
func (p *Profile) TotalAssets(opts Options) Money {
	total := p.zero()
	for _, a := range p.Allocation(opts) {
		total = total.Add(a.Amount)
	}
	return total
}

// NetWorth returns total assets minus all loan balances.
func (p *Profile) NetWorth(opts Options) Money {
	return p.TotalAssets(opts).Sub(p.TotalLoanBalance())
}

package wealth

// Metrics holds every figure derived from a profile. It is a pure function
// of the profile and the options: compute a new one after each change.
type Metrics struct {
	Currency string `json:"currency"`

	// Cash flow
	TotalMonthlyIncome  Money            `json:"totalMonthlyIncome"`
	TotalMonthlyExpense Money            `json:"totalMonthlyExpense"`
	NetCashFlow         Money            `json:"netCashFlow"`
	SavingsRate         Percent          `json:"savingsRate"`
	IncomeBreakdown     []CategoryAmount `json:"incomeBreakdown"`
	ExpenseBreakdown    []CategoryAmount `json:"expenseBreakdown"`
	Projection          []ProjectedMonth `json:"projection"`

	// Equities
	DomesticEquityValue Money         `json:"domesticEquityValue"`
	ForeignEquityValue  Money         `json:"foreignEquityValue"`
	FundValue           Money         `json:"fundValue"`
	TotalEquityValue    Money         `json:"totalEquityValue"`
	ByBroker            []BrokerGroup `json:"byBroker"`
	BySector            []SectorGroup `json:"bySector"`
	FundHoldings        []FundHolding `json:"fundHoldings"`

	// Real estate
	TotalRealEstateValue Money   `json:"totalRealEstateValue"`
	TotalRealEstateLoan  Money   `json:"totalRealEstateLoan"`
	RealEstateNetValue   Money   `json:"realEstateNetValue"`
	TotalMonthlyRent     Money   `json:"totalMonthlyRent"`
	RealEstateYield      Percent `json:"realEstateYield"`

	// Pensions and loans
	TotalPensionBalance      Money `json:"totalPensionBalance"`
	TotalPensionContribution Money `json:"totalPensionContribution"`
	TotalExpectedPayout      Money `json:"totalExpectedPayout"`
	TotalLoanBalance         Money `json:"totalLoanBalance"`
	TotalLoanPayment         Money `json:"totalLoanPayment"`

	// Balance sheet
	TotalAssets Money        `json:"totalAssets"`
	NetWorth    Money        `json:"netWorth"`
	Allocation  []Allocation `json:"allocation"`
}

// NewMetrics computes all the derived figures of 'p'.
func NewMetrics(p *Profile, opts Options) *Metrics {
	m := &Metrics{
		Currency: p.Currency,

		TotalMonthlyIncome:  p.TotalMonthlyIncome(),
		TotalMonthlyExpense: p.TotalMonthlyExpense(),
		NetCashFlow:         p.NetCashFlow(),
		SavingsRate:         p.SavingsRate(),
		IncomeBreakdown:     p.IncomeBreakdown(),
		ExpenseBreakdown:    p.ExpenseBreakdown(),
		Projection:          p.projection(opts.months(), opts.Start),

		DomesticEquityValue: p.TotalEquityValueOf(Domestic, opts),
		ForeignEquityValue:  p.TotalEquityValueOf(Foreign, opts),
		FundValue:           p.TotalEquityValueOf(Fund, opts),
		TotalEquityValue:    p.TotalEquityValue(opts),
		ByBroker:            p.ByBroker(opts),
		BySector:            p.BySector(opts),
		FundHoldings:        p.FundHoldings(),

		TotalRealEstateValue: p.TotalRealEstateValue(),
		TotalRealEstateLoan:  p.TotalRealEstateLoan(),
		RealEstateNetValue:   p.RealEstateNetValue(),
		TotalMonthlyRent:     p.TotalMonthlyRent(),
		RealEstateYield:      p.RealEstateYield(),

		TotalPensionBalance:      p.TotalPensionBalance(),
		TotalPensionContribution: p.TotalPensionContribution(),
		TotalExpectedPayout:      p.TotalExpectedPayout(),
		TotalLoanBalance:         p.TotalLoanBalance(),
		TotalLoanPayment:         p.TotalLoanPayment(),

		Allocation: p.Allocation(opts),
	}
	m.TotalAssets = p.zero()
	for _, a := range m.Allocation {
		m.TotalAssets = m.TotalAssets.Add(a.Amount)
	}
	m.NetWorth = m.TotalAssets.Sub(m.TotalLoanBalance)
	return m
}

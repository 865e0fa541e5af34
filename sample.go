package wealth

// SampleProfile returns a demonstration household in KRW: a salaried owner
// of two properties with two loans, two pension plans, Korean and US stocks
// and two funds.
func SampleProfile() *Profile {
	p := NewProfile("KRW")
	p.Income = MonthlyIncome{
		Salary:    KRW(4_500_000),
		Rent:      KRW(800_000),
		Dividends: KRW(150_000),
		Interest:  KRW(50_000),
	}
	p.Expenses = MonthlyExpenses{
		Fixed:       KRW(1_200_000),
		LoanPayment: KRW(1_500_000),
		Pension:     KRW(500_000),
		Savings:     KRW(300_000),
		Living:      KRW(800_000),
	}
	p.Loans = []Loan{
		{Name: "Mortgage", Balance: KRW(150_000_000), Rate: 3.5, Monthly: KRW(900_000), Lender: "Kookmin Bank"},
		{Name: "Credit line", Balance: KRW(30_000_000), Rate: 4.2, Monthly: KRW(600_000), Lender: "Shinhan Bank"},
	}
	p.RealEstate = []RealEstate{
		{Type: "Apartment (home)", Value: KRW(500_000_000), Loan: KRW(150_000_000), Rent: KRW(0)},
		{Type: "Officetel (rental)", Value: KRW(200_000_000), Loan: KRW(0), Rent: KRW(800_000)},
	}
	p.Pensions = []Pension{
		{Type: "TDF pension", Monthly: KRW(300_000), Balance: KRW(25_000_000), StartAge: 55, ExpectedMonthly: KRW(1_200_000)},
		{Type: "Variable annuity", Monthly: KRW(200_000), Balance: KRW(15_000_000), StartAge: 55, ExpectedMonthly: KRW(800_000)},
	}
	p.Equities = Equities{
		Domestic: []Equity{
			{Name: "Samsung Electronics", Shares: Q(100), Price: KRW(70_000), Broker: "Samsung Securities", Sector: "Semiconductors"},
			{Name: "SK Hynix", Shares: Q(50), Price: KRW(150_000), Broker: "Samsung Securities", Sector: "Semiconductors"},
			{Name: "NAVER", Shares: Q(30), Price: KRW(200_000), Broker: "Kiwoom Securities", Sector: "IT"},
		},
		Foreign: []Equity{
			{Name: "Apple", Shares: Q(20), Price: USD(180), Broker: "Samsung Securities", Sector: "Technology", Currency: "USD"},
			{Name: "Microsoft", Shares: Q(15), Price: USD(380), Broker: "Kiwoom Securities", Sector: "Technology", Currency: "USD"},
			{Name: "Tesla", Shares: Q(10), Price: USD(240), Broker: "Samsung Securities", Sector: "Automotive", Currency: "USD"},
		},
		Funds: []Equity{
			{Name: "TIGER US S&P500", Shares: Q(500), Price: KRW(15_000), Broker: "Samsung Securities", Holdings: []string{"Apple", "Microsoft"}},
			{Name: "KODEX Semiconductors", Shares: Q(200), Price: KRW(45_000), Broker: "Kiwoom Securities", Holdings: []string{"Samsung Electronics", "SK Hynix"}},
		},
	}
	p.Other = OtherAssets{
		Deposits: KRW(50_000_000),
		Bonds:    KRW(30_000_000),
		Gold:     KRW(10_000_000),
		Crypto:   KRW(5_000_000),
	}
	return p
}

package wealth

import "github.com/etnz/wealth/date"

// CategoryAmount is an amount attributed to a named category.
type CategoryAmount struct {
	Name   string `json:"name"`
	Amount Money  `json:"amount"`
}

// TotalMonthlyIncome returns the sum of all income streams.
func (p *Profile) TotalMonthlyIncome() Money {
	in := p.Income
	return sum(p.Currency, in.Salary, in.Rent, in.Dividends, in.Interest)
}

// TotalMonthlyExpense returns the sum of all expenses.
func (p *Profile) TotalMonthlyExpense() Money {
	ex := p.Expenses
	return sum(p.Currency, ex.Fixed, ex.LoanPayment, ex.Pension, ex.Savings, ex.Living)
}

// NetCashFlow returns income minus expenses. It is negative when the
// household spends more than it earns.
func (p *Profile) NetCashFlow() Money {
	return p.TotalMonthlyIncome().Sub(p.TotalMonthlyExpense())
}

// SavingsRate returns the net cash flow as a percentage of income, 0 without income.
func (p *Profile) SavingsRate() Percent {
	return percentOf(p.NetCashFlow(), p.TotalMonthlyIncome())
}

// IncomeBreakdown splits income into earned income, rent, and capital income
// (dividends plus interest).
func (p *Profile) IncomeBreakdown() []CategoryAmount {
	in := p.Income
	return []CategoryAmount{
		{Name: "Salary", Amount: in.Salary},
		{Name: "Rent", Amount: in.Rent},
		{Name: "Dividends & interest", Amount: in.Dividends.Add(in.Interest)},
	}
}

// ExpenseBreakdown splits expenses into fixed costs, loan repayment,
// investment (pension plus savings) and living costs.
func (p *Profile) ExpenseBreakdown() []CategoryAmount {
	ex := p.Expenses
	return []CategoryAmount{
		{Name: "Fixed", Amount: ex.Fixed},
		{Name: "Loan repayment", Amount: ex.LoanPayment},
		{Name: "Pension & savings", Amount: ex.Pension.Add(ex.Savings)},
		{Name: "Living", Amount: ex.Living},
	}
}

// ProjectedMonth is one month of a cash flow projection.
type ProjectedMonth struct {
	Index      int       `json:"index"` // 1-based
	Month      date.Date `json:"month,omitzero"`
	Income     Money     `json:"income"`
	Expense    Money     `json:"expense"`
	Net        Money     `json:"net"`
	Cumulative Money     `json:"cumulative"`
}

// Projection repeats the current month's income and expenses over 'months'
// months. It is a flat repeat, not a forecast: there is no growth and no
// compounding, so the cumulative net of month i is exactly net*i.
//
// A non positive 'months' gives an empty projection.
func (p *Profile) Projection(months int) []ProjectedMonth {
	return p.projection(months, date.Date{})
}

func (p *Profile) projection(months int, start date.Date) []ProjectedMonth {
	months = max(months, 0)
	income, expense, net := p.TotalMonthlyIncome(), p.TotalMonthlyExpense(), p.NetCashFlow()
	res := make([]ProjectedMonth, 0, months)
	for i := 1; i <= months; i++ {
		pm := ProjectedMonth{
			Index:      i,
			Income:     income,
			Expense:    expense,
			Net:        net,
			Cumulative: net.Mul(Q(i)),
		}
		if !start.IsZero() {
			pm.Month = start.StartOfMonth().AddMonths(i - 1)
		}
		res = append(res, pm)
	}
	return res
}

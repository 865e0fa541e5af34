package wealth

import (
	"testing"
	"time"

	"github.com/etnz/wealth/date"
)

func TestProfile_CashFlow(t *testing.T) {
	testCases := []struct {
		name        string
		income      MonthlyIncome
		expenses    MonthlyExpenses
		wantIncome  Money
		wantExpense Money
		wantNet     Money
		wantSavings Percent
	}{
		{
			name:        "sample household",
			income:      MonthlyIncome{KRW(4_500_000), KRW(800_000), KRW(150_000), KRW(50_000)},
			expenses:    MonthlyExpenses{KRW(1_200_000), KRW(1_500_000), KRW(500_000), KRW(300_000), KRW(800_000)},
			wantIncome:  KRW(5_500_000),
			wantExpense: KRW(4_300_000),
			wantNet:     KRW(1_200_000),
			wantSavings: 21.818181,
		},
		{
			name:        "spending more than earning",
			income:      MonthlyIncome{Salary: KRW(2_000_000)},
			expenses:    MonthlyExpenses{Fixed: KRW(1_500_000), Living: KRW(1_000_000)},
			wantIncome:  KRW(2_000_000),
			wantExpense: KRW(2_500_000),
			wantNet:     KRW(-500_000),
			wantSavings: -25,
		},
		{
			name:        "no income at all",
			expenses:    MonthlyExpenses{Living: KRW(100)},
			wantIncome:  KRW(0),
			wantExpense: KRW(100),
			wantNet:     KRW(-100),
			wantSavings: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewProfile("KRW")
			p.Income, p.Expenses = tc.income, tc.expenses

			if got := p.TotalMonthlyIncome(); !got.Equal(tc.wantIncome) {
				t.Errorf("TotalMonthlyIncome() = %v, want %v", got, tc.wantIncome)
			}
			if got := p.TotalMonthlyExpense(); !got.Equal(tc.wantExpense) {
				t.Errorf("TotalMonthlyExpense() = %v, want %v", got, tc.wantExpense)
			}
			if got := p.NetCashFlow(); !got.Equal(tc.wantNet) {
				t.Errorf("NetCashFlow() = %v, want %v", got, tc.wantNet)
			}
			if got := p.SavingsRate(); !got.Equal(tc.wantSavings) {
				t.Errorf("SavingsRate() = %v, want %v", got, tc.wantSavings)
			}
		})
	}
}

func TestProfile_Breakdowns(t *testing.T) {
	p := SampleProfile()

	income := p.IncomeBreakdown()
	wantIncome := []Money{KRW(4_500_000), KRW(800_000), KRW(200_000)}
	if len(income) != len(wantIncome) {
		t.Fatalf("IncomeBreakdown() has %d categories, want %d", len(income), len(wantIncome))
	}
	total := KRW(0)
	for i, c := range income {
		if !c.Amount.Equal(wantIncome[i]) {
			t.Errorf("IncomeBreakdown()[%d] %s = %v, want %v", i, c.Name, c.Amount, wantIncome[i])
		}
		total = total.Add(c.Amount)
	}
	if !total.Equal(p.TotalMonthlyIncome()) {
		t.Errorf("IncomeBreakdown() adds up to %v, want %v", total, p.TotalMonthlyIncome())
	}

	expense := p.ExpenseBreakdown()
	wantExpense := []Money{KRW(1_200_000), KRW(1_500_000), KRW(800_000), KRW(800_000)}
	if len(expense) != len(wantExpense) {
		t.Fatalf("ExpenseBreakdown() has %d categories, want %d", len(expense), len(wantExpense))
	}
	total = KRW(0)
	for i, c := range expense {
		if !c.Amount.Equal(wantExpense[i]) {
			t.Errorf("ExpenseBreakdown()[%d] %s = %v, want %v", i, c.Name, c.Amount, wantExpense[i])
		}
		total = total.Add(c.Amount)
	}
	if !total.Equal(p.TotalMonthlyExpense()) {
		t.Errorf("ExpenseBreakdown() adds up to %v, want %v", total, p.TotalMonthlyExpense())
	}
}

func TestProfile_Projection(t *testing.T) {
	p := SampleProfile()
	net := p.NetCashFlow()

	got := p.Projection(6)
	if len(got) != 6 {
		t.Fatalf("Projection(6) returned %d months, want 6", len(got))
	}
	for i, pm := range got {
		if pm.Index != i+1 {
			t.Errorf("month %d: Index = %d, want %d", i, pm.Index, i+1)
		}
		if !pm.Income.Equal(KRW(5_500_000)) || !pm.Expense.Equal(KRW(4_300_000)) {
			t.Errorf("month %d: income/expense = %v/%v, want constant 5500000/4300000", i, pm.Income, pm.Expense)
		}
		if !pm.Net.Equal(net) {
			t.Errorf("month %d: Net = %v, want %v", i, pm.Net, net)
		}
		if want := net.Mul(Q(i + 1)); !pm.Cumulative.Equal(want) {
			t.Errorf("month %d: Cumulative = %v, want %v", i, pm.Cumulative, want)
		}
		if !pm.Month.IsZero() {
			t.Errorf("month %d: undated projection has Month %v", i, pm.Month)
		}
	}
	if last := got[5].Cumulative; !last.Equal(KRW(7_200_000)) {
		t.Errorf("Cumulative after 6 months = %v, want %v", last, KRW(7_200_000))
	}

	t.Run("no months", func(t *testing.T) {
		for _, months := range []int{0, -3} {
			if got := len(p.Projection(months)); got != 0 {
				t.Errorf("len(Projection(%d)) = %d, want 0", months, got)
			}
		}
	})

	t.Run("dated", func(t *testing.T) {
		got := p.projection(3, date.New(2025, time.November, 20))
		want := []date.Date{
			date.New(2025, time.November, 1),
			date.New(2025, time.December, 1),
			date.New(2026, time.January, 1),
		}
		for i, pm := range got {
			if pm.Month != want[i] {
				t.Errorf("month %d: Month = %v, want %v", i, pm.Month, want[i])
			}
		}
	})
}

package wealth

import (
	"errors"
	"fmt"
	"slices"
)

// ErrCurrencyMismatch reports an amount that is not in the profile currency
// where only the profile currency is allowed.
var ErrCurrencyMismatch = errors.New("currency differs from the profile currency")

// DefaultCurrency is the local currency of a profile that does not declare one.
const DefaultCurrency = "KRW"

// MonthlyIncome lists the recurring income streams of a month.
type MonthlyIncome struct {
	Salary    Money `json:"salary"`
	Rent      Money `json:"rent"`
	Dividends Money `json:"dividends"`
	Interest  Money `json:"interest"`
}

// MonthlyExpenses lists the recurring expenses of a month.
type MonthlyExpenses struct {
	Fixed       Money `json:"fixed"`
	LoanPayment Money `json:"loanPayment"`
	Pension     Money `json:"pension"`
	Savings     Money `json:"savings"`
	Living      Money `json:"living"`
}

// Loan is an outstanding debt.
type Loan struct {
	Name    string  `json:"name"`
	Balance Money   `json:"balance"`
	Rate    Percent `json:"rate"` // annual interest rate
	Monthly Money   `json:"monthly"`
	Lender  string  `json:"lender"`
}

// RealEstate is a property, with the loan attached to it and the rent it
// yields every month.
type RealEstate struct {
	Type  string `json:"type"`
	Value Money  `json:"value"`
	Loan  Money  `json:"loan"`
	Rent  Money  `json:"rent"`
}

// Pension is a retirement plan.
type Pension struct {
	Type            string `json:"type"`
	Monthly         Money  `json:"monthly"` // contribution
	Balance         Money  `json:"balance"`
	StartAge        int    `json:"startAge"`
	ExpectedMonthly Money  `json:"expectedMonthly"` // payout at StartAge
}

// Equity is a stock or fund position.
//
// Sector is empty for funds. Currency tags a position quoted in a foreign
// currency; an empty Currency means the profile's currency. Holdings lists
// the names of a fund's constituents.
type Equity struct {
	Name     string   `json:"name"`
	Shares   Quantity `json:"shares"`
	Price    Money    `json:"price"`
	Broker   string   `json:"broker"`
	Sector   string   `json:"sector,omitempty"`
	Currency string   `json:"currency,omitempty"`
	Holdings []string `json:"holdings,omitempty"`
}

func (e Equity) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", e.Name)
	w.Append("shares", e.Shares)
	w.Append("price", e.Price)
	w.Append("broker", e.Broker)
	w.Optional("sector", e.Sector)
	w.Optional("currency", e.Currency)
	if len(e.Holdings) > 0 {
		w.Append("holdings", e.Holdings)
	}
	return w.MarshalJSON()
}

// Equities groups positions by kind.
type Equities struct {
	Domestic []Equity `json:"domestic"`
	Foreign  []Equity `json:"foreign"`
	Funds    []Equity `json:"funds"`
}

// OtherAssets are the assets that are neither real estate, equities nor pensions.
type OtherAssets struct {
	Deposits Money `json:"deposits"`
	Bonds    Money `json:"bonds"`
	Gold     Money `json:"gold"`
	Crypto   Money `json:"crypto"`
}

// Profile is the complete financial picture of a household.
//
// The only mutations it supports are AddRealEstate and RemoveRealEstate;
// every derived figure is recomputed from it on demand.
type Profile struct {
	Currency   string          `json:"currency"`
	Income     MonthlyIncome   `json:"income"`
	Expenses   MonthlyExpenses `json:"expenses"`
	Loans      []Loan          `json:"loans"`
	RealEstate []RealEstate    `json:"realEstate"`
	Pensions   []Pension       `json:"pensions"`
	Equities   Equities        `json:"equities"`
	Other      OtherAssets     `json:"other"`
}

// NewProfile returns an empty profile in currency c.
func NewProfile(c string) *Profile {
	if c == "" {
		c = DefaultCurrency
	}
	return &Profile{Currency: c}
}

// zero returns a zero amount in the profile currency.
func (p *Profile) zero() Money { return M(0, p.Currency) }

// labelledAmount is an amount of the profile that must be in the profile
// currency, named for error messages.
type labelledAmount struct {
	where string
	m     *Money
}

// amounts lists every amount of p except equity prices.
func (p *Profile) amounts() []labelledAmount {
	res := []labelledAmount{
		{"income salary", &p.Income.Salary},
		{"income rent", &p.Income.Rent},
		{"income dividends", &p.Income.Dividends},
		{"income interest", &p.Income.Interest},
		{"expense fixed", &p.Expenses.Fixed},
		{"expense loan payment", &p.Expenses.LoanPayment},
		{"expense pension", &p.Expenses.Pension},
		{"expense savings", &p.Expenses.Savings},
		{"expense living", &p.Expenses.Living},
		{"deposits", &p.Other.Deposits},
		{"bonds", &p.Other.Bonds},
		{"gold", &p.Other.Gold},
		{"crypto", &p.Other.Crypto},
	}
	for i := range p.Loans {
		l := &p.Loans[i]
		res = append(res,
			labelledAmount{fmt.Sprintf("loan %q balance", l.Name), &l.Balance},
			labelledAmount{fmt.Sprintf("loan %q monthly payment", l.Name), &l.Monthly},
		)
	}
	for i := range p.RealEstate {
		r := &p.RealEstate[i]
		res = append(res,
			labelledAmount{fmt.Sprintf("real estate #%d %q value", i, r.Type), &r.Value},
			labelledAmount{fmt.Sprintf("real estate #%d %q loan", i, r.Type), &r.Loan},
			labelledAmount{fmt.Sprintf("real estate #%d %q rent", i, r.Type), &r.Rent},
		)
	}
	for i := range p.Pensions {
		x := &p.Pensions[i]
		res = append(res,
			labelledAmount{fmt.Sprintf("pension %q contribution", x.Type), &x.Monthly},
			labelledAmount{fmt.Sprintf("pension %q balance", x.Type), &x.Balance},
			labelledAmount{fmt.Sprintf("pension %q expected payout", x.Type), &x.ExpectedMonthly},
		)
	}
	return res
}

// equities lists pointers to every equity of p, domestic, foreign, then funds.
func (p *Profile) equities() []*Equity {
	var res []*Equity
	for _, list := range [][]Equity{p.Equities.Domestic, p.Equities.Foreign, p.Equities.Funds} {
		for i := range list {
			res = append(res, &list[i])
		}
	}
	return res
}

// checkCurrency returns an error if 'm' is neither weak nor in currency c.
func checkCurrency(where string, m Money, c string) error {
	if m.cur != "" && m.cur != c {
		return fmt.Errorf("%s is in %s: %w %s", where, m.cur, ErrCurrencyMismatch, c)
	}
	return nil
}

// normalize stamps every weak amount with its currency: the equity currency
// for equity prices when set, the profile currency otherwise.
//
// Only equity prices may be in another currency than the profile's, any other
// amount in a foreign currency is reported.
func (p *Profile) normalize() error {
	if p.Currency == "" {
		p.Currency = DefaultCurrency
	}
	c := p.Currency
	var errs []error
	for _, a := range p.amounts() {
		if err := checkCurrency(a.where, *a.m, c); err != nil {
			errs = append(errs, err)
			continue
		}
		*a.m = a.m.In(c)
	}
	for _, e := range p.equities() {
		if e.Currency != "" {
			e.Price = e.Price.In(e.Currency)
		} else {
			e.Price = e.Price.In(c)
		}
	}
	return errors.Join(errs...)
}

// Clone returns a deep copy of p.
func (p *Profile) Clone() *Profile {
	q := *p
	q.Loans = slices.Clone(p.Loans)
	q.RealEstate = slices.Clone(p.RealEstate)
	q.Pensions = slices.Clone(p.Pensions)
	q.Equities = Equities{
		Domestic: cloneEquities(p.Equities.Domestic),
		Foreign:  cloneEquities(p.Equities.Foreign),
		Funds:    cloneEquities(p.Equities.Funds),
	}
	return &q
}

func cloneEquities(list []Equity) []Equity {
	res := slices.Clone(list)
	for i := range res {
		res[i].Holdings = slices.Clone(res[i].Holdings)
	}
	return res
}

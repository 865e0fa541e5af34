package wealth

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const profileJSON = `{
  "currency": "KRW",
  "income": {"salary": 4500000, "rent": 800000, "dividends": "150000", "interest": 50000},
  "expenses": {"fixed": 1200000, "loanPayment": 1500000, "pension": 500000, "savings": 300000, "living": 800000},
  "loans": [{"name": "Mortgage", "balance": 150000000, "rate": 3.5, "monthly": 900000, "lender": "Kookmin Bank"}],
  "realEstate": [{"type": "Apartment", "value": 500000000, "loan": 150000000, "rent": 0}],
  "pensions": [{"type": "TDF", "monthly": 300000, "balance": 25000000, "startAge": 55, "expectedMonthly": 1200000}],
  "equities": {
    "domestic": [{"name": "NAVER", "shares": 30, "price": 200000, "broker": "Kiwoom", "sector": "IT"}],
    "foreign": [{"name": "Apple", "shares": 20, "price": 180, "broker": "Samsung", "sector": "Tech", "currency": "USD"}],
    "funds": [{"name": "TIGER US S&P500", "shares": 500, "price": {"currency": "KRW", "amount": 15000}, "broker": "Samsung", "holdings": ["Apple"]}]
  },
  "other": {"deposits": 50000000, "bonds": 0, "gold": 0, "crypto": 0}
}`

func TestDecodeProfile(t *testing.T) {
	p, err := DecodeProfile(strings.NewReader(profileJSON))
	if err != nil {
		t.Fatalf("DecodeProfile() error = %v", err)
	}

	if got, want := p.Income.Salary, KRW(4_500_000); !got.Equal(want) {
		t.Errorf("Income.Salary = %v, want %v", got, want)
	}
	if got, want := p.Income.Dividends, KRW(150_000); !got.Equal(want) {
		t.Errorf("Income.Dividends = %v, want %v", got, want)
	}
	if got, want := p.Equities.Foreign[0].Price, USD(180); !got.Equal(want) {
		t.Errorf("Apple price = %v, want %v", got, want)
	}
	if got, want := p.Equities.Domestic[0].Price, KRW(200_000); !got.Equal(want) {
		t.Errorf("NAVER price = %v, want %v", got, want)
	}
	if got, want := p.Equities.Funds[0].Holdings, []string{"Apple"}; len(got) != 1 || got[0] != want[0] {
		t.Errorf("fund holdings = %v, want %v", got, want)
	}
	if got, want := p.Loans[0].Rate, Percent(3.5); !got.Equal(want) {
		t.Errorf("loan rate = %v, want %v", got, want)
	}
	if got, want := p.TotalEquityValue(DefaultOptions()), KRW(6_000_000+4_680_000+7_500_000); !got.Equal(want) {
		t.Errorf("TotalEquityValue() = %v, want %v", got, want)
	}
}

func TestDecodeProfile_Defaults(t *testing.T) {
	p, err := DecodeProfile(strings.NewReader(`{"income": {"salary": 100}}`))
	if err != nil {
		t.Fatalf("DecodeProfile() error = %v", err)
	}
	if p.Currency != DefaultCurrency {
		t.Errorf("Currency = %q, want %q", p.Currency, DefaultCurrency)
	}
	if got, want := p.TotalMonthlyIncome(), KRW(100); !got.Equal(want) {
		t.Errorf("TotalMonthlyIncome() = %v, want %v", got, want)
	}
	if got := p.Income.Rent.Currency(); got != DefaultCurrency {
		t.Errorf("missing amount currency = %q, want %q", got, DefaultCurrency)
	}
}

func TestDecodeProfile_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"unknown field", `{"incomes": {}}`},
		{"invalid amount", `{"income": {"salary": "lots"}}`},
		{"truncated", `{"income": {`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeProfile(strings.NewReader(tc.input)); err == nil {
				t.Errorf("DecodeProfile(%s) expected an error", tc.input)
			}
		})
	}
}

func TestDecodeProfile_CurrencyMismatch(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		where string
	}{
		{"income", `{"currency": "KRW", "income": {"rent": {"currency": "USD", "amount": 5}}}`, "income rent"},
		{"other asset", `{"other": {"gold": {"currency": "EUR", "amount": 5}}}`, "gold"},
		{"real estate", `{"realEstate": [{"type": "Flat", "value": {"currency": "USD", "amount": 5}}]}`, `real estate #0 "Flat" value`},
		{"pension", `{"currency": "USD", "pensions": [{"type": "IRA", "balance": {"currency": "KRW", "amount": 5}}]}`, `pension "IRA" balance`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeProfile(strings.NewReader(tc.input))
			if !errors.Is(err, ErrCurrencyMismatch) {
				t.Fatalf("DecodeProfile() error = %v, want %v", err, ErrCurrencyMismatch)
			}
			if !strings.Contains(err.Error(), tc.where) {
				t.Errorf("DecodeProfile() error %q does not mention %q", err, tc.where)
			}
		})
	}

	t.Run("equity price", func(t *testing.T) {
		in := `{"equities": {"domestic": [{"name": "ADR", "shares": 1, "price": {"currency": "USD", "amount": 10}}]}}`
		p, err := DecodeProfile(strings.NewReader(in))
		if err != nil {
			t.Fatalf("DecodeProfile() error = %v", err)
		}
		if got, want := p.TotalEquityValue(DefaultOptions()), KRW(13_000); !got.Equal(want) {
			t.Errorf("TotalEquityValue() = %v, want %v", got, want)
		}
	})
}

func TestEncodeProfile_RoundTrip(t *testing.T) {
	p := SampleProfile()
	p.Income.Interest = KRW(1234.56)
	p.Equities.Foreign[0].Price = USD(180.125)
	var buf bytes.Buffer
	if err := EncodeProfile(&buf, p); err != nil {
		t.Fatalf("EncodeProfile() error = %v", err)
	}
	q, err := DecodeProfile(&buf)
	if err != nil {
		t.Fatalf("DecodeProfile() error = %v\n%s", err, buf.String())
	}
	opts := DefaultOptions()
	if got, want := q.NetWorth(opts), p.NetWorth(opts); !got.Equal(want) {
		t.Errorf("NetWorth() after round trip = %v, want %v", got, want)
	}
	checks := []struct {
		name      string
		got, want Money
	}{
		{"Tesla price", q.Equities.Foreign[2].Price, USD(240)},
		{"Apple price", q.Equities.Foreign[0].Price, USD(180.125)},
		{"interest", q.Income.Interest, KRW(1234.56)},
	}
	for _, c := range checks {
		if !c.got.Equal(c.want) {
			t.Errorf("%s after round trip = %v, want %v", c.name, c.got.Decimal(), c.want.Decimal())
		}
	}

	if p.Income.Interest.fractional {
		t.Errorf("EncodeProfile() marked the original profile amounts exact")
	}
}

func TestLoadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	if err := os.WriteFile(path, []byte(profileJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile() error = %v", err)
	}
	if len(p.RealEstate) != 1 {
		t.Errorf("len(RealEstate) = %d, want 1", len(p.RealEstate))
	}

	if _, err := LoadProfile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadProfile() expected an error for a missing file")
	}
}

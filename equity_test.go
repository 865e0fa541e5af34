package wealth

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestProfile_EquityValue(t *testing.T) {
	p := NewProfile("KRW")
	opts := DefaultOptions()

	testCases := []struct {
		name string
		kind EquityKind
		e    Equity
		want Money
	}{
		{
			name: "domestic",
			kind: Domestic,
			e:    Equity{Name: "Samsung Electronics", Shares: Q(100), Price: KRW(70_000)},
			want: KRW(7_000_000),
		},
		{
			name: "foreign tagged USD",
			kind: Foreign,
			e:    Equity{Name: "Apple", Shares: Q(20), Price: USD(180), Currency: "USD"},
			want: KRW(4_680_000),
		},
		{
			name: "fund is never converted",
			kind: Fund,
			e:    Equity{Name: "TIGER US S&P500", Shares: Q(500), Price: USD(15_000), Currency: "USD", Holdings: []string{"Apple"}},
			want: KRW(7_500_000),
		},
		{
			name: "foreign list without currency tag",
			kind: Foreign,
			e:    Equity{Name: "Local listing", Shares: Q(3), Price: KRW(1_000)},
			want: KRW(3_000),
		},
		{
			name: "tagged with the local currency",
			kind: Foreign,
			e:    Equity{Name: "KRW listing", Shares: Q(2), Price: KRW(500), Currency: "KRW"},
			want: KRW(1_000),
		},
		{
			name: "zero shares",
			kind: Domestic,
			e:    Equity{Name: "sold out", Shares: Q(0), Price: KRW(70_000)},
			want: KRW(0),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.EquityValue(tc.kind, tc.e, opts); !got.Equal(tc.want) {
				t.Errorf("EquityValue() = %v, want %v", got, tc.want)
			}
		})
	}

	t.Run("custom rate", func(t *testing.T) {
		e := Equity{Name: "Apple", Shares: Q(20), Price: USD(180), Currency: "USD"}
		opts := Options{FXRate: decimal.NewFromInt(1400)}
		if got, want := p.EquityValue(Foreign, e, opts), KRW(5_040_000); !got.Equal(want) {
			t.Errorf("EquityValue() = %v, want %v", got, want)
		}
	})
}

func TestProfile_TotalEquityValue(t *testing.T) {
	p := SampleProfile()
	opts := DefaultOptions()

	if got, want := p.TotalEquityValueOf(Domestic, opts), KRW(20_500_000); !got.Equal(want) {
		t.Errorf("TotalEquityValueOf(Domestic) = %v, want %v", got, want)
	}
	if got, want := p.TotalEquityValueOf(Foreign, opts), KRW(15_210_000); !got.Equal(want) {
		t.Errorf("TotalEquityValueOf(Foreign) = %v, want %v", got, want)
	}
	if got, want := p.TotalEquityValueOf(Fund, opts), KRW(16_500_000); !got.Equal(want) {
		t.Errorf("TotalEquityValueOf(Fund) = %v, want %v", got, want)
	}
	if got, want := p.TotalEquityValue(opts), KRW(52_210_000); !got.Equal(want) {
		t.Errorf("TotalEquityValue() = %v, want %v", got, want)
	}
}

func TestProfile_ByBroker(t *testing.T) {
	p := SampleProfile()
	opts := DefaultOptions()
	groups := p.ByBroker(opts)

	want := []struct {
		broker string
		names  []string
		total  Money
	}{
		{"Samsung Securities", []string{"Samsung Electronics", "SK Hynix", "Apple", "Tesla", "TIGER US S&P500"}, KRW(29_800_000)},
		{"Kiwoom Securities", []string{"NAVER", "Microsoft", "KODEX Semiconductors"}, KRW(22_410_000)},
	}
	if len(groups) != len(want) {
		t.Fatalf("ByBroker() returned %d groups, want %d", len(groups), len(want))
	}

	seen := make(map[string]int)
	sum := KRW(0)
	for i, g := range groups {
		if g.Broker != want[i].broker {
			t.Errorf("group %d: Broker = %q, want %q", i, g.Broker, want[i].broker)
		}
		if !g.Total.Equal(want[i].total) {
			t.Errorf("group %q: Total = %v, want %v", g.Broker, g.Total, want[i].total)
		}
		if len(g.Positions) != len(want[i].names) {
			t.Fatalf("group %q has %d positions, want %d", g.Broker, len(g.Positions), len(want[i].names))
		}
		groupSum := KRW(0)
		for j, pos := range g.Positions {
			if pos.Equity.Name != want[i].names[j] {
				t.Errorf("group %q position %d = %q, want %q", g.Broker, j, pos.Equity.Name, want[i].names[j])
			}
			seen[pos.Equity.Name]++
			groupSum = groupSum.Add(pos.Value)
		}
		if !groupSum.Equal(g.Total) {
			t.Errorf("group %q positions add up to %v, Total is %v", g.Broker, groupSum, g.Total)
		}
		sum = sum.Add(g.Total)
	}

	// complete and disjoint partition
	if len(seen) != len(p.Positions(opts)) {
		t.Errorf("ByBroker() covers %d positions, want %d", len(seen), len(p.Positions(opts)))
	}
	for name, n := range seen {
		if n != 1 {
			t.Errorf("position %q appears %d times", name, n)
		}
	}
	if total := p.TotalEquityValue(opts); !sum.Equal(total) {
		t.Errorf("ByBroker() totals add up to %v, want TotalEquityValue() = %v", sum, total)
	}
}

func TestProfile_ByBroker_ExactLabels(t *testing.T) {
	p := NewProfile("KRW")
	p.Equities.Domestic = []Equity{
		{Name: "A", Shares: Q(1), Price: KRW(1), Broker: "kiwoom"},
		{Name: "B", Shares: Q(1), Price: KRW(2), Broker: "Kiwoom"},
		{Name: "C", Shares: Q(1), Price: KRW(3), Broker: "kiwoom "},
		{Name: "D", Shares: Q(1), Price: KRW(4), Broker: "kiwoom"},
	}
	groups := p.ByBroker(DefaultOptions())
	wantBrokers := []string{"kiwoom", "Kiwoom", "kiwoom "}
	if len(groups) != len(wantBrokers) {
		t.Fatalf("ByBroker() returned %d groups, want %d", len(groups), len(wantBrokers))
	}
	for i, g := range groups {
		if g.Broker != wantBrokers[i] {
			t.Errorf("group %d: Broker = %q, want %q", i, g.Broker, wantBrokers[i])
		}
	}
	if got, want := groups[0].Total, KRW(5); !got.Equal(want) {
		t.Errorf("group %q: Total = %v, want %v", groups[0].Broker, got, want)
	}
}

func TestProfile_BySector(t *testing.T) {
	p := SampleProfile()
	groups := p.BySector(DefaultOptions())

	want := []struct {
		sector string
		count  int
		total  Money
	}{
		{"Semiconductors", 2, KRW(14_500_000)},
		{"IT", 1, KRW(6_000_000)},
		{"Technology", 2, KRW(12_090_000)},
		{"Automotive", 1, KRW(3_120_000)},
	}
	if len(groups) != len(want) {
		t.Fatalf("BySector() returned %d groups, want %d", len(groups), len(want))
	}
	for i, g := range groups {
		if g.Sector != want[i].sector {
			t.Errorf("group %d: Sector = %q, want %q", i, g.Sector, want[i].sector)
		}
		if len(g.Positions) != want[i].count {
			t.Errorf("group %q has %d positions, want %d", g.Sector, len(g.Positions), want[i].count)
		}
		if !g.Total.Equal(want[i].total) {
			t.Errorf("group %q: Total = %v, want %v", g.Sector, g.Total, want[i].total)
		}
		for _, pos := range g.Positions {
			if pos.Kind == Fund {
				t.Errorf("group %q contains fund %q", g.Sector, pos.Equity.Name)
			}
		}
	}
}

func TestProfile_FundHoldings(t *testing.T) {
	got := SampleProfile().FundHoldings()
	if len(got) != 2 {
		t.Fatalf("FundHoldings() returned %d funds, want 2", len(got))
	}
	if got[1].Fund != "KODEX Semiconductors" || len(got[1].Holdings) != 2 || got[1].Holdings[0] != "Samsung Electronics" {
		t.Errorf("FundHoldings()[1] = %+v", got[1])
	}
}

func TestParseEquityKind(t *testing.T) {
	for _, k := range []EquityKind{Domestic, Foreign, Fund} {
		got, err := ParseEquityKind(k.String())
		if err != nil {
			t.Fatalf("ParseEquityKind(%q) error = %v", k, err)
		}
		if got != k {
			t.Errorf("ParseEquityKind(%q) = %v, want %v", k, got, k)
		}
	}
	if _, err := ParseEquityKind("bond"); err == nil {
		t.Error("ParseEquityKind(\"bond\") expected an error")
	}
}

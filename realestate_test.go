package wealth

import (
	"errors"
	"testing"
)

func TestRealEstate_Yield(t *testing.T) {
	testCases := []struct {
		name   string
		r      RealEstate
		want   Percent
		wantOK bool
	}{
		{"rental", RealEstate{Value: KRW(200_000_000), Rent: KRW(800_000)}, 4.8, true},
		{"own home", RealEstate{Value: KRW(500_000_000), Loan: KRW(150_000_000), Rent: KRW(0)}, 0, true},
		{"zero value", RealEstate{Value: KRW(0), Rent: KRW(800_000)}, 0, false},
		{"negative value", RealEstate{Value: KRW(-1), Rent: KRW(800_000)}, 0, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.r.Yield()
			if ok != tc.wantOK || !got.Equal(tc.want) {
				t.Errorf("Yield() = %v, %v, want %v, %v", got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestProfile_RealEstate(t *testing.T) {
	p := SampleProfile()

	if got, want := p.TotalRealEstateValue(), KRW(700_000_000); !got.Equal(want) {
		t.Errorf("TotalRealEstateValue() = %v, want %v", got, want)
	}
	if got, want := p.TotalRealEstateLoan(), KRW(150_000_000); !got.Equal(want) {
		t.Errorf("TotalRealEstateLoan() = %v, want %v", got, want)
	}
	if got, want := p.RealEstateNetValue(), KRW(550_000_000); !got.Equal(want) {
		t.Errorf("RealEstateNetValue() = %v, want %v", got, want)
	}
	if got, want := p.TotalMonthlyRent(), KRW(800_000); !got.Equal(want) {
		t.Errorf("TotalMonthlyRent() = %v, want %v", got, want)
	}
	// 800,000 * 12 / 700,000,000 * 100
	if got, want := p.RealEstateYield(), Percent(1.371428); !got.Equal(want) {
		t.Errorf("RealEstateYield() = %v, want %v", got, want)
	}
}

func TestProfile_RealEstateYield_NoProperty(t *testing.T) {
	p := NewProfile("KRW")
	if got := p.RealEstateYield(); got != 0 {
		t.Errorf("RealEstateYield() = %v, want 0", got)
	}
	p.RealEstate = []RealEstate{{Type: "land", Value: KRW(0), Rent: KRW(10)}}
	if got := p.RealEstateYield(); got != 0 {
		t.Errorf("RealEstateYield() with zero value = %v, want 0", got)
	}
}

func TestProfile_AddRemoveRealEstate(t *testing.T) {
	p := SampleProfile()
	before := p.Clone()

	i := p.AddRealEstate()
	if i != len(before.RealEstate) {
		t.Fatalf("AddRealEstate() = %d, want %d", i, len(before.RealEstate))
	}
	added := p.RealEstate[i]
	if added.Type != NewRealEstateLabel {
		t.Errorf("added Type = %q, want %q", added.Type, NewRealEstateLabel)
	}
	for _, m := range []Money{added.Value, added.Loan, added.Rent} {
		if !m.Equal(KRW(0)) {
			t.Errorf("added holding has amount %v, want %v", m, KRW(0))
		}
	}
	// a zeroed holding changes no total
	if got, want := p.TotalRealEstateValue(), before.TotalRealEstateValue(); !got.Equal(want) {
		t.Errorf("TotalRealEstateValue() after add = %v, want %v", got, want)
	}
	if got, want := p.RealEstateYield(), before.RealEstateYield(); !got.Equal(want) {
		t.Errorf("RealEstateYield() after add = %v, want %v", got, want)
	}

	if err := p.RemoveRealEstate(i); err != nil {
		t.Fatalf("RemoveRealEstate(%d) error = %v", i, err)
	}
	if len(p.RealEstate) != len(before.RealEstate) {
		t.Fatalf("len(RealEstate) = %d, want %d", len(p.RealEstate), len(before.RealEstate))
	}
	for j := range p.RealEstate {
		got, want := p.RealEstate[j], before.RealEstate[j]
		if got.Type != want.Type || !got.Value.Equal(want.Value) || !got.Loan.Equal(want.Loan) || !got.Rent.Equal(want.Rent) {
			t.Errorf("RealEstate[%d] = %+v, want %+v", j, got, want)
		}
	}
}

func TestProfile_RemoveRealEstate(t *testing.T) {
	t.Run("first", func(t *testing.T) {
		p := SampleProfile()
		if err := p.RemoveRealEstate(0); err != nil {
			t.Fatalf("RemoveRealEstate(0) error = %v", err)
		}
		if len(p.RealEstate) != 1 || p.RealEstate[0].Type != "Officetel (rental)" {
			t.Errorf("RealEstate after removal = %+v", p.RealEstate)
		}
		if got, want := p.TotalRealEstateValue(), KRW(200_000_000); !got.Equal(want) {
			t.Errorf("TotalRealEstateValue() = %v, want %v", got, want)
		}
	})

	t.Run("does not alias the clone", func(t *testing.T) {
		p := SampleProfile()
		q := p.Clone()
		if err := q.RemoveRealEstate(0); err != nil {
			t.Fatalf("RemoveRealEstate(0) error = %v", err)
		}
		if p.RealEstate[0].Type != "Apartment (home)" || len(p.RealEstate) != 2 {
			t.Errorf("original profile changed: %+v", p.RealEstate)
		}
	})

	for _, i := range []int{-1, 2, 10} {
		p := SampleProfile()
		err := p.RemoveRealEstate(i)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("RemoveRealEstate(%d) error = %v, want %v", i, err, ErrIndexOutOfRange)
		}
		if len(p.RealEstate) != 2 {
			t.Errorf("RemoveRealEstate(%d) changed the list: %+v", i, p.RealEstate)
		}
	}
}

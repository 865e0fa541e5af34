package wealth

import (
	"fmt"
	"strings"
)

// EquityKind tells which list of the profile an equity belongs to.
type EquityKind int

const (
	Domestic EquityKind = iota
	Foreign
	Fund
)

func (k EquityKind) String() string {
	switch k {
	case Domestic:
		return "domestic"
	case Foreign:
		return "foreign"
	case Fund:
		return "fund"
	default:
		panic(fmt.Sprintf("unknown equity kind %d", k))
	}
}

// ParseEquityKind is the reverse of EquityKind.String.
func ParseEquityKind(s string) (EquityKind, error) {
	switch strings.ToLower(s) {
	case "domestic":
		return Domestic, nil
	case "foreign":
		return Foreign, nil
	case "fund", "etf":
		return Fund, nil
	default:
		return Domestic, fmt.Errorf("unknown equity kind %q", s)
	}
}

func (k EquityKind) MarshalJSON() ([]byte, error) { return []byte(`"` + k.String() + `"`), nil }

// Position is an equity with its kind and its value in the profile currency.
type Position struct {
	Kind   EquityKind
	Equity Equity
	Value  Money
}

func (p Position) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("kind", p.Kind)
	w.EmbedFrom(p.Equity)
	w.Append("value", p.Value)
	return w.MarshalJSON()
}

// EquityValue returns the value of 'e' in the profile currency: shares times
// price, converted with the fixed FX rate when 'e' is tagged with a foreign
// currency. Funds are never converted, whatever their constituents.
func (p *Profile) EquityValue(kind EquityKind, e Equity, opts Options) Money {
	value := e.Price.Mul(e.Shares)
	if c := e.quoted(); kind == Fund || c == "" || c == p.Currency {
		// Funds are listed in the local currency: only the label may differ.
		return Money{value: value.value, cur: p.Currency}
	}
	return value.Convert(opts.fx(), p.Currency)
}

// quoted returns the currency e is quoted in: its tag, or its price's currency.
func (e Equity) quoted() string {
	if e.Currency != "" {
		return e.Currency
	}
	return e.Price.Currency()
}

// Positions returns every equity of the profile with its value, domestic
// first, then foreign, then funds, in profile order.
func (p *Profile) Positions(opts Options) []Position {
	lists := []struct {
		kind EquityKind
		list []Equity
	}{
		{Domestic, p.Equities.Domestic},
		{Foreign, p.Equities.Foreign},
		{Fund, p.Equities.Funds},
	}
	var res []Position
	for _, l := range lists {
		for _, e := range l.list {
			res = append(res, Position{Kind: l.kind, Equity: e, Value: p.EquityValue(l.kind, e, opts)})
		}
	}
	return res
}

// TotalEquityValue returns the value of all domestic, foreign and fund positions.
func (p *Profile) TotalEquityValue(opts Options) Money {
	total := p.zero()
	for _, pos := range p.Positions(opts) {
		total = total.Add(pos.Value)
	}
	return total
}

// TotalEquityValueOf returns the value of the positions of a single kind.
func (p *Profile) TotalEquityValueOf(kind EquityKind, opts Options) Money {
	total := p.zero()
	for _, pos := range p.Positions(opts) {
		if pos.Kind == kind {
			total = total.Add(pos.Value)
		}
	}
	return total
}

// BrokerGroup holds the positions held at one broker.
type BrokerGroup struct {
	Broker    string     `json:"broker"`
	Total     Money      `json:"total"`
	Positions []Position `json:"positions"`
}

// ByBroker partitions all positions, funds included, by broker label.
// Groups come in first-seen order; labels are compared exactly.
func (p *Profile) ByBroker(opts Options) []BrokerGroup {
	var groups []BrokerGroup
	index := make(map[string]int)
	for _, pos := range p.Positions(opts) {
		i, ok := index[pos.Equity.Broker]
		if !ok {
			i = len(groups)
			index[pos.Equity.Broker] = i
			groups = append(groups, BrokerGroup{Broker: pos.Equity.Broker, Total: p.zero()})
		}
		g := &groups[i]
		g.Positions = append(g.Positions, pos)
		g.Total = g.Total.Add(pos.Value)
	}
	return groups
}

// SectorGroup holds the positions of one sector.
type SectorGroup struct {
	Sector    string     `json:"sector"`
	Total     Money      `json:"total"`
	Positions []Position `json:"positions"`
}

// BySector partitions domestic and foreign positions by sector label. Funds
// have no sector and are left out. Groups come in first-seen order; labels
// are compared exactly.
func (p *Profile) BySector(opts Options) []SectorGroup {
	var groups []SectorGroup
	index := make(map[string]int)
	for _, pos := range p.Positions(opts) {
		if pos.Kind == Fund {
			continue
		}
		i, ok := index[pos.Equity.Sector]
		if !ok {
			i = len(groups)
			index[pos.Equity.Sector] = i
			groups = append(groups, SectorGroup{Sector: pos.Equity.Sector, Total: p.zero()})
		}
		g := &groups[i]
		g.Positions = append(g.Positions, pos)
		g.Total = g.Total.Add(pos.Value)
	}
	return groups
}

// FundHolding lists the declared constituents of a fund.
type FundHolding struct {
	Fund     string   `json:"fund"`
	Broker   string   `json:"broker"`
	Holdings []string `json:"holdings"`
}

// FundHoldings returns the declared constituents of every fund, in profile
// order. It is a plain listing: overlap between funds and direct positions
// is not analysed.
func (p *Profile) FundHoldings() []FundHolding {
	res := make([]FundHolding, 0, len(p.Equities.Funds))
	for _, e := range p.Equities.Funds {
		res = append(res, FundHolding{Fund: e.Name, Broker: e.Broker, Holdings: e.Holdings})
	}
	return res
}

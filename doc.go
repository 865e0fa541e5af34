// Package wealth turns a household's financial profile into the figures of a
// cash flow and net worth dashboard.
//
// A Profile holds raw records: monthly income and expenses, loans, real
// estate, pensions, stock and fund positions, and other assets. Every derived
// figure is a pure function of the profile and of a few constants (Options):
//   - Cash flow: total income and expenses, net cash flow, savings rate,
//     category breakdowns, and a flat projection over the next months.
//   - Equities: position values, with a fixed FX rate applied to positions
//     tagged with a foreign currency, grouped by broker or by sector.
//   - Real estate: value, attached loans, rent, net value and gross yield.
//   - Balance sheet: total assets, net worth and the allocation of assets
//     across fixed categories.
//
// NewMetrics computes all of them at once. The only mutations of a profile
// are AddRealEstate and RemoveRealEstate.
//
// This package serves as the foundational logic for the `wcs` command-line
// tool.
package wealth

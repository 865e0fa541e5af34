package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed *.md
var templates embed.FS

// StocksView selects how the stocks report groups positions.
type StocksView string

const (
	Integrated StocksView = "integrated"
	ByBroker   StocksView = "broker"
	BySector   StocksView = "sector"
)

// ParseStocksView is the reverse of string(StocksView).
func ParseStocksView(s string) (StocksView, error) {
	switch v := StocksView(strings.ToLower(s)); v {
	case Integrated, ByBroker, BySector:
		return v, nil
	case "":
		return Integrated, nil
	default:
		return "", fmt.Errorf("unknown stocks view %q, want one of integrated, broker or sector", s)
	}
}

// RenderSummary renders the headline figures and the asset allocation.
func RenderSummary(d *Dashboard) string {
	partials := map[string]string{
		"allocation_table": "allocation_table.md",
	}
	return renderTemplate("summary", "summary.md", partials, d)
}

// RenderAllocation renders the split of total assets by category.
func RenderAllocation(d *Dashboard) string {
	partials := map[string]string{
		"allocation_table": "allocation_table.md",
	}
	return renderTemplate("allocation", "allocation.md", partials, d)
}

// RenderCashFlow renders the monthly cash flow, its breakdown and projection.
func RenderCashFlow(d *Dashboard) string {
	partials := map[string]string{
		"cashflow_breakdown":  "cashflow_breakdown.md",
		"cashflow_projection": "cashflow_projection.md",
	}
	return renderTemplate("cashflow", "cashflow.md", partials, d)
}

// RenderStocks renders equity positions in the given view.
func RenderStocks(d *Dashboard, view StocksView) string {
	partials := map[string]string{
		"stocks_funds": "stocks_funds.md",
	}
	switch view {
	case ByBroker:
		partials["stocks_view"] = "stocks_broker.md"
	case BySector:
		partials["stocks_view"] = "stocks_sector.md"
	default:
		partials["stocks_view"] = "stocks_integrated.md"
	}
	return renderTemplate("stocks", "stocks.md", partials, d)
}

// RenderRealEstate renders the real estate holdings and their totals.
func RenderRealEstate(d *Dashboard) string {
	return renderTemplate("realestate", "realestate.md", nil, d)
}

// RenderPensions renders pension plans.
func RenderPensions(d *Dashboard) string {
	return renderTemplate("pensions", "pensions.md", nil, d)
}

// RenderLoans renders outstanding loans.
func RenderLoans(d *Dashboard) string {
	return renderTemplate("loans", "loans.md", nil, d)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			content, err = fs.ReadFile(templates, file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

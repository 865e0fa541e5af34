package agent

import (
	"context"
	"fmt"
	"sort"

	"github.com/etnz/wealth"
	"github.com/etnz/wealth/docs"
	"github.com/etnz/wealth/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user comes to understand their household finances: cash flow, savings, stocks,
			real estate, pensions, loans and net worth. Never guess a figure, ask the Advisor.
			Amounts are in the profile currency unless stated otherwise.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAdvisor returns the expert answering questions about profile 'p'.
func NewAdvisor(p *wealth.Profile, opts wealth.Options) *Expert {
	lib := Tools(p, opts)
	return &Expert{
		Name: "Advisor",
		Description: `This is the Advisor. They know the user's financial profile and every figure derived from it:
		income, expenses, savings rate, stock positions by broker and sector, real estate yield,
		pensions, loans, asset allocation and net worth.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a personal finance advisor in charge of the user's financial profile.
				Use the Tools to read exact figures: Report for readable tables, Metrics for precise
				values, Documentation to learn what each figure means and how it is computed.
				Foreign stocks are converted at a fixed exchange rate, never a live one.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// reports maps the report names the advisor can ask for to their renderer.
var reports = map[string]func(*renderer.Dashboard) string{
	"summary":       renderer.RenderSummary,
	"cashflow":      renderer.RenderCashFlow,
	"allocation":    renderer.RenderAllocation,
	"stocks":        func(d *renderer.Dashboard) string { return renderer.RenderStocks(d, renderer.Integrated) },
	"stocks_broker": func(d *renderer.Dashboard) string { return renderer.RenderStocks(d, renderer.ByBroker) },
	"stocks_sector": func(d *renderer.Dashboard) string { return renderer.RenderStocks(d, renderer.BySector) },
	"realestate":    renderer.RenderRealEstate,
	"pensions":      renderer.RenderPensions,
	"loans":         renderer.RenderLoans,
}

// Shortcuts returns every report of profile 'p', by name, rendered on demand.
func Shortcuts(p *wealth.Profile, opts wealth.Options) map[string]func() string {
	m := make(map[string]func() string, len(reports))
	for name, render := range reports {
		m[name] = func() string { return render(renderer.NewDashboard(p, opts)) }
	}
	return m
}

func reportNames() []string {
	names := make([]string, 0, len(reports))
	for n := range reports {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Tools returns the functions exposing profile 'p' to the model.
func Tools(p *wealth.Profile, opts wealth.Options) []*Func {
	return []*Func{
		{
			Decl: &genai.FunctionDeclaration{
				Name: "Metrics",
				Description: `Metrics evaluates a JSONPath expression against the figures derived from the user's profile
				and returns the matching JSON value. Amounts are objects {"currency", "amount"}.`,
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"path": {
							Type: genai.TypeString,
							Description: `A JSONPath expression like "$.netWorth.amount" or "$.byBroker[*].total". "$" returns everything.

							` + must(docs.GetTopic("metrics")),
						},
					},
					Required: []string{"path"},
				},
			},
			Func: func(ctx context.Context, args map[string]any) (any, error) {
				path, err := stringArg(args, "path", "$")
				if err != nil {
					return nil, err
				}
				return wealth.NewMetrics(p, opts).Query(path)
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Report",
				Description: "Report renders one of the user's financial reports as a markdown document.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name": {
							Type:        genai.TypeString,
							Description: "The report to render.",
							Enum:        reportNames(),
						},
					},
					Required: []string{"name"},
				},
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown document with tables.",
				},
			},
			Func: func(ctx context.Context, args map[string]any) (any, error) {
				name, err := stringArg(args, "name", "summary")
				if err != nil {
					return nil, err
				}
				render, ok := reports[name]
				if !ok {
					return nil, fmt.Errorf("unknown report %q, want one of %v", name, reportNames())
				}
				return render(renderer.NewDashboard(p, opts)), nil
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Documentation",
				Description: "Documentation returns a topic of the user manual, explaining the profile format and how every figure is computed.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"topic": {
							Type:        genai.TypeString,
							Description: `The topic to read, "*" for all of them.`,
						},
					},
				},
			},
			Func: func(ctx context.Context, args map[string]any) (any, error) {
				topic, err := stringArg(args, "topic", "*")
				if err != nil {
					return nil, err
				}
				return docs.GetTopic(topic)
			},
		},
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

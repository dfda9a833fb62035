package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"propfolio/internal/domain"
)

// RunDemoAnalysis analyzes a sample listing end to end and prints the
// result - handy for eyeballing projections without the API running.
func RunDemoAnalysis() error {
	handler, err := InitializeDependencies()
	if err != nil {
		return err
	}

	property := domain.PropertyDetails{
		AskingPrice: 225_000,
		Type:        domain.PropertyType_Terraced,
		Bedrooms:    3,
		Bathrooms:   1,
		Address: domain.Address{
			Line:     "12 Mill Road",
			City:     "Manchester",
			Postcode: "M14 5RB",
		},
		Tenure:      domain.Tenure_Freehold,
		Description: "Three bed terrace close to the universities. EPC D.",
	}

	deal, err := handler.Analyzer.AnalyzeDeal(property, 1_250)
	if err != nil {
		return err
	}
	pprint(deal)

	btl := deal.Strategies[domain.StrategyType_BTL]
	assessment := handler.RiskEngine.AssessDealRisk(
		property,
		btl.Assumptions.Costs,
		btl.Assumptions.Income,
		btl.Assumptions.Mortgage,
	)
	enriched := handler.RiskEnricher.Enrich(context.Background(), property, assessment)
	pprint(enriched)

	return nil
}

func pprint(i interface{}) {
	bytes, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(bytes))
}

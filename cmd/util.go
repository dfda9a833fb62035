package cmd

import (
	"fmt"

	"propfolio/api"
	"propfolio/internal"
	"propfolio/internal/calculator"
	"propfolio/internal/policy"
	"propfolio/pkg/epc"
	"propfolio/pkg/floodrisk"
	"propfolio/pkg/postcode"

	"github.com/joho/godotenv"
)

func InitializeDependencies() (*api.ApiHandler, error) {
	// .env carries the EPC register credentials locally; missing file
	// is fine, the adapters degrade to estimates
	_ = godotenv.Load()

	cfg, err := policy.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load policy config: %w", err)
	}

	projections := calculator.NewProjectionService(cfg)
	riskEngine := internal.NewRiskEngine(cfg)

	handler := &api.ApiHandler{
		Policy:      cfg,
		Analyzer:    internal.DealAnalyzer{Projections: projections},
		Projections: projections,
		Sensitivity: calculator.NewSensitivityService(projections),
		RiskEngine:  riskEngine,
		RiskEnricher: internal.RiskEnricher{
			Engine: riskEngine,
			Energy: epc.NewClient(),
			Flood:  floodrisk.NewClient(),
			Region: postcode.NewClient(),
		},
	}

	return handler, nil
}

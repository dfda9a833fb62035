package internal

import (
	"fmt"

	"propfolio/internal/calculator"
	"propfolio/internal/domain"
)

type DealAnalyzer struct {
	Projections calculator.ProjectionService
}

// AnalyzeDeal builds a deal from listing details, seeds all six
// strategies and projects each one, so a fresh deal never shows a
// blank form or a stale result.
func (a DealAnalyzer) AnalyzeDeal(property domain.PropertyDetails, estimatedMonthlyRent float64) (*domain.Deal, error) {
	deal := domain.NewDeal(property)

	for strategyType, assumptions := range SeedStrategies(property, estimatedMonthlyRent) {
		projection, err := a.Projections.Project(strategyType, assumptions)
		if err != nil {
			return nil, fmt.Errorf("failed to project seeded %s strategy: %w", strategyType, err)
		}
		deal.Strategies[strategyType] = &domain.StrategyResult{
			Type:        strategyType,
			Assumptions: assumptions,
			Results:     projection,
		}
	}

	return deal, nil
}

// RecomputeStrategy re-projects one strategy after an assumption edit.
// The stored result is only replaced on success, so a reader never
// observes a half-updated strategy.
func (a DealAnalyzer) RecomputeStrategy(deal *domain.Deal, strategyType domain.StrategyType) error {
	strategy, ok := deal.Strategies[strategyType]
	if !ok {
		return fmt.Errorf("deal %s has no %s strategy", deal.ID, strategyType)
	}

	projection, err := a.Projections.Project(strategyType, strategy.Assumptions)
	if err != nil {
		return err
	}

	strategy.Results = projection
	deal.Touch()
	return nil
}

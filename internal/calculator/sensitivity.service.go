package calculator

import (
	"fmt"

	"propfolio/internal/domain"

	"github.com/montanaflynn/stats"
)

type SensitivityInput struct {
	StrategyType domain.StrategyType
	Assumptions  domain.StrategyAssumptions
	// absolute offsets applied to the annual mortgage rate, e.g.
	// [-1, 0, 1, 2] percentage points
	RateOffsets []float64
	// multiplicative rent shocks, e.g. [0.9, 1.0, 1.1]
	RentMultipliers []float64
}

type SensitivityScenario struct {
	RateOffset      float64 `json:"rateOffset"`
	RentMultiplier  float64 `json:"rentMultiplier"`
	MonthlyCashFlow float64 `json:"monthlyCashFlow"`
	ROIPercent      float64 `json:"roiPercent"`
}

type SensitivityResult struct {
	Scenarios            []SensitivityScenario `json:"scenarios"`
	MeanMonthlyCashFlow  float64               `json:"meanMonthlyCashFlow"`
	StdevMonthlyCashFlow float64               `json:"stdevMonthlyCashFlow"`
	WorstMonthlyCashFlow float64               `json:"worstMonthlyCashFlow"`
	// share of scenarios with negative monthly cash flow, 0-1
	NegativeShare float64 `json:"negativeShare"`
}

type SensitivityService struct {
	Projections ProjectionService
}

func NewSensitivityService(projections ProjectionService) SensitivityService {
	return SensitivityService{Projections: projections}
}

// Run re-projects the deal across a grid of rate and rent scenarios.
// Empty offset lists default to the single unshocked scenario.
func (s SensitivityService) Run(in SensitivityInput) (*SensitivityResult, error) {
	rateOffsets := in.RateOffsets
	if len(rateOffsets) == 0 {
		rateOffsets = []float64{0}
	}
	rentMultipliers := in.RentMultipliers
	if len(rentMultipliers) == 0 {
		rentMultipliers = []float64{1}
	}

	scenarios := []SensitivityScenario{}
	cashFlows := []float64{}
	negatives := 0

	for _, rateOffset := range rateOffsets {
		for _, rentMultiplier := range rentMultipliers {
			shocked := in.Assumptions.DeepCopy()
			shocked.Mortgage.AnnualRatePercent += rateOffset
			if shocked.Mortgage.AnnualRatePercent < 0 {
				shocked.Mortgage.AnnualRatePercent = 0
			}
			shocked.Income.GrossMonthlyRent *= rentMultiplier
			if shocked.Income.NightlyRate != nil {
				nightly := *shocked.Income.NightlyRate * rentMultiplier
				shocked.Income.NightlyRate = &nightly
			}
			projection, err := s.Projections.Project(in.StrategyType, shocked)
			if err != nil {
				return nil, fmt.Errorf("failed to project scenario (rate %+.2f, rent x%.2f): %w", rateOffset, rentMultiplier, err)
			}

			scenarios = append(scenarios, SensitivityScenario{
				RateOffset:      rateOffset,
				RentMultiplier:  rentMultiplier,
				MonthlyCashFlow: projection.MonthlyCashFlow,
				ROIPercent:      projection.ROIPercent,
			})
			cashFlows = append(cashFlows, projection.MonthlyCashFlow)
			if projection.MonthlyCashFlow < 0 {
				negatives++
			}
		}
	}

	mean, err := stats.Mean(cashFlows)
	if err != nil {
		return nil, fmt.Errorf("failed to compute mean cash flow: %w", err)
	}
	worst, err := stats.Min(cashFlows)
	if err != nil {
		return nil, fmt.Errorf("failed to compute worst cash flow: %w", err)
	}
	stdev := float64(0)
	if len(cashFlows) > 1 {
		stdev, err = stats.StandardDeviationSample(cashFlows)
		if err != nil {
			return nil, fmt.Errorf("failed to compute cash flow stdev: %w", err)
		}
	}

	return &SensitivityResult{
		Scenarios:            scenarios,
		MeanMonthlyCashFlow:  mean,
		StdevMonthlyCashFlow: stdev,
		WorstMonthlyCashFlow: worst,
		NegativeShare:        float64(negatives) / float64(len(scenarios)),
	}, nil
}

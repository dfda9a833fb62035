package internal

import (
	"propfolio/internal/domain"
)

// seeding defaults - plausible UK figures so a fresh deal shows
// sensible numbers for every strategy before the user edits anything
const (
	seedLegalFee         = 1_500
	seedSurveyFee        = 500
	seedBrokerFee        = 500
	seedLTVPercent       = 75
	seedMortgageRate     = 6
	seedTermYears        = 25
	seedOccupancy        = 95
	seedManagementPct    = 10
	seedMaintenancePct   = 5
	seedInsuranceMonthly = 30

	seedHMORentMultiple  = 2.5
	seedGDVMultiple      = 1.4
	seedSAOccupancy      = 70
	seedR2RRentUplift    = 1.4
	seedR2ROccupancy     = 90

	// fallback rent estimate when the caller has none: ~6% gross yield
	seedYieldGuessPercent = 6
)

// SeedStrategies builds the initial assumption bundle for all six
// strategies from a freshly created deal. Each bundle is independent -
// editing one never affects another.
func SeedStrategies(property domain.PropertyDetails, estimatedMonthlyRent float64) map[domain.StrategyType]domain.StrategyAssumptions {
	price := property.AskingPrice
	baseRent := estimatedMonthlyRent
	if baseRent <= 0 {
		baseRent = price * seedYieldGuessPercent / 100 / 12
	}

	out := map[domain.StrategyType]domain.StrategyAssumptions{}
	for _, strategyType := range domain.AllStrategyTypes() {
		out[strategyType] = seedStrategy(strategyType, price, baseRent)
	}
	return out
}

func seedStrategy(strategyType domain.StrategyType, price, baseRent float64) domain.StrategyAssumptions {
	if strategyType == domain.StrategyType_R2R {
		return seedRentToRent(baseRent)
	}

	assumptions := domain.StrategyAssumptions{
		Costs: domain.NewPurchaseCosts(domain.PurchaseCosts{
			Price:          price,
			TransactionTax: ComputeTransactionTax(price),
			SurveyFee:      seedSurveyFee,
			LegalFee:       seedLegalFee,
			Refurbishment:  2_500,
		}),
		Mortgage: domain.MortgageDetails{
			LTVPercent:        seedLTVPercent,
			AnnualRatePercent: seedMortgageRate,
			TermYears:         seedTermYears,
			ProductFee:        seedBrokerFee,
			InterestOnly:      true,
		},
		Income: domain.IncomeExpenses{
			GrossMonthlyRent:   baseRent,
			OccupancyPercent:   seedOccupancy,
			ManagementPercent:  seedManagementPct,
			MaintenancePercent: seedMaintenancePct,
			InsuranceMonthly:   seedInsuranceMonthly,
		},
	}

	switch strategyType {
	case domain.StrategyType_HMO:
		// let by room commands a rent premium but needs conversion
		// works and bills-inclusive utilities
		assumptions.Income.GrossMonthlyRent = baseRent * seedHMORentMultiple
		assumptions.Income.UtilitiesMonthly = 250
		assumptions.Costs.Purchase.Refurbishment = 20_000
		assumptions.Costs.Purchase.Furniture = 5_000
	case domain.StrategyType_BRRR:
		gdv := price * seedGDVMultiple
		assumptions.GDV = &gdv
		assumptions.RefinanceLTVPercent = seedLTVPercent
		assumptions.Costs.Purchase.Refurbishment = 20_000
	case domain.StrategyType_Flip:
		gdv := price * seedGDVMultiple
		assumptions.GDV = &gdv
		assumptions.HoldingMonths = 6
		assumptions.Costs.Purchase.Refurbishment = 25_000
		// no tenants during the works
		assumptions.Income.GrossMonthlyRent = 0
		assumptions.Income.ManagementPercent = 0
		assumptions.Income.MaintenancePercent = 0
	case domain.StrategyType_SA:
		nightly := baseRent / 10
		assumptions.Income.NightlyRate = &nightly
		assumptions.Income.OccupancyPercent = seedSAOccupancy
		assumptions.Income.ManagementPercent = 15
		assumptions.Income.UtilitiesMonthly = 150
		assumptions.Costs.Purchase.Furniture = 8_000
	}

	return assumptions
}

// seedRentToRent uses an independent, smaller cost model - there is no
// purchase, so no price, tax or survey anywhere in the bundle.
func seedRentToRent(baseRent float64) domain.StrategyAssumptions {
	return domain.StrategyAssumptions{
		Costs: domain.NewRentToRentCosts(domain.RentToRentCosts{
			MonthlyRentToOwner: baseRent,
			DepositToOwner:     baseRent,
			Furnishing:         3_000,
			LegalFee:           500,
		}),
		Income: domain.IncomeExpenses{
			GrossMonthlyRent: baseRent * seedR2RRentUplift,
			OccupancyPercent: seedR2ROccupancy,
			UtilitiesMonthly: 200,
		},
	}
}

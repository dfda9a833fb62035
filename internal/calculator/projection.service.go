package calculator

import (
	"fmt"
	"math"

	"propfolio/internal/domain"
	"propfolio/internal/policy"
)

// average days per month - used to turn a nightly rate into a
// monthly figure for serviced accommodation
const avgDaysPerMonth = 30.42

const (
	defaultFlipResaleMultiple  = 1.3
	defaultBRRRRefurbUplift    = 1.5
	defaultFlipHoldingMonths   = 6
	defaultRefinanceLTVPercent = 75
)

type ProjectionService struct {
	Policy policy.Config
}

func NewProjectionService(cfg policy.Config) ProjectionService {
	return ProjectionService{Policy: cfg}
}

// Project turns one strategy's assumption bundle into a projection.
// Numeric edge cases (zero price, zero rent, zero cash in) are not
// errors - they produce zeros or the infinite payback sentinel. The
// only errors are malformed inputs: a cost payload that doesn't match
// its mode tag.
func (s ProjectionService) Project(strategyType domain.StrategyType, assumptions domain.StrategyAssumptions) (*domain.StrategyProjection, error) {
	switch assumptions.Costs.Mode {
	case domain.DealMode_Purchase:
		if assumptions.Costs.Purchase == nil {
			return nil, fmt.Errorf("purchase-mode assumptions for %s have no purchase costs", strategyType)
		}
		return s.projectPurchase(strategyType, assumptions), nil
	case domain.DealMode_RentToRent:
		if assumptions.Costs.RentToRent == nil {
			return nil, fmt.Errorf("rent-to-rent assumptions for %s have no rent-to-rent costs", strategyType)
		}
		return s.projectRentToRent(strategyType, assumptions), nil
	}
	return nil, fmt.Errorf("unknown deal mode %q", assumptions.Costs.Mode)
}

func (s ProjectionService) projectPurchase(strategyType domain.StrategyType, assumptions domain.StrategyAssumptions) *domain.StrategyProjection {
	costs := assumptions.Costs.Purchase
	mortgage := assumptions.Mortgage
	income := assumptions.Income

	price := costs.Price
	loanAmount := price * mortgage.LTVPercent / 100
	totalAcquisitionCost := price + costs.TransactionTax + costs.SurveyFee +
		costs.LegalFee + costs.Refurbishment + costs.Furniture + costs.OtherCosts +
		mortgage.ProductFee
	cashRequired := totalAcquisitionCost - loanAmount

	grossRent, saExtras := effectiveMonthlyIncome(strategyType, income)
	monthlyMortgage := monthlyMortgagePayment(loanAmount, mortgage)

	monthlyCosts := monthlyMortgage + operatingCosts(grossRent, income, saExtras != nil)
	monthlyCashFlow := grossRent - monthlyCosts
	annualCashFlow := monthlyCashFlow * 12

	out := &domain.StrategyProjection{
		AnalysisResults: domain.AnalysisResults{
			TotalCashRequired: cashRequired,
			TotalInvestment:   totalAcquisitionCost,
			MonthlyCashFlow:   monthlyCashFlow,
			AnnualCashFlow:    annualCashFlow,
			ROIPercent:        safePercent(annualCashFlow, cashRequired),
			GrossYieldPercent: safePercent(grossRent*12, price),
			NetYieldPercent:   safePercent(annualCashFlow, price),
			Payback:           payback(cashRequired, monthlyCashFlow),
		},
		SA: saExtras,
	}

	ratingROI := out.ROIPercent
	switch strategyType {
	case domain.StrategyType_Flip:
		out.Flip = flipExtras(assumptions, totalAcquisitionCost, cashRequired, monthlyMortgage)
		// a flip's return is its exit, not its holding cash flow
		ratingROI = out.Flip.AnnualizedROIPercent
	case domain.StrategyType_BRRR:
		out.BRRR = brrrExtras(assumptions, loanAmount, totalAcquisitionCost, cashRequired)
	}

	out.Rating = s.rate(domain.DealMode_Purchase, strategyType, ratingROI, monthlyCashFlow)
	return out
}

func (s ProjectionService) projectRentToRent(strategyType domain.StrategyType, assumptions domain.StrategyAssumptions) *domain.StrategyProjection {
	costs := assumptions.Costs.RentToRent
	income := assumptions.Income

	// every setup cost is cash - there is no purchase, no loan, no tax
	totalAcquisitionCost := costs.DepositToOwner + costs.Furnishing +
		costs.LegalFee + costs.OtherCosts
	cashRequired := totalAcquisitionCost

	grossRent, saExtras := effectiveMonthlyIncome(strategyType, income)

	monthlyCosts := costs.MonthlyRentToOwner + operatingCosts(grossRent, income, saExtras != nil)
	monthlyCashFlow := grossRent - monthlyCosts
	annualCashFlow := monthlyCashFlow * 12

	// yield is undefined without a purchase price
	out := &domain.StrategyProjection{
		AnalysisResults: domain.AnalysisResults{
			TotalCashRequired: cashRequired,
			TotalInvestment:   totalAcquisitionCost,
			MonthlyCashFlow:   monthlyCashFlow,
			AnnualCashFlow:    annualCashFlow,
			ROIPercent:        safePercent(annualCashFlow, cashRequired),
			Payback:           payback(cashRequired, monthlyCashFlow),
		},
		SA: saExtras,
	}
	out.Rating = s.rate(domain.DealMode_RentToRent, strategyType, out.ROIPercent, monthlyCashFlow)
	return out
}

// effectiveMonthlyIncome substitutes the nightly-rate model for
// serviced accommodation. Occupancy is already priced in there, so the
// caller must not also deduct a void allowance.
func effectiveMonthlyIncome(strategyType domain.StrategyType, income domain.IncomeExpenses) (float64, *domain.SAExtras) {
	if strategyType == domain.StrategyType_SA && income.NightlyRate != nil && *income.NightlyRate > 0 {
		monthly := *income.NightlyRate * clampPercent(income.OccupancyPercent) / 100 * avgDaysPerMonth
		return monthly, &domain.SAExtras{
			NightlyRate:            *income.NightlyRate,
			EffectiveMonthlyIncome: monthly,
		}
	}
	return income.GrossMonthlyRent, nil
}

func operatingCosts(grossRent float64, income domain.IncomeExpenses, occupancyPricedIn bool) float64 {
	costs := grossRent*income.ManagementPercent/100 +
		grossRent*income.MaintenancePercent/100 +
		income.UtilitiesMonthly + income.InsuranceMonthly +
		income.CouncilTaxMonthly + income.OtherMonthly
	if !occupancyPricedIn {
		voidPercent := 100 - clampPercent(income.OccupancyPercent)
		costs += grossRent * voidPercent / 100
	}
	return costs
}

func monthlyMortgagePayment(loanAmount float64, mortgage domain.MortgageDetails) float64 {
	if loanAmount <= 0 {
		return 0
	}
	monthlyRate := mortgage.AnnualRatePercent / 100 / 12
	if mortgage.InterestOnly {
		return loanAmount * monthlyRate
	}
	termMonths := mortgage.TermYears * 12
	if termMonths <= 0 {
		return loanAmount * monthlyRate
	}
	if monthlyRate == 0 {
		return loanAmount / float64(termMonths)
	}
	return loanAmount * monthlyRate / (1 - math.Pow(1+monthlyRate, -float64(termMonths)))
}

func flipExtras(assumptions domain.StrategyAssumptions, totalAcquisitionCost, cashRequired, monthlyMortgage float64) *domain.FlipExtras {
	price := assumptions.Costs.Purchase.Price
	resale := price * defaultFlipResaleMultiple
	if assumptions.GDV != nil && *assumptions.GDV > 0 {
		resale = *assumptions.GDV
	}
	holdingMonths := assumptions.HoldingMonths
	if holdingMonths <= 0 {
		holdingMonths = defaultFlipHoldingMonths
	}
	netProfit := resale - totalAcquisitionCost - monthlyMortgage*float64(holdingMonths)

	extras := &domain.FlipExtras{
		ResaleValue:   resale,
		NetProfit:     netProfit,
		MarginPercent: safePercent(netProfit, resale),
	}
	if cashRequired > 0 {
		extras.AnnualizedROIPercent = netProfit / cashRequired * 12 / float64(holdingMonths) * 100
	}
	return extras
}

func brrrExtras(assumptions domain.StrategyAssumptions, originalLoan, totalAcquisitionCost, cashRequired float64) *domain.BRRRExtras {
	costs := assumptions.Costs.Purchase
	endValue := costs.Price + costs.Refurbishment*defaultBRRRRefurbUplift
	if assumptions.GDV != nil && *assumptions.GDV > 0 {
		endValue = *assumptions.GDV
	}
	refinanceLTV := assumptions.RefinanceLTVPercent
	if refinanceLTV <= 0 {
		refinanceLTV = defaultRefinanceLTVPercent
	}
	newMortgage := endValue * refinanceLTV / 100
	cashOut := newMortgage - originalLoan

	return &domain.BRRRExtras{
		EndValue:       endValue,
		NewMortgage:    newMortgage,
		CashOut:        cashOut,
		CashLeftInDeal: cashRequired - cashOut,
		EquityCreated:  endValue - totalAcquisitionCost,
	}
}

// rate classifies ROI against mode-specific thresholds. Negative
// monthly cash flow forces Poor, except for flip and BRRR where the
// monthly position is irregular by the nature of the strategy.
func (s ProjectionService) rate(mode domain.DealMode, strategyType domain.StrategyType, roiPercent, monthlyCashFlow float64) domain.DealRating {
	exempt := strategyType == domain.StrategyType_Flip || strategyType == domain.StrategyType_BRRR
	if monthlyCashFlow < 0 && !exempt {
		return domain.DealRating_Poor
	}

	thresholds := s.Policy.SaleRating
	if mode == domain.DealMode_RentToRent {
		thresholds = s.Policy.RentRating
	}
	switch {
	case roiPercent >= thresholds.Excellent:
		return domain.DealRating_Excellent
	case roiPercent >= thresholds.Good:
		return domain.DealRating_Good
	case roiPercent >= thresholds.Fair:
		return domain.DealRating_Fair
	}
	return domain.DealRating_Poor
}

func payback(cashRequired, monthlyCashFlow float64) domain.PaybackMonths {
	if monthlyCashFlow <= 0 {
		return domain.PaybackNever()
	}
	if cashRequired <= 0 {
		return domain.PaybackAfter(0)
	}
	return domain.PaybackAfter(cashRequired / monthlyCashFlow)
}

func safePercent(numerator, denominator float64) float64 {
	if denominator <= 0 {
		return 0
	}
	return numerator / denominator * 100
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

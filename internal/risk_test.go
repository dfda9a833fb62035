package internal

import (
	"testing"

	"propfolio/internal/domain"

	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int {
	return &i
}

func floatPtr(f float64) *float64 {
	return &f
}

func healthyDeal() (domain.PropertyDetails, domain.AcquisitionCosts, domain.IncomeExpenses, domain.MortgageDetails) {
	property := domain.PropertyDetails{
		AskingPrice: 200_000,
		Type:        domain.PropertyType_Terraced,
		Bedrooms:    2,
		Address: domain.Address{
			Line:     "4 Orchard Close",
			City:     "Newton Abbot",
			Postcode: "TQ12 4AB",
		},
		Tenure: domain.Tenure_Freehold,
	}
	costs := domain.NewPurchaseCosts(domain.PurchaseCosts{Price: 200_000})
	income := domain.IncomeExpenses{GrossMonthlyRent: 1_200, OccupancyPercent: 95}
	mortgage := domain.MortgageDetails{LTVPercent: 75, AnnualRatePercent: 6, InterestOnly: true}
	return property, costs, income, mortgage
}

func TestAssessDealRisk_Tenure(t *testing.T) {
	t.Run("short lease below 80 years is a danger", func(t *testing.T) {
		property, costs, income, mortgage := healthyDeal()
		property.Tenure = domain.Tenure_Leasehold
		property.LeaseYearsRemaining = intPtr(79)

		assessment := AssessDealRisk(property, costs, income, mortgage)

		require.True(t, assessment.HasFlag(FlagShortLeaseCritical))
		require.False(t, assessment.HasFlag(FlagShortLeaseWarning))
	})

	t.Run("lease between 80 and 99 years is a warning", func(t *testing.T) {
		property, costs, income, mortgage := healthyDeal()
		property.Tenure = domain.Tenure_Leasehold
		property.LeaseYearsRemaining = intPtr(80)

		assessment := AssessDealRisk(property, costs, income, mortgage)

		require.False(t, assessment.HasFlag(FlagShortLeaseCritical))
		require.True(t, assessment.HasFlag(FlagShortLeaseWarning))
	})

	t.Run("lease of 100 years or more raises nothing", func(t *testing.T) {
		property, costs, income, mortgage := healthyDeal()
		property.Tenure = domain.Tenure_Leasehold
		property.LeaseYearsRemaining = intPtr(100)

		assessment := AssessDealRisk(property, costs, income, mortgage)

		require.False(t, assessment.HasFlag(FlagShortLeaseCritical))
		require.False(t, assessment.HasFlag(FlagShortLeaseWarning))
	})

	t.Run("short lease needs leasehold tenure", func(t *testing.T) {
		property, costs, income, mortgage := healthyDeal()
		property.LeaseYearsRemaining = intPtr(50)

		assessment := AssessDealRisk(property, costs, income, mortgage)

		require.False(t, assessment.HasFlag(FlagShortLeaseCritical))
	})

	t.Run("ground rent escalates from warning to danger", func(t *testing.T) {
		property, costs, income, mortgage := healthyDeal()
		property.GroundRentAnnual = floatPtr(300)
		assessment := AssessDealRisk(property, costs, income, mortgage)
		require.True(t, assessment.HasFlag(FlagHighGroundRent))
		require.Equal(t, 1, assessment.CountBySeverity(domain.RiskSeverity_Warning))

		property.GroundRentAnnual = floatPtr(600)
		assessment = AssessDealRisk(property, costs, income, mortgage)
		require.True(t, assessment.HasFlag(FlagHighGroundRent))
		require.Equal(t, 1, assessment.CountBySeverity(domain.RiskSeverity_Danger))
	})

	t.Run("service charge thresholds", func(t *testing.T) {
		property, costs, income, mortgage := healthyDeal()
		property.ServiceChargeAnnual = floatPtr(3_500)
		assessment := AssessDealRisk(property, costs, income, mortgage)
		require.Equal(t, 1, assessment.CountBySeverity(domain.RiskSeverity_Warning))

		property.ServiceChargeAnnual = floatPtr(5_500)
		assessment = AssessDealRisk(property, costs, income, mortgage)
		require.Equal(t, 1, assessment.CountBySeverity(domain.RiskSeverity_Danger))
	})
}

func TestAssessDealRisk_Regulatory(t *testing.T) {
	t.Run("article 4 flag present for listed postcode area", func(t *testing.T) {
		property, costs, income, mortgage := healthyDeal()
		property.Address.Postcode = "M14 5RB"

		assessment := AssessDealRisk(property, costs, income, mortgage)

		require.True(t, assessment.HasFlag(FlagArticle4Area))
	})

	t.Run("article 4 flag absent for unlisted postcode area", func(t *testing.T) {
		property, costs, income, mortgage := healthyDeal()
		property.Address.Postcode = "TQ12 4AB"

		assessment := AssessDealRisk(property, costs, income, mortgage)

		require.False(t, assessment.HasFlag(FlagArticle4Area))
	})

	t.Run("five bedrooms needs a mandatory licence", func(t *testing.T) {
		property, costs, income, mortgage := healthyDeal()
		property.Bedrooms = 5

		assessment := AssessDealRisk(property, costs, income, mortgage)

		require.True(t, assessment.HasFlag(FlagHMOMandatoryLicence))
		require.False(t, assessment.HasFlag(FlagHMOAdditionalLicence))
	})

	t.Run("three to four bedrooms may need additional licensing", func(t *testing.T) {
		property, costs, income, mortgage := healthyDeal()
		property.Bedrooms = 4

		assessment := AssessDealRisk(property, costs, income, mortgage)

		require.True(t, assessment.HasFlag(FlagHMOAdditionalLicence))
		require.False(t, assessment.HasFlag(FlagHMOMandatoryLicence))
	})

	t.Run("flood-prone postcode area", func(t *testing.T) {
		property, costs, income, mortgage := healthyDeal()
		property.Address.Postcode = "YO1 7HH"

		assessment := AssessDealRisk(property, costs, income, mortgage)

		require.True(t, assessment.HasFlag(FlagFloodProneArea))
	})
}

func TestAssessDealRisk_Financial(t *testing.T) {
	t.Run("healthy deal passes the stress test", func(t *testing.T) {
		property, costs, income, mortgage := healthyDeal()

		// 200k at 75% LTV and 6% is a 750/month payment; 1200 rent
		// gives an ICR of 1.6
		assessment := AssessDealRisk(property, costs, income, mortgage)

		require.False(t, assessment.HasFlag(FlagICRFail))
		require.False(t, assessment.HasFlag(FlagLowGrossYield))
	})

	t.Run("halving the rent fails the stress test", func(t *testing.T) {
		property, costs, income, mortgage := healthyDeal()
		income.GrossMonthlyRent = 600

		// ICR drops to 0.8
		assessment := AssessDealRisk(property, costs, income, mortgage)

		require.True(t, assessment.HasFlag(FlagICRFail))
	})

	t.Run("gross yield under 5 percent warns, under 4 is danger", func(t *testing.T) {
		property, costs, income, mortgage := healthyDeal()
		mortgage.LTVPercent = 0

		income.GrossMonthlyRent = 780 // 4.68% yield
		assessment := AssessDealRisk(property, costs, income, mortgage)
		require.True(t, assessment.HasFlag(FlagLowGrossYield))
		require.Equal(t, 1, assessment.CountBySeverity(domain.RiskSeverity_Warning))

		income.GrossMonthlyRent = 600 // 3.6% yield
		assessment = AssessDealRisk(property, costs, income, mortgage)
		require.True(t, assessment.HasFlag(FlagLowGrossYield))
		require.Equal(t, 1, assessment.CountBySeverity(domain.RiskSeverity_Danger))
	})

	t.Run("rent-to-rent margin thresholds", func(t *testing.T) {
		property, _, income, mortgage := healthyDeal()
		costs := domain.NewRentToRentCosts(domain.RentToRentCosts{MonthlyRentToOwner: 950})
		income.GrossMonthlyRent = 1_200

		// 250 margin
		assessment := AssessDealRisk(property, costs, income, mortgage)
		require.True(t, assessment.HasFlag(FlagThinRentMargin))
		require.Equal(t, 1, assessment.CountBySeverity(domain.RiskSeverity_Warning))

		// 150 margin
		costs.RentToRent.MonthlyRentToOwner = 1_050
		assessment = AssessDealRisk(property, costs, income, mortgage)
		require.Equal(t, 1, assessment.CountBySeverity(domain.RiskSeverity_Danger))

		// 400 margin - no flag, and no purchase-mode rules either
		costs.RentToRent.MonthlyRentToOwner = 800
		assessment = AssessDealRisk(property, costs, income, mortgage)
		require.False(t, assessment.HasFlag(FlagThinRentMargin))
		require.False(t, assessment.HasFlag(FlagICRFail))
	})
}

func TestAssessDealRisk_PropertyDescription(t *testing.T) {
	t.Run("flat gets an informational flag", func(t *testing.T) {
		property, costs, income, mortgage := healthyDeal()
		property.Type = domain.PropertyType_Flat

		assessment := AssessDealRisk(property, costs, income, mortgage)

		require.True(t, assessment.HasFlag(FlagFlatLeaseholdNote))
	})

	t.Run("risk keywords in the listing text", func(t *testing.T) {
		property, costs, income, mortgage := healthyDeal()
		property.Description = "A charming cottage, fully underpinned in 2015 following historic subsidence."

		assessment := AssessDealRisk(property, costs, income, mortgage)

		require.True(t, assessment.HasFlag(FlagDescriptionKeywords))
	})

	t.Run("EPC F or G in the description is a danger", func(t *testing.T) {
		property, costs, income, mortgage := healthyDeal()
		property.Description = "Period property in need of modernisation. EPC rating: F."

		assessment := AssessDealRisk(property, costs, income, mortgage)

		require.True(t, assessment.HasFlag(FlagEPCBelowMinimum))
	})

	t.Run("EPC E is a warning", func(t *testing.T) {
		property, costs, income, mortgage := healthyDeal()
		property.Description = "Well presented throughout. EPC E."

		assessment := AssessDealRisk(property, costs, income, mortgage)

		require.True(t, assessment.HasFlag(FlagEPCRegulationRisk))
		require.False(t, assessment.HasFlag(FlagEPCBelowMinimum))
	})
}

func TestAssessDealRisk_Scoring(t *testing.T) {
	t.Run("clean deal scores 100", func(t *testing.T) {
		property, costs, income, mortgage := healthyDeal()

		assessment := AssessDealRisk(property, costs, income, mortgage)

		require.Equal(t, 100, assessment.OverallScore)
		require.Empty(t, assessment.Flags)
	})

	t.Run("score clamps at zero with five dangers", func(t *testing.T) {
		property, costs, income, mortgage := healthyDeal()
		property.Tenure = domain.Tenure_Leasehold
		property.LeaseYearsRemaining = intPtr(50)
		property.GroundRentAnnual = floatPtr(600)
		property.ServiceChargeAnnual = floatPtr(6_000)
		income.GrossMonthlyRent = 600 // yield danger + ICR fail

		assessment := AssessDealRisk(property, costs, income, mortgage)

		require.GreaterOrEqual(t, assessment.CountBySeverity(domain.RiskSeverity_Danger), 5)
		require.Equal(t, 0, assessment.OverallScore)
	})

	t.Run("deductions are 25, 10 and 2", func(t *testing.T) {
		property, costs, income, mortgage := healthyDeal()
		property.Bedrooms = 5 // info
		property.GroundRentAnnual = floatPtr(300)
		income.GrossMonthlyRent = 600 // yield danger + ICR danger

		assessment := AssessDealRisk(property, costs, income, mortgage)

		require.Equal(t, 2, assessment.CountBySeverity(domain.RiskSeverity_Danger))
		require.Equal(t, 1, assessment.CountBySeverity(domain.RiskSeverity_Warning))
		require.Equal(t, 1, assessment.CountBySeverity(domain.RiskSeverity_Info))
		require.Equal(t, 100-25-25-10-2, assessment.OverallScore)
	})

	t.Run("zero-value inputs never panic", func(t *testing.T) {
		assessment := AssessDealRisk(domain.PropertyDetails{}, domain.AcquisitionCosts{}, domain.IncomeExpenses{}, domain.MortgageDetails{})
		require.Equal(t, 100, assessment.OverallScore)
	})
}

func TestDataConfidence(t *testing.T) {
	t.Run("rich listing data is high confidence", func(t *testing.T) {
		property, costs, income, mortgage := healthyDeal()
		property.SourceURL = "https://example.com/listing/123"
		property.Tenure = domain.Tenure_Leasehold
		property.LeaseYearsRemaining = intPtr(120)
		property.GroundRentAnnual = floatPtr(100)
		property.ServiceChargeAnnual = floatPtr(1_000)

		assessment := AssessDealRisk(property, costs, income, mortgage)

		require.Equal(t, domain.Confidence_High, assessment.DataConfidence)
	})

	t.Run("bare listing is low confidence", func(t *testing.T) {
		property, costs, income, mortgage := healthyDeal()

		assessment := AssessDealRisk(property, costs, income, mortgage)

		require.Equal(t, domain.Confidence_Low, assessment.DataConfidence)
	})

	t.Run("partial data is medium confidence", func(t *testing.T) {
		property, costs, income, mortgage := healthyDeal()
		property.SourceURL = "https://example.com/listing/123"
		property.GroundRentAnnual = floatPtr(100)

		assessment := AssessDealRisk(property, costs, income, mortgage)

		require.Equal(t, domain.Confidence_Medium, assessment.DataConfidence)
	})
}

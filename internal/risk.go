package internal

import (
	"fmt"
	"regexp"
	"strings"

	"propfolio/internal/data"
	"propfolio/internal/domain"
	"propfolio/internal/policy"
)

// flag ids - stable identifiers the display layer keys off
const (
	FlagShortLeaseCritical   = "short-lease-critical"
	FlagShortLeaseWarning    = "short-lease-warning"
	FlagHighGroundRent       = "high-ground-rent"
	FlagHighServiceCharge    = "high-service-charge"
	FlagArticle4Area         = "article-4-area"
	FlagHMOMandatoryLicence  = "hmo-mandatory-licence"
	FlagHMOAdditionalLicence = "hmo-additional-licensing"
	FlagFloodProneArea       = "flood-prone-area"
	FlagLowGrossYield        = "low-gross-yield"
	FlagICRFail              = "icr-fail"
	FlagThinRentMargin       = "thin-rent-margin"
	FlagFlatLeaseholdNote    = "flat-leasehold-note"
	FlagDescriptionKeywords  = "description-risk-keywords"
	FlagEPCBelowMinimum      = "epc-below-minimum"
	FlagEPCRegulationRisk    = "epc-regulation-risk"
)

var descriptionRiskKeywords = []string{"flood", "subsidence", "underpin"}

var epcTokenPattern = regexp.MustCompile(`(?i)\bepc(?:\s+rating)?[\s:\-]*([a-g])\b`)

type RiskEngine struct {
	Policy policy.Config
}

func NewRiskEngine(cfg policy.Config) RiskEngine {
	return RiskEngine{Policy: cfg}
}

// AssessDealRisk runs the rule battery under the default policy.
func AssessDealRisk(property domain.PropertyDetails, costs domain.AcquisitionCosts, income domain.IncomeExpenses, mortgage domain.MortgageDetails) domain.RiskAssessment {
	return NewRiskEngine(policy.Default()).AssessDealRisk(property, costs, income, mortgage)
}

// AssessDealRisk inspects the deal and emits severity-tagged flags plus
// an aggregate score. Each rule is independent - no rule reads another
// rule's output, and missing optional fields simply skip the rule.
// Never returns an error and never panics.
func (e RiskEngine) AssessDealRisk(property domain.PropertyDetails, costs domain.AcquisitionCosts, income domain.IncomeExpenses, mortgage domain.MortgageDetails) domain.RiskAssessment {
	flags := []domain.RiskFlag{}
	flags = append(flags, e.tenureFlags(property)...)
	flags = append(flags, e.regulatoryFlags(property)...)
	flags = append(flags, e.financialFlags(costs, income, mortgage)...)
	flags = append(flags, e.propertyFlags(property)...)

	return domain.RiskAssessment{
		OverallScore:   e.score(flags),
		Flags:          flags,
		DataConfidence: dataConfidence(property),
	}
}

func (e RiskEngine) tenureFlags(property domain.PropertyDetails) []domain.RiskFlag {
	flags := []domain.RiskFlag{}

	if property.Tenure == domain.Tenure_Leasehold && property.LeaseYearsRemaining != nil {
		remaining := *property.LeaseYearsRemaining
		if remaining < 80 {
			flags = append(flags, domain.RiskFlag{
				ID:             FlagShortLeaseCritical,
				Category:       domain.RiskCategory_Tenure,
				Severity:       domain.RiskSeverity_Danger,
				Title:          "Critically short lease",
				Description:    fmt.Sprintf("Only %d years remain on the lease. Below 80 years, extension costs rise sharply and mortgageability suffers.", remaining),
				Recommendation: "Price in a lease extension before offering, and get a statutory extension quote.",
			})
		} else if remaining < 100 {
			flags = append(flags, domain.RiskFlag{
				ID:             FlagShortLeaseWarning,
				Category:       domain.RiskCategory_Tenure,
				Severity:       domain.RiskSeverity_Warning,
				Title:          "Lease approaching the 80-year threshold",
				Description:    fmt.Sprintf("%d years remain on the lease. Extending before it drops under 80 years avoids marriage value.", remaining),
				Recommendation: "Budget for a lease extension within the hold period.",
			})
		}
	}

	if property.GroundRentAnnual != nil {
		groundRent := *property.GroundRentAnnual
		if groundRent > e.Policy.Risk.GroundRentWarn {
			severity := domain.RiskSeverity_Warning
			if groundRent > e.Policy.Risk.GroundRentDanger {
				severity = domain.RiskSeverity_Danger
			}
			flags = append(flags, domain.RiskFlag{
				ID:             FlagHighGroundRent,
				Category:       domain.RiskCategory_Tenure,
				Severity:       severity,
				Title:          "High ground rent",
				Description:    fmt.Sprintf("Ground rent of £%.0f/year. High or escalating ground rents hurt resale and can breach lender criteria.", groundRent),
				Recommendation: "Check the lease for ground rent review clauses.",
			})
		}
	}

	if property.ServiceChargeAnnual != nil {
		serviceCharge := *property.ServiceChargeAnnual
		if serviceCharge > e.Policy.Risk.ServiceChargeWarn {
			severity := domain.RiskSeverity_Warning
			if serviceCharge > e.Policy.Risk.ServiceChargeDanger {
				severity = domain.RiskSeverity_Danger
			}
			flags = append(flags, domain.RiskFlag{
				ID:             FlagHighServiceCharge,
				Category:       domain.RiskCategory_Tenure,
				Severity:       severity,
				Title:          "High service charge",
				Description:    fmt.Sprintf("Service charge of £%.0f/year eats directly into net cash flow.", serviceCharge),
				Recommendation: "Request the last three years of service charge accounts and any planned major works.",
			})
		}
	}

	return flags
}

func (e RiskEngine) regulatoryFlags(property domain.PropertyDetails) []domain.RiskFlag {
	flags := []domain.RiskFlag{}
	area := domain.PostcodeArea(property.Address.Postcode)

	if name, ok := data.Article4Areas[area]; ok {
		flags = append(flags, domain.RiskFlag{
			ID:             FlagArticle4Area,
			Category:       domain.RiskCategory_Regulatory,
			Severity:       domain.RiskSeverity_Warning,
			Title:          "Article 4 Direction area",
			Description:    fmt.Sprintf("%s has Article 4 Directions restricting HMO conversion. Planning permission may be required to let by room.", name),
			Recommendation: "Confirm with the local planning authority before pursuing an HMO strategy.",
		})
	}

	if property.Bedrooms >= 5 {
		flags = append(flags, domain.RiskFlag{
			ID:          FlagHMOMandatoryLicence,
			Category:    domain.RiskCategory_Regulatory,
			Severity:    domain.RiskSeverity_Info,
			Title:       "Mandatory HMO licence",
			Description: fmt.Sprintf("With %d bedrooms let to 5 or more occupants, a mandatory HMO licence applies.", property.Bedrooms),
		})
	} else if property.Bedrooms >= 3 {
		flags = append(flags, domain.RiskFlag{
			ID:          FlagHMOAdditionalLicence,
			Category:    domain.RiskCategory_Regulatory,
			Severity:    domain.RiskSeverity_Info,
			Title:       "Possible additional licensing",
			Description: fmt.Sprintf("%d bedrooms may fall under an additional licensing scheme if let as an HMO - schemes vary by council.", property.Bedrooms),
		})
	}

	if name, ok := data.FloodProneAreas[area]; ok {
		flags = append(flags, domain.RiskFlag{
			ID:             FlagFloodProneArea,
			Category:       domain.RiskCategory_Location,
			Severity:       domain.RiskSeverity_Warning,
			Title:          "Flood-prone area",
			Description:    fmt.Sprintf("The %s area has a history of flooding. Insurance may be costly or carry exclusions.", name),
			Recommendation: "Obtain a flood risk report and an insurance quote before exchange.",
		})
	}

	return flags
}

func (e RiskEngine) financialFlags(costs domain.AcquisitionCosts, income domain.IncomeExpenses, mortgage domain.MortgageDetails) []domain.RiskFlag {
	if costs.IsR2R() {
		return e.rentMarginFlags(costs, income)
	}
	if costs.Purchase == nil || costs.Purchase.Price <= 0 {
		return nil
	}

	flags := []domain.RiskFlag{}
	price := costs.Purchase.Price
	grossYield := income.GrossMonthlyRent * 12 / price * 100

	if grossYield < e.Policy.Risk.YieldWarnPercent {
		severity := domain.RiskSeverity_Warning
		if grossYield < e.Policy.Risk.YieldDangerPercent {
			severity = domain.RiskSeverity_Danger
		}
		flags = append(flags, domain.RiskFlag{
			ID:             FlagLowGrossYield,
			Category:       domain.RiskCategory_Financial,
			Severity:       severity,
			Title:          "Low gross yield",
			Description:    fmt.Sprintf("Gross yield of %.1f%% leaves little headroom for voids, maintenance and rate rises.", grossYield),
			Recommendation: "Negotiate on price or verify achievable rent against local comparables.",
		})
	}

	loanAmount := price * mortgage.LTVPercent / 100
	monthlyPayment := loanAmount * mortgage.AnnualRatePercent / 100 / 12
	if monthlyPayment > 0 {
		icr := income.GrossMonthlyRent / monthlyPayment
		if icr < e.Policy.Risk.ICRFloor {
			flags = append(flags, domain.RiskFlag{
				ID:             FlagICRFail,
				Category:       domain.RiskCategory_Financial,
				Severity:       domain.RiskSeverity_Danger,
				Title:          "Fails lender stress test",
				Description:    fmt.Sprintf("Interest coverage ratio is %.2f - most buy-to-let lenders require at least %.2f.", icr, e.Policy.Risk.ICRFloor),
				Recommendation: "Lower the LTV or revisit the rent assumption before approaching lenders.",
			})
		}
	}

	return flags
}

func (e RiskEngine) rentMarginFlags(costs domain.AcquisitionCosts, income domain.IncomeExpenses) []domain.RiskFlag {
	if costs.RentToRent == nil {
		return nil
	}
	margin := income.GrossMonthlyRent - costs.RentToRent.MonthlyRentToOwner
	if margin >= e.Policy.Risk.R2RMarginWarn {
		return nil
	}
	severity := domain.RiskSeverity_Warning
	if margin < e.Policy.Risk.R2RMarginDanger {
		severity = domain.RiskSeverity_Danger
	}
	return []domain.RiskFlag{{
		ID:             FlagThinRentMargin,
		Category:       domain.RiskCategory_Financial,
		Severity:       severity,
		Title:          "Thin rent-to-rent margin",
		Description:    fmt.Sprintf("Only £%.0f/month between the rent owed to the owner and the expected income. One void month wipes out the quarter.", margin),
		Recommendation: "Negotiate the owner's rent down or walk away.",
	}}
}

func (e RiskEngine) propertyFlags(property domain.PropertyDetails) []domain.RiskFlag {
	flags := []domain.RiskFlag{}

	if property.Type == domain.PropertyType_Flat {
		flags = append(flags, domain.RiskFlag{
			ID:          FlagFlatLeaseholdNote,
			Category:    domain.RiskCategory_Legal,
			Severity:    domain.RiskSeverity_Info,
			Title:       "Flat - leasehold considerations",
			Description: "Flats are almost always leasehold. Review the lease length, ground rent, service charge and any cladding remediation before offering.",
		})
	}

	description := strings.ToLower(property.Description)
	for _, keyword := range descriptionRiskKeywords {
		if strings.Contains(description, keyword) {
			flags = append(flags, domain.RiskFlag{
				ID:             FlagDescriptionKeywords,
				Category:       domain.RiskCategory_Legal,
				Severity:       domain.RiskSeverity_Warning,
				Title:          "Listing mentions structural or flood issues",
				Description:    fmt.Sprintf("The listing text mentions %q - a red flag worth a specialist survey.", keyword),
				Recommendation: "Commission a full structural survey and check the insurance claim history.",
			})
			break
		}
	}

	if match := epcTokenPattern.FindStringSubmatch(property.Description); match != nil {
		rating := strings.ToUpper(match[1])
		switch rating {
		case "F", "G":
			flags = append(flags, domain.RiskFlag{
				ID:             FlagEPCBelowMinimum,
				Category:       domain.RiskCategory_Regulatory,
				Severity:       domain.RiskSeverity_Danger,
				Title:          "EPC below legal minimum",
				Description:    fmt.Sprintf("An EPC rating of %s is below the minimum E required to let legally in England and Wales.", rating),
				Recommendation: "Cost the energy improvements needed to reach E (or the proposed C) before completion.",
			})
		case "E":
			flags = append(flags, domain.RiskFlag{
				ID:             FlagEPCRegulationRisk,
				Category:       domain.RiskCategory_Regulatory,
				Severity:       domain.RiskSeverity_Warning,
				Title:          "EPC at the current legal floor",
				Description:    "An EPC rating of E meets today's minimum but proposed regulations raise the floor to C for new tenancies.",
				Recommendation: "Budget for insulation or heating upgrades within the hold period.",
			})
		}
	}

	return flags
}

// score starts at 100 and subtracts a weighted deduction per flag,
// clamped at zero.
func (e RiskEngine) score(flags []domain.RiskFlag) int {
	score := 100
	for _, flag := range flags {
		switch flag.Severity {
		case domain.RiskSeverity_Danger:
			score -= e.Policy.Risk.Deductions.Danger
		case domain.RiskSeverity_Warning:
			score -= e.Policy.Risk.Deductions.Warning
		case domain.RiskSeverity_Info:
			score -= e.Policy.Risk.Deductions.Info
		}
	}
	if score < 0 {
		return 0
	}
	return score
}

// dataConfidence scores how much of the listing data we actually have.
func dataConfidence(property domain.PropertyDetails) domain.ConfidenceLevel {
	points := 0
	if property.SourceURL != "" {
		points += 2
	}
	if property.LeaseYearsRemaining != nil {
		points += 2
	}
	if property.GroundRentAnnual != nil {
		points++
	}
	if property.ServiceChargeAnnual != nil {
		points++
	}
	if len(property.Description) > 100 {
		points++
	}
	if len(property.ImageURLs) > 2 {
		points++
	}

	switch {
	case points >= 6:
		return domain.Confidence_High
	case points >= 3:
		return domain.Confidence_Medium
	}
	return domain.Confidence_Low
}

package domain

type DealMode string

const (
	DealMode_Purchase   DealMode = "PURCHASE"
	DealMode_RentToRent DealMode = "RENT_TO_RENT"
)

type PurchaseCosts struct {
	Price          float64 `json:"price"`
	TransactionTax float64 `json:"transactionTax"`
	SurveyFee      float64 `json:"surveyFee"`
	LegalFee       float64 `json:"legalFee"`
	Refurbishment  float64 `json:"refurbishment"`
	Furniture      float64 `json:"furniture"`
	OtherCosts     float64 `json:"otherCosts"`
}

type RentToRentCosts struct {
	MonthlyRentToOwner float64 `json:"monthlyRentToOwner"`
	DepositToOwner     float64 `json:"depositToOwner"`
	Furnishing         float64 `json:"furnishing"`
	LegalFee           float64 `json:"legalFee"`
	OtherCosts         float64 `json:"otherCosts"`
}

// AcquisitionCosts is a tagged union - exactly one payload is set,
// selected by Mode. Never read Purchase when Mode is rent-to-rent,
// or vice versa.
type AcquisitionCosts struct {
	Mode       DealMode         `json:"mode"`
	Purchase   *PurchaseCosts   `json:"purchase,omitempty"`
	RentToRent *RentToRentCosts `json:"rentToRent,omitempty"`
}

func NewPurchaseCosts(costs PurchaseCosts) AcquisitionCosts {
	return AcquisitionCosts{
		Mode:     DealMode_Purchase,
		Purchase: &costs,
	}
}

func NewRentToRentCosts(costs RentToRentCosts) AcquisitionCosts {
	return AcquisitionCosts{
		Mode:       DealMode_RentToRent,
		RentToRent: &costs,
	}
}

func (c AcquisitionCosts) IsR2R() bool {
	return c.Mode == DealMode_RentToRent
}

func (c AcquisitionCosts) DeepCopy() AcquisitionCosts {
	out := AcquisitionCosts{Mode: c.Mode}
	if c.Purchase != nil {
		purchase := *c.Purchase
		out.Purchase = &purchase
	}
	if c.RentToRent != nil {
		rentToRent := *c.RentToRent
		out.RentToRent = &rentToRent
	}
	return out
}

type MortgageDetails struct {
	// 0-100
	LTVPercent        float64 `json:"ltvPercent"`
	AnnualRatePercent float64 `json:"annualRatePercent"`
	TermYears         int     `json:"termYears"`
	ProductFee        float64 `json:"productFee"`
	InterestOnly      bool    `json:"interestOnly"`
}

type IncomeExpenses struct {
	GrossMonthlyRent   float64 `json:"grossMonthlyRent"`
	OccupancyPercent   float64 `json:"occupancyPercent"`
	ManagementPercent  float64 `json:"managementPercent"`
	MaintenancePercent float64 `json:"maintenancePercent"`
	UtilitiesMonthly   float64 `json:"utilitiesMonthly"`
	InsuranceMonthly   float64 `json:"insuranceMonthly"`
	CouncilTaxMonthly  float64 `json:"councilTaxMonthly"`
	OtherMonthly       float64 `json:"otherMonthly"`
	// serviced accommodation only - when set, monthly income is
	// nightly rate x occupancy x average days per month
	NightlyRate *float64 `json:"nightlyRate,omitempty"`
}

func (i IncomeExpenses) DeepCopy() IncomeExpenses {
	out := i
	if i.NightlyRate != nil {
		rate := *i.NightlyRate
		out.NightlyRate = &rate
	}
	return out
}

// StrategyAssumptions is the full editable input bundle for one strategy.
type StrategyAssumptions struct {
	Costs    AcquisitionCosts `json:"costs"`
	Mortgage MortgageDetails  `json:"mortgage"`
	Income   IncomeExpenses   `json:"income"`
	// flip/brrr end value. Falls back to a scaled default when nil.
	GDV *float64 `json:"gdv,omitempty"`
	// flip only
	HoldingMonths int `json:"holdingMonths,omitempty"`
	// brrr only
	RefinanceLTVPercent float64 `json:"refinanceLtvPercent,omitempty"`
}

func (a StrategyAssumptions) DeepCopy() StrategyAssumptions {
	out := a
	out.Costs = a.Costs.DeepCopy()
	out.Income = a.Income.DeepCopy()
	if a.GDV != nil {
		gdv := *a.GDV
		out.GDV = &gdv
	}
	return out
}

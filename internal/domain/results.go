package domain

import (
	"encoding/json"
	"math"
)

// PaybackMonths total-orders above every finite payback when infinite.
// The zero value is a zero-month payback, not infinite.
type PaybackMonths struct {
	months float64
}

func PaybackAfter(months float64) PaybackMonths {
	return PaybackMonths{months: months}
}

func PaybackNever() PaybackMonths {
	return PaybackMonths{months: math.Inf(1)}
}

func (p PaybackMonths) IsInfinite() bool {
	return math.IsInf(p.months, 1)
}

// Months panics on the infinite sentinel - check IsInfinite first.
func (p PaybackMonths) Months() float64 {
	if p.IsInfinite() {
		panic("payback is infinite")
	}
	return p.months
}

func (p PaybackMonths) Before(other PaybackMonths) bool {
	return p.months < other.months
}

// MarshalJSON renders the infinite sentinel as null so the display
// layer can show "Never" without a magic number on the wire.
func (p PaybackMonths) MarshalJSON() ([]byte, error) {
	if p.IsInfinite() {
		return []byte("null"), nil
	}
	return json.Marshal(p.months)
}

func (p *PaybackMonths) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = PaybackNever()
		return nil
	}
	var months float64
	if err := json.Unmarshal(data, &months); err != nil {
		return err
	}
	*p = PaybackAfter(months)
	return nil
}

type DealRating string

const (
	DealRating_Excellent DealRating = "EXCELLENT"
	DealRating_Good      DealRating = "GOOD"
	DealRating_Fair      DealRating = "FAIR"
	DealRating_Poor      DealRating = "POOR"
)

type AnalysisResults struct {
	TotalCashRequired float64       `json:"totalCashRequired"`
	TotalInvestment   float64       `json:"totalInvestment"`
	GrossYieldPercent float64       `json:"grossYieldPercent"`
	NetYieldPercent   float64       `json:"netYieldPercent"`
	MonthlyCashFlow   float64       `json:"monthlyCashFlow"`
	AnnualCashFlow    float64       `json:"annualCashFlow"`
	ROIPercent        float64       `json:"roiPercent"`
	Payback           PaybackMonths `json:"paybackMonths"`
	Rating            DealRating    `json:"rating"`
}

type FlipExtras struct {
	ResaleValue          float64 `json:"resaleValue"`
	NetProfit            float64 `json:"netProfit"`
	MarginPercent        float64 `json:"marginPercent"`
	AnnualizedROIPercent float64 `json:"annualizedRoiPercent"`
}

type BRRRExtras struct {
	EndValue       float64 `json:"endValue"`
	NewMortgage    float64 `json:"newMortgage"`
	CashOut        float64 `json:"cashOut"`
	CashLeftInDeal float64 `json:"cashLeftInDeal"`
	EquityCreated  float64 `json:"equityCreated"`
}

type SAExtras struct {
	NightlyRate            float64 `json:"nightlyRate"`
	EffectiveMonthlyIncome float64 `json:"effectiveMonthlyIncome"`
}

// StrategyProjection is the computed output for one strategy. At most
// one extras payload is set, matching the strategy type.
type StrategyProjection struct {
	AnalysisResults
	Flip *FlipExtras `json:"flip,omitempty"`
	BRRR *BRRRExtras `json:"brrr,omitempty"`
	SA   *SAExtras   `json:"sa,omitempty"`
}

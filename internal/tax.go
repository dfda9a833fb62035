package internal

import (
	"math"

	"propfolio/internal/policy"

	"github.com/shopspring/decimal"
)

// ComputeTransactionTax returns the purchase-tax liability for an
// investor buying at the given price, under the default band policy.
// Monotonic non-decreasing in price; a zero or negative price owes
// nothing.
func ComputeTransactionTax(price float64) float64 {
	return ComputeTransactionTaxWithPolicy(price, policy.Default().Tax)
}

// ComputeTransactionTaxWithPolicy walks the ordered marginal bands,
// then adds the flat surcharge applied to the whole price - the
// second-home surcharge is not marginal.
func ComputeTransactionTaxWithPolicy(price float64, taxPolicy policy.TaxPolicy) float64 {
	if price <= 0 {
		return 0
	}

	priceDec := decimal.NewFromFloat(price)
	tax := decimal.Zero
	previousUpper := decimal.Zero

	for _, band := range taxPolicy.Bands {
		upper := priceDec
		if !math.IsInf(band.UpperBound, 1) {
			bandUpper := decimal.NewFromFloat(band.UpperBound)
			if bandUpper.LessThan(upper) {
				upper = bandUpper
			}
		}
		if upper.LessThanOrEqual(previousUpper) {
			break
		}
		rate := decimal.NewFromFloat(band.RatePercent).Div(decimal.NewFromInt(100))
		tax = tax.Add(upper.Sub(previousUpper).Mul(rate))
		previousUpper = upper
	}

	surchargeRate := decimal.NewFromFloat(taxPolicy.SurchargePercent).Div(decimal.NewFromInt(100))
	tax = tax.Add(priceDec.Mul(surchargeRate))

	return tax.Round(2).InexactFloat64()
}

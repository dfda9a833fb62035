package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeTransactionTax(t *testing.T) {
	t.Run("below first band threshold only pays surcharge", func(t *testing.T) {
		require.Equal(t, float64(6000), ComputeTransactionTax(200_000))
	})

	t.Run("zero price", func(t *testing.T) {
		require.Equal(t, float64(0), ComputeTransactionTax(0))
	})

	t.Run("negative price treated as zero", func(t *testing.T) {
		require.Equal(t, float64(0), ComputeTransactionTax(-50_000))
	})

	t.Run("price spanning three bands", func(t *testing.T) {
		// 0% on first 250k, 5% on 675k, 10% on 75k, plus 3% of 1m
		require.Equal(t, float64(71_250), ComputeTransactionTax(1_000_000))
	})

	t.Run("top band is open ended", func(t *testing.T) {
		// 0 + 33,750 + 57,500 + 12% of 500k + 3% of 2m
		require.Equal(t, float64(211_250), ComputeTransactionTax(2_000_000))
	})

	t.Run("monotonic non-decreasing", func(t *testing.T) {
		previous := float64(0)
		for price := float64(0); price <= 2_000_000; price += 12_500 {
			tax := ComputeTransactionTax(price)
			require.GreaterOrEqual(t, tax, previous, "tax decreased at price %f", price)
			previous = tax
		}
	})

	t.Run("never less than the surcharge on the whole price", func(t *testing.T) {
		for _, price := range []float64{1, 100_000, 250_000, 925_000, 1_500_000, 3_000_000} {
			require.GreaterOrEqual(t, ComputeTransactionTax(price), price*0.03)
		}
	})
}

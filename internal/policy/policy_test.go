package policy

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Default(t *testing.T) {
	cfg := Default()

	require.Len(t, cfg.Tax.Bands, 4)
	require.True(t, math.IsInf(cfg.Tax.Bands[3].UpperBound, 1))
	require.Equal(t, 25, cfg.Risk.Deductions.Danger)
	require.Equal(t, float64(1.25), cfg.Risk.ICRFloor)
	require.Greater(t, cfg.RentRating.Fair, cfg.SaleRating.Fair)
}

func Test_Load(t *testing.T) {
	t.Run("no config file keeps defaults", func(t *testing.T) {
		chdir(t, t.TempDir())

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	t.Run("config file overrides defaults", func(t *testing.T) {
		dir := t.TempDir()
		contents := `
risk:
  icrFloor: 1.45
tax:
  surchargePercent: 5
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "policy.yaml"), []byte(contents), 0o644))
		chdir(t, dir)

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, float64(1.45), cfg.Risk.ICRFloor)
		require.Equal(t, float64(5), cfg.Tax.SurchargePercent)
		// untouched sections keep their defaults
		require.Equal(t, 25, cfg.Risk.Deductions.Danger)
	})

	t.Run("zero upper bound on the last band is open-ended", func(t *testing.T) {
		dir := t.TempDir()
		contents := `
tax:
  bands:
    - upperBound: 100000
      ratePercent: 0
    - upperBound: 0
      ratePercent: 10
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "policy.yaml"), []byte(contents), 0o644))
		chdir(t, dir)

		cfg, err := Load()
		require.NoError(t, err)
		require.Len(t, cfg.Tax.Bands, 2)
		require.True(t, math.IsInf(cfg.Tax.Bands[1].UpperBound, 1))
	})
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

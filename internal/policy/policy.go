// Package policy holds the tunable business constants behind the
// valuation and risk engines - severity deductions, rating thresholds,
// tax bands. The numbers are policy, not derived facts, so they load
// from config with compiled defaults rather than living in rule logic.
package policy

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"
)

type TaxBand struct {
	// UpperBound is the top of the marginal band. The last band is
	// open-ended (UpperBound = +Inf in the defaults, omitted in config).
	UpperBound  float64 `mapstructure:"upperBound"`
	RatePercent float64 `mapstructure:"ratePercent"`
}

type TaxPolicy struct {
	Bands            []TaxBand `mapstructure:"bands"`
	SurchargePercent float64   `mapstructure:"surchargePercent"`
}

type Deductions struct {
	Danger  int `mapstructure:"danger"`
	Warning int `mapstructure:"warning"`
	Info    int `mapstructure:"info"`
}

// RatingThresholds are minimum ROI percentages for each rating tier.
type RatingThresholds struct {
	Fair      float64 `mapstructure:"fair"`
	Good      float64 `mapstructure:"good"`
	Excellent float64 `mapstructure:"excellent"`
}

type RiskPolicy struct {
	Deductions          Deductions `mapstructure:"deductions"`
	ICRFloor            float64    `mapstructure:"icrFloor"`
	YieldWarnPercent    float64    `mapstructure:"yieldWarnPercent"`
	YieldDangerPercent  float64    `mapstructure:"yieldDangerPercent"`
	R2RMarginWarn       float64    `mapstructure:"r2rMarginWarn"`
	R2RMarginDanger     float64    `mapstructure:"r2rMarginDanger"`
	GroundRentWarn      float64    `mapstructure:"groundRentWarn"`
	GroundRentDanger    float64    `mapstructure:"groundRentDanger"`
	ServiceChargeWarn   float64    `mapstructure:"serviceChargeWarn"`
	ServiceChargeDanger float64    `mapstructure:"serviceChargeDanger"`
}

type Config struct {
	Tax  TaxPolicy  `mapstructure:"tax"`
	Risk RiskPolicy `mapstructure:"risk"`
	// rating thresholds per deal mode - rent-to-rent expects higher
	// returns for the same rating since there is no asset appreciation
	SaleRating RatingThresholds `mapstructure:"saleRating"`
	RentRating RatingThresholds `mapstructure:"rentRating"`
}

// Default returns the policy constants from the source model. The
// deduction weights and ROI bands are unvalidated business rules -
// confirm with stakeholders before shipping different values.
func Default() Config {
	return Config{
		Tax: TaxPolicy{
			Bands: []TaxBand{
				{UpperBound: 250_000, RatePercent: 0},
				{UpperBound: 925_000, RatePercent: 5},
				{UpperBound: 1_500_000, RatePercent: 10},
				{UpperBound: math.Inf(1), RatePercent: 12},
			},
			SurchargePercent: 3,
		},
		Risk: RiskPolicy{
			Deductions: Deductions{
				Danger:  25,
				Warning: 10,
				Info:    2,
			},
			ICRFloor:            1.25,
			YieldWarnPercent:    5,
			YieldDangerPercent:  4,
			R2RMarginWarn:       300,
			R2RMarginDanger:     200,
			GroundRentWarn:      250,
			GroundRentDanger:    500,
			ServiceChargeWarn:   3000,
			ServiceChargeDanger: 5000,
		},
		SaleRating: RatingThresholds{Fair: 5, Good: 8, Excellent: 12},
		RentRating: RatingThresholds{Fair: 8, Good: 12, Excellent: 20},
	}
}

// Load reads policy.yaml if present, with PROPFOLIO_* env overrides,
// on top of the compiled defaults. A missing config file is fine.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("policy")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.SetEnvPrefix("PROPFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := Default()
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return cfg, fmt.Errorf("error reading policy config: %w", err)
		}
		return cfg, nil
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal policy config: %w", err)
	}
	if len(cfg.Tax.Bands) == 0 {
		return cfg, fmt.Errorf("policy config has no tax bands")
	}
	// config files can't express +Inf - treat a 0 upper bound on the
	// last band as open-ended
	last := len(cfg.Tax.Bands) - 1
	if cfg.Tax.Bands[last].UpperBound == 0 {
		cfg.Tax.Bands[last].UpperBound = math.Inf(1)
	}
	return cfg, nil
}

package data

// NeutralRentMultiplier is what callers substitute when region
// resolution fails.
const NeutralRentMultiplier = 1.0

// RegionRentMultipliers scales seeded rent estimates by administrative
// region, keyed by the region strings postcodes.io returns.
var RegionRentMultipliers = map[string]float64{
	"London":                   1.6,
	"South East":               1.25,
	"East of England":          1.1,
	"South West":               1.05,
	"West Midlands":            0.95,
	"East Midlands":            0.9,
	"North West":               0.9,
	"Yorkshire and The Humber": 0.85,
	"North East":               0.8,
	"Wales":                    0.85,
	"Scotland":                 0.9,
}

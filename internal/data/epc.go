package data

// EPCEstimateByPropertyType is the offline fallback when the EPC
// register can't be reached - a typical rating per property type,
// biased pessimistic so the estimate doesn't hide risk.
var EPCEstimateByPropertyType = map[string]string{
	"FLAT":          "C",
	"TERRACED":      "D",
	"SEMI_DETACHED": "D",
	"DETACHED":      "D",
	"BUNGALOW":      "E",
	"OTHER":         "D",
}

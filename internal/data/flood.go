package data

// FloodProneAreas maps postcode-area prefixes to regions with a
// history of river or surface-water flooding. Used both by the risk
// rules and as the offline fallback for the flood-risk adapter.
var FloodProneAreas = map[string]string{
	"YO": "York",
	"HU": "Hull",
	"CA": "Carlisle",
	"GL": "Gloucester",
	"WR": "Worcester",
	"SY": "Shrewsbury",
	"TF": "Telford",
	"HR": "Hereford",
}

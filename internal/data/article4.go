// Package data holds the fixed lookup tables the risk rules consume.
// Jurisdiction data changes without rule logic changing, so the tables
// live here as swappable package-level values.
package data

// Article4Areas maps postcode-area prefixes to places with a known
// borough-wide Article 4 Direction removing permitted development
// rights for small HMO conversion. Coarse by design - a postcode area
// match means "check with the council", not a definitive restriction.
var Article4Areas = map[string]string{
	"M":  "Manchester",
	"B":  "Birmingham",
	"L":  "Liverpool",
	"LS": "Leeds",
	"NG": "Nottingham",
	"OX": "Oxford",
	"BN": "Brighton and Hove",
	"PO": "Portsmouth",
	"SO": "Southampton",
	"CF": "Cardiff",
}

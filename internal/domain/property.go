package domain

type PropertyType string

const (
	PropertyType_Flat         PropertyType = "FLAT"
	PropertyType_Terraced     PropertyType = "TERRACED"
	PropertyType_SemiDetached PropertyType = "SEMI_DETACHED"
	PropertyType_Detached     PropertyType = "DETACHED"
	PropertyType_Bungalow     PropertyType = "BUNGALOW"
	PropertyType_Other        PropertyType = "OTHER"
)

type Tenure string

const (
	Tenure_Freehold        Tenure = "FREEHOLD"
	Tenure_Leasehold       Tenure = "LEASEHOLD"
	Tenure_ShareOfFreehold Tenure = "SHARE_OF_FREEHOLD"
)

type Address struct {
	Line     string `json:"line"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
}

type PropertyDetails struct {
	AskingPrice float64      `json:"askingPrice"`
	Type        PropertyType `json:"propertyType"`
	Bedrooms    int          `json:"bedrooms"`
	Bathrooms   int          `json:"bathrooms"`
	Address     Address      `json:"address"`
	Tenure      Tenure       `json:"tenure"`
	// only meaningful when Tenure is leasehold
	LeaseYearsRemaining *int     `json:"leaseYearsRemaining,omitempty"`
	GroundRentAnnual    *float64 `json:"groundRentAnnual,omitempty"`
	ServiceChargeAnnual *float64 `json:"serviceChargeAnnual,omitempty"`
	Description         string   `json:"description,omitempty"`
	ImageURLs           []string `json:"imageUrls,omitempty"`
	SourceURL           string   `json:"sourceUrl,omitempty"`
}

// PostcodeArea returns the leading letters of the postcode, e.g.
// "M14 5RB" -> "M", "TQ12 4AB" -> "TQ". Empty when the postcode
// doesn't start with a letter.
func PostcodeArea(postcode string) string {
	area := []rune{}
	for _, r := range postcode {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			if r >= 'a' {
				r -= 'a' - 'A'
			}
			area = append(area, r)
		} else {
			break
		}
	}
	if len(area) > 2 {
		return ""
	}
	return string(area)
}

package internal

import (
	"context"
	"sync"

	"propfolio/internal/data"
	"propfolio/internal/domain"
	"propfolio/pkg/epc"
	"propfolio/pkg/floodrisk"
	"propfolio/pkg/postcode"
)

const (
	FlagActiveFloodWarning = "active-flood-warning"
)

type EnergyRatingAdapter interface {
	LookupEnergyRating(ctx context.Context, postcode, addressLine, propertyType string) epc.Result
}

type FloodRiskAdapter interface {
	LookupFloodRisk(ctx context.Context, postcode string) floodrisk.Result
}

type RegionAdapter interface {
	ResolveRegion(ctx context.Context, postcode string) *postcode.Region
}

type EnrichedAssessment struct {
	domain.RiskAssessment
	EnergyRating   epc.Result       `json:"energyRating"`
	FloodRisk      floodrisk.Result `json:"floodRisk"`
	Region         string           `json:"region,omitempty"`
	RentMultiplier float64          `json:"rentMultiplier"`
}

type RiskEnricher struct {
	Engine RiskEngine
	Energy EnergyRatingAdapter
	Flood  FloodRiskAdapter
	Region RegionAdapter
}

// Enrich layers external lookups on top of a base assessment. The
// three adapters are fanned out concurrently with no ordering
// guarantee; each applies its own timeout and degrades to a fallback,
// so Enrich always completes with a full result.
func (e RiskEnricher) Enrich(ctx context.Context, property domain.PropertyDetails, base domain.RiskAssessment) EnrichedAssessment {
	out := EnrichedAssessment{
		RiskAssessment: base,
		RentMultiplier: data.NeutralRentMultiplier,
	}

	var (
		wg           sync.WaitGroup
		energyResult epc.Result
		floodResult  floodrisk.Result
		regionResult *postcode.Region
	)
	postcodeStr := property.Address.Postcode

	if e.Energy != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			energyResult = e.Energy.LookupEnergyRating(ctx, postcodeStr, property.Address.Line, string(property.Type))
		}()
	}
	if e.Flood != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			floodResult = e.Flood.LookupFloodRisk(ctx, postcodeStr)
		}()
	}
	if e.Region != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			regionResult = e.Region.ResolveRegion(ctx, postcodeStr)
		}()
	}
	wg.Wait()

	if e.Energy != nil {
		out.EnergyRating = energyResult
		out.Flags = append(out.Flags, energyFlags(energyResult, base)...)
	}
	if e.Flood != nil {
		out.FloodRisk = floodResult
		out.Flags = append(out.Flags, floodFlags(floodResult, base)...)
	}
	if regionResult != nil {
		out.Region = regionResult.Region
		if multiplier, ok := data.RegionRentMultipliers[regionResult.Region]; ok {
			out.RentMultiplier = multiplier
		}
	}

	out.OverallScore = e.Engine.score(out.Flags)
	return out
}

func energyFlags(result epc.Result, base domain.RiskAssessment) []domain.RiskFlag {
	switch result.Rating {
	case "F", "G":
		if base.HasFlag(FlagEPCBelowMinimum) {
			return nil
		}
		return []domain.RiskFlag{{
			ID:             FlagEPCBelowMinimum,
			Category:       domain.RiskCategory_Regulatory,
			Severity:       domain.RiskSeverity_Danger,
			Title:          "EPC below legal minimum",
			Description:    "The energy rating is below the minimum E required to let legally in England and Wales.",
			Recommendation: "Cost the energy improvements needed to reach E before completion.",
		}}
	case "E":
		if base.HasFlag(FlagEPCRegulationRisk) {
			return nil
		}
		return []domain.RiskFlag{{
			ID:             FlagEPCRegulationRisk,
			Category:       domain.RiskCategory_Regulatory,
			Severity:       domain.RiskSeverity_Warning,
			Title:          "EPC at the current legal floor",
			Description:    "An E rating meets today's minimum but proposed regulations raise the floor to C for new tenancies.",
			Recommendation: "Budget for insulation or heating upgrades within the hold period.",
		}}
	}
	return nil
}

func floodFlags(result floodrisk.Result, base domain.RiskAssessment) []domain.RiskFlag {
	if result.HasActiveWarnings {
		return []domain.RiskFlag{{
			ID:             FlagActiveFloodWarning,
			Category:       domain.RiskCategory_Location,
			Severity:       domain.RiskSeverity_Danger,
			Title:          "Active flood warning",
			Description:    "A flood warning is currently in force for this area.",
			Recommendation: "Obtain a full flood risk report and confirm insurability before proceeding.",
		}}
	}
	if result.Zone == floodrisk.ZoneMedium && !base.HasFlag(FlagFloodProneArea) {
		return []domain.RiskFlag{{
			ID:             FlagFloodProneArea,
			Category:       domain.RiskCategory_Location,
			Severity:       domain.RiskSeverity_Warning,
			Title:          "Flood-prone area",
			Description:    "This area has an elevated flood risk.",
			Recommendation: "Obtain a flood risk report and an insurance quote before exchange.",
		}}
	}
	return nil
}

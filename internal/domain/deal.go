package domain

import (
	"time"

	"github.com/google/uuid"
)

type StrategyType string

const (
	StrategyType_BTL  StrategyType = "BTL"
	StrategyType_HMO  StrategyType = "HMO"
	StrategyType_BRRR StrategyType = "BRRR"
	StrategyType_SA   StrategyType = "SA"
	StrategyType_R2R  StrategyType = "R2R"
	StrategyType_Flip StrategyType = "FLIP"
)

func AllStrategyTypes() []StrategyType {
	return []StrategyType{
		StrategyType_BTL,
		StrategyType_HMO,
		StrategyType_BRRR,
		StrategyType_SA,
		StrategyType_R2R,
		StrategyType_Flip,
	}
}

// StrategyResult pairs one strategy's editable assumptions with its
// computed projection. Results are recomputed synchronously after every
// assumption edit and are never left stale. Which strategy is "active"
// is session state owned by the caller, not stored here.
type StrategyResult struct {
	Type        StrategyType        `json:"type"`
	Assumptions StrategyAssumptions `json:"assumptions"`
	Results     *StrategyProjection `json:"results,omitempty"`
}

func (s StrategyResult) DeepCopy() *StrategyResult {
	out := &StrategyResult{
		Type:        s.Type,
		Assumptions: s.Assumptions.DeepCopy(),
	}
	if s.Results != nil {
		results := *s.Results
		out.Results = &results
	}
	return out
}

// Deal is exclusively owned by the editing session - one writer at a time.
type Deal struct {
	ID         uuid.UUID                        `json:"id"`
	CreatedAt  time.Time                        `json:"createdAt"`
	UpdatedAt  time.Time                        `json:"updatedAt"`
	Property   PropertyDetails                  `json:"property"`
	Strategies map[StrategyType]*StrategyResult `json:"strategies"`
	Notes      string                           `json:"notes,omitempty"`
}

func NewDeal(property PropertyDetails) *Deal {
	now := time.Now().UTC()
	return &Deal{
		ID:         uuid.New(),
		CreatedAt:  now,
		UpdatedAt:  now,
		Property:   property,
		Strategies: map[StrategyType]*StrategyResult{},
	}
}

func (d *Deal) Touch() {
	d.UpdatedAt = time.Now().UTC()
}

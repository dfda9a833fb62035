package api

import (
	"propfolio/internal"
	"propfolio/internal/domain"

	"github.com/gin-gonic/gin"
)

type assessRiskRequest struct {
	Property domain.PropertyDetails  `json:"property"`
	Costs    domain.AcquisitionCosts `json:"costs"`
	Income   domain.IncomeExpenses   `json:"income"`
	Mortgage domain.MortgageDetails  `json:"mortgage"`
}

func (m ApiHandler) assessRisk(c *gin.Context) {
	var requestBody assessRiskRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	assessment := m.RiskEngine.AssessDealRisk(
		requestBody.Property,
		requestBody.Costs,
		requestBody.Income,
		requestBody.Mortgage,
	)

	c.JSON(200, assessment)
}

type enrichResponse struct {
	internal.EnrichedAssessment
}

// enrich runs the base assessment then fans out the external lookups.
// The adapters degrade on failure rather than fail the request, so
// this always returns 200 with a complete result.
func (m ApiHandler) enrich(c *gin.Context) {
	var requestBody assessRiskRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	base := m.RiskEngine.AssessDealRisk(
		requestBody.Property,
		requestBody.Costs,
		requestBody.Income,
		requestBody.Mortgage,
	)
	enriched := m.RiskEnricher.Enrich(c.Request.Context(), requestBody.Property, base)

	c.JSON(200, enrichResponse{EnrichedAssessment: enriched})
}

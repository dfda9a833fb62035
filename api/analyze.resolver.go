package api

import (
	"propfolio/internal/domain"

	"github.com/gin-gonic/gin"
)

type analyzeRequest struct {
	Property             domain.PropertyDetails `json:"property"`
	EstimatedMonthlyRent float64                `json:"estimatedMonthlyRent"`
}

type analyzeResponse struct {
	Deal *domain.Deal `json:"deal"`
}

// analyze creates a deal, seeds all six strategies with scaled
// defaults and returns every projection.
func (m ApiHandler) analyze(c *gin.Context) {
	var requestBody analyzeRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	deal, err := m.Analyzer.AnalyzeDeal(requestBody.Property, requestBody.EstimatedMonthlyRent)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, analyzeResponse{Deal: deal})
}

type projectRequest struct {
	// which strategy tab is selected - session state, passed
	// explicitly per request
	StrategyType domain.StrategyType        `json:"strategyType"`
	Assumptions  domain.StrategyAssumptions `json:"assumptions"`
}

// project recomputes a single strategy from edited assumptions.
func (m ApiHandler) project(c *gin.Context) {
	var requestBody projectRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	projection, err := m.Projections.Project(requestBody.StrategyType, requestBody.Assumptions)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	c.JSON(200, projection)
}

package api

import (
	"propfolio/internal/calculator"
	"propfolio/internal/domain"

	"github.com/gin-gonic/gin"
)

type sensitivityRequest struct {
	StrategyType    domain.StrategyType        `json:"strategyType"`
	Assumptions     domain.StrategyAssumptions `json:"assumptions"`
	RateOffsets     []float64                  `json:"rateOffsets"`
	RentMultipliers []float64                  `json:"rentMultipliers"`
}

func (m ApiHandler) sensitivity(c *gin.Context) {
	var requestBody sensitivityRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	result, err := m.Sensitivity.Run(calculator.SensitivityInput{
		StrategyType:    requestBody.StrategyType,
		Assumptions:     requestBody.Assumptions,
		RateOffsets:     requestBody.RateOffsets,
		RentMultipliers: requestBody.RentMultipliers,
	})
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	c.JSON(200, result)
}

package api

import (
	"fmt"

	"propfolio/internal"

	"github.com/gin-gonic/gin"
)

type taxRequest struct {
	Price float64 `json:"price"`
}

type taxResponse struct {
	Price float64 `json:"price"`
	Tax   float64 `json:"tax"`
}

func (m ApiHandler) tax(c *gin.Context) {
	var requestBody taxRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if requestBody.Price < 0 {
		returnErrorJsonCode(fmt.Errorf("price must not be negative"), c, 400)
		return
	}

	c.JSON(200, taxResponse{
		Price: requestBody.Price,
		Tax:   internal.ComputeTransactionTaxWithPolicy(requestBody.Price, m.Policy.Tax),
	})
}

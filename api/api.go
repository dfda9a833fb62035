package api

import (
	"fmt"

	"propfolio/internal"
	"propfolio/internal/calculator"
	"propfolio/internal/logger"
	"propfolio/internal/policy"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ApiHandler struct {
	Policy       policy.Config
	Analyzer     internal.DealAnalyzer
	Projections  calculator.ProjectionService
	Sensitivity  calculator.SensitivityService
	RiskEngine   internal.RiskEngine
	RiskEnricher internal.RiskEnricher
}

func (m ApiHandler) StartApi(port int) error {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.loggerMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to propfolio"})
	})
	router.POST("/analyze", m.analyze)
	router.POST("/project", m.project)
	router.POST("/tax", m.tax)
	router.POST("/assessRisk", m.assessRisk)
	router.POST("/enrich", m.enrich)
	router.POST("/sensitivity", m.sensitivity)

	return router.Run(fmt.Sprintf(":%d", port))
}

func (m ApiHandler) loggerMiddleware(c *gin.Context) {
	ctx := logger.ToContext(c.Request.Context(), logger.New())
	c.Request = c.Request.WithContext(ctx)
	c.Next()
}

func returnErrorJson(err error, c *gin.Context) {
	logger.FromContext(c.Request.Context()).Warnw("request failed", "error", err)
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c.Request.Context()).Warnw("request failed", "error", err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

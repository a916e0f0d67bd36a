package routes

import (
	"net/http"
	"time"

	"signestimate/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

func addHealthRoutes(rg *gin.RouterGroup, gateway interfaces.INetSuiteGateway) {
	rg.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":             "ok",
			"timestamp":          time.Now().UTC().Format(time.RFC3339),
			"netsuiteConfigured": gateway.Configured(),
		})
	})
}

package routes

import (
	"signestimate/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathNetSuite = "/netsuite"

func addNetSuiteRoutes(rg *gin.RouterGroup, netsuiteHandler *handlers.NetSuiteHandler) {
	netsuite := rg.Group(PathNetSuite)
	{
		netsuite.GET("/estimate-requests", netsuiteHandler.GetEstimateRequests)
		netsuite.POST("/sync", netsuiteHandler.SyncEstimateRequests)
		netsuite.POST("/convert-request", netsuiteHandler.ConvertRequest)
	}

	// Locally synced rows, converted or not.
	rg.GET("/estimate-requests", netsuiteHandler.ListLocalEstimateRequests)
}

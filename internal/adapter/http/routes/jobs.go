package routes

import (
	"signestimate/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs  = "/jobs"
	PathSigns = "/signs"
)

func addJobRoutes(rg *gin.RouterGroup, jobHandler *handlers.JobHandler, signHandler *handlers.SignHandler, rateHandler *handlers.StandardRateHandler) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("", jobHandler.ListJobs)
		jobs.GET("/:id", jobHandler.GetJob)
		jobs.PUT("/:id", jobHandler.UpdateJob)
		jobs.DELETE("/:id", jobHandler.DeleteJob)

		jobs.POST("/:id/signs", signHandler.CreateSign)
		jobs.GET("/:id/signs", signHandler.ListSignsByJob)
	}

	signs := rg.Group(PathSigns)
	{
		// The static route must be registered before the id route.
		signs.GET("/defaults", signHandler.GetSignDefaults)
		signs.GET("/:id", signHandler.GetSign)
		signs.DELETE("/:id", signHandler.DeleteSign)
	}

	rg.GET("/standard-rates", rateHandler.GetStandardRates)
}

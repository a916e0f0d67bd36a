package routes

import (
	"log"
	"os"

	_ "signestimate/docs" // This will be auto-generated
	"signestimate/internal/adapter/http/handlers"
	repository2 "signestimate/internal/adapter/persistence/repository"
	"signestimate/internal/infrastructure/database"
	"signestimate/internal/infrastructure/netsuite"
	"signestimate/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const defaultPort = "3001"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	requestRepo := repository2.NewEstimateRequestDynamoRepository(ddb)
	jobRepo := repository2.NewJobDynamoRepository(ddb)
	signRepo := repository2.NewSignDynamoRepository(ddb)
	rateRepo := repository2.NewStandardRateDynamoRepository(ddb)

	nsConfig := netsuite.ConfigFromEnv()
	nsClient := netsuite.NewClient(nsConfig)
	if nsClient.MockMode() {
		log.Printf("[routes] NetSuite credentials not configured, client runs in mock mode")
	} else {
		log.Printf("[routes] NetSuite client configured account_id=%s", nsConfig.AccountID)
	}

	requestUseCase := usecase.NewEstimateRequestUseCase(nsClient, requestRepo)
	conversionUseCase := usecase.NewConversionUseCase(requestRepo, jobRepo, nsClient)
	jobUseCase := usecase.NewJobUseCase(jobRepo, signRepo)
	signUseCase := usecase.NewSignUseCase(signRepo, jobRepo)
	rateUseCase := usecase.NewStandardRateUseCase(rateRepo)

	netsuiteHandler := handlers.NewNetSuiteHandler(requestUseCase, conversionUseCase, nsClient)
	jobHandler := handlers.NewJobHandler(jobUseCase)
	signHandler := handlers.NewSignHandler(signUseCase)
	rateHandler := handlers.NewStandardRateHandler(rateUseCase)

	api := router.Group("/api")
	addHealthRoutes(api, nsClient)
	addNetSuiteRoutes(api, netsuiteHandler)
	addJobRoutes(api, jobHandler, signHandler, rateHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type"}
	router.Use(cors.New(corsConfig))
}

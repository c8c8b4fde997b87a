package routes

import (
	"log"
	"os"
	"strconv"

	_ "propdraft/docs" // This will be auto-generated
	"propdraft/internal/adapter/http/handlers"
	repository2 "propdraft/internal/adapter/persistence/repository"
	"propdraft/internal/infrastructure/ai"
	"propdraft/internal/infrastructure/database"
	"propdraft/internal/infrastructure/files"
	"propdraft/internal/infrastructure/storage"
	"propdraft/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	proposalRepo := repository2.NewProposalDynamoRepository(ddb)

	store, err := storage.NewLocalFileStore()
	if err != nil {
		log.Fatalf("Failed to prepare upload storage: %v", err)
	}

	analysisClient, err := ai.NewOpenAIClient(
		os.Getenv("OPENAI_ENDPOINT"),
		os.Getenv("OPENAI_API_KEY"),
		os.Getenv("OPENAI_MODEL"),
	)
	if err != nil {
		log.Fatalf("Failed to configure the analysis client: %v", err)
	}

	extractor := files.NewTextExtractor()

	proposalUseCase := usecase.NewProposalUseCase(proposalRepo, store)
	analysisUseCase := usecase.NewAnalysisUseCase(proposalRepo, analysisClient, extractor)
	pricingUseCase := usecase.NewPricingUseCase(proposalRepo)
	timelineUseCase := usecase.NewTimelineUseCase(proposalRepo)

	proposalHandler := handlers.NewProposalHandler(proposalUseCase)
	analysisHandler := handlers.NewAnalysisHandler(analysisUseCase)
	pricingHandler := handlers.NewPricingHandler(pricingUseCase)
	timelineHandler := handlers.NewTimelineHandler(timelineUseCase)

	// Identity comes from the gateway; every route under /v1 is owner scoped.
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addProposalRoutes(v1, proposalHandler, analysisHandler, pricingHandler, timelineHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

package routes

import (
	"log"
	"os"
	"strconv"

	"hours_tracker/internal/adapter/http/handlers"
	"hours_tracker/internal/adapter/persistence/repository"
	"hours_tracker/internal/infrastructure/database"
	"hours_tracker/internal/usecase"

	"github.com/gin-gonic/gin"
)

var router = gin.Default()

const defaultPort = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	getRoutes()

	err := router.Run(":" + strconv.Itoa(port()))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	sessionRepo := repository.NewWorkSessionDynamoRepository(ddb)
	eventRepo := repository.NewPayoutEventDynamoRepository(ddb)

	cfg := usecase.PipelineConfigFromEnv()
	log.Printf("[routes] pipeline config project_payout_hours=%d task_payout_hours=%d transfer_business_days=%d cooldown_hours=%d",
		cfg.ProjectPayoutHours, cfg.TaskPayoutHours, cfg.TransferBusinessDays, cfg.CooldownHours)

	sessionUseCase := usecase.NewWorkSessionUseCase(sessionRepo)
	eventUseCase := usecase.NewPayoutEventUseCase(eventRepo, cfg)
	pipelineUseCase := usecase.NewPipelineUseCase(sessionRepo, eventRepo, cfg)

	sessionHandler := handlers.NewWorkSessionHandler(sessionUseCase)
	eventHandler := handlers.NewPayoutEventHandler(eventUseCase)
	pipelineHandler := handlers.NewPipelineHandler(pipelineUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addTrackerRoutes(v1, sessionHandler, eventHandler, pipelineHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func port() int {
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			return p
		}
	}
	return defaultPort
}

package routes

import (
	"net/http"

	"hours_tracker/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSessions = "/sessions"
	PathEvents   = "/events"
	PathPipeline = "/pipeline"
	PathPayout   = "/payout"
)

func addTrackerRoutes(rg *gin.RouterGroup, sessionHandler *handlers.WorkSessionHandler, eventHandler *handlers.PayoutEventHandler, pipelineHandler *handlers.PipelineHandler) {
	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", sessionHandler.LogSession)
		sessions.GET("", sessionHandler.ListSessions)
		sessions.GET("/:id", sessionHandler.GetSessionByID)
		sessions.DELETE("/:id", sessionHandler.DeleteSession)
	}

	events := rg.Group(PathEvents)
	{
		// The mailbox scraper posts parsed scan batches here.
		events.POST("", eventHandler.IngestEvents)
		events.GET("", eventHandler.ListEvents)
	}

	// Derived views, recomputed on every request.
	rg.GET(PathPipeline, pipelineHandler.GetStageTotals)
	rg.GET(PathPayout+"/cooldown", pipelineHandler.GetPayoutCooldown)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

package handlers

import (
	"log"
	"net/http"

	response "hours_tracker/internal/adapter/http/dto/response"
	"hours_tracker/internal/usecase"
	"hours_tracker/pkg"

	"github.com/gin-gonic/gin"
)

// PipelineHandler serves the derived payout pipeline views. Both endpoints
// recompute from raw records on every request, so the UI may poll them on
// any cadence.

type PipelineHandler struct {
	usecase usecase.IPipelineUseCase
}

func NewPipelineHandler(uc usecase.IPipelineUseCase) *PipelineHandler {
	return &PipelineHandler{usecase: uc}
}

func (h *PipelineHandler) GetStageTotals(c *gin.Context) {
	totals, err := h.usecase.StageTotals(c.Request.Context())
	if err != nil {
		log.Printf("[pipeline][handler] stage totals failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPipelineTotals(totals))
}

func (h *PipelineHandler) GetPayoutCooldown(c *gin.Context) {
	status, err := h.usecase.PayoutCooldown(c.Request.Context())
	if err != nil {
		log.Printf("[pipeline][handler] cooldown failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCooldownStatus(status))
}

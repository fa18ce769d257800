package handlers

import (
	"errors"
	"log"
	"net/http"

	request "hours_tracker/internal/adapter/http/dto/request"
	response "hours_tracker/internal/adapter/http/dto/response"
	"hours_tracker/internal/usecase"
	"hours_tracker/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEventPayload = pkg.NewDomainErrorSimple("INVALID_EVENT_INPUT", "Invalid payout event payload", http.StatusBadRequest)
)

// PayoutEventHandler accepts email-derived payout events from the mailbox
// scraper and exposes the stored event log.

type PayoutEventHandler struct {
	usecase usecase.IPayoutEventUseCase
}

func NewPayoutEventHandler(uc usecase.IPayoutEventUseCase) *PayoutEventHandler {
	return &PayoutEventHandler{usecase: uc}
}

// IngestEvents stores a scan batch and reconciles new bank deposits against
// in-flight transfers. Safe to re-post: duplicates are dropped on their
// dedupe keys.
func (h *PayoutEventHandler) IngestEvents(c *gin.Context) {
	var payload request.PayoutEventBatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEventPayload.HTTPStatus, errInvalidEventPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.IngestBatch(c.Request.Context(), payload.ToEntities())
	if err != nil {
		log.Printf("[events][handler] ingest failed err=%v", err)
		appErr := mapPayoutEventError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *PayoutEventHandler) ListEvents(c *gin.Context) {
	events, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.Printf("[events][handler] list failed err=%v", err)
		appErr := mapPayoutEventError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayoutEvents(events))
}

func mapPayoutEventError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyEventBatch):
		return pkg.NewDomainErrorSimple("EMPTY_EVENT_BATCH", "Event batch is empty", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

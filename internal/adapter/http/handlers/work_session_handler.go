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
	errInvalidSessionPayload = pkg.NewDomainErrorSimple("INVALID_SESSION_INPUT", "Invalid work session payload", http.StatusBadRequest)
)

// WorkSessionHandler handles HTTP requests for recorded work sessions.

type WorkSessionHandler struct {
	usecase usecase.IWorkSessionUseCase
}

func NewWorkSessionHandler(uc usecase.IWorkSessionUseCase) *WorkSessionHandler {
	return &WorkSessionHandler{usecase: uc}
}

func (h *WorkSessionHandler) LogSession(c *gin.Context) {
	var payload request.WorkSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.LogSession(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[session][handler] log failed err=%v", err)
		appErr := mapWorkSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromWorkSession(created))
}

func (h *WorkSessionHandler) ListSessions(c *gin.Context) {
	sessions, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.Printf("[session][handler] list failed err=%v", err)
		appErr := mapWorkSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkSessions(sessions))
}

func (h *WorkSessionHandler) GetSessionByID(c *gin.Context) {
	s, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkSession(s))
}

func (h *WorkSessionHandler) DeleteSession(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		log.Printf("[session][handler] delete failed id=%s err=%v", c.Param("id"), err)
		appErr := mapWorkSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapWorkSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidWorkKind), errors.Is(err, usecase.ErrInvalidDuration):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Work session not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

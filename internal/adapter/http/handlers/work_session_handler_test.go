package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hours_tracker/internal/adapter/http/handlers/mocks"
	"hours_tracker/internal/domain/entities"
	"hours_tracker/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWorkSessionHandler_LogSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkSessionUseCase(ctrl)
		h := NewWorkSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/sessions", h.LogSession)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase validation error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkSessionUseCase(ctrl)
		h := NewWorkSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/sessions", h.LogSession)

		uc.EXPECT().LogSession(gomock.Any(), gomock.Any()).Return(entities.WorkSession{}, usecase.ErrInvalidWorkKind)

		body := `{"date":"2025-03-12","work_kind":"gig","earnings":10}`
		req := httptest.NewRequest(http.MethodPost, "/v1/sessions", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkSessionUseCase(ctrl)
		h := NewWorkSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/sessions", h.LogSession)

		uc.EXPECT().LogSession(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, s entities.WorkSession) (entities.WorkSession, error) {
				if s.WorkKind != entities.WorkKindTask || s.Earnings != 25.5 {
					t.Fatalf("unexpected entity from payload: %+v", s)
				}
				s.ID = "s-1"
				return s, nil
			},
		)

		body := `{"date":"2025-03-12","work_kind":"task","earnings":25.5}`
		req := httptest.NewRequest(http.MethodPost, "/v1/sessions", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got["id"] != "s-1" {
			t.Fatalf("expected id in response, got %v", got)
		}
	})
}

func TestWorkSessionHandler_GetSessionByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkSessionUseCase(ctrl)
		h := NewWorkSessionHandler(uc)

		r := gin.New()
		r.GET("/v1/sessions/:id", h.GetSessionByID)

		uc.EXPECT().GetByID(gomock.Any(), "s-404").Return(entities.WorkSession{}, usecase.ErrWorkSessionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/sessions/s-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkSessionUseCase(ctrl)
		h := NewWorkSessionHandler(uc)

		r := gin.New()
		r.GET("/v1/sessions/:id", h.GetSessionByID)

		uc.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.WorkSession{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/sessions/s-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestWorkSessionHandler_DeleteSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIWorkSessionUseCase(ctrl)
	h := NewWorkSessionHandler(uc)

	r := gin.New()
	r.DELETE("/v1/sessions/:id", h.DeleteSession)

	uc.EXPECT().Delete(gomock.Any(), "s-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/sessions/s-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

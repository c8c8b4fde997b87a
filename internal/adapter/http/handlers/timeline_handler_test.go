package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"propdraft/internal/adapter/http/handlers/mocks"
	"propdraft/internal/domain/entities"
	"propdraft/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestTimelineHandler_SaveTimeline(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("plain dates are parsed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimelineUseCase(ctrl)
		h := NewTimelineHandler(uc)

		start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		expected := []entities.Phase{{
			Phase:     "Discovery",
			StartDate: &start,
			EndDate:   &end,
			Tasks:     []string{"t1"},
		}}
		uc.EXPECT().
			SaveTimeline(gomock.Any(), "prop-1", "user-1", expected).
			Return(entities.Proposal{ID: "prop-1"}, nil)

		r := gin.New()
		r.PUT("/v1/timeline/:id", h.SaveTimeline)

		req := httptest.NewRequest(http.MethodPut, "/v1/timeline/prop-1",
			bytes.NewBufferString(`{"phases":[{"phase":"Discovery","start_date":"2024-03-01","end_date":"2024-03-15","tasks":["t1"]}]}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderUserID, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("unparseable date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimelineUseCase(ctrl)
		h := NewTimelineHandler(uc)

		r := gin.New()
		r.PUT("/v1/timeline/:id", h.SaveTimeline)

		req := httptest.NewRequest(http.MethodPut, "/v1/timeline/prop-1",
			bytes.NewBufferString(`{"phases":[{"phase":"Discovery","start_date":"March 1st"}]}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderUserID, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["code"] != "INVALID_DATE" {
			t.Fatalf("unexpected error code: %v", body["code"])
		}
	})

	t.Run("budget exceeded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimelineUseCase(ctrl)
		h := NewTimelineHandler(uc)

		uc.EXPECT().
			SaveTimeline(gomock.Any(), "prop-1", "user-1", gomock.Any()).
			Return(entities.Proposal{}, usecase.ErrBudgetExceeded)

		r := gin.New()
		r.PUT("/v1/timeline/:id", h.SaveTimeline)

		req := httptest.NewRequest(http.MethodPut, "/v1/timeline/prop-1",
			bytes.NewBufferString(`{"phases":[{"phase":"Build","milestones":[{"name":"m1","percentage":60},{"name":"m2","percentage":60}]}]}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderUserID, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["code"] != "BUDGET_EXCEEDED" {
			t.Fatalf("unexpected error code: %v", body["code"])
		}
	})
}

func TestTimelineHandler_SetMilestonePercentage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("index zero is a valid index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimelineUseCase(ctrl)
		h := NewTimelineHandler(uc)

		uc.EXPECT().
			SetMilestonePercentage(gomock.Any(), "prop-1", "user-1", 0, 0, 25.0).
			Return(entities.Proposal{ID: "prop-1"}, 25.0, false, nil)

		r := gin.New()
		r.PATCH("/v1/timeline/:id/milestone", h.SetMilestonePercentage)

		req := httptest.NewRequest(http.MethodPatch, "/v1/timeline/prop-1/milestone",
			bytes.NewBufferString(`{"phase_index":0,"milestone_index":0,"percentage":25}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderUserID, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			AppliedPercentage float64 `json:"applied_percentage"`
			Adjusted          bool    `json:"adjusted"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.AppliedPercentage != 25 || body.Adjusted {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("clamped value reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimelineUseCase(ctrl)
		h := NewTimelineHandler(uc)

		uc.EXPECT().
			SetMilestonePercentage(gomock.Any(), "prop-1", "user-1", 1, 0, 80.0).
			Return(entities.Proposal{ID: "prop-1"}, 55.0, true, nil)

		r := gin.New()
		r.PATCH("/v1/timeline/:id/milestone", h.SetMilestonePercentage)

		req := httptest.NewRequest(http.MethodPatch, "/v1/timeline/prop-1/milestone",
			bytes.NewBufferString(`{"phase_index":1,"milestone_index":0,"percentage":80}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderUserID, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			AppliedPercentage float64 `json:"applied_percentage"`
			Adjusted          bool    `json:"adjusted"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.AppliedPercentage != 55 || !body.Adjusted {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("phase out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimelineUseCase(ctrl)
		h := NewTimelineHandler(uc)

		uc.EXPECT().
			SetMilestonePercentage(gomock.Any(), "prop-1", "user-1", 9, 0, 10.0).
			Return(entities.Proposal{}, 0.0, false, usecase.ErrPhaseNotFound)

		r := gin.New()
		r.PATCH("/v1/timeline/:id/milestone", h.SetMilestonePercentage)

		req := httptest.NewRequest(http.MethodPatch, "/v1/timeline/prop-1/milestone",
			bytes.NewBufferString(`{"phase_index":9,"milestone_index":0,"percentage":10}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderUserID, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

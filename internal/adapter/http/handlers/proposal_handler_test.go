package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
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

func TestProposalHandler_CreateProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing user header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals", h.CreateProposal)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals", bytes.NewBufferString(`{"title":"Site"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals", h.CreateProposal)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderUserID, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		created := entities.Proposal{
			ID:        "prop-1",
			UserID:    "user-1",
			Title:     "Site redesign",
			Status:    entities.StatusDraft,
			CreatedAt: time.Now().UTC(),
		}
		uc.EXPECT().
			Create(gomock.Any(), "user-1", "Site redesign", "full redesign").
			Return(created, nil)

		r := gin.New()
		r.POST("/v1/proposals", h.CreateProposal)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals",
			bytes.NewBufferString(`{"title":"Site redesign","description":"full redesign"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderUserID, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["id"] != "prop-1" || body["status"] != "draft" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestProposalHandler_GetProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		uc.EXPECT().
			Get(gomock.Any(), "ghost", "user-1").
			Return(entities.Proposal{}, usecase.ErrProposalNotFound)

		r := gin.New()
		r.GET("/v1/proposals/:id", h.GetProposal)

		req := httptest.NewRequest(http.MethodGet, "/v1/proposals/ghost", nil)
		req.Header.Set(HeaderUserID, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["code"] != "PROPOSAL_NOT_FOUND" {
			t.Fatalf("unexpected error code: %v", body["code"])
		}
	})
}

func TestProposalHandler_UpdateSection(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown section", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		uc.EXPECT().
			ApplySection(gomock.Any(), "prop-1", "user-1", "pricing", gomock.Any()).
			Return(entities.Proposal{}, usecase.ErrInvalidSection)

		r := gin.New()
		r.PATCH("/v1/proposals/:id/section/:section", h.UpdateSection)

		req := httptest.NewRequest(http.MethodPatch, "/v1/proposals/prop-1/section/pricing",
			bytes.NewBufferString(`{"value":{}}`))
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
		if body["code"] != "INVALID_SECTION" {
			t.Fatalf("unexpected error code: %v", body["code"])
		}
	})

	t.Run("success passes raw value through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		updated := entities.Proposal{ID: "prop-1", UserID: "user-1", Status: entities.StatusReviewing}
		uc.EXPECT().
			ApplySection(gomock.Any(), "prop-1", "user-1", "scopeOfWork", json.RawMessage(`"new scope"`)).
			Return(updated, nil)

		r := gin.New()
		r.PATCH("/v1/proposals/:id/section/:section", h.UpdateSection)

		req := httptest.NewRequest(http.MethodPatch, "/v1/proposals/prop-1/section/scopeOfWork",
			bytes.NewBufferString(`{"value":"new scope"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderUserID, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestProposalHandler_UploadFiles(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newUpload := func(t *testing.T, names ...string) (*bytes.Buffer, string) {
		t.Helper()
		buf := &bytes.Buffer{}
		mw := multipart.NewWriter(buf)
		for _, name := range names {
			fw, err := mw.CreateFormFile("files", name)
			if err != nil {
				t.Fatalf("create form file: %v", err)
			}
			if _, err := fw.Write([]byte("sample content")); err != nil {
				t.Fatalf("write form file: %v", err)
			}
		}
		if err := mw.Close(); err != nil {
			t.Fatalf("close multipart writer: %v", err)
		}
		return buf, mw.FormDataContentType()
	}

	t.Run("no files in form", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		buf, contentType := newUpload(t)

		r := gin.New()
		r.POST("/v1/proposals/:id/files", h.UploadFiles)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals/prop-1/files", buf)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set(HeaderUserID, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("too many files", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		uc.EXPECT().
			AttachFiles(gomock.Any(), "prop-1", "user-1", gomock.Any()).
			Return(entities.Proposal{}, usecase.ErrTooManyFiles)

		buf, contentType := newUpload(t, "a.txt", "b.txt", "c.txt", "d.txt", "e.txt", "f.txt")

		r := gin.New()
		r.POST("/v1/proposals/:id/files", h.UploadFiles)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals/prop-1/files", buf)
		req.Header.Set("Content-Type", contentType)
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
		if body["code"] != "TOO_MANY_FILES" {
			t.Fatalf("unexpected error code: %v", body["code"])
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		uc.EXPECT().
			AttachFiles(gomock.Any(), "prop-1", "user-1", gomock.Len(2)).
			Return(entities.Proposal{ID: "prop-1", UserID: "user-1"}, nil)

		buf, contentType := newUpload(t, "brief.txt", "notes.txt")

		r := gin.New()
		r.POST("/v1/proposals/:id/files", h.UploadFiles)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals/prop-1/files", buf)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set(HeaderUserID, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestProposalHandler_DeleteProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "prop-1", "user-1").Return(nil)

		r := gin.New()
		r.DELETE("/v1/proposals/:id", h.DeleteProposal)

		req := httptest.NewRequest(http.MethodDelete, "/v1/proposals/prop-1", nil)
		req.Header.Set(HeaderUserID, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("stray files still succeed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "prop-1", "user-1").Return(usecase.ErrStorageCleanup)

		r := gin.New()
		r.DELETE("/v1/proposals/:id", h.DeleteProposal)

		req := httptest.NewRequest(http.MethodDelete, "/v1/proposals/prop-1", nil)
		req.Header.Set(HeaderUserID, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

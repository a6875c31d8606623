package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"poros-portal/cmd/api/dto"
	"poros-portal/cmd/api/services"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "invalid input",
			err:        fmt.Errorf("category name is required: %w", services.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantBody:   "category name is required: invalid input",
		},
		{
			name:       "not found",
			err:        fmt.Errorf("article %w", services.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   "article not found",
		},
		{
			name:       "conflict",
			err:        fmt.Errorf("category with this name %w", services.ErrConflict),
			wantStatus: http.StatusConflict,
			wantBody:   "category with this name already exists",
		},
		{
			name:       "invalid credentials",
			err:        services.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantBody:   "invalid credentials",
		},
		{
			name:       "dependency failure stays generic",
			err:        errors.New("mongo: connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "internal server error",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			ginCtx, _ := gin.CreateTestContext(recorder)

			respondError(ginCtx, testCase.err)

			if recorder.Code != testCase.wantStatus {
				t.Fatalf("expected status %d, got %d", testCase.wantStatus, recorder.Code)
			}
			var body dto.ErrorResponseDTO
			if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Error != testCase.wantBody {
				t.Fatalf("expected body %q, got %q", testCase.wantBody, body.Error)
			}
		})
	}
}

func TestQueryInt(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ginCtx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ginCtx.Request = httptest.NewRequest(http.MethodGet, "/api/articles?page=3&limit=abc", nil)

	if got := queryInt(ginCtx, "page", 1); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := queryInt(ginCtx, "limit", 20); got != 20 {
		t.Fatalf("expected fallback 20 for non-numeric, got %d", got)
	}
	if got := queryInt(ginCtx, "absent", 12); got != 12 {
		t.Fatalf("expected default 12, got %d", got)
	}
}

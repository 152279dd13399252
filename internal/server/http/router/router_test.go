package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campusworks/journals/internal/domain/model"
	"github.com/campusworks/journals/internal/server/http/handlers"
	testhelpers "github.com/campusworks/journals/internal/test"
)

func newEngine(t *testing.T, facade handlers.JournalsFacade) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	engine, err := Setup(facade, logger)
	if err != nil {
		t.Fatalf("setup returned error: %v", err)
	}
	return engine
}

func TestSetupRoutes(t *testing.T) {
	facade := testhelpers.JournalsFacadeStub{
		BundleFacadeStub: testhelpers.BundleFacadeStub{
			AboutPageFn: func(ctx context.Context, site string, bundleUUID uuid.UUID) (*model.BundleAboutPage, error) {
				return &model.BundleAboutPage{
					Bundle:        model.Bundle{UUID: bundleUUID, Title: "Bundle About"},
					UsesBootstrap: true,
				}, nil
			},
		},
	}
	engine := newEngine(t, facade)

	body, _ := json.Marshal(map[string]string{"username": "user", "password": "pass"})
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for register, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/journals/bundles/"+uuid.NewString()+"/about", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for about page, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Bundle About") {
		t.Fatalf("expected rendered bundle page, got %q", resp.Body.String())
	}
}

func TestSetupGatedRenderRequiresAuth(t *testing.T) {
	engine := newEngine(t, testhelpers.JournalsFacadeStub{})

	target := "/journals/render/block-v1:ORG+C101+2026+type@html+block@intro?journal_uuid=" + uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 with token, got %d", resp.Code)
	}
	if resp.Body.String() != "<div>page</div>" {
		t.Fatalf("unexpected body %q", resp.Body.String())
	}
}

var _ handlers.JournalsFacade = (*testhelpers.JournalsFacadeStub)(nil)

package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/campusworks/journals/internal/config"
	domainErrors "github.com/campusworks/journals/internal/domain/errors"
	"github.com/campusworks/journals/internal/domain/model"
	testhelpers "github.com/campusworks/journals/internal/test"
	"github.com/campusworks/journals/internal/usecase"
)

type facadeFixtures struct {
	users    *testhelpers.UserRepositoryStub
	catalog  *testhelpers.DiscoveryStub
	journals *testhelpers.JournalAPIStub
	shop     *testhelpers.EcommerceStub
	renderer *testhelpers.RendererStub
}

func newFacade(t *testing.T) (*JournalsFacade, *facadeFixtures) {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	userRepo := testhelpers.NewUserRepositoryStub()
	if _, err := userRepo.Create(context.Background(), "ecommerce_worker", "hash"); err != nil {
		t.Fatalf("failed to seed worker: %v", err)
	}
	strategy := testhelpers.StrategyStub{ParseFn: func(string) (int64, error) { return 99, nil }}
	authUC := usecase.NewAuthUseCase(userRepo, testhelpers.HasherStub{}, strategy)

	shop := &testhelpers.EcommerceStub{
		Calculation: &model.BasketCalculation{TotalInclTax: "50.00", TotalInclTaxExclDiscounts: "50.00", Currency: "USD"},
	}
	pricingUC := usecase.NewPricingUseCase(userRepo, shop, "ecommerce_worker", logger)

	catalog := &testhelpers.DiscoveryStub{Root: "http://discovery.example.com"}
	cfg := &config.Config{JournalsURL: "http://journals.example.com"}
	bundleUC := usecase.NewBundleUseCase(catalog, pricingUC, cfg, logger)

	journals := &testhelpers.JournalAPIStub{}
	accessUC := usecase.NewAccessUseCase(journals, testhelpers.NewMemoryStore(), time.Hour, logger)

	renderer := &testhelpers.RendererStub{Body: []byte("<div>page</div>")}

	facade := NewJournalsFacade(authUC, bundleUC, accessUC, renderer)
	return facade, &facadeFixtures{users: userRepo, catalog: catalog, journals: journals, shop: shop, renderer: renderer}
}

func TestJournalsFacadeAuth(t *testing.T) {
	facade, fixtures := newFacade(t)
	token, err := facade.Register(context.Background(), "user", "pass")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}

	stored, err := fixtures.users.GetByUsername(context.Background(), "user")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if stored.Username != "user" {
		t.Fatalf("unexpected stored username %q", stored.Username)
	}

	token, err = facade.Authenticate(context.Background(), "user", "pass")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}

	id, err := facade.ParseToken("anything")
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if id != 99 {
		t.Fatalf("expected id 99, got %d", id)
	}

	fetched, err := facade.UserByID(context.Background(), stored.ID)
	if err != nil {
		t.Fatalf("user by id returned error: %v", err)
	}
	if fetched.Username != "user" {
		t.Fatalf("unexpected username %q", fetched.Username)
	}
}

func TestJournalsFacadeBundleAboutPage(t *testing.T) {
	facade, fixtures := newFacade(t)
	bundleUUID := uuid.New()
	fixtures.catalog.Bundles = []model.Bundle{{UUID: bundleUUID, Title: "Bundle"}}

	page, err := facade.BundleAboutPage(context.Background(), "learn.example.com", bundleUUID)
	if err != nil {
		t.Fatalf("about page returned error: %v", err)
	}
	if page.Bundle.UUID != bundleUUID {
		t.Fatalf("unexpected bundle %s", page.Bundle.UUID)
	}

	fixtures.catalog.Bundles = nil
	if _, err := facade.BundleAboutPage(context.Background(), "learn.example.com", bundleUUID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestJournalsFacadeAccessAndRender(t *testing.T) {
	facade, fixtures := newFacade(t)
	journalUUID := uuid.New()
	fixtures.journals.Records = []model.JournalAccess{
		{Journal: model.Journal{UUID: journalUUID}, ExpirationDate: "2100-01-01"},
	}

	user := &model.User{Username: "reader"}
	usageKey := "block-v1:ORG+C101+2026+type@html+block@intro"
	if err := facade.CheckJournalAccess(context.Background(), "learn.example.com", user, journalUUID, usageKey); err != nil {
		t.Fatalf("expected access granted, got %v", err)
	}
	if err := facade.CheckJournalAccess(context.Background(), "learn.example.com", user, uuid.New(), usageKey); !errors.Is(err, domainErrors.ErrNoJournalAccess) {
		t.Fatalf("expected ErrNoJournalAccess, got %v", err)
	}

	body, err := facade.RenderBlock(context.Background(), "reader", usageKey, false)
	if err != nil {
		t.Fatalf("render returned error: %v", err)
	}
	if string(body) != "<div>page</div>" {
		t.Fatalf("unexpected body %q", body)
	}
}

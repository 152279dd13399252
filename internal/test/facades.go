package test

import (
	"context"

	"github.com/google/uuid"

	"github.com/campusworks/journals/internal/domain/model"
)

// BundleFacadeStub provides controllable behaviour for bundle endpoints.
type BundleFacadeStub struct {
	AboutPageFn func(context.Context, string, uuid.UUID) (*model.BundleAboutPage, error)
}

// BundleAboutPage delegates to provided function or returns minimal data.
func (s BundleFacadeStub) BundleAboutPage(ctx context.Context, site string, bundleUUID uuid.UUID) (*model.BundleAboutPage, error) {
	if s.AboutPageFn != nil {
		return s.AboutPageFn(ctx, site, bundleUUID)
	}
	return &model.BundleAboutPage{
		Bundle:        model.Bundle{UUID: bundleUUID, Title: "Bundle"},
		UsesBootstrap: true,
	}, nil
}

// ContentFacadeStub provides controllable behaviour for gated page endpoints.
type ContentFacadeStub struct {
	UserByIDFn    func(context.Context, int64) (*model.User, error)
	CheckAccessFn func(context.Context, string, *model.User, uuid.UUID, string) error
	RenderFn      func(context.Context, string, string, bool) ([]byte, error)
}

// UserByID returns the configured user or a default reader.
func (s ContentFacadeStub) UserByID(ctx context.Context, id int64) (*model.User, error) {
	if s.UserByIDFn != nil {
		return s.UserByIDFn(ctx, id)
	}
	return &model.User{ID: id, Username: "reader"}, nil
}

// CheckJournalAccess grants access unless an override denies it.
func (s ContentFacadeStub) CheckJournalAccess(ctx context.Context, site string, user *model.User, journalUUID uuid.UUID, usageKey string) error {
	if s.CheckAccessFn != nil {
		return s.CheckAccessFn(ctx, site, user, journalUUID, usageKey)
	}
	return nil
}

// RenderBlock returns configured page bytes.
func (s ContentFacadeStub) RenderBlock(ctx context.Context, username, usageKey string, checkIfEnrolled bool) ([]byte, error) {
	if s.RenderFn != nil {
		return s.RenderFn(ctx, username, usageKey, checkIfEnrolled)
	}
	return []byte("<div>page</div>"), nil
}

// JournalsFacadeStub aggregates facade dependencies for HTTP layer tests.
type JournalsFacadeStub struct {
	AuthFacadeStub
	BundleFacadeStub
	ContentFacadeStub
}

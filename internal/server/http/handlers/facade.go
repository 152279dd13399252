package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/campusworks/journals/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, username, password string) (string, error)
	Authenticate(ctx context.Context, username, password string) (string, error)
	ParseToken(token string) (int64, error)
}

// BundleFacade builds journal bundle marketing pages.
type BundleFacade interface {
	BundleAboutPage(ctx context.Context, site string, bundleUUID uuid.UUID) (*model.BundleAboutPage, error)
}

// ContentFacade gates and renders journal page content.
type ContentFacade interface {
	UserByID(ctx context.Context, id int64) (*model.User, error)
	CheckJournalAccess(ctx context.Context, site string, user *model.User, journalUUID uuid.UUID, usageKey string) error
	RenderBlock(ctx context.Context, username, usageKey string, checkIfEnrolled bool) ([]byte, error)
}

// JournalsFacade aggregates the full set of operations used across handlers.
type JournalsFacade interface {
	AuthFacade
	BundleFacade
	ContentFacade
}

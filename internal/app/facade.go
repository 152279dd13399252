package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/campusworks/journals/internal/adapter/courseware"
	"github.com/campusworks/journals/internal/domain/model"
	"github.com/campusworks/journals/internal/usecase"
)

type JournalsFacade struct {
	auth     *usecase.AuthUseCase
	bundles  *usecase.BundleUseCase
	access   *usecase.AccessUseCase
	renderer courseware.Renderer
}

func NewJournalsFacade(auth *usecase.AuthUseCase, bundles *usecase.BundleUseCase, access *usecase.AccessUseCase, renderer courseware.Renderer) *JournalsFacade {
	return &JournalsFacade{auth: auth, bundles: bundles, access: access, renderer: renderer}
}

func (f *JournalsFacade) Register(ctx context.Context, username, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, username, password)
	return token, err
}

func (f *JournalsFacade) Authenticate(ctx context.Context, username, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, username, password)
	return token, err
}

func (f *JournalsFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *JournalsFacade) UserByID(ctx context.Context, id int64) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *JournalsFacade) BundleAboutPage(ctx context.Context, site string, bundleUUID uuid.UUID) (*model.BundleAboutPage, error) {
	return f.bundles.AboutPage(ctx, site, bundleUUID)
}

func (f *JournalsFacade) CheckJournalAccess(ctx context.Context, site string, user *model.User, journalUUID uuid.UUID, usageKey string) error {
	return f.access.Check(ctx, site, user, journalUUID, usageKey)
}

func (f *JournalsFacade) RenderBlock(ctx context.Context, username, usageKey string, checkIfEnrolled bool) ([]byte, error) {
	return f.renderer.RenderBlock(ctx, username, usageKey, checkIfEnrolled)
}

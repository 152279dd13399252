package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/campusworks/journals/internal/adapter/discovery"
	"github.com/campusworks/journals/internal/config"
	domainErrors "github.com/campusworks/journals/internal/domain/errors"
	"github.com/campusworks/journals/internal/domain/model"
)

// BundleUseCase assembles journal bundle marketing pages.
type BundleUseCase struct {
	catalog discovery.Client
	pricing *PricingUseCase
	cfg     *config.Config
	logger  *slog.Logger
}

// NewBundleUseCase constructs BundleUseCase.
func NewBundleUseCase(catalog discovery.Client, pricing *PricingUseCase, cfg *config.Config, logger *slog.Logger) *BundleUseCase {
	return &BundleUseCase{catalog: catalog, pricing: pricing, cfg: cfg, logger: logger}
}

// AboutPage fetches the bundle for the site, enriches it with live pricing
// and returns the data the about template renders. ErrNotFound means no
// bundle matched and no pricing call was made.
func (u *BundleUseCase) AboutPage(ctx context.Context, site string, bundleUUID uuid.UUID) (*model.BundleAboutPage, error) {
	bundles, err := u.catalog.JournalBundles(ctx, site, bundleUUID)
	if err != nil {
		return nil, err
	}
	if len(bundles) == 0 {
		return nil, domainErrors.ErrNotFound
	}
	if len(bundles) > 1 {
		u.logger.Warn("multiple bundles matched, using first",
			slog.String("bundle_uuid", bundleUUID.String()),
			slog.Int("matches", len(bundles)))
	}

	bundle := bundles[0]
	if err := u.pricing.Enrich(ctx, &bundle); err != nil {
		return nil, err
	}

	return &model.BundleAboutPage{
		JournalsRootURL:  u.cfg.JournalsURL,
		DiscoveryRootURL: u.catalog.RootURL(),
		Bundle:           bundle,
		UsesBootstrap:    true,
	}, nil
}

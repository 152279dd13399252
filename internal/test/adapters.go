package test

import (
	"context"

	"github.com/google/uuid"

	"github.com/campusworks/journals/internal/domain/model"
)

// DiscoveryStub returns canned journal bundles.
type DiscoveryStub struct {
	JournalBundlesFn func(context.Context, string, uuid.UUID) ([]model.Bundle, error)
	Bundles          []model.Bundle
	Err              error
	Root             string
	Calls            int
}

// JournalBundles tracks invocations and returns configured responses.
func (s *DiscoveryStub) JournalBundles(ctx context.Context, site string, bundleUUID uuid.UUID) ([]model.Bundle, error) {
	s.Calls++
	if s.JournalBundlesFn != nil {
		return s.JournalBundlesFn(ctx, site, bundleUUID)
	}
	return s.Bundles, s.Err
}

// RootURL returns the configured discovery root.
func (s *DiscoveryStub) RootURL() string {
	return s.Root
}

// JournalAPIStub returns canned access records.
type JournalAPIStub struct {
	AccessFn func(context.Context, string, string, string) ([]model.JournalAccess, error)
	Records  []model.JournalAccess
	Err      error
	Calls    int
	Root     string
}

// Access tracks invocations and returns configured responses.
func (s *JournalAPIStub) Access(ctx context.Context, site, username, blockID string) ([]model.JournalAccess, error) {
	s.Calls++
	if s.AccessFn != nil {
		return s.AccessFn(ctx, site, username, blockID)
	}
	return s.Records, s.Err
}

// RootURL returns the configured journals service root.
func (s *JournalAPIStub) RootURL() string {
	return s.Root
}

// EcommerceStub returns canned basket calculations and records the SKUs it
// was asked about.
type EcommerceStub struct {
	CalculateBasketFn func(context.Context, *model.User, []string, bool) (*model.BasketCalculation, error)
	Calculation       *model.BasketCalculation
	Err               error
	SeenSKUs          [][]string
	CheckoutBase      string
}

// CalculateBasket tracks the requested SKUs and returns configured responses.
func (s *EcommerceStub) CalculateBasket(ctx context.Context, requester *model.User, skus []string, anonymous bool) (*model.BasketCalculation, error) {
	s.SeenSKUs = append(s.SeenSKUs, skus)
	if s.CalculateBasketFn != nil {
		return s.CalculateBasketFn(ctx, requester, skus, anonymous)
	}
	return s.Calculation, s.Err
}

// CheckoutURL joins the configured base with the SKUs for assertions.
func (s *EcommerceStub) CheckoutURL(skus ...string) string {
	url := s.CheckoutBase
	for i, sku := range skus {
		if i == 0 {
			url += "?sku=" + sku
			continue
		}
		url += "&sku=" + sku
	}
	return url
}

// RendererStub returns canned block HTML.
type RendererStub struct {
	RenderBlockFn func(context.Context, string, string, bool) ([]byte, error)
	Body          []byte
	Err           error
}

// RenderBlock returns configured responses.
func (s *RendererStub) RenderBlock(ctx context.Context, username, usageKey string, checkIfEnrolled bool) ([]byte, error) {
	if s.RenderBlockFn != nil {
		return s.RenderBlockFn(ctx, username, usageKey, checkIfEnrolled)
	}
	return s.Body, s.Err
}

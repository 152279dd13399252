package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/campusworks/journals/internal/adapter/ecommerce"
	"github.com/campusworks/journals/internal/domain/model"
	"github.com/campusworks/journals/internal/domain/repository"
)

// PricingUseCase attaches live basket pricing to journal bundles.
type PricingUseCase struct {
	users          repository.UserRepository
	shop           ecommerce.Client
	workerUsername string
	logger         *slog.Logger
}

// NewPricingUseCase constructs PricingUseCase.
func NewPricingUseCase(users repository.UserRepository, shop ecommerce.Client, workerUsername string, logger *slog.Logger) *PricingUseCase {
	return &PricingUseCase{users: users, shop: shop, workerUsername: workerUsername, logger: logger}
}

// Enrich calculates basket pricing for the bundle's SKUs and stores the
// result on the bundle. The basket is priced on behalf of the service worker
// account so anonymous visitors see the same totals as logged-in ones.
func (u *PricingUseCase) Enrich(ctx context.Context, bundle *model.Bundle) error {
	worker, err := u.users.GetByUsername(ctx, u.workerUsername)
	if err != nil {
		return fmt.Errorf("resolve worker account %q: %w", u.workerUsername, err)
	}

	skus := collectSKUs(bundle)
	calc, err := u.shop.CalculateBasket(ctx, worker, skus, true)
	if err != nil {
		return err
	}

	inclTax, err := strconv.ParseFloat(calc.TotalInclTax, 64)
	if err != nil {
		return fmt.Errorf("parse total_incl_tax %q: %w", calc.TotalInclTax, err)
	}
	exclDiscounts, err := strconv.ParseFloat(calc.TotalInclTaxExclDiscounts, 64)
	if err != nil {
		return fmt.Errorf("parse total_incl_tax_excl_discounts %q: %w", calc.TotalInclTaxExclDiscounts, err)
	}

	bundle.PricingData = &model.PricingData{
		TotalInclTax:              calc.TotalInclTax,
		TotalInclTaxExclDiscounts: calc.TotalInclTaxExclDiscounts,
		Currency:                  calc.Currency,
		IsDiscounted:              pricesDiffer(calc.TotalInclTax, calc.TotalInclTaxExclDiscounts),
		DiscountValue:             exclDiscounts - inclTax,
		PurchaseURL:               u.shop.CheckoutURL(skus...),
	}
	return nil
}

// collectSKUs gathers one seat SKU per course run followed by every journal
// SKU, preserving bundle order. For each course the first run seat whose type
// is listed in the bundle's applicable seat types wins.
func collectSKUs(bundle *model.Bundle) []string {
	skus := make([]string, 0, len(bundle.Courses)+len(bundle.Journals))
	for _, course := range bundle.Courses {
		if seat, ok := matchingSeat(course, bundle.ApplicableSeatTypes); ok {
			skus = append(skus, seat.SKU)
		}
	}
	for _, journal := range bundle.Journals {
		skus = append(skus, journal.SKU)
	}
	return skus
}

func matchingSeat(course model.Course, seatTypes []string) (model.Seat, bool) {
	for _, run := range course.CourseRuns {
		for _, seat := range run.Seats {
			for _, seatType := range seatTypes {
				if seat.Type == seatType {
					return seat, true
				}
			}
		}
	}
	return model.Seat{}, false
}

// pricesDiffer compares the raw price strings as the basket API formats
// them, so "10.00" and "10.0" count as different.
func pricesDiffer(inclTax, exclDiscounts string) bool {
	return inclTax != exclDiscounts
}

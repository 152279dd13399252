package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"

	domainErrors "github.com/campusworks/journals/internal/domain/errors"
	"github.com/campusworks/journals/internal/domain/model"
	"github.com/campusworks/journals/internal/test"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func workerRepo(t *testing.T) *test.UserRepositoryStub {
	t.Helper()
	users := test.NewUserRepositoryStub()
	if _, err := users.Create(context.Background(), "ecommerce_worker", "hash"); err != nil {
		t.Fatalf("failed to seed worker: %v", err)
	}
	return users
}

func sampleBundle() *model.Bundle {
	return &model.Bundle{
		Title:               "Data Science Bundle",
		ApplicableSeatTypes: []string{"verified", "professional"},
		Courses: []model.Course{
			{
				Title: "Course A",
				CourseRuns: []model.CourseRun{
					{Key: "run-1", Seats: []model.Seat{
						{Type: "audit", SKU: "AUDIT1"},
						{Type: "verified", SKU: "VER1"},
					}},
					{Key: "run-2", Seats: []model.Seat{
						{Type: "verified", SKU: "VER2"},
					}},
				},
			},
			{
				Title: "Course B",
				CourseRuns: []model.CourseRun{
					{Key: "run-3", Seats: []model.Seat{
						{Type: "audit", SKU: "AUDIT2"},
					}},
				},
			},
		},
		Journals: []model.Journal{
			{Title: "Journal A", SKU: "JRN1"},
			{Title: "Journal B", SKU: "JRN2"},
		},
	}
}

func TestEnrichCollectsSKUsInOrder(t *testing.T) {
	shop := &test.EcommerceStub{
		Calculation:  &model.BasketCalculation{TotalInclTax: "80.00", TotalInclTaxExclDiscounts: "100.00", Currency: "USD"},
		CheckoutBase: "http://shop.example.com/basket/add/",
	}
	uc := NewPricingUseCase(workerRepo(t), shop, "ecommerce_worker", testLogger())

	bundle := sampleBundle()
	if err := uc.Enrich(context.Background(), bundle); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"VER1", "JRN1", "JRN2"}
	if len(shop.SeenSKUs) != 1 || !reflect.DeepEqual(shop.SeenSKUs[0], want) {
		t.Fatalf("unexpected skus %v, want %v", shop.SeenSKUs, want)
	}
}

func TestEnrichComputesDiscount(t *testing.T) {
	shop := &test.EcommerceStub{
		Calculation:  &model.BasketCalculation{TotalInclTax: "80.00", TotalInclTaxExclDiscounts: "100.00", Currency: "USD"},
		CheckoutBase: "http://shop.example.com/basket/add/",
	}
	uc := NewPricingUseCase(workerRepo(t), shop, "ecommerce_worker", testLogger())

	bundle := sampleBundle()
	if err := uc.Enrich(context.Background(), bundle); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pd := bundle.PricingData
	if pd == nil {
		t.Fatal("pricing data not attached")
	}
	if !pd.IsDiscounted {
		t.Fatal("expected discounted bundle")
	}
	if pd.DiscountValue != 20.0 {
		t.Fatalf("unexpected discount value %v", pd.DiscountValue)
	}
	if pd.Currency != "USD" {
		t.Fatalf("unexpected currency %q", pd.Currency)
	}
	if pd.PurchaseURL != "http://shop.example.com/basket/add/?sku=VER1&sku=JRN1&sku=JRN2" {
		t.Fatalf("unexpected purchase url %q", pd.PurchaseURL)
	}
}

func TestEnrichDiscountFlagComparesRawStrings(t *testing.T) {
	cases := []struct {
		name         string
		inclTax      string
		exclDiscount string
		want         bool
		wantValue    float64
	}{
		{name: "identical", inclTax: "10.00", exclDiscount: "10.00", want: false},
		{name: "different values", inclTax: "8.00", exclDiscount: "10.00", want: true, wantValue: 2},
		{name: "same value different formatting", inclTax: "10.00", exclDiscount: "10.0", want: true, wantValue: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			shop := &test.EcommerceStub{
				Calculation: &model.BasketCalculation{TotalInclTax: tc.inclTax, TotalInclTaxExclDiscounts: tc.exclDiscount, Currency: "USD"},
			}
			uc := NewPricingUseCase(workerRepo(t), shop, "ecommerce_worker", testLogger())

			bundle := sampleBundle()
			if err := uc.Enrich(context.Background(), bundle); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if bundle.PricingData.IsDiscounted != tc.want {
				t.Fatalf("IsDiscounted = %v, want %v", bundle.PricingData.IsDiscounted, tc.want)
			}
			if bundle.PricingData.DiscountValue != tc.wantValue {
				t.Fatalf("DiscountValue = %v, want %v", bundle.PricingData.DiscountValue, tc.wantValue)
			}
		})
	}
}

func TestEnrichEmptyBundleStillCallsBasket(t *testing.T) {
	shop := &test.EcommerceStub{
		Calculation: &model.BasketCalculation{TotalInclTax: "0.00", TotalInclTaxExclDiscounts: "0.00", Currency: "USD"},
	}
	uc := NewPricingUseCase(workerRepo(t), shop, "ecommerce_worker", testLogger())

	bundle := &model.Bundle{Title: "Empty"}
	if err := uc.Enrich(context.Background(), bundle); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(shop.SeenSKUs) != 1 || len(shop.SeenSKUs[0]) != 0 {
		t.Fatalf("expected one basket call with no skus, got %v", shop.SeenSKUs)
	}
	if bundle.PricingData.IsDiscounted {
		t.Fatal("empty basket should not be discounted")
	}
}

func TestEnrichMissingWorkerAccount(t *testing.T) {
	shop := &test.EcommerceStub{}
	uc := NewPricingUseCase(test.NewUserRepositoryStub(), shop, "ecommerce_worker", testLogger())

	if err := uc.Enrich(context.Background(), sampleBundle()); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(shop.SeenSKUs) != 0 {
		t.Fatal("basket must not be calculated without worker account")
	}
}

func TestEnrichUnparsablePrice(t *testing.T) {
	shop := &test.EcommerceStub{
		Calculation: &model.BasketCalculation{TotalInclTax: "free", TotalInclTaxExclDiscounts: "100.00", Currency: "USD"},
	}
	uc := NewPricingUseCase(workerRepo(t), shop, "ecommerce_worker", testLogger())

	if err := uc.Enrich(context.Background(), sampleBundle()); err == nil {
		t.Fatal("expected parse error")
	}
}

package services

import (
	"context"
	"log/slog"
	"testing"

	"babyshop/models"
)

func TestQuote(t *testing.T) {
	svc := NewPricingServiceWith(models.DefaultSettings())
	ctx := context.Background()

	t.Run("below free-shipping threshold", func(t *testing.T) {
		tax, shipping, total := svc.Quote(ctx, 4999)
		if tax != 499.9 {
			t.Fatalf("expected tax 499.9, got %v", tax)
		}
		if shipping != 150 {
			t.Fatalf("expected shipping 150, got %v", shipping)
		}
		if total != 4999+499.9+150 {
			t.Fatalf("unexpected total %v", total)
		}
	})

	t.Run("at threshold shipping is free", func(t *testing.T) {
		_, shipping, _ := svc.Quote(ctx, 5000)
		if shipping != 0 {
			t.Fatalf("expected free shipping, got %v", shipping)
		}
	})
}

func TestCalculateHelpers(t *testing.T) {
	svc := NewPricingServiceWith(models.SiteSettings{
		TaxRate:               0.15,
		FreeShippingThreshold: 2000,
		FlatShippingRate:      99,
	})
	ctx := context.Background()

	if got := svc.CalculateTax(ctx, 1000); got != 150 {
		t.Fatalf("expected 150, got %v", got)
	}
	if got := svc.CalculateShipping(ctx, 1999); got != 99 {
		t.Fatalf("expected 99, got %v", got)
	}
	if got := svc.CalculateShipping(ctx, 2000); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestSettingsFallbackWithoutDatabase(t *testing.T) {
	// No collection wired: Settings must serve the defaults.
	svc := NewPricingService(nil, slog.Default())

	got := svc.Settings(context.Background())
	want := models.DefaultSettings()
	if got.TaxRate != want.TaxRate || got.FlatShippingRate != want.FlatShippingRate {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

package models

import "testing"

func TestShippingBoundary(t *testing.T) {
	s := DefaultSettings()

	t.Run("below threshold -> flat rate", func(t *testing.T) {
		if got := s.Shipping(4999); got != 150 {
			t.Fatalf("expected 150, got %v", got)
		}
	})

	t.Run("exactly at threshold -> free", func(t *testing.T) {
		if got := s.Shipping(5000); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})

	t.Run("above threshold -> free", func(t *testing.T) {
		if got := s.Shipping(9000); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})
}

func TestTax(t *testing.T) {
	s := DefaultSettings()
	if got := s.Tax(2000); got != 200 {
		t.Fatalf("expected 200, got %v", got)
	}

	s.TaxRate = 0.05
	if got := s.Tax(2000); got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.TaxRate != 0.10 || s.FreeShippingThreshold != 5000 || s.FlatShippingRate != 150 {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	if s.Currency != "PKR" {
		t.Fatalf("expected PKR currency, got %s", s.Currency)
	}
}

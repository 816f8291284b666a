package models

import "testing"

func TestStockStatus(t *testing.T) {
	t.Run("zero stock -> out_of_stock", func(t *testing.T) {
		p := Product{Stock: 0, LowStockThreshold: 5}
		if got := p.StockStatus(); got != StockStatusOutOfStock {
			t.Fatalf("expected %s, got %s", StockStatusOutOfStock, got)
		}
	})

	t.Run("at threshold -> low_stock", func(t *testing.T) {
		p := Product{Stock: 5, LowStockThreshold: 5}
		if got := p.StockStatus(); got != StockStatusLowStock {
			t.Fatalf("expected %s, got %s", StockStatusLowStock, got)
		}
	})

	t.Run("below threshold -> low_stock", func(t *testing.T) {
		p := Product{Stock: 2, LowStockThreshold: 5}
		if got := p.StockStatus(); got != StockStatusLowStock {
			t.Fatalf("expected %s, got %s", StockStatusLowStock, got)
		}
	})

	t.Run("above threshold -> in_stock", func(t *testing.T) {
		p := Product{Stock: 6, LowStockThreshold: 5}
		if got := p.StockStatus(); got != StockStatusInStock {
			t.Fatalf("expected %s, got %s", StockStatusInStock, got)
		}
	})
}

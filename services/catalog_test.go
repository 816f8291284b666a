package services

import (
	"testing"

	"babyshop/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func catalogFixture() []models.Product {
	return []models.Product{
		{ID: primitive.NewObjectID(), Name: "Anti-Colic Bottle", Description: "Feeding bottle 260ml", CategoryID: "feeding", Price: 1200, Stock: 15, LowStockThreshold: 5},
		{ID: primitive.NewObjectID(), Name: "Newborn Diapers", Description: "Pack of 64", CategoryID: "diapering", Price: 1850, Stock: 3, LowStockThreshold: 5},
		{ID: primitive.NewObjectID(), Name: "Cotton Onesie", Description: "0-3 months", CategoryID: "clothing", Price: 799, Stock: 0, LowStockThreshold: 2},
		{ID: primitive.NewObjectID(), Name: "Silicone Bib", Description: "Easy-clean feeding bib", CategoryID: "feeding", Price: 450, Stock: 30, LowStockThreshold: 10},
	}
}

func TestFilterProducts(t *testing.T) {
	products := catalogFixture()

	t.Run("no filter returns everything", func(t *testing.T) {
		got := filterProducts(products, CatalogFilter{})
		if len(got) != 4 {
			t.Fatalf("expected 4, got %d", len(got))
		}
	})

	t.Run("by category", func(t *testing.T) {
		got := filterProducts(products, CatalogFilter{CategoryID: "feeding"})
		if len(got) != 2 {
			t.Fatalf("expected 2, got %d", len(got))
		}
		for _, p := range got {
			if p.CategoryID != "feeding" {
				t.Fatalf("wrong category %s", p.CategoryID)
			}
		}
	})

	t.Run("search matches name case-insensitively", func(t *testing.T) {
		got := filterProducts(products, CatalogFilter{Search: "ONESIE"})
		if len(got) != 1 || got[0].Name != "Cotton Onesie" {
			t.Fatalf("unexpected result %+v", got)
		}
	})

	t.Run("search matches description", func(t *testing.T) {
		got := filterProducts(products, CatalogFilter{Search: "feeding b"})
		if len(got) != 2 {
			t.Fatalf("expected 2, got %d", len(got))
		}
	})

	t.Run("by stock status", func(t *testing.T) {
		got := filterProducts(products, CatalogFilter{StockStatus: models.StockStatusOutOfStock})
		if len(got) != 1 || got[0].Name != "Cotton Onesie" {
			t.Fatalf("unexpected result %+v", got)
		}

		got = filterProducts(products, CatalogFilter{StockStatus: models.StockStatusLowStock})
		if len(got) != 1 || got[0].Name != "Newborn Diapers" {
			t.Fatalf("unexpected result %+v", got)
		}
	})

	t.Run("filters combine", func(t *testing.T) {
		got := filterProducts(products, CatalogFilter{CategoryID: "feeding", Search: "bottle"})
		if len(got) != 1 || got[0].Name != "Anti-Colic Bottle" {
			t.Fatalf("unexpected result %+v", got)
		}
	})

	t.Run("no match returns empty", func(t *testing.T) {
		got := filterProducts(products, CatalogFilter{Search: "stroller"})
		if len(got) != 0 {
			t.Fatalf("expected empty, got %d", len(got))
		}
	})
}

package services

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"babyshop/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CatalogFilter struct {
	CategoryID  string
	Search      string
	StockStatus string
}

// CatalogService serves storefront reads from an in-memory snapshot of the
// products collection. A change stream reloads the whole snapshot on any
// write, mirroring a subscription-driven full refresh. The dataset is small,
// so queries are linear scans.
type CatalogService struct {
	mu       sync.RWMutex
	col      *mongo.Collection
	products []models.Product
	log      *slog.Logger
}

func NewCatalogService(col *mongo.Collection, log *slog.Logger) *CatalogService {
	return &CatalogService{col: col, log: log}
}

// Load replaces the snapshot from the database.
func (s *CatalogService) Load(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return err
	}

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return err
	}

	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
	return nil
}

// Watch reloads the snapshot whenever the products collection changes.
// It returns when the context is cancelled or the stream cannot be opened.
func (s *CatalogService) Watch(ctx context.Context) {
	stream, err := s.col.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		s.log.Warn("catalog change stream unavailable, realtime refresh disabled", "err", err)
		return
	}
	defer stream.Close(ctx)

	for stream.Next(ctx) {
		if err := s.Load(ctx); err != nil {
			s.log.Warn("catalog reload failed", "err", err)
		}
	}
}

// List filters the snapshot by category, search text and stock status.
func (s *CatalogService) List(filter CatalogFilter) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterProducts(s.products, filter)
}

// Get finds a product by id, linear scan over the snapshot.
func (s *CatalogService) Get(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID.Hex() == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// LowStock lists products at or below their low-stock threshold, for the
// admin inventory screen.
func (s *CatalogService) LowStock() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Product
	for _, p := range s.products {
		if p.StockStatus() != models.StockStatusInStock {
			out = append(out, p)
		}
	}
	return out
}

func filterProducts(products []models.Product, filter CatalogFilter) []models.Product {
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	var out []models.Product
	for _, p := range products {
		if filter.CategoryID != "" && p.CategoryID != filter.CategoryID {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if filter.StockStatus != "" && p.StockStatus() != filter.StockStatus {
			continue
		}
		out = append(out, p)
	}
	return out
}

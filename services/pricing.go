package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"babyshop/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// PricingService caches the site settings record for the life of the process.
// Concurrent admin edits are not picked up until Refresh is called.
type PricingService struct {
	mu       sync.RWMutex
	col      *mongo.Collection
	settings *models.SiteSettings
	log      *slog.Logger
}

func NewPricingService(col *mongo.Collection, log *slog.Logger) *PricingService {
	return &PricingService{col: col, log: log}
}

// NewPricingServiceWith seeds the cache directly, bypassing the database.
func NewPricingServiceWith(settings models.SiteSettings) *PricingService {
	return &PricingService{settings: &settings, log: slog.Default()}
}

// Settings returns the cached record, fetching it on first use. A missing or
// unreadable settings document falls back to the defaults.
func (p *PricingService) Settings(ctx context.Context) models.SiteSettings {
	p.mu.RLock()
	if p.settings != nil {
		defer p.mu.RUnlock()
		return *p.settings
	}
	p.mu.RUnlock()

	return p.Refresh(ctx)
}

// Refresh re-reads the settings document and replaces the cache.
func (p *PricingService) Refresh(ctx context.Context) models.SiteSettings {
	settings := models.DefaultSettings()

	if p.col != nil {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		var stored models.SiteSettings
		err := p.col.FindOne(ctx, bson.M{}).Decode(&stored)
		if err == nil {
			settings = stored
		} else if err != mongo.ErrNoDocuments {
			p.log.Warn("settings fetch failed, using defaults", "err", err)
		}
	}

	p.mu.Lock()
	p.settings = &settings
	p.mu.Unlock()
	return settings
}

func (p *PricingService) CalculateTax(ctx context.Context, subtotal float64) float64 {
	return p.Settings(ctx).Tax(subtotal)
}

func (p *PricingService) CalculateShipping(ctx context.Context, subtotal float64) float64 {
	return p.Settings(ctx).Shipping(subtotal)
}

// Quote derives the full price breakdown for a cart subtotal.
func (p *PricingService) Quote(ctx context.Context, subtotal float64) (tax, shipping, total float64) {
	s := p.Settings(ctx)
	tax = s.Tax(subtotal)
	shipping = s.Shipping(subtotal)
	total = subtotal + tax + shipping
	return tax, shipping, total
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"babyshop/models"

	"github.com/redis/go-redis/v9"
)

var ErrOutOfStock = errors.New("product is out of stock")

// InsufficientStockError reports the exact number of units still available
// for the product, so the message can show the remaining allowance.
type InsufficientStockError struct {
	ProductName string
	Remaining   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("only %d more of %s available", e.Remaining, e.ProductName)
}

const cartMirrorTTL = 7 * 24 * time.Hour

// CartService is the per-session cart reducer. State lives in memory and is
// mirrored to redis fire-and-forget after every mutation; a write lost
// between mutation and mirror is an accepted loss for a shopping cart.
type CartService struct {
	mu     sync.Mutex
	states map[string]*models.CartState
	mirror *redis.Client
	log    *slog.Logger
}

func NewCartService(mirror *redis.Client, log *slog.Logger) *CartService {
	return &CartService{
		states: make(map[string]*models.CartState),
		mirror: mirror,
		log:    log,
	}
}

// Get returns a copy of the session's cart, hydrating from the mirror the
// first time a session is seen.
func (s *CartService) Get(ctx context.Context, sessionID string) models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.state(ctx, sessionID)
}

func (s *CartService) AddItem(ctx context.Context, sessionID string, product models.Product, qty int) (models.CartState, error) {
	if qty < 1 {
		return models.CartState{}, fmt.Errorf("quantity must be at least 1")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.state(ctx, sessionID)

	if product.Stock == 0 {
		return *cart, ErrOutOfStock
	}

	inCart := cart.QuantityOf(product.ID.Hex())
	if inCart+qty > product.Stock {
		return *cart, &InsufficientStockError{
			ProductName: product.Name,
			Remaining:   product.Stock - inCart,
		}
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].Product.ID == product.ID {
			cart.Items[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, models.CartItem{Product: product, Quantity: qty})
	}

	cart.Recalculate()
	s.persist(sessionID, cart)
	return *cart, nil
}

// UpdateQuantity replaces a line's quantity. Zero or negative routes to
// removal. The caller supplies the product so stock is checked against the
// live record, not the cart snapshot.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID string, product models.Product, qty int) (models.CartState, error) {
	if qty <= 0 {
		return s.RemoveItem(ctx, sessionID, product.ID.Hex()), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.state(ctx, sessionID)

	if qty > product.Stock {
		return *cart, &InsufficientStockError{
			ProductName: product.Name,
			Remaining:   product.Stock,
		}
	}

	for i := range cart.Items {
		if cart.Items[i].Product.ID == product.ID {
			cart.Items[i].Quantity = qty
			cart.Items[i].Product = product
			cart.Recalculate()
			s.persist(sessionID, cart)
			return *cart, nil
		}
	}

	return *cart, fmt.Errorf("product not in cart")
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID, productID string) models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.state(ctx, sessionID)

	for i := range cart.Items {
		if cart.Items[i].Product.ID.Hex() == productID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			break
		}
	}

	cart.Recalculate()
	s.persist(sessionID, cart)
	return *cart
}

func (s *CartService) Clear(ctx context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.states[sessionID] = &models.CartState{}
	s.persist(sessionID, s.states[sessionID])
}

// state must be called with the lock held.
func (s *CartService) state(ctx context.Context, sessionID string) *models.CartState {
	if cart, ok := s.states[sessionID]; ok {
		return cart
	}

	cart := &models.CartState{}
	if s.mirror != nil {
		if raw, err := s.mirror.Get(ctx, cartKey(sessionID)).Result(); err == nil {
			if err := json.Unmarshal([]byte(raw), cart); err != nil {
				cart = &models.CartState{}
			}
		}
	}
	cart.Recalculate()
	s.states[sessionID] = cart
	return cart
}

// persist mirrors the state without blocking the mutation. Errors are only
// logged; the in-memory state stays authoritative for the session.
func (s *CartService) persist(sessionID string, cart *models.CartState) {
	if s.mirror == nil {
		return
	}

	raw, err := json.Marshal(cart)
	if err != nil {
		s.log.Error("cart mirror marshal failed", "session", sessionID, "err", err)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := s.mirror.Set(ctx, cartKey(sessionID), raw, cartMirrorTTL).Err(); err != nil {
			s.log.Warn("cart mirror write failed", "session", sessionID, "err", err)
		}
	}()
}

func cartKey(sessionID string) string {
	return "babyshop:cart:" + sessionID
}

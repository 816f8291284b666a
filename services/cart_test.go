package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"babyshop/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestCartService() *CartService {
	return NewCartService(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testProduct(name string, price float64, stock int) models.Product {
	return models.Product{
		ID:    primitive.NewObjectID(),
		Name:  name,
		Price: price,
		Stock: stock,
	}
}

func TestCartScenario(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()
	session := "s1"

	productA := testProduct("Baby Bottle", 1000, 3)

	cart, err := svc.AddItem(ctx, session, productA, 2)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if cart.Total != 2000 || cart.ItemCount != 2 {
		t.Fatalf("expected total 2000 count 2, got %v %d", cart.Total, cart.ItemCount)
	}

	// 2 in cart + 2 requested > 3 in stock: rejected, cart unchanged.
	cart, err = svc.AddItem(ctx, session, productA, 2)
	var insufficient *InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if insufficient.Remaining != 1 {
		t.Fatalf("expected remaining allowance 1, got %d", insufficient.Remaining)
	}
	if cart.Total != 2000 {
		t.Fatalf("cart changed after rejected add: total %v", cart.Total)
	}

	cart, err = svc.UpdateQuantity(ctx, session, productA, 3)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if cart.Total != 3000 {
		t.Fatalf("expected total 3000, got %v", cart.Total)
	}

	cart = svc.RemoveItem(ctx, session, productA.ID.Hex())
	if cart.Total != 0 || len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", cart)
	}
}

func TestAddItemOutOfStock(t *testing.T) {
	svc := newTestCartService()
	gone := testProduct("Sold Out Romper", 500, 0)

	_, err := svc.AddItem(context.Background(), "s1", gone, 1)
	if !errors.Is(err, ErrOutOfStock) {
		t.Fatalf("expected ErrOutOfStock, got %v", err)
	}

	cart := svc.Get(context.Background(), "s1")
	if len(cart.Items) != 0 {
		t.Fatalf("cart should be unchanged, got %d items", len(cart.Items))
	}
}

func TestUpdateQuantityZeroRemoves(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()
	p := testProduct("Pacifier", 300, 10)

	if _, err := svc.AddItem(ctx, "s1", p, 4); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	cart, err := svc.UpdateQuantity(ctx, "s1", p, 0)
	if err != nil {
		t.Fatalf("update to zero failed: %v", err)
	}
	if len(cart.Items) != 0 || cart.Total != 0 || cart.ItemCount != 0 {
		t.Fatalf("expected empty cart, got %+v", cart)
	}
}

func TestUpdateQuantityExceedsStock(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()
	p := testProduct("Stroller", 25000, 2)

	if _, err := svc.AddItem(ctx, "s1", p, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	_, err := svc.UpdateQuantity(ctx, "s1", p, 3)
	var insufficient *InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if insufficient.Remaining != 2 {
		t.Fatalf("expected remaining 2, got %d", insufficient.Remaining)
	}

	cart := svc.Get(ctx, "s1")
	if cart.QuantityOf(p.ID.Hex()) != 1 {
		t.Fatalf("quantity changed after rejected update")
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()
	p := testProduct("Bib Set", 450, 5)

	if _, err := svc.AddItem(ctx, "alice", p, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	bob := svc.Get(ctx, "bob")
	if len(bob.Items) != 0 {
		t.Fatalf("sessions leaked into each other")
	}
}

func TestClearCart(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "s1", testProduct("Wipes", 250, 20), 3); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	svc.Clear(ctx, "s1")
	cart := svc.Get(ctx, "s1")
	if len(cart.Items) != 0 || cart.Total != 0 {
		t.Fatalf("expected cleared cart, got %+v", cart)
	}
}

// TestRandomMutationsNoDrift runs 1,000 random mutations and checks after
// every one that the derived total and count match an independent
// recomputation from the line items.
func TestRandomMutationsNoDrift(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()
	session := "fuzz"
	rng := rand.New(rand.NewSource(42))

	products := []models.Product{
		testProduct("Bottle", 1000, 3),
		testProduct("Diapers", 1850, 12),
		testProduct("Onesie", 799.50, 7),
		testProduct("Teether", 325, 1),
		testProduct("Car Seat", 32000, 2),
	}

	for i := 0; i < 1000; i++ {
		p := products[rng.Intn(len(products))]
		qty := rng.Intn(5)

		switch rng.Intn(4) {
		case 0:
			svc.AddItem(ctx, session, p, qty)
		case 1:
			svc.UpdateQuantity(ctx, session, p, qty)
		case 2:
			svc.RemoveItem(ctx, session, p.ID.Hex())
		case 3:
			if rng.Intn(20) == 0 {
				svc.Clear(ctx, session)
			}
		}

		cart := svc.Get(ctx, session)

		var wantTotal float64
		var wantCount int
		for _, item := range cart.Items {
			if item.Quantity < 1 {
				t.Fatalf("iteration %d: line with quantity %d", i, item.Quantity)
			}
			if item.Quantity > item.Product.Stock {
				t.Fatalf("iteration %d: quantity %d exceeds stock %d", i, item.Quantity, item.Product.Stock)
			}
			wantTotal += item.Product.Price * float64(item.Quantity)
			wantCount += item.Quantity
		}

		if math.Abs(cart.Total-wantTotal) > 1e-9 {
			t.Fatalf("iteration %d: total drifted, have %v want %v", i, cart.Total, wantTotal)
		}
		if cart.ItemCount != wantCount {
			t.Fatalf("iteration %d: count drifted, have %d want %d", i, cart.ItemCount, wantCount)
		}
	}
}

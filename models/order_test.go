package models

import (
	"strings"
	"testing"
	"time"
)

func TestInitialOrderStatus(t *testing.T) {
	t.Run("cash on delivery -> confirmed", func(t *testing.T) {
		if got := InitialOrderStatus(PaymentMethodCashOnDelivery); got != OrderStatusConfirmed {
			t.Fatalf("expected %s, got %s", OrderStatusConfirmed, got)
		}
	})

	t.Run("wallet -> pending", func(t *testing.T) {
		if got := InitialOrderStatus(PaymentMethodJazzCash); got != OrderStatusPending {
			t.Fatalf("expected %s, got %s", OrderStatusPending, got)
		}
	})

	t.Run("bank transfer -> pending", func(t *testing.T) {
		if got := InitialOrderStatus(PaymentMethodBankTransfer); got != OrderStatusPending {
			t.Fatalf("expected %s, got %s", OrderStatusPending, got)
		}
	})
}

func TestCanTransition(t *testing.T) {
	allowed := [][2]string{
		{OrderStatusPending, OrderStatusConfirmed},
		{OrderStatusPending, OrderStatusCancelled},
		{OrderStatusConfirmed, OrderStatusProcessing},
		{OrderStatusConfirmed, OrderStatusCancelled},
		{OrderStatusProcessing, OrderStatusShipped},
		{OrderStatusShipped, OrderStatusDelivered},
	}
	for _, tr := range allowed {
		if !CanTransition(tr[0], tr[1]) {
			t.Errorf("expected %s -> %s to be legal", tr[0], tr[1])
		}
	}

	denied := [][2]string{
		{OrderStatusPending, OrderStatusShipped},
		{OrderStatusProcessing, OrderStatusCancelled},
		{OrderStatusShipped, OrderStatusCancelled},
		{OrderStatusDelivered, OrderStatusPending},
		{OrderStatusCancelled, OrderStatusConfirmed},
		{OrderStatusDelivered, OrderStatusCancelled},
	}
	for _, tr := range denied {
		if CanTransition(tr[0], tr[1]) {
			t.Errorf("expected %s -> %s to be illegal", tr[0], tr[1])
		}
	}
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []string{OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled} {
		if !ValidOrderStatus(s) {
			t.Errorf("expected %s to be valid", s)
		}
	}
	if ValidOrderStatus("refunded") {
		t.Error("expected refunded to be invalid")
	}
}

func TestNewOrderNumber(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	num := NewOrderNumber(now)

	if !strings.HasPrefix(num, "BS-20260314150926-") {
		t.Fatalf("unexpected order number format: %s", num)
	}

	suffix := strings.TrimPrefix(num, "BS-20260314150926-")
	if len(suffix) != 6 {
		t.Fatalf("expected 6-char suffix, got %q", suffix)
	}
	if suffix != strings.ToUpper(suffix) {
		t.Fatalf("expected uppercase suffix, got %q", suffix)
	}
}

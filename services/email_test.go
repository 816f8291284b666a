package services

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"babyshop/models"
)

func TestEmailServiceRecordsSends(t *testing.T) {
	svc := NewEmailService(slog.New(slog.NewTextHandler(io.Discard, nil)))

	order := models.Order{
		OrderNumber:   "BS-20260314150926-AB12CD",
		Total:         3465,
		PaymentMethod: models.PaymentMethodCashOnDelivery,
		Status:        models.OrderStatusConfirmed,
	}

	if err := svc.SendOrderConfirmation("parent@example.com", order); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if err := svc.SendStatusUpdate("parent@example.com", order); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	sent := svc.Sent()
	if len(sent) != 2 {
		t.Fatalf("expected 2 recorded sends, got %d", len(sent))
	}

	if sent[0].To != "parent@example.com" {
		t.Errorf("unexpected recipient %s", sent[0].To)
	}
	if !strings.Contains(sent[0].Subject, order.OrderNumber) {
		t.Errorf("confirmation subject missing order number: %s", sent[0].Subject)
	}
	if !strings.Contains(sent[1].Subject, models.OrderStatusConfirmed) {
		t.Errorf("status subject missing status: %s", sent[1].Subject)
	}
}

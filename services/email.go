package services

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"babyshop/models"
)

// SentEmail records one simulated delivery.
type SentEmail struct {
	To      string
	Subject string
	Body    string
	SentAt  time.Time
}

// EmailService is a notification stub: it logs and records sends instead of
// talking to a provider. Constructed and injected explicitly so tests can
// inspect what was sent.
type EmailService struct {
	mu   sync.Mutex
	sent []SentEmail
	log  *slog.Logger
}

func NewEmailService(log *slog.Logger) *EmailService {
	return &EmailService{log: log}
}

func (s *EmailService) SendOrderConfirmation(to string, order models.Order) error {
	subject := fmt.Sprintf("Order %s confirmed", order.OrderNumber)
	body := fmt.Sprintf(
		"Thank you for your order.\nOrder number: %s\nItems: %d\nTotal: %.2f\nPayment: %s\n",
		order.OrderNumber, len(order.Items), order.Total, order.PaymentMethod,
	)
	return s.send(to, subject, body)
}

func (s *EmailService) SendStatusUpdate(to string, order models.Order) error {
	subject := fmt.Sprintf("Order %s is now %s", order.OrderNumber, order.Status)
	body := fmt.Sprintf("Your order %s status changed to %s.\n", order.OrderNumber, order.Status)
	return s.send(to, subject, body)
}

func (s *EmailService) send(to, subject, body string) error {
	s.mu.Lock()
	s.sent = append(s.sent, SentEmail{To: to, Subject: subject, Body: body, SentAt: time.Now()})
	s.mu.Unlock()

	s.log.Info("simulated email send", "to", to, "subject", subject)
	return nil
}

// Sent returns a copy of everything recorded so far.
func (s *EmailService) Sent() []SentEmail {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]SentEmail, len(s.sent))
	copy(out, s.sent)
	return out
}

package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

const (
	PaymentMethodCashOnDelivery = "cash_on_delivery"
	PaymentMethodJazzCash       = "jazzcash"
	PaymentMethodBankTransfer   = "bank_transfer"
)

type ShippingAddress struct {
	FullName string `bson:"fullName" json:"fullName" binding:"required"`
	Phone    string `bson:"phone" json:"phone" binding:"required"`
	Address  string `bson:"address" json:"address" binding:"required"`
	City     string `bson:"city" json:"city" binding:"required"`
	Province string `bson:"province,omitempty" json:"province,omitempty"`
	Notes    string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// OrderItem embeds a product snapshot taken at checkout so later catalog
// edits never change what the order shows.
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Name      string             `bson:"name" json:"name"`
	Price     float64            `bson:"price" json:"price"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	ImageURL  string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
}

type Order struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderNumber       string             `bson:"orderNumber" json:"orderNumber"`
	CustomerID        primitive.ObjectID `bson:"customerId" json:"customerId"`
	Items             []OrderItem        `bson:"items" json:"items"`
	ShippingAddress   ShippingAddress    `bson:"shippingAddress" json:"shippingAddress"`
	PaymentMethod     string             `bson:"paymentMethod" json:"paymentMethod"`
	Subtotal          float64            `bson:"subtotal" json:"subtotal"`
	Tax               float64            `bson:"tax" json:"tax"`
	ShippingFee       float64            `bson:"shippingFee" json:"shippingFee"`
	Total             float64            `bson:"total" json:"total"`
	Status            string             `bson:"status" json:"status"`
	TrackingNumber    *string            `bson:"trackingNumber,omitempty" json:"trackingNumber,omitempty"`
	EstimatedDelivery *time.Time         `bson:"estimatedDelivery,omitempty" json:"estimatedDelivery,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

var orderTransitions = map[string][]string{
	OrderStatusPending:    {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:  {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped},
	OrderStatusShipped:    {OrderStatusDelivered},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

func ValidOrderStatus(status string) bool {
	_, ok := orderTransitions[status]
	return ok
}

// CanTransition reports whether moving from one status to the other is legal.
// Cancellation is only reachable from pending and confirmed.
func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// InitialOrderStatus returns the status a new order starts in. Cash on
// delivery needs no payment step and goes straight to confirmed.
func InitialOrderStatus(paymentMethod string) string {
	if paymentMethod == PaymentMethodCashOnDelivery {
		return OrderStatusConfirmed
	}
	return OrderStatusPending
}

// NewOrderNumber builds the human-facing identifier: timestamp plus a short
// random suffix. Display-only, not a uniqueness key.
func NewOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:6])
	return fmt.Sprintf("BS-%s-%s", now.Format("20060102150405"), suffix)
}

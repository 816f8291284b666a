package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentAccount is a merchant-side receiving account shown to customers
// choosing bank transfer, managed from the admin back office.
type PaymentAccount struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Provider      string             `bson:"provider" json:"provider" binding:"required"`
	AccountTitle  string             `bson:"accountTitle" json:"accountTitle" binding:"required"`
	AccountNumber string             `bson:"accountNumber" json:"accountNumber" binding:"required"`
	Active        bool               `bson:"active" json:"active"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

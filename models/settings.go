package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SiteSettings struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StoreName             string             `bson:"storeName" json:"storeName"`
	Currency              string             `bson:"currency" json:"currency"`
	TaxRate               float64            `bson:"taxRate" json:"taxRate"`
	FreeShippingThreshold float64            `bson:"freeShippingThreshold" json:"freeShippingThreshold"`
	FlatShippingRate      float64            `bson:"flatShippingRate" json:"flatShippingRate"`
	SupportEmail          string             `bson:"supportEmail,omitempty" json:"supportEmail,omitempty"`
	UpdatedAt             time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func DefaultSettings() SiteSettings {
	return SiteSettings{
		StoreName:             "BabyShop",
		Currency:              "PKR",
		TaxRate:               0.10,
		FreeShippingThreshold: 5000,
		FlatShippingRate:      150,
	}
}

func (s SiteSettings) Tax(subtotal float64) float64 {
	return subtotal * s.TaxRate
}

// Shipping is free at and above the threshold, flat rate below it.
func (s SiteSettings) Shipping(subtotal float64) float64 {
	if subtotal >= s.FreeShippingThreshold {
		return 0
	}
	return s.FlatShippingRate
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StockStatusInStock    = "in_stock"
	StockStatusLowStock   = "low_stock"
	StockStatusOutOfStock = "out_of_stock"
)

type Product struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name              string             `bson:"name" json:"name" binding:"required"`
	Description       string             `bson:"description" json:"description"`
	CategoryID        string             `bson:"categoryId" json:"categoryId"`
	Price             float64            `bson:"price" json:"price" binding:"required"`
	Stock             int                `bson:"stock" json:"stock"`
	LowStockThreshold int                `bson:"lowStockThreshold" json:"lowStockThreshold"`
	ImageURL          string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// StockStatus derives the tri-state availability from stock vs threshold.
func (p Product) StockStatus() string {
	switch {
	case p.Stock == 0:
		return StockStatusOutOfStock
	case p.Stock <= p.LowStockThreshold:
		return StockStatusLowStock
	default:
		return StockStatusInStock
	}
}

package controllers

import (
	"context"
	"net/http"
	"time"

	"babyshop/database"
	"babyshop/models"
	"babyshop/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SettingsController manages the single site_settings record. Updates push
// through to the pricing cache so checkout sees new rates immediately.
type SettingsController struct {
	Pricing *services.PricingService
}

func NewSettingsController(pricing *services.PricingService) *SettingsController {
	return &SettingsController{Pricing: pricing}
}

func (sc *SettingsController) GetSettings(c *gin.Context) {
	settings := sc.Pricing.Settings(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": settings})
}

func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	var body struct {
		StoreName             *string  `json:"storeName"`
		Currency              *string  `json:"currency"`
		TaxRate               *float64 `json:"taxRate"`
		FreeShippingThreshold *float64 `json:"freeShippingThreshold"`
		FlatShippingRate      *float64 `json:"flatShippingRate"`
		SupportEmail          *string  `json:"supportEmail"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if body.StoreName != nil {
		set["storeName"] = *body.StoreName
	}
	if body.Currency != nil {
		set["currency"] = *body.Currency
	}
	if body.TaxRate != nil {
		if *body.TaxRate < 0 || *body.TaxRate > 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Tax rate must be between 0 and 1"})
			return
		}
		set["taxRate"] = *body.TaxRate
	}
	if body.FreeShippingThreshold != nil {
		set["freeShippingThreshold"] = *body.FreeShippingThreshold
	}
	if body.FlatShippingRate != nil {
		set["flatShippingRate"] = *body.FlatShippingRate
	}
	if body.SupportEmail != nil {
		set["supportEmail"] = *body.SupportEmail
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After).SetUpsert(true)
	var updated models.SiteSettings
	err := database.SiteSettingsCollection.FindOneAndUpdate(ctx, bson.M{}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}

	sc.Pricing.Refresh(ctx)
	c.JSON(http.StatusOK, gin.H{"message": "Settings updated", "data": updated})
}

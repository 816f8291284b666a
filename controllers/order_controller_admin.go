package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"babyshop/database"
	"babyshop/models"
	"babyshop/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AdminOrderController is the back-office view over all orders. Status
// changes are validated against the legal transition table here, at the
// authoritative layer.
type AdminOrderController struct {
	Email *services.EmailService
}

func NewAdminOrderController(email *services.EmailService) *AdminOrderController {
	return &AdminOrderController{Email: email}
}

func (ac *AdminOrderController) GetOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	cursor, err := database.OrderCollection.Find(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var orders []models.Order = []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "count": len(orders), "data": orders})
}

func (ac *AdminOrderController) GetOrderByID(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var order models.Order
	err = database.OrderCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&order)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": order})
}

func (ac *AdminOrderController) UpdateOrderStatus(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if !models.ValidOrderStatus(body.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var existing models.Order
	err = database.OrderCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&existing)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if !models.CanTransition(existing.Status, body.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Cannot change status from %s to %s", existing.Status, body.Status),
		})
		return
	}

	update := bson.M{"$set": bson.M{"status": body.Status, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Order
	err = database.OrderCollection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, update, opts).Decode(&updated)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	var customer models.Customer
	if err := database.CustomerCollection.FindOne(ctx, bson.M{"_id": updated.CustomerID}).Decode(&customer); err == nil {
		_ = ac.Email.SendStatusUpdate(customer.Email, updated)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "data": updated})
}

// AttachTracking sets the tracking number and optional delivery estimate.
func (ac *AdminOrderController) AttachTracking(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	var body struct {
		TrackingNumber    string     `json:"trackingNumber" binding:"required"`
		EstimatedDelivery *time.Time `json:"estimatedDelivery"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tracking number is required"})
		return
	}

	set := bson.M{"trackingNumber": body.TrackingNumber, "updatedAt": time.Now()}
	if body.EstimatedDelivery != nil {
		set["estimatedDelivery"] = *body.EstimatedDelivery
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Order
	err = database.OrderCollection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tracking attached", "data": updated})
}

// CancelOrder matches the customer-side rule: only pending or confirmed
// orders can be cancelled, and stock is not restored.
func (ac *AdminOrderController) CancelOrder(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"_id":    objID,
		"status": bson.M{"$in": []string{models.OrderStatusPending, models.OrderStatusConfirmed}},
	}
	update := bson.M{"$set": bson.M{"status": models.OrderStatusCancelled, "updatedAt": time.Now()}}

	result, err := database.OrderCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order cannot be cancelled"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled"})
}

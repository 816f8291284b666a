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
)

// OrderController handles checkout and the customer's own orders.
type OrderController struct {
	Carts   *services.CartService
	Catalog *services.CatalogService
	Pricing *services.PricingService
	Email   *services.EmailService
}

func NewOrderController(carts *services.CartService, catalog *services.CatalogService, pricing *services.PricingService, email *services.EmailService) *OrderController {
	return &OrderController{Carts: carts, Catalog: catalog, Pricing: pricing, Email: email}
}

// Checkout snapshots the cart into an order. Stock is re-validated at the
// database with a guarded decrement; a partial failure rolls the decrements
// back. The cart clear afterwards is a separate call with no rollback of the
// order if it fails.
func (oc *OrderController) Checkout(c *gin.Context) {
	userID := sessionID(c)
	objUserID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user"})
		return
	}

	var body struct {
		ShippingAddress models.ShippingAddress `json:"shippingAddress" binding:"required"`
		PaymentMethod   string                 `json:"paymentMethod" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Shipping address and payment method are required"})
		return
	}

	switch body.PaymentMethod {
	case models.PaymentMethodCashOnDelivery, models.PaymentMethodJazzCash, models.PaymentMethodBankTransfer:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported payment method"})
		return
	}

	cart := oc.Carts.Get(c.Request.Context(), userID)
	if len(cart.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, item := range cart.Items {
		var product models.Product
		err := database.ProductCollection.FindOne(ctx, bson.M{"_id": item.Product.ID}).Decode(&product)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s is no longer available", item.Product.Name)})
			return
		}
		if item.Quantity > product.Stock {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Not enough stock for %s, available: %d", product.Name, product.Stock),
			})
			return
		}
	}

	var decremented []struct {
		ProductID primitive.ObjectID
		Quantity  int
	}

	var orderItems []models.OrderItem
	var subtotal float64

	for _, item := range cart.Items {
		result, err := database.ProductCollection.UpdateOne(
			ctx,
			bson.M{"_id": item.Product.ID, "stock": bson.M{"$gte": item.Quantity}},
			bson.M{"$inc": bson.M{"stock": -item.Quantity}},
		)
		if err != nil || result.ModifiedCount == 0 {
			rollbackStock(ctx, decremented)
			c.JSON(http.StatusConflict, gin.H{
				"error": fmt.Sprintf("Not enough stock for %s, please review your cart", item.Product.Name),
			})
			return
		}

		decremented = append(decremented, struct {
			ProductID primitive.ObjectID
			Quantity  int
		}{ProductID: item.Product.ID, Quantity: item.Quantity})

		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
			Quantity:  item.Quantity,
			ImageURL:  item.Product.ImageURL,
		})

		subtotal += item.Product.Price * float64(item.Quantity)
	}

	tax, shipping, total := oc.Pricing.Quote(ctx, subtotal)
	now := time.Now()

	order := models.Order{
		ID:              primitive.NewObjectID(),
		OrderNumber:     models.NewOrderNumber(now),
		CustomerID:      objUserID,
		Items:           orderItems,
		ShippingAddress: body.ShippingAddress,
		PaymentMethod:   body.PaymentMethod,
		Subtotal:        subtotal,
		Tax:             tax,
		ShippingFee:     shipping,
		Total:           total,
		Status:          models.InitialOrderStatus(body.PaymentMethod),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err = database.OrderCollection.InsertOne(ctx, order)
	if err != nil {
		rollbackStock(ctx, decremented)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	_ = oc.Catalog.Load(ctx)
	oc.Carts.Clear(c.Request.Context(), userID)

	// Best effort: a failed confirmation email is logged inside the service
	// and never surfaced to the buyer.
	var customer models.Customer
	if err := database.CustomerCollection.FindOne(ctx, bson.M{"_id": objUserID}).Decode(&customer); err == nil {
		_ = oc.Email.SendOrderConfirmation(customer.Email, order)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order placed",
		"order":   order,
	})
}

func (oc *OrderController) GetOrders(c *gin.Context) {
	objUserID, err := primitive.ObjectIDFromHex(sessionID(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.OrderCollection.Find(ctx, bson.M{"customerId": objUserID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var orders []models.Order = []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": orders})
}

func (oc *OrderController) GetOrder(c *gin.Context) {
	objUserID, err := primitive.ObjectIDFromHex(sessionID(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user"})
		return
	}

	orderObjID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var order models.Order
	err = database.OrderCollection.FindOne(ctx, bson.M{"_id": orderObjID, "customerId": objUserID}).Decode(&order)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": order})
}

// CancelOrder lets a customer cancel while the order is still pending or
// confirmed. Stock is not restored, matching the order lifecycle rules.
func (oc *OrderController) CancelOrder(c *gin.Context) {
	objUserID, err := primitive.ObjectIDFromHex(sessionID(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user"})
		return
	}

	orderObjID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"_id":        orderObjID,
		"customerId": objUserID,
		"status":     bson.M{"$in": []string{models.OrderStatusPending, models.OrderStatusConfirmed}},
	}
	update := bson.M{"$set": bson.M{"status": models.OrderStatusCancelled, "updatedAt": time.Now()}}

	result, err := database.OrderCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order not found or can no longer be cancelled"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled"})
}

func rollbackStock(ctx context.Context, decremented []struct {
	ProductID primitive.ObjectID
	Quantity  int
}) {
	for _, d := range decremented {
		_, _ = database.ProductCollection.UpdateOne(
			ctx,
			bson.M{"_id": d.ProductID},
			bson.M{"$inc": bson.M{"stock": d.Quantity}},
		)
	}
}

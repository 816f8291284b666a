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
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentController bridges pending orders to the hosted payment page and
// parses the gateway's return/cancel callbacks.
type PaymentController struct {
	Gateway *services.PaymentGateway
	Sandbox bool
}

func NewPaymentController(gateway *services.PaymentGateway, sandbox bool) *PaymentController {
	return &PaymentController{Gateway: gateway, Sandbox: sandbox}
}

func (pc *PaymentController) findPendingOrder(ctx context.Context, c *gin.Context) (models.Order, bool) {
	objUserID, err := primitive.ObjectIDFromHex(sessionID(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user"})
		return models.Order{}, false
	}

	orderObjID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return models.Order{}, false
	}

	var order models.Order
	err = database.OrderCollection.FindOne(ctx, bson.M{"_id": orderObjID, "customerId": objUserID}).Decode(&order)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return models.Order{}, false
	}
	if order.Status != models.OrderStatusPending {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order is not awaiting payment"})
		return models.Order{}, false
	}
	return order, true
}

// InitiatePayment renders the auto-submitting redirect form for a pending
// order. In sandbox mode no form is served; the caller gets the field set
// and uses the sandbox endpoint instead.
func (pc *PaymentController) InitiatePayment(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	order, ok := pc.findPendingOrder(ctx, c)
	if !ok {
		return
	}

	fields := pc.Gateway.BuildRedirectFields(order, time.Now())

	if pc.Sandbox {
		c.JSON(http.StatusOK, gin.H{"message": "Sandbox mode", "fields": fields})
		return
	}

	html, err := pc.Gateway.RedirectFormHTML(fields)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build payment form"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// SandboxPay simulates the gateway response locally from the wallet phone
// number, then applies the outcome to the order.
func (pc *PaymentController) SandboxPay(c *gin.Context) {
	if !pc.Sandbox {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sandbox is disabled"})
		return
	}

	var body struct {
		Phone string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Wallet phone number is required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	order, ok := pc.findPendingOrder(ctx, c)
	if !ok {
		return
	}

	fields := pc.Gateway.BuildRedirectFields(order, time.Now())
	result := pc.Gateway.SimulateSandboxResponse(body.Phone, fields)

	if result.Success {
		_, err := database.OrderCollection.UpdateOne(
			ctx,
			bson.M{"_id": order.ID, "status": models.OrderStatusPending},
			bson.M{"$set": bson.M{"status": models.OrderStatusConfirmed, "updatedAt": time.Now()}},
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment succeeded but order update failed"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": result.Message, "data": result})
}

// PaymentReturn is the gateway's return URL. It only parses and displays the
// outcome; order confirmation rides on the response code.
func (pc *PaymentController) PaymentReturn(c *gin.Context) {
	result := services.ParseCallback(c.Request.URL.Query())

	if result.Success && result.BillReference != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_, _ = database.OrderCollection.UpdateOne(
			ctx,
			bson.M{"orderNumber": result.BillReference, "status": models.OrderStatusPending},
			bson.M{"$set": bson.M{"status": models.OrderStatusConfirmed, "updatedAt": time.Now()}},
		)
	}

	c.JSON(http.StatusOK, gin.H{"message": result.Message, "data": result})
}

func (pc *PaymentController) PaymentCancel(c *gin.Context) {
	result := services.ParseCallback(c.Request.URL.Query())
	result.Success = false
	result.Message = "Payment was cancelled"
	c.JSON(http.StatusOK, gin.H{"message": result.Message, "data": result})
}

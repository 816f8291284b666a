package controllers

import (
	"errors"
	"net/http"

	"babyshop/services"

	"github.com/gin-gonic/gin"
)

// CartController runs the session cart reducer against live catalog stock.
// The session key is the authenticated customer id.
type CartController struct {
	Carts   *services.CartService
	Catalog *services.CatalogService
}

func NewCartController(carts *services.CartService, catalog *services.CatalogService) *CartController {
	return &CartController{Carts: carts, Catalog: catalog}
}

func sessionID(c *gin.Context) string {
	return c.MustGet("userId").(string)
}

func (cc *CartController) GetCart(c *gin.Context) {
	cart := cc.Carts.Get(c.Request.Context(), sessionID(c))
	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": cart})
}

func (cc *CartController) AddToCart(c *gin.Context) {
	var body struct {
		ProductID string `json:"productId" binding:"required"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if body.Quantity == 0 {
		body.Quantity = 1
	}

	product, ok := cc.Catalog.Get(body.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	cart, err := cc.Carts.AddItem(c.Request.Context(), sessionID(c), product, body.Quantity)
	if err != nil {
		var insufficient *services.InsufficientStockError
		switch {
		case errors.Is(err, services.ErrOutOfStock):
			c.JSON(http.StatusBadRequest, gin.H{"error": "This product is out of stock"})
		case errors.As(err, &insufficient):
			c.JSON(http.StatusBadRequest, gin.H{"error": insufficient.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Added to cart", "data": cart})
}

func (cc *CartController) UpdateCart(c *gin.Context) {
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
		return
	}

	product, ok := cc.Catalog.Get(c.Param("productId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	cart, err := cc.Carts.UpdateQuantity(c.Request.Context(), sessionID(c), product, body.Quantity)
	if err != nil {
		var insufficient *services.InsufficientStockError
		if errors.As(err, &insufficient) {
			c.JSON(http.StatusBadRequest, gin.H{"error": insufficient.Error()})
		} else {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart updated", "data": cart})
}

func (cc *CartController) RemoveFromCart(c *gin.Context) {
	cart := cc.Carts.RemoveItem(c.Request.Context(), sessionID(c), c.Param("productId"))
	c.JSON(http.StatusOK, gin.H{"message": "Product removed from cart", "data": cart})
}

func (cc *CartController) ClearCart(c *gin.Context) {
	cc.Carts.Clear(c.Request.Context(), sessionID(c))
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

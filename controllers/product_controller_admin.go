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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AdminProductController owns the inventory back office. Writes go to the
// products collection; the catalog snapshot is reloaded directly so the
// storefront is fresh even when the change stream is unavailable.
type AdminProductController struct {
	Catalog *services.CatalogService
}

func NewAdminProductController(catalog *services.CatalogService) *AdminProductController {
	return &AdminProductController{Catalog: catalog}
}

func (ac *AdminProductController) reloadCatalog(ctx context.Context) {
	_ = ac.Catalog.Load(ctx)
}

func (ac *AdminProductController) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and price are required"})
		return
	}

	if product.CategoryID != "" {
		if _, ok := models.CategoryByID(product.CategoryID); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
			return
		}
	}

	product.ID = primitive.NewObjectID()
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := database.ProductCollection.InsertOne(ctx, product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	ac.reloadCatalog(ctx)
	c.JSON(http.StatusOK, gin.H{"message": "Product created", "product": product})
}

func (ac *AdminProductController) GetProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.ProductCollection.Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var products []models.Product = []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Fetch products success",
		"count":    len(products),
		"products": products,
	})
}

func (ac *AdminProductController) GetLowStock(c *gin.Context) {
	products := ac.Catalog.LowStock()
	if products == nil {
		products = []models.Product{}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Fetch success",
		"count":    len(products),
		"products": products,
	})
}

func (ac *AdminProductController) UpdateProduct(c *gin.Context) {
	id := c.Param("id")
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var body struct {
		Name              *string  `json:"name"`
		Description       *string  `json:"description"`
		CategoryID        *string  `json:"categoryId"`
		Price             *float64 `json:"price"`
		Stock             *int     `json:"stock"`
		LowStockThreshold *int     `json:"lowStockThreshold"`
		ImageURL          *string  `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	update := bson.M{}
	if body.Name != nil {
		update["name"] = *body.Name
	}
	if body.Description != nil {
		update["description"] = *body.Description
	}
	if body.CategoryID != nil {
		if _, ok := models.CategoryByID(*body.CategoryID); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
			return
		}
		update["categoryId"] = *body.CategoryID
	}
	if body.Price != nil {
		update["price"] = *body.Price
	}
	if body.Stock != nil {
		if *body.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Stock cannot be negative"})
			return
		}
		update["stock"] = *body.Stock
	}
	if body.LowStockThreshold != nil {
		update["lowStockThreshold"] = *body.LowStockThreshold
	}
	if body.ImageURL != nil {
		update["imageUrl"] = *body.ImageURL
	}
	update["updatedAt"] = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Product
	err = database.ProductCollection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": update}, opts).Decode(&updated)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	ac.reloadCatalog(ctx)
	c.JSON(http.StatusOK, updated)
}

func (ac *AdminProductController) DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = database.ProductCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}

	ac.reloadCatalog(ctx)
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted", "id": id})
}

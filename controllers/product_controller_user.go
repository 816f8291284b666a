package controllers

import (
	"net/http"

	"babyshop/models"
	"babyshop/services"

	"github.com/gin-gonic/gin"
)

// ProductController serves storefront catalog reads from the in-memory
// snapshot held by the catalog service.
type ProductController struct {
	Catalog *services.CatalogService
}

func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{Catalog: catalog}
}

func (pc *ProductController) GetProducts(c *gin.Context) {
	filter := services.CatalogFilter{
		CategoryID:  c.Query("category"),
		Search:      c.Query("search"),
		StockStatus: c.Query("stock"),
	}

	products := pc.Catalog.List(filter)
	if products == nil {
		products = []models.Product{}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": products})
}

func (pc *ProductController) GetProduct(c *gin.Context) {
	product, ok := pc.Catalog.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Fetch success",
		"data": gin.H{
			"product":     product,
			"stockStatus": product.StockStatus(),
		},
	})
}

func (pc *ProductController) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": models.Categories})
}

func (pc *ProductController) GetCategoryProducts(c *gin.Context) {
	category, ok := models.CategoryByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	products := pc.Catalog.List(services.CatalogFilter{CategoryID: category.ID})
	if products == nil {
		products = []models.Product{}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Fetch success",
		"data": gin.H{
			"category": category,
			"products": products,
		},
	})
}

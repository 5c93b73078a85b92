package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"promo-shop/config"
	"promo-shop/models"
	"promo-shop/repositories"
	"promo-shop/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	productSvc  *services.ProductService
	productRepo *repositories.ProductRepository
}

func NewProductController() *ProductController {
	return &ProductController{
		productSvc:  services.NewProductService(),
		productRepo: repositories.NewProductRepository(),
	}
}

func productCacheKey(page, limit int, category, search string) string {
	return fmt.Sprintf("products_list_p%d_l%d_c%s_q%s", page, limit, category, search)
}

func invalidateProductCache(ctx context.Context) {
	if config.RedisClient == nil {
		return
	}
	iter := config.RedisClient.Scan(ctx, 0, "products_list_*", 0).Iterator()
	for iter.Next(ctx) {
		config.RedisClient.Del(ctx, iter.Val())
	}
}

// @Summary Get all products
// @Description Get paginated product catalog, optionally filtered by category or search term
// @Tags Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Param category query string false "Filter by category"
// @Param search query string false "Search name and description"
// @Success 200 {object} models.PaginatedResponse
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
	category := c.Query("category")
	search := c.Query("search")

	ctx := c.Request.Context()
	cacheKey := productCacheKey(page, limit, category, search)

	if config.RedisClient != nil {
		cached, err := config.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	response, err := ctrl.productSvc.GetAll(ctx, page, limit, category, search)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get products"})
		return
	}

	if config.RedisClient != nil {
		jsonData, _ := json.Marshal(response)
		config.RedisClient.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
	}

	c.JSON(200, response)
}

// @Summary Get product by ID
// @Description Get a single product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	product, err := ctrl.productSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Product retrieved", "data": product})
}

// @Summary Get categories
// @Description Get product categories with item counts
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *ProductController) GetCategories(c *gin.Context) {
	categories, err := ctrl.productSvc.GetCategories(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get categories"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Categories retrieved", "data": categories})
}

// @Summary Create product
// @Description Create a new product (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateProductRequest true "Product data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	if req.Price.IsNegative() {
		c.JSON(400, gin.H{"success": false, "message": "Price must not be negative"})
		return
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		InStock:     inStock,
	}

	if err := ctrl.productRepo.Create(c.Request.Context(), product); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create product"})
		return
	}

	invalidateProductCache(c.Request.Context())
	c.JSON(201, gin.H{"success": true, "message": "Product created", "data": product})
}

// @Summary Update product
// @Description Update an existing product (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body models.UpdateProductRequest true "Fields to update"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [patch]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	product, err := ctrl.productRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			c.JSON(400, gin.H{"success": false, "message": "Price must not be negative"})
			return
		}
		product.Price = *req.Price
	}
	if req.Category != "" {
		product.Category = req.Category
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}

	if err := ctrl.productRepo.Update(c.Request.Context(), product); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update product"})
		return
	}

	invalidateProductCache(c.Request.Context())
	c.JSON(200, gin.H{"success": true, "message": "Product updated", "data": product})
}

// @Summary Delete product
// @Description Delete a product (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	if err := ctrl.productRepo.Delete(c.Request.Context(), id); err != nil {
		if err == repositories.ErrNotFound {
			c.JSON(404, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete product"})
		return
	}

	invalidateProductCache(c.Request.Context())
	c.JSON(200, gin.H{"success": true, "message": "Product deleted"})
}

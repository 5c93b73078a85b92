package controllers

import (
	"context"
	"strconv"

	"promo-shop/cart"
	"promo-shop/models"

	"github.com/gin-gonic/gin"
)

// ProductGetter is the catalog lookup the cart needs when a product is
// added: the price snapshot comes from here.
type ProductGetter interface {
	GetByID(ctx context.Context, id int) (*models.Product, error)
}

type CartController struct {
	carts    *cart.Manager
	products ProductGetter
}

func NewCartController(carts *cart.Manager, products ProductGetter) *CartController {
	return &CartController{
		carts:    carts,
		products: products,
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString("session_id")
}

// @Summary Get cart
// @Description Get the session's cart with derived totals
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Cart session id"
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	snap := ctrl.carts.Snapshot(c.Request.Context(), sessionID(c))
	c.JSON(200, gin.H{"success": true, "message": "Cart retrieved", "data": snap})
}

// @Summary Add item to cart
// @Description Add a product to the cart; adding the same product again increases its quantity
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Cart session id"
// @Param request body models.AddCartItemRequest true "Item to add"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	product, err := ctrl.products.GetByID(c.Request.Context(), req.ProductID)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}
	if !product.InStock {
		c.JSON(400, gin.H{"success": false, "message": "Product is out of stock"})
		return
	}

	snap := ctrl.carts.Add(c.Request.Context(), sessionID(c), cart.Product{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price,
		Image:       product.Image,
		Description: product.Description,
	}, req.Quantity)

	c.JSON(200, gin.H{"success": true, "message": "Item added to cart", "data": snap})
}

// @Summary Update cart item quantity
// @Description Set the absolute quantity of a cart line; zero or less removes it
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Cart session id"
// @Param id path int true "Product ID"
// @Param request body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	snap := ctrl.carts.UpdateQuantity(c.Request.Context(), sessionID(c), id, req.Quantity)
	c.JSON(200, gin.H{"success": true, "message": "Cart updated", "data": snap})
}

// @Summary Remove cart item
// @Description Remove a line from the cart; absent ids are a no-op
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Cart session id"
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	snap := ctrl.carts.Remove(c.Request.Context(), sessionID(c), id)
	c.JSON(200, gin.H{"success": true, "message": "Item removed", "data": snap})
}

// @Summary Clear cart
// @Description Remove every line from the session's cart
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Cart session id"
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	snap := ctrl.carts.Clear(c.Request.Context(), sessionID(c))
	c.JSON(200, gin.H{"success": true, "message": "Cart cleared", "data": snap})
}

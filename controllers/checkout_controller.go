package controllers

import (
	"strconv"

	"promo-shop/models"
	"promo-shop/repositories"
	"promo-shop/services"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	checkoutSvc *services.CheckoutService
	orderRepo   *repositories.OrderRepository
}

func NewCheckoutController(checkoutSvc *services.CheckoutService) *CheckoutController {
	return &CheckoutController{
		checkoutSvc: checkoutSvc,
		orderRepo:   repositories.NewOrderRepository(),
	}
}

// @Summary Checkout
// @Description Place an order from the session's cart. The cart is cleared only when the order is stored successfully.
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Cart session id"
// @Param request body models.CheckoutRequest true "Shipping and payment details"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	userID := c.GetInt("user_id")
	email := c.GetString("user_email")

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	order, err := ctrl.checkoutSvc.PlaceOrder(c.Request.Context(), sessionID(c), userID, email, req)
	if err != nil {
		if err == services.ErrEmptyCart {
			c.JSON(400, gin.H{"success": false, "message": "Cart is empty"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to place order"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Order placed successfully", "data": order})
}

// @Summary Order totals preview
// @Description Compute subtotal, shipping, tax and total for the session's current cart
// @Tags Checkout
// @Produce json
// @Param X-Session-ID header string false "Cart session id"
// @Success 200 {object} models.Response
// @Router /checkout/totals [get]
func (ctrl *CheckoutController) GetTotals(c *gin.Context) {
	snap := ctrl.checkoutSvc.CartSnapshot(c.Request.Context(), sessionID(c))
	totals := services.ComputeOrderTotals(snap.Total)
	c.JSON(200, gin.H{"success": true, "message": "Totals computed", "data": totals})
}

// @Summary Get my orders
// @Description Get the authenticated user's order history
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginatedResponse
// @Router /orders [get]
func (ctrl *CheckoutController) GetMyOrders(c *gin.Context) {
	userID := c.GetInt("user_id")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	orders, total, err := ctrl.orderRepo.GetByUser(c.Request.Context(), userID, page, limit)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get orders"})
		return
	}

	c.JSON(200, models.PaginatedResponse{
		Success: true,
		Message: "Orders retrieved",
		Data:    orders,
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: (total + limit - 1) / limit,
		},
	})
}

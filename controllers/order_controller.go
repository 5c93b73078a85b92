package controllers

import (
	"strconv"

	"promo-shop/models"
	"promo-shop/repositories"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orderRepo *repositories.OrderRepository
}

func NewOrderController() *OrderController {
	return &OrderController{
		orderRepo: repositories.NewOrderRepository(),
	}
}

func getPaginationParams(c *gin.Context, defaultLimit int) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// @Summary Get all orders
// @Description Get all orders with pagination (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param status query string false "Filter by status"
// @Param search query string false "Search by order number"
// @Success 200 {object} models.PaginatedResponse
// @Router /admin/orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	page, limit := getPaginationParams(c, 10)
	status := c.Query("status")
	search := c.Query("search")

	orders, total, err := ctrl.orderRepo.GetAll(c.Request.Context(), page, limit, status, search)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get orders"})
		return
	}

	c.JSON(200, models.PaginatedResponse{
		Success: true,
		Message: "Orders retrieved successfully",
		Data:    orders,
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: (total + limit - 1) / limit,
		},
	})
}

// @Summary Get order by ID
// @Description Get order details including line items (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}

	order, err := ctrl.orderRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order retrieved successfully", "data": order})
}

// @Summary Update order status
// @Description Update order status (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id}/status [patch]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	if err := ctrl.orderRepo.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		if err == repositories.ErrNotFound {
			c.JSON(404, gin.H{"success": false, "message": "Order not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to update order status"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order status updated"})
}

package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"promo-shop/config"
	"promo-shop/models"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Create persists the order and its line items in one transaction. The
// order is either fully stored or not stored at all; callers rely on that
// to decide whether the cart may be cleared.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	err = tx.QueryRow(ctx, `
		INSERT INTO orders (order_number, user_id, status, shipping_address, city, province, postal_code, country,
		                    payment_method, subtotal, shipping, tax, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
		RETURNING id, created_at, updated_at`,
		order.OrderNumber, order.UserID, order.Status,
		order.ShippingAddress, order.City, order.Province, order.PostalCode, order.Country,
		order.PaymentMethod, order.Subtotal, order.Shipping, order.Tax, order.Total, now,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO order_items (order_id, product_id, name, price, quantity, image)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			item.OrderID, item.ProductID, item.Name, item.Price, item.Quantity, item.Image,
		).Scan(&item.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) GetAll(ctx context.Context, page, limit int, status, search string) ([]models.Order, int, error) {
	offset := (page - 1) * limit

	whereConditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if status != "" && status != "All" {
		whereConditions = append(whereConditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, status)
		argIndex++
	}
	if search != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("order_number ILIKE $%d", argIndex))
		args = append(args, "%"+search+"%")
		argIndex++
	}

	where := ""
	if len(whereConditions) > 0 {
		where = " WHERE " + strings.Join(whereConditions, " AND ")
	}

	var total int
	if err := config.DB.QueryRow(ctx, "SELECT COUNT(*) FROM orders"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, order_number, user_id, status, shipping_address, city, province, postal_code, country,
	                 payment_method, subtotal, shipping, tax, total, created_at, updated_at
	          FROM orders` + where + fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := scanOrder(rows.Scan, &o); err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	return orders, total, rows.Err()
}

func (r *OrderRepository) GetByID(ctx context.Context, id int) (*models.Order, error) {
	query := `SELECT id, order_number, user_id, status, shipping_address, city, province, postal_code, country,
	                 payment_method, subtotal, shipping, tax, total, created_at, updated_at
	          FROM orders WHERE id = $1`

	var o models.Order
	if err := scanOrder(func(dest ...interface{}) error {
		return config.DB.QueryRow(ctx, query, id).Scan(dest...)
	}, &o); err != nil {
		return nil, err
	}

	items, err := r.getItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *OrderRepository) GetByUser(ctx context.Context, userID, page, limit int) ([]models.Order, int, error) {
	offset := (page - 1) * limit

	var total int
	if err := config.DB.QueryRow(ctx, "SELECT COUNT(*) FROM orders WHERE user_id = $1", userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, order_number, user_id, status, shipping_address, city, province, postal_code, country,
	                 payment_method, subtotal, shipping, tax, total, created_at, updated_at
	          FROM orders WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := config.DB.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := scanOrder(rows.Scan, &o); err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	return orders, total, rows.Err()
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	tag, err := config.DB.Exec(ctx,
		"UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3", status, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *OrderRepository) getItems(ctx context.Context, orderID int) ([]models.OrderItem, error) {
	rows, err := config.DB.Query(ctx,
		"SELECT id, order_id, product_id, name, price, quantity, COALESCE(image, '') FROM order_items WHERE order_id = $1 ORDER BY id",
		orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Name, &item.Price, &item.Quantity, &item.Image); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanOrder(scan func(dest ...interface{}) error, o *models.Order) error {
	return scan(
		&o.ID, &o.OrderNumber, &o.UserID, &o.Status,
		&o.ShippingAddress, &o.City, &o.Province, &o.PostalCode, &o.Country,
		&o.PaymentMethod, &o.Subtotal, &o.Shipping, &o.Tax, &o.Total,
		&o.CreatedAt, &o.UpdatedAt,
	)
}

package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"promo-shop/config"
	"promo-shop/models"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func (r *ProductRepository) GetAll(ctx context.Context, page, limit int, category, search string) ([]models.Product, int, error) {
	offset := (page - 1) * limit

	whereConditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if category != "" && category != "All" {
		whereConditions = append(whereConditions, fmt.Sprintf("category = $%d", argIndex))
		args = append(args, category)
		argIndex++
	}
	if search != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+search+"%")
		argIndex++
	}

	where := ""
	if len(whereConditions) > 0 {
		where = " WHERE " + strings.Join(whereConditions, " AND ")
	}

	var total int
	if err := config.DB.QueryRow(ctx, "SELECT COUNT(*) FROM products"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, name, description, price, category, COALESCE(image, ''), COALESCE(cloudinary_id, ''), in_stock, created_at, updated_at
	          FROM products` + where + fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Image, &p.CloudinaryID, &p.InStock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, rows.Err()
}

func (r *ProductRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	query := `SELECT id, name, description, price, category, COALESCE(image, ''), COALESCE(cloudinary_id, ''), in_stock, created_at, updated_at
	          FROM products WHERE id = $1`

	var p models.Product
	err := config.DB.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Image, &p.CloudinaryID, &p.InStock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) GetCategories(ctx context.Context) ([]models.CategorySummary, error) {
	rows, err := config.DB.Query(ctx,
		"SELECT category, COUNT(*) FROM products WHERE in_stock = true GROUP BY category ORDER BY category")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.CategorySummary{}
	for rows.Next() {
		var cs models.CategorySummary
		if err := rows.Scan(&cs.Category, &cs.Count); err != nil {
			return nil, err
		}
		categories = append(categories, cs)
	}
	return categories, rows.Err()
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (name, description, price, category, image, cloudinary_id, in_stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(ctx, query,
		product.Name, product.Description, product.Price, product.Category,
		product.Image, product.CloudinaryID, product.InStock, now,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	query := `
		UPDATE products
		SET name = $1, description = $2, price = $3, category = $4, image = $5, cloudinary_id = $6, in_stock = $7, updated_at = $8
		WHERE id = $9
		RETURNING updated_at
	`
	return config.DB.QueryRow(ctx, query,
		product.Name, product.Description, product.Price, product.Category,
		product.Image, product.CloudinaryID, product.InStock, time.Now(), product.ID,
	).Scan(&product.UpdatedAt)
}

func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	tag, err := config.DB.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

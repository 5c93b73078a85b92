package services

import (
	"context"
	"math"

	"promo-shop/models"
	"promo-shop/repositories"
)

type ProductService struct {
	productRepo *repositories.ProductRepository
}

func NewProductService() *ProductService {
	return &ProductService{
		productRepo: repositories.NewProductRepository(),
	}
}

func (s *ProductService) GetAll(ctx context.Context, page, limit int, category, search string) (*models.PaginatedResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 12
	}
	if limit > 100 {
		limit = 100
	}

	products, total, err := s.productRepo.GetAll(ctx, page, limit, category, search)
	if err != nil {
		return nil, err
	}

	return &models.PaginatedResponse{
		Success: true,
		Message: "Products retrieved successfully",
		Data:    products,
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

func (s *ProductService) GetByID(ctx context.Context, id int) (*models.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *ProductService) GetCategories(ctx context.Context) ([]models.CategorySummary, error) {
	return s.productRepo.GetCategories(ctx)
}

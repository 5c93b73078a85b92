package repositories

import (
	"context"
	"time"

	"promo-shop/config"
	"promo-shop/models"
)

type ContentRepository struct{}

func NewContentRepository() *ContentRepository {
	return &ContentRepository{}
}

func (r *ContentRepository) GetAllContent(ctx context.Context) ([]models.SiteContent, error) {
	rows, err := config.DB.Query(ctx, `
		SELECT id, section, COALESCE(title, ''), COALESCE(description, ''), COALESCE(image, ''), COALESCE(content, ''), sort_order, created_at, updated_at
		FROM site_content ORDER BY sort_order, section`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sections := []models.SiteContent{}
	for rows.Next() {
		var sc models.SiteContent
		if err := rows.Scan(&sc.ID, &sc.Section, &sc.Title, &sc.Description, &sc.Image, &sc.Content, &sc.SortOrder, &sc.CreatedAt, &sc.UpdatedAt); err != nil {
			return nil, err
		}
		sections = append(sections, sc)
	}
	return sections, rows.Err()
}

// UpsertContent inserts the section or overwrites it when the section key
// already exists, matching the dashboard's save-over-existing behavior.
func (r *ContentRepository) UpsertContent(ctx context.Context, sc *models.SiteContent) error {
	now := time.Now()
	return config.DB.QueryRow(ctx, `
		INSERT INTO site_content (section, title, description, image, content, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		ON CONFLICT (section) DO UPDATE
		SET title = EXCLUDED.title, description = EXCLUDED.description, image = EXCLUDED.image,
		    content = EXCLUDED.content, sort_order = EXCLUDED.sort_order, updated_at = EXCLUDED.updated_at
		RETURNING id, created_at, updated_at`,
		sc.Section, sc.Title, sc.Description, sc.Image, sc.Content, sc.SortOrder, now,
	).Scan(&sc.ID, &sc.CreatedAt, &sc.UpdatedAt)
}

func (r *ContentRepository) DeleteContent(ctx context.Context, id int) error {
	tag, err := config.DB.Exec(ctx, "DELETE FROM site_content WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ContentRepository) GetAllCatalogues(ctx context.Context) ([]models.Catalogue, error) {
	rows, err := config.DB.Query(ctx, `
		SELECT id, name, category, pdf_url, COALESCE(description, ''), created_at, updated_at
		FROM catalogues ORDER BY category, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	catalogues := []models.Catalogue{}
	for rows.Next() {
		var cat models.Catalogue
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Category, &cat.PDFURL, &cat.Description, &cat.CreatedAt, &cat.UpdatedAt); err != nil {
			return nil, err
		}
		catalogues = append(catalogues, cat)
	}
	return catalogues, rows.Err()
}

func (r *ContentRepository) CreateCatalogue(ctx context.Context, cat *models.Catalogue) error {
	now := time.Now()
	return config.DB.QueryRow(ctx, `
		INSERT INTO catalogues (name, category, pdf_url, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id, created_at, updated_at`,
		cat.Name, cat.Category, cat.PDFURL, cat.Description, now,
	).Scan(&cat.ID, &cat.CreatedAt, &cat.UpdatedAt)
}

func (r *ContentRepository) UpdateCatalogue(ctx context.Context, cat *models.Catalogue) error {
	return config.DB.QueryRow(ctx, `
		UPDATE catalogues
		SET name = $1, category = $2, pdf_url = $3, description = $4, updated_at = $5
		WHERE id = $6
		RETURNING updated_at`,
		cat.Name, cat.Category, cat.PDFURL, cat.Description, time.Now(), cat.ID,
	).Scan(&cat.UpdatedAt)
}

func (r *ContentRepository) DeleteCatalogue(ctx context.Context, id int) error {
	tag, err := config.DB.Exec(ctx, "DELETE FROM catalogues WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

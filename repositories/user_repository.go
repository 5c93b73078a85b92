package repositories

import (
	"context"
	"errors"
	"time"

	"promo-shop/config"
	"promo-shop/models"

	"github.com/jackc/pgx/v5"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

const userColumns = `id, email, password, role, first_name, last_name, COALESCE(phone, ''),
	COALESCE(address, ''), COALESCE(city, ''), COALESCE(province, ''), COALESCE(postal_code, ''), COALESCE(country, ''),
	created_at, updated_at`

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := config.DB.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1", email,
	).Scan(&u.ID, &u.Email, &u.Password, &u.Role, &u.FirstName, &u.LastName, &u.Phone,
		&u.Address, &u.City, &u.Province, &u.PostalCode, &u.Country, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	var u models.User
	err := config.DB.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id,
	).Scan(&u.ID, &u.Email, &u.Password, &u.Role, &u.FirstName, &u.LastName, &u.Phone,
		&u.Address, &u.City, &u.Province, &u.PostalCode, &u.Country, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	now := time.Now()
	return config.DB.QueryRow(ctx, `
		INSERT INTO users (email, password, role, first_name, last_name, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING id, created_at, updated_at`,
		user.Email, user.Password, user.Role, user.FirstName, user.LastName, user.Phone, now,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	return config.DB.QueryRow(ctx, `
		UPDATE users
		SET first_name = $1, last_name = $2, phone = $3, address = $4, city = $5,
		    province = $6, postal_code = $7, country = $8, updated_at = $9
		WHERE id = $10
		RETURNING updated_at`,
		user.FirstName, user.LastName, user.Phone, user.Address, user.City,
		user.Province, user.PostalCode, user.Country, time.Now(), user.ID,
	).Scan(&user.UpdatedAt)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int, hashedPassword string) error {
	tag, err := config.DB.Exec(ctx,
		"UPDATE users SET password = $1, updated_at = $2 WHERE id = $3", hashedPassword, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

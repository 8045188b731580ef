package store

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fbai-pro/backend/internal/models"
)

// psql builds queries with Postgres-style $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const productColumns = "id, user_id, asin, title, description, price, created_at"

// PostgresStore handles user and product CRUD against PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Migrate creates the users and products tables if they don't exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id                UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email             VARCHAR(255) UNIQUE NOT NULL,
			password_hash     VARCHAR(255) NOT NULL,
			subscription_tier VARCHAR(20)  NOT NULL DEFAULT 'free',
			created_at        TIMESTAMPTZ  DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id          BIGSERIAL PRIMARY KEY,
			user_id     UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			asin        VARCHAR(20),
			title       TEXT NOT NULL,
			description TEXT,
			price       DOUBLE PRECISION,
			created_at  TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_products_user_created
			ON products (user_id, created_at DESC)`,
	}
	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) CreateUser(ctx context.Context, email, passwordHash string) (*models.User, error) {
	var u models.User
	err := s.pool.QueryRow(ctx,
		`INSERT INTO users (email, password_hash)
		 VALUES ($1, $2)
		 RETURNING id, email, subscription_tier, created_at`,
		email, passwordHash,
	).Scan(&u.ID, &u.Email, &u.SubscriptionTier, &u.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &u, nil
}

func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, subscription_tier, created_at
		 FROM users WHERE email = $1`, email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.SubscriptionTier, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *PostgresStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := s.pool.QueryRow(ctx,
		`SELECT id, email, subscription_tier, created_at
		 FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Email, &u.SubscriptionTier, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *PostgresStore) CreateProduct(ctx context.Context, userID string, req models.CreateProductRequest) (*models.Product, error) {
	query, args, err := psql.Insert("products").
		Columns("user_id", "asin", "title", "description", "price").
		Values(userID, req.ASIN, req.Title, req.Description, req.Price).
		Suffix("RETURNING " + productColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	p, err := s.scanProduct(s.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

// ListProductsByUser returns the user's products, newest first. An unknown
// user simply yields no rows.
func (s *PostgresStore) ListProductsByUser(ctx context.Context, userID string) ([]models.Product, error) {
	query, args, err := psql.Select(productColumns).
		From("products").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := s.scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return products, nil
}

func (s *PostgresStore) GetProduct(ctx context.Context, userID string, id int64) (*models.Product, error) {
	query, args, err := psql.Select(productColumns).
		From("products").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	p, err := s.scanProduct(s.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// UpdateProduct applies a partial update. Only non-nil fields are written;
// the row must belong to userID or ErrNotFound is returned.
func (s *PostgresStore) UpdateProduct(ctx context.Context, userID string, id int64, upd models.UpdateProductRequest) (*models.Product, error) {
	b := psql.Update("products")
	changed := false
	if upd.Title != nil {
		b = b.Set("title", *upd.Title)
		changed = true
	}
	if upd.Description != nil {
		b = b.Set("description", *upd.Description)
		changed = true
	}
	if upd.Price != nil {
		b = b.Set("price", *upd.Price)
		changed = true
	}
	if !changed {
		return s.GetProduct(ctx, userID, id)
	}

	query, args, err := b.
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + productColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	p, err := s.scanProduct(s.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

func (s *PostgresStore) DeleteProduct(ctx context.Context, userID string, id int64) error {
	query, args, err := psql.Delete("products").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) scanProduct(row pgx.Row) (*models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.UserID, &p.ASIN, &p.Title, &p.Description, &p.Price, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

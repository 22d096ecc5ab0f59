package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"

	"jersey-hub/models"
)

// PostgresStore backs the catalog with Postgres. Selected when DATABASE_URL is
// set; the memory store remains the default.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	pgCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DB config: %w", err)
	}
	pgCfg.MaxConns = 25
	pgCfg.MinConns = 5

	pool, err := pgxpool.NewWithConfig(context.Background(), pgCfg)
	if err != nil {
		return nil, fmt.Errorf("DB connection failed: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("DB ping failed: %w", err)
	}

	log.Println("Database connected successfully")

	if err := runMigrations(dsn); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

func runMigrations(dsn string) error {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("failed to open DB for migrations: %w", err)
	}
	defer sqlDB.Close()

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	migrationPath, err := filepath.Abs("database/migration")
	if err != nil {
		return fmt.Errorf("failed to resolve migration path: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+migrationPath, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to initialize migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	log.Println("Database migrations applied (or already up to date)")
	return nil
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

const jerseyColumns = `id, name, price, original_price, image_url, category, COALESCE(tags, '{}'), description, team, season, is_active`

func scanJersey(row pgx.Row) (*models.Jersey, error) {
	var j models.Jersey
	err := row.Scan(&j.ID, &j.Name, &j.Price, &j.OriginalPrice, &j.ImageURL,
		&j.Category, &j.Tags, &j.Description, &j.Team, &j.Season, &j.IsActive)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (s *PostgresStore) ListJerseys(ctx context.Context) ([]models.Jersey, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+jerseyColumns+` FROM jerseys WHERE is_active = true ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jerseys := []models.Jersey{}
	for rows.Next() {
		j, err := scanJersey(rows)
		if err != nil {
			return nil, err
		}
		jerseys = append(jerseys, *j)
	}
	return jerseys, rows.Err()
}

func (s *PostgresStore) GetJersey(ctx context.Context, id int) (*models.Jersey, error) {
	j, err := scanJersey(s.pool.QueryRow(ctx,
		`SELECT `+jerseyColumns+` FROM jerseys WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return j, err
}

func (s *PostgresStore) CreateJersey(ctx context.Context, req models.CreateJerseyRequest) (*models.Jersey, error) {
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	return scanJersey(s.pool.QueryRow(ctx,
		`INSERT INTO jerseys (name, price, original_price, image_url, category, tags, description, team, season, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING `+jerseyColumns,
		req.Name, req.Price, req.OriginalPrice, req.ImageURL, req.Category,
		tags, req.Description, req.Team, req.Season, isActive))
}

func (s *PostgresStore) UpdateJersey(ctx context.Context, id int, req models.UpdateJerseyRequest) (*models.Jersey, error) {
	set := []string{}
	args := []interface{}{}
	n := 1

	add := func(column string, value interface{}) {
		set = append(set, fmt.Sprintf("%s = $%d", column, n))
		args = append(args, value)
		n++
	}

	if req.Name != nil {
		add("name", *req.Name)
	}
	if req.Price != nil {
		add("price", *req.Price)
	}
	if req.OriginalPrice != nil {
		add("original_price", *req.OriginalPrice)
	}
	if req.ImageURL != nil {
		add("image_url", *req.ImageURL)
	}
	if req.Category != nil {
		add("category", *req.Category)
	}
	if req.Tags != nil {
		add("tags", *req.Tags)
	}
	if req.Description != nil {
		add("description", *req.Description)
	}
	if req.Team != nil {
		add("team", *req.Team)
	}
	if req.Season != nil {
		add("season", *req.Season)
	}
	if req.IsActive != nil {
		add("is_active", *req.IsActive)
	}

	if len(set) == 0 {
		return s.GetJersey(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE jerseys SET %s WHERE id = $%d RETURNING `+jerseyColumns,
		strings.Join(set, ", "), n)

	j, err := scanJersey(s.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return j, err
}

func (s *PostgresStore) DeleteJersey(ctx context.Context, id int) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM jerseys WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

const bannerColumns = `id, title, subtitle, image_url, cta_text, cta_link, is_active, display_order`

func scanBanner(row pgx.Row) (*models.Banner, error) {
	var b models.Banner
	err := row.Scan(&b.ID, &b.Title, &b.Subtitle, &b.ImageURL, &b.CTAText,
		&b.CTALink, &b.IsActive, &b.Order)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *PostgresStore) ListBanners(ctx context.Context) ([]models.Banner, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+bannerColumns+` FROM banners WHERE is_active = true ORDER BY display_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	banners := []models.Banner{}
	for rows.Next() {
		b, err := scanBanner(rows)
		if err != nil {
			return nil, err
		}
		banners = append(banners, *b)
	}
	return banners, rows.Err()
}

func (s *PostgresStore) CreateBanner(ctx context.Context, req models.CreateBannerRequest) (*models.Banner, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	order := 0
	if req.Order != nil {
		order = *req.Order
	}

	return scanBanner(s.pool.QueryRow(ctx,
		`INSERT INTO banners (title, subtitle, image_url, cta_text, cta_link, is_active, display_order)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+bannerColumns,
		req.Title, req.Subtitle, req.ImageURL, req.CTAText, req.CTALink, isActive, order))
}

func (s *PostgresStore) UpdateBanner(ctx context.Context, id int, req models.UpdateBannerRequest) (*models.Banner, error) {
	set := []string{}
	args := []interface{}{}
	n := 1

	add := func(column string, value interface{}) {
		set = append(set, fmt.Sprintf("%s = $%d", column, n))
		args = append(args, value)
		n++
	}

	if req.Title != nil {
		add("title", *req.Title)
	}
	if req.Subtitle != nil {
		add("subtitle", *req.Subtitle)
	}
	if req.ImageURL != nil {
		add("image_url", *req.ImageURL)
	}
	if req.CTAText != nil {
		add("cta_text", *req.CTAText)
	}
	if req.CTALink != nil {
		add("cta_link", *req.CTALink)
	}
	if req.IsActive != nil {
		add("is_active", *req.IsActive)
	}
	if req.Order != nil {
		add("display_order", *req.Order)
	}

	if len(set) == 0 {
		b, err := scanBanner(s.pool.QueryRow(ctx,
			`SELECT `+bannerColumns+` FROM banners WHERE id = $1`, id))
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return b, err
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE banners SET %s WHERE id = $%d RETURNING `+bannerColumns,
		strings.Join(set, ", "), n)

	b, err := scanBanner(s.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return b, err
}

func (s *PostgresStore) DeleteBanner(ctx context.Context, id int) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *PostgresStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, jersey_id, customer_name, customer_email, customer_phone, size, status, created_at
		 FROM orders ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.JerseyID, &o.CustomerName, &o.CustomerEmail,
			&o.CustomerPhone, &o.Size, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (s *PostgresStore) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	status := models.OrderStatusPending
	if req.Status != nil {
		status = *req.Status
	}

	var o models.Order
	err := s.pool.QueryRow(ctx,
		`INSERT INTO orders (jersey_id, customer_name, customer_email, customer_phone, size, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, jersey_id, customer_name, customer_email, customer_phone, size, status, created_at`,
		req.JerseyID, req.CustomerName, req.CustomerEmail, req.CustomerPhone,
		req.Size, status, time.Now()).
		Scan(&o.ID, &o.JerseyID, &o.CustomerName, &o.CustomerEmail,
			&o.CustomerPhone, &o.Size, &o.Status, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/crstnhllg/realtor-scraper/config"
	"github.com/crstnhllg/realtor-scraper/models"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(cfg config.Config) (*PostgresStore, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBSSLMode,
	)

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}

	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	store := &PostgresStore{db: db}
	schemaCtx, schemaCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer schemaCancel()
	if err := store.ensureSchema(schemaCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// SaveListings upserts one run's listings keyed by URL and returns how many
// rows were written.
func (s *PostgresStore) SaveListings(ctx context.Context, zip string, listings []models.Listing) (int, error) {
	if len(listings) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO listings (zip, price, beds, baths, square_footage, lot_size, address, url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (url) DO UPDATE
		SET
			zip = EXCLUDED.zip,
			price = EXCLUDED.price,
			beds = EXCLUDED.beds,
			baths = EXCLUDED.baths,
			square_footage = EXCLUDED.square_footage,
			lot_size = EXCLUDED.lot_size,
			address = EXCLUDED.address,
			updated_at = NOW()`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert statement: %w", err)
	}
	defer stmt.Close()

	total := 0
	for _, l := range listings {
		if l.URL == "" {
			continue
		}
		if _, err = stmt.ExecContext(
			ctx,
			zip,
			l.Price,
			l.Beds,
			l.Baths,
			l.SquareFootage,
			l.LotSize,
			l.Address,
			l.URL,
		); err != nil {
			return 0, fmt.Errorf("insert listing %q: %w", l.URL, err)
		}
		total++
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}

	return total, nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS listings (
			id BIGSERIAL PRIMARY KEY,
			zip TEXT NOT NULL,
			price TEXT NOT NULL DEFAULT '',
			beds TEXT NOT NULL DEFAULT '',
			baths TEXT NOT NULL DEFAULT '',
			square_footage TEXT NOT NULL DEFAULT '',
			lot_size TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL,
			url TEXT NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_listings_zip ON listings(zip);
	`)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

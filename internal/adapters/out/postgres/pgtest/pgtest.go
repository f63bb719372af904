// Package pgtest starts a disposable PostgreSQL for integration tests and
// applies the storefront schema to it.
package pgtest

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"storefront/internal/adapters/out/postgres/migrations"
	"storefront/internal/core/domain/model/kernel"
)

const image = "postgres:15-alpine"

type Database struct {
	container *tcpostgres.PostgresContainer
	SQL       *sql.DB
	Gorm      *gorm.DB
}

// Start runs a container, connects through lib/pq and migrates the schema.
func Start(ctx context.Context) (*Database, error) {
	container, err := tcpostgres.Run(ctx,
		image,
		tcpostgres.WithDatabase("storefront"),
		tcpostgres.WithUsername("storefront"),
		tcpostgres.WithPassword("storefront"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	db := &Database{container: container}
	if err := db.connect(ctx); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}
	return db, nil
}

func (d *Database) connect(ctx context.Context) error {
	dsn, err := d.container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return err
	}

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return err
	}

	if err := migrations.Up(sqlDB, zap.NewNop()); err != nil {
		return err
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		return err
	}

	d.SQL = sqlDB
	d.Gorm = gormDB
	return nil
}

// Truncate empties every table and resets the id sequences.
func (d *Database) Truncate(ctx context.Context) error {
	_, err := d.SQL.ExecContext(ctx,
		"TRUNCATE TABLE payment_products, shipments, paypay_payments, addresses, products, users RESTART IDENTITY CASCADE")
	return err
}

func (d *Database) Close(ctx context.Context) error {
	if d.SQL != nil {
		_ = d.SQL.Close()
	}
	return d.container.Terminate(ctx)
}

func (d *Database) SeedUser(ctx context.Context) (kernel.UUID, error) {
	id := uuid.New()
	if _, err := d.SQL.ExecContext(ctx,
		"INSERT INTO users (id, email) VALUES ($1, $2)", id, id.String()+"@example.com"); err != nil {
		return kernel.UUID{}, err
	}
	return kernel.UUIDFromGoogle(id)
}

func (d *Database) SeedProduct(ctx context.Context, name string, price int64) (int64, error) {
	var id int64
	err := d.SQL.QueryRowContext(ctx,
		"INSERT INTO products (name, price, stock) VALUES ($1, $2, 10) RETURNING id", name, price).Scan(&id)
	return id, err
}

func (d *Database) SetProductPrice(ctx context.Context, id, price int64) error {
	_, err := d.SQL.ExecContext(ctx, "UPDATE products SET price = $1, updated_at = now() WHERE id = $2", price, id)
	return err
}

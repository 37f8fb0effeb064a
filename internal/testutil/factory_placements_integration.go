//go:build integration

package testutil

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/wb_warehouse/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// SeedProduct вставляет товар с заданным id (явные id удобны для сценарных тестов).
func SeedProduct(ctx context.Context, pool *pgxpool.Pool, id int64) error {
	_, err := pool.Exec(ctx,
		`INSERT INTO products (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
		id, "product-"+UniqSuffix(),
	)
	if err != nil {
		return fmt.Errorf("seed product %d: %w", id, err)
	}
	return nil
}

// SeedWarehouse вставляет склад с заданным id.
func SeedWarehouse(ctx context.Context, pool *pgxpool.Pool, id int64) error {
	_, err := pool.Exec(ctx,
		`INSERT INTO warehouses (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
		id, "warehouse-"+UniqSuffix(),
	)
	if err != nil {
		return fmt.Errorf("seed warehouse %d: %w", id, err)
	}
	return nil
}

// SeedOrder вставляет невыполненный заказ с заданным id.
func SeedOrder(ctx context.Context, pool *pgxpool.Pool, id, productID int64, amount int, createdAt time.Time) error {
	_, err := pool.Exec(ctx,
		`INSERT INTO orders (id, product_id, amount, created_at) VALUES ($1, $2, $3, $4)`,
		id, productID, amount, createdAt,
	)
	if err != nil {
		return fmt.Errorf("seed order %d: %w", id, err)
	}
	return nil
}

// SeedFulfilledOrder вставляет уже выполненный заказ.
func SeedFulfilledOrder(ctx context.Context, pool *pgxpool.Pool, id, productID int64, amount int, createdAt, fulfilledAt time.Time) error {
	_, err := pool.Exec(ctx,
		`INSERT INTO orders (id, product_id, amount, created_at, fulfilled_at) VALUES ($1, $2, $3, $4, $5)`,
		id, productID, amount, createdAt, fulfilledAt,
	)
	if err != nil {
		return fmt.Errorf("seed fulfilled order %d: %w", id, err)
	}
	return nil
}

// Scenario — базовый набор сущностей для сценарных тестов:
// товар, склад и один невыполненный заказ.
type Scenario struct {
	ProductID   int64
	WarehouseID int64
	OrderID     int64
	Amount      int
}

// SeedScenario вставляет товар, склад и невыполненный заказ одним вызовом.
func SeedScenario(ctx context.Context, pool *pgxpool.Pool, sc Scenario) error {
	if err := SeedProduct(ctx, pool, sc.ProductID); err != nil {
		return err
	}
	if err := SeedWarehouse(ctx, pool, sc.WarehouseID); err != nil {
		return err
	}
	return SeedOrder(ctx, pool, sc.OrderID, sc.ProductID, sc.Amount, time.Now().UTC())
}

// MakePlacementRequest — JSON-представление запроса на размещение (для Kafka-тестов).
func MakePlacementRequest(warehouseID, productID int64, amount int) []byte {
	raw, _ := json.Marshal(domain.PlacementRequest{
		WarehouseID: warehouseID,
		ProductID:   productID,
		Amount:      amount,
	})
	return raw
}

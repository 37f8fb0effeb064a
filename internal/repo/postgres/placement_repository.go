package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/wb_warehouse/internal/domain"
	"github.com/Gunvolt24/wb_warehouse/internal/ports"
)

// Проверка, что PlacementRepository закрывает оба шва хранилища.
var (
	_ ports.PlacementReads  = (*PlacementRepository)(nil)
	_ ports.PlacementWriter = (*PlacementRepository)(nil)
)

// Код ошибки Postgres: нарушение уникального ограничения.
const pgUniqueViolation = "23505"

// PlacementRepository — реализация хранилища размещений на Postgres (pgxpool).
// Читающие проверки и атомарная запись живут на одном конкретном типе,
// но наружу отдаются отдельными интерфейсами.
type PlacementRepository struct {
	pool *pgxpool.Pool
}

// NewPlacementRepository — конструктор PlacementRepository.
func NewPlacementRepository(pool *pgxpool.Pool) *PlacementRepository {
	return &PlacementRepository{pool: pool}
}

// ProductExists — существует ли товар.
func (r *PlacementRepository) ProductExists(ctx context.Context, productID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)
	`, productID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check product: %w", err)
	}
	return exists, nil
}

// WarehouseExists — существует ли склад.
func (r *PlacementRepository) WarehouseExists(ctx context.Context, warehouseID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM warehouses WHERE id = $1)
	`, warehouseID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check warehouse: %w", err)
	}
	return exists, nil
}

// FindEligibleOrder — самый старый невыполненный заказ на товар с количеством >= amount.
// При неоднозначности берём самый старый по (created_at, id). Если подходящего нет — (nil, nil).
func (r *PlacementRepository) FindEligibleOrder(ctx context.Context, productID int64, amount int) (*domain.Order, error) {
	var order domain.Order
	err := r.pool.QueryRow(ctx, `
		SELECT id, product_id, amount, created_at, fulfilled_at
		FROM orders
		WHERE product_id = $1 AND amount >= $2 AND fulfilled_at IS NULL
		ORDER BY created_at, id
		LIMIT 1
	`, productID, amount).Scan(&order.ID, &order.ProductID, &order.Amount, &order.CreatedAt, &order.FulfilledAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select eligible order: %w", err)
	}
	return &order, nil
}

// HasPlacement — существует ли размещение для заказа.
func (r *PlacementRepository) HasPlacement(ctx context.Context, orderID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM placements WHERE order_id = $1)
	`, orderID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check placement: %w", err)
	}
	return exists, nil
}

// GetPlacement — размещение по id. Если не нашли, возвращает (nil, nil).
func (r *PlacementRepository) GetPlacement(ctx context.Context, id int64) (*domain.Placement, error) {
	var p domain.Placement
	err := r.pool.QueryRow(ctx, `
		SELECT id, warehouse_id, product_id, order_id, created_at, amount, price
		FROM placements WHERE id = $1
	`, id).Scan(&p.ID, &p.WarehouseID, &p.ProductID, &p.OrderID, &p.CreatedAt, &p.Amount, &p.Price)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select placement: %w", err)
	}
	return &p, nil
}

// ListByWarehouse — постраничный список размещений склада (свежие первыми).
func (r *PlacementRepository) ListByWarehouse(ctx context.Context, warehouseID int64, limit, offset int) ([]*domain.Placement, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, warehouse_id, product_id, order_id, created_at, amount, price
		FROM placements
		WHERE warehouse_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, warehouseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select warehouse placements: %w", err)
	}
	defer rows.Close()

	placements := make([]*domain.Placement, 0, limit)
	for rows.Next() {
		p := &domain.Placement{}
		if err := rows.Scan(&p.ID, &p.WarehouseID, &p.ProductID, &p.OrderID, &p.CreatedAt, &p.Amount, &p.Price); err != nil {
			return nil, fmt.Errorf("scan placement: %w", err)
		}
		placements = append(placements, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("placements rows: %w", err)
	}
	return placements, nil
}

// LastN — последние N размещений (для прогрева кэша).
func (r *PlacementRepository) LastN(ctx context.Context, n int) ([]*domain.Placement, error) {
	if n <= 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, warehouse_id, product_id, order_id, created_at, amount, price
		FROM placements
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, n)
	if err != nil {
		return nil, fmt.Errorf("select last placements: %w", err)
	}
	defer rows.Close()

	var result []*domain.Placement
	for rows.Next() {
		p := &domain.Placement{}
		if err := rows.Scan(&p.ID, &p.WarehouseID, &p.ProductID, &p.OrderID, &p.CreatedAt, &p.Amount, &p.Price); err != nil {
			return nil, fmt.Errorf("scan placement: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("last rows: %w", err)
	}
	return result, nil
}

// WritePlacement — транзакционно помечает заказ выполненным и вставляет размещение.
// Либо фиксируются оба изменения, либо ни одного.
//
// Два уровня защиты от двойного размещения:
//  1. guard в UPDATE: fulfilled_at выставляется только если оно ещё NULL;
//     ноль затронутых строк означает, что заказ уже выполнен — ErrAlreadyPlaced;
//  2. уникальный индекс placements(order_id): при гонке двух транзакций проигравшая
//     получает 23505, который переводится в ErrAlreadyPlaced.
//
// При отмене контекста транзакция откатывается целиком (deferred Rollback).
func (r *PlacementRepository) WritePlacement(ctx context.Context, p *domain.Placement) (int64, error) {
	if p == nil || p.OrderID <= 0 {
		return 0, errors.New("placement is empty or order_id is required")
	}

	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer func() {
		// При уже завершённой транзакции Rollback вернёт ErrTxClosed — игнорируем.
		if rbErr := transaction.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			_ = rbErr
		}
	}()

	// 1) Заказ помечается выполненным только один раз.
	tag, err := transaction.Exec(ctx, `
		UPDATE orders SET fulfilled_at = $2
		WHERE id = $1 AND fulfilled_at IS NULL
	`, p.OrderID, p.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("fulfill order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return 0, domain.ErrAlreadyPlaced
	}

	// 2) Вставка размещения; id присваивает БД.
	var id int64
	err = transaction.QueryRow(ctx, `
		INSERT INTO placements (warehouse_id, product_id, order_id, created_at, amount, price)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, p.WarehouseID, p.ProductID, p.OrderID, p.CreatedAt, p.Amount, p.Price).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return 0, domain.ErrAlreadyPlaced
		}
		return 0, fmt.Errorf("insert placement: %w", err)
	}

	if err := transaction.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

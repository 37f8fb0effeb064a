package ports

import (
	"context"

	"github.com/Gunvolt24/wb_warehouse/internal/domain"
)

// PlacementReads — читающие операции хранилища, которыми пользуется
// оркестратор перед записью. Каждый вызов идёт в актуальное состояние БД,
// результаты не кэшируются.
type PlacementReads interface {
	// ProductExists — существует ли товар с данным идентификатором.
	ProductExists(ctx context.Context, productID int64) (bool, error)

	// WarehouseExists — существует ли склад с данным идентификатором.
	WarehouseExists(ctx context.Context, warehouseID int64) (bool, error)

	// FindEligibleOrder — самый старый невыполненный заказ на товар
	// с количеством >= amount. Если подходящего нет — (nil, nil).
	FindEligibleOrder(ctx context.Context, productID int64, amount int) (*domain.Order, error)

	// HasPlacement — существует ли размещение для заказа.
	HasPlacement(ctx context.Context, orderID int64) (bool, error)

	// GetPlacement — размещение по идентификатору; (nil, nil), если записи нет.
	GetPlacement(ctx context.Context, id int64) (*domain.Placement, error)

	// ListByWarehouse — постраничный список размещений склада.
	ListByWarehouse(ctx context.Context, warehouseID int64, limit, offset int) ([]*domain.Placement, error)

	// LastN — последние N размещений (для прогрева кэша).
	LastN(ctx context.Context, n int) ([]*domain.Placement, error)
}

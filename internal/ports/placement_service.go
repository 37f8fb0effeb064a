package ports

import (
	"context"

	"github.com/Gunvolt24/wb_warehouse/internal/domain"
)

// PlacementService — прикладной контракт, который потребляет HTTP-слой.
type PlacementService interface {
	// RegisterPlacement — зарегистрировать размещение товара на складе.
	// Возвращает идентификатор нового размещения либо одну из типизированных
	// ошибок domain (NotFound/AlreadyPlaced/WriteFailed) или validate.ErrInvalidRequest.
	RegisterPlacement(ctx context.Context, warehouseID, productID int64, amount int) (int64, error)

	// GetPlacement — размещение по id; (nil, nil), если записи нет.
	GetPlacement(ctx context.Context, id int64) (*domain.Placement, error)

	// PlacementsByWarehouse — постраничный список размещений склада.
	PlacementsByWarehouse(ctx context.Context, warehouseID int64, limit, offset int) ([]*domain.Placement, error)
}

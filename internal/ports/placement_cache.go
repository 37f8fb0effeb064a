package ports

import (
	"context"

	"github.com/Gunvolt24/wb_warehouse/internal/domain"
)

// PlacementCache — кэш размещений по идентификатору.
// Требования к реализации: потокобезопасность; доступ по ключу не хуже O(1);
// возврат копий сущности.
type PlacementCache interface {
	// Get — вернуть размещение по id; (p, true) при попадании, (nil, false) при промахе/истечении.
	Get(ctx context.Context, id int64) (*domain.Placement, bool)

	// Set — сохранить/обновить размещение в кэше.
	Set(ctx context.Context, p *domain.Placement) error

	// WarmUp — массовая загрузка кэша (например, при старте).
	WarmUp(ctx context.Context, placements []*domain.Placement) error
}

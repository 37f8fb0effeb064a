package ports

import (
	"context"

	"github.com/Gunvolt24/wb_warehouse/internal/domain"
)

// PlacementWriter — атомарная запись размещения. Отдельный шов от PlacementReads:
// при появлении альтернативного хранилища читающая и пишущая части заменяются
// независимо.
type PlacementWriter interface {
	// WritePlacement — в одной транзакции помечает заказ выполненным
	// (только если он ещё не выполнен) и вставляет запись размещения.
	// Возвращает присвоенный БД идентификатор размещения.
	// Либо фиксируются оба изменения, либо ни одного.
	//
	// Возвращает domain.ErrAlreadyPlaced, если заказ уже выполнен или
	// размещение для него уже существует (уникальный индекс по order_id).
	WritePlacement(ctx context.Context, p *domain.Placement) (int64, error)
}

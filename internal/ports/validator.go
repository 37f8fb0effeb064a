package ports

import (
	"context"

	"github.com/Gunvolt24/wb_warehouse/internal/domain"
)

// RequestValidator — валидация входящего запроса на размещение.
type RequestValidator interface {
	Validate(ctx context.Context, req *domain.PlacementRequest) error
}

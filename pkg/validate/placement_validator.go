package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/wb_warehouse/internal/domain"
	"github.com/Gunvolt24/wb_warehouse/internal/ports"
)

// Проверка, что PlacementValidator удовлетворяет интерфейсу RequestValidator.
var _ ports.RequestValidator = (*PlacementValidator)(nil)

// ErrInvalidRequest — базовая (sentinel error) ошибка валидации запроса.
var ErrInvalidRequest = errors.New("placement request validation failed")

// PlacementValidator — валидация запроса на размещение.
// Возвращает ErrInvalidRequest (с обёрнутой причиной) при любой проблеме.
type PlacementValidator struct{}

// NewPlacementValidator — конструктор PlacementValidator.
func NewPlacementValidator() *PlacementValidator { return &PlacementValidator{} }

// Validate — проверяет корректность полей запроса.
// Все три идентификатора/количества должны быть положительными.
func (v *PlacementValidator) Validate(_ context.Context, req *domain.PlacementRequest) error {
	if req == nil {
		return fmt.Errorf("%w: запрос не может быть nil", ErrInvalidRequest)
	}
	if req.WarehouseID <= 0 {
		return fmt.Errorf("%w: warehouse_id должен быть положительным", ErrInvalidRequest)
	}
	if req.ProductID <= 0 {
		return fmt.Errorf("%w: product_id должен быть положительным", ErrInvalidRequest)
	}
	if req.Amount <= 0 {
		return fmt.Errorf("%w: amount должен быть положительным", ErrInvalidRequest)
	}
	return nil
}

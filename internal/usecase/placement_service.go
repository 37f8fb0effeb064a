package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Gunvolt24/wb_warehouse/internal/domain"
	"github.com/Gunvolt24/wb_warehouse/internal/ports"
	"github.com/Gunvolt24/wb_warehouse/pkg/metrics"
	"github.com/Gunvolt24/wb_warehouse/pkg/validate"
)

// Проверка, что PlacementService закрывает прикладной контракт.
var _ ports.PlacementService = (*PlacementService)(nil)

// PlacementService — прикладная логика регистрации размещений (без знаний о транспорте).
type PlacementService struct {
	reads     ports.PlacementReads   // читающие проверки хранилища
	writer    ports.PlacementWriter  // атомарная запись
	cache     ports.PlacementCache   // кэш размещений для чтения
	log       ports.Logger           // логгер
	validator ports.RequestValidator // валидатор входящего запроса
	now       func() time.Time       // источник времени (подменяется в тестах)
}

// NewPlacementService — DI-конструктор.
func NewPlacementService(
	reads ports.PlacementReads,
	writer ports.PlacementWriter,
	cache ports.PlacementCache,
	log ports.Logger,
	validator ports.RequestValidator,
) *PlacementService {
	return &PlacementService{
		reads:     reads,
		writer:    writer,
		cache:     cache,
		log:       log,
		validator: validator,
		now:       time.Now,
	}
}

// RegisterPlacement — зарегистрировать размещение товара на складе.
// Шаги (каждая проверка обязательна, результаты не кэшируются):
//  1. валидация полей запроса;
//  2. существование товара -> domain.ErrProductNotFound;
//  3. существование склада -> domain.ErrWarehouseNotFound;
//  4. поиск подходящего заказа (самый старый невыполненный с достаточным
//     количеством) -> domain.ErrOrderNotFound;
//  5. проверка существующего размещения -> domain.ErrAlreadyPlaced;
//  6. атомарная запись (fulfil + insert в одной транзакции); конфликт на уровне
//     БД проходит как ErrAlreadyPlaced, прочие сбои — как ErrWriteFailed.
//
// До шага 6 ни одной мутации не происходит: все отказы шагов 1–5 безопасно
// повторяемы и при неизменном состоянии БД дают тот же результат.
func (s *PlacementService) RegisterPlacement(ctx context.Context, warehouseID, productID int64, amount int) (int64, error) {
	req := domain.PlacementRequest{WarehouseID: warehouseID, ProductID: productID, Amount: amount}
	if err := s.validator.Validate(ctx, &req); err != nil {
		metrics.PlacementFailures.WithLabelValues("invalid").Inc()
		return 0, err
	}

	exists, err := s.reads.ProductExists(ctx, productID)
	if err != nil {
		s.log.Errorf(ctx, "reads.ProductExists failed product_id=%d err=%v", productID, err)
		return 0, fmt.Errorf("check product: %w", err)
	}
	if !exists {
		metrics.PlacementFailures.WithLabelValues("product_not_found").Inc()
		return 0, domain.ErrProductNotFound
	}

	exists, err = s.reads.WarehouseExists(ctx, warehouseID)
	if err != nil {
		s.log.Errorf(ctx, "reads.WarehouseExists failed warehouse_id=%d err=%v", warehouseID, err)
		return 0, fmt.Errorf("check warehouse: %w", err)
	}
	if !exists {
		metrics.PlacementFailures.WithLabelValues("warehouse_not_found").Inc()
		return 0, domain.ErrWarehouseNotFound
	}

	order, err := s.reads.FindEligibleOrder(ctx, productID, amount)
	if err != nil {
		s.log.Errorf(ctx, "reads.FindEligibleOrder failed product_id=%d amount=%d err=%v", productID, amount, err)
		return 0, fmt.Errorf("find eligible order: %w", err)
	}
	if order == nil {
		metrics.PlacementFailures.WithLabelValues("order_not_found").Inc()
		return 0, domain.ErrOrderNotFound
	}

	placed, err := s.reads.HasPlacement(ctx, order.ID)
	if err != nil {
		s.log.Errorf(ctx, "reads.HasPlacement failed order_id=%d err=%v", order.ID, err)
		return 0, fmt.Errorf("check placement: %w", err)
	}
	if placed {
		metrics.PlacementFailures.WithLabelValues("conflict").Inc()
		return 0, domain.ErrAlreadyPlaced
	}

	placement := &domain.Placement{
		WarehouseID: warehouseID,
		ProductID:   productID,
		OrderID:     order.ID,
		CreatedAt:   s.now().UTC(),
		Amount:      amount,
		Price:       0,
	}

	id, err := s.writer.WritePlacement(ctx, placement)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyPlaced) {
			// Проигрыш гонки двух регистраций: БД — авторитетный арбитр инварианта.
			metrics.PlacementFailures.WithLabelValues("conflict").Inc()
			s.log.Warnf(ctx, "placement conflict at write order_id=%d", order.ID)
			return 0, err
		}
		metrics.PlacementFailures.WithLabelValues("write_failed").Inc()
		s.log.Errorf(ctx, "writer.WritePlacement failed order_id=%d err=%v", order.ID, err)
		return 0, fmt.Errorf("%w: %v", domain.ErrWriteFailed, err)
	}

	placement.ID = id
	if setErr := s.cache.Set(ctx, placement); setErr != nil {
		s.log.Warnf(ctx, "cache.Set failed placement_id=%d err=%v", id, setErr)
	}

	metrics.PlacementsRegistered.Inc()
	s.log.Infof(ctx, "placement registered id=%d order_id=%d warehouse_id=%d product_id=%d", id, order.ID, warehouseID, productID)
	return id, nil
}

// RegisterFromMessage — регистрация размещения из сообщения Kafka (raw JSON).
// Шаги:
//  1. строгий парсинг JSON (DisallowUnknownFields);
//  2. RegisterPlacement (валидация и все проверки внутри).
func (s *PlacementService) RegisterFromMessage(ctx context.Context, raw []byte) (int64, error) {
	var req domain.PlacementRequest
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.log.Warnf(ctx, "invalid json err=%v", err)
		metrics.PlacementFailures.WithLabelValues("invalid").Inc()
		return 0, fmt.Errorf("%w: invalid json: %v", validate.ErrInvalidRequest, err)
	}

	// Убеждаемся, что после объекта нет лишних данных.
	if err := dec.Decode(new(struct{})); err != io.EOF {
		s.log.Warnf(ctx, "invalid json: trailing data")
		metrics.PlacementFailures.WithLabelValues("invalid").Inc()
		return 0, fmt.Errorf("%w: invalid json: trailing data", validate.ErrInvalidRequest)
	}

	return s.RegisterPlacement(ctx, req.WarehouseID, req.ProductID, req.Amount)
}

// GetPlacement — получить размещение по id: сначала из кэша, при промахе — из БД
// с записью в кэш. Возвращает (*Placement, nil) или (nil, nil), если записи нет.
func (s *PlacementService) GetPlacement(ctx context.Context, id int64) (*domain.Placement, error) {
	if p, found := s.cache.Get(ctx, id); found {
		s.log.Infof(ctx, "cache hit for placement=%d", id)
		return p, nil
	}
	s.log.Infof(ctx, "cache miss for placement=%d", id)

	start := time.Now()
	p, err := s.reads.GetPlacement(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "reads.GetPlacement failed id=%d err=%v", id, err)
		return nil, err
	}

	if p != nil {
		if setErr := s.cache.Set(ctx, p); setErr != nil {
			s.log.Warnf(ctx, "cache.Set failed placement_id=%d err=%v", id, setErr)
		}
	}

	s.log.Infof(ctx, "db fetch placement_id=%d took=%s", id, time.Since(start))
	return p, nil
}

// PlacementsByWarehouse — проксирование в репозиторий (пагинация валидирована выше).
func (s *PlacementService) PlacementsByWarehouse(
	ctx context.Context,
	warehouseID int64,
	limit, offset int,
) ([]*domain.Placement, error) {
	return s.reads.ListByWarehouse(ctx, warehouseID, limit, offset)
}

// WarmUpCache — прогрев кэша последними N размещениями из БД.
// Если n <= 0, прогрев не выполняется (но это не ошибка).
func (s *PlacementService) WarmUpCache(ctx context.Context, n int) error {
	if n <= 0 {
		s.log.Warnf(ctx, "cache warm-up skipped: n <= 0 (n=%d)", n)
		return nil
	}

	start := time.Now()
	list, err := s.reads.LastN(ctx, n)
	if err != nil {
		s.log.Errorf(ctx, "reads.LastN failed n=%d err=%v", n, err)
		return err
	}
	if warmUpErr := s.cache.WarmUp(ctx, list); warmUpErr != nil {
		s.log.Warnf(ctx, "cache.WarmUp failed err=%v", warmUpErr)
	}
	s.log.Infof(ctx, "cache warmed with %d placements in %s", len(list), time.Since(start))
	return nil
}

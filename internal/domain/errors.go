package domain

import "errors"

// Типизированные исходы регистрации размещения.
// Сервис и репозиторий возвращают их как sentinel-ошибки (проверка через errors.Is),
// транспортные слои переводят в коды ответов.
var (
	// ErrProductNotFound — товар с указанным идентификатором не существует.
	ErrProductNotFound = errors.New("product not found")

	// ErrWarehouseNotFound — склад с указанным идентификатором не существует.
	ErrWarehouseNotFound = errors.New("warehouse not found")

	// ErrOrderNotFound — нет невыполненного заказа на товар с достаточным количеством.
	ErrOrderNotFound = errors.New("eligible order not found")

	// ErrAlreadyPlaced — для заказа уже существует размещение; повторный запрос
	// семантически избыточен, ретраить бессмысленно.
	ErrAlreadyPlaced = errors.New("placement already exists for order")

	// ErrWriteFailed — атомарная запись не зафиксировалась (нарушение ограничения,
	// сеть, таймаут). Частичного состояния не остаётся: транзакция откатывается.
	ErrWriteFailed = errors.New("placement write failed")
)

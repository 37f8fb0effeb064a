package domain

import "time"

// Order — заказ клиента, подлежащий выполнению.
// FulfilledAt == nil означает, что заказ ещё не выполнен;
// заказ может быть выполнен не более одного раза.
type Order struct {
	ID          int64      `json:"id"`
	ProductID   int64      `json:"product_id"`
	Amount      int        `json:"amount"`
	CreatedAt   time.Time  `json:"created_at"`
	FulfilledAt *time.Time `json:"fulfilled_at,omitempty"`
}

// Fulfilled — выполнен ли заказ.
func (o *Order) Fulfilled() bool { return o != nil && o.FulfilledAt != nil }

// Placement — запись о размещении товара на складе под конкретный заказ.
// Инвариант: не более одного размещения на заказ. После создания запись
// не изменяется.
type Placement struct {
	ID          int64     `json:"id"`
	WarehouseID int64     `json:"warehouse_id"`
	ProductID   int64     `json:"product_id"`
	OrderID     int64     `json:"order_id"`
	CreatedAt   time.Time `json:"created_at"`
	Amount      int       `json:"amount"`
	Price       int64     `json:"price"`
}

// PlacementRequest — входящий запрос на размещение (HTTP-тело и Kafka-сообщение
// имеют одну и ту же форму). Идентификатор заказа не передаётся: подходящий
// заказ разрешается сервисом.
type PlacementRequest struct {
	WarehouseID int64 `json:"warehouse_id"`
	ProductID   int64 `json:"product_id"`
	Amount      int   `json:"amount"`
}

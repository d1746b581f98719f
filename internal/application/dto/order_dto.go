package dto

// CreateOrderRequest entrada para crear un pedido con sus líneas.
type CreateOrderRequest struct {
	CustomerID string             `json:"customer_id" validate:"required,uuid"`
	StoreID    string             `json:"store_id" validate:"required,uuid"`
	Lines      []OrderLineRequest `json:"lines" validate:"required,min=1"`
}

// OrderLineRequest línea de pedido: caja + cantidad. El precio unitario lo
// resuelve el servidor desde el catálogo.
type OrderLineRequest struct {
	BoxID    string `json:"box_id" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// CreateShipmentRequest crea el envío de un pedido: zona + peso + dirección.
type CreateShipmentRequest struct {
	OrderID  string `json:"order_id" validate:"required,uuid"`
	ZoneID   string `json:"zone_id" validate:"required,uuid"`
	WeightKg string `json:"weight_kg" validate:"required"`
	Address  string `json:"address" validate:"required"`
}

// AssignDriverRequest asigna conductor a un envío pendiente.
type AssignDriverRequest struct {
	DriverID string `json:"driver_id" validate:"required,uuid"`
}

// TransitionShipmentRequest transición de estado de un envío.
type TransitionShipmentRequest struct {
	Status string `json:"status" validate:"required"`
}

package handler

// --- Request / Response types for the order endpoints ---

type orderCustomerRequest struct {
	Name    string `json:"name"    validate:"required"`
	Contact string `json:"contact" validate:"required"`
	Address string `json:"address" validate:"required"`
}

type orderItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"  validate:"required,min=1"`
}

type placeOrderRequest struct {
	Customer    orderCustomerRequest `json:"customer"    validate:"required"`
	Items       []orderItemRequest   `json:"items"       validate:"required,min=1,dive"`
	TotalAmount float64              `json:"totalAmount" validate:"required,gt=0"`
}

type placeOrderResponse struct {
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing completed cancelled"`
}

package dto

// Wire field names follow the ticketing backend's Spanish contract.

type BeginCheckoutRequest struct {
	UserID string             `json:"usuarioId" binding:"required"`
	Event  EventRequest       `json:"evento" binding:"required"`
	Items  []SelectionRequest `json:"seleccion" binding:"required,min=1,dive"`
}

type EventRequest struct {
	ID       string `json:"id"`
	Name     string `json:"nombre" binding:"required"`
	Date     string `json:"fechaEvento" binding:"required"`
	Location string `json:"ubicacion"`
}

type SelectionRequest struct {
	TicketTypeID string  `json:"tipoEntradaId" binding:"required"`
	Name         string  `json:"nombre" binding:"required"`
	Quantity     int     `json:"cantidad" binding:"required,gt=0"`
	UnitPrice    float64 `json:"precio" binding:"gte=0"`
}

type PayRequest struct {
	UserID          string               `json:"usuarioId" binding:"required"`
	PaymentMethod   PaymentMethodRequest `json:"paymentMethod"`
	SimulateDecline bool                 `json:"simularRechazo"`
}

type PaymentMethodRequest struct {
	CardNumber string `json:"cardNumber"`
	CardHolder string `json:"cardHolder"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
}

type CancelRequest struct {
	Confirm bool `json:"confirm"`
}

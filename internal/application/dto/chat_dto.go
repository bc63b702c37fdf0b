package dto

import "github.com/shopspring/decimal"

// ChatMessageRequest entrada de POST /api/chat/message.
type ChatMessageRequest struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

// ProductMatchDTO resumen de un producto recuperado por similitud.
type ProductMatchDTO struct {
	ID        string          `json:"id"`
	SKU       string          `json:"sku"`
	Nombre    string          `json:"nombre"`
	Marca     string          `json:"marca"`
	Precio    decimal.Decimal `json:"precio"`
	Stock     int             `json:"stock"`
	Distancia float64         `json:"distancia"`
}

// QuoteItemDTO línea de la cotización devuelta al cliente.
type QuoteItemDTO struct {
	SKU            string          `json:"sku"`
	Nombre         string          `json:"nombre"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// QuoteDTO cotización persistida, resumida para la respuesta.
type QuoteDTO struct {
	OrderID string          `json:"orderId"`
	Items   []QuoteItemDTO  `json:"items"`
	Total   decimal.Decimal `json:"total"`
}

// ChatResult forma externa del pipeline: texto siempre; products solo en
// intenciones no-cotización; quote solo cuando se creó una orden.
type ChatResult struct {
	Response string            `json:"response"`
	Products []ProductMatchDTO `json:"products,omitempty"`
	Quote    *QuoteDTO         `json:"quote,omitempty"`
}

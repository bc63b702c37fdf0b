package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatusQuote estado inicial de toda orden creada por el chat.
const OrderStatusQuote = "cotizacion"

// QuoteOrder es una orden de cotización persistida. Se crea una sola vez por
// solicitud exitosa y es inmutable; Total siempre es la suma de los subtotales
// de sus líneas.
type QuoteOrder struct {
	ID        string
	UserID    string
	Lines     []QuoteOrderLine
	Total     decimal.Decimal
	Status    string
	CreatedAt time.Time
}

// QuoteOrderLine línea de detalle de una orden de cotización.
type QuoteOrderLine struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Subtotal devuelve cantidad × precio unitario.
func (l QuoteOrderLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

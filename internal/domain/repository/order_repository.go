package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/chatbot-b2b/internal/domain/entity"
)

// QuoteLineDetail línea de una orden con los datos del producto asociado
// (para la representación PDF de la cotización).
type QuoteLineDetail struct {
	SKU       string
	Name      string
	Brand     string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// OrderRepository define el puerto de persistencia para QuoteOrder y líneas.
// Create y CreateLine se usan únicamente dentro de una transacción (TxRunner):
// o se persisten cabecera y todas las líneas, o nada.
type OrderRepository interface {
	Create(order *entity.QuoteOrder) error
	CreateLine(line *entity.QuoteOrderLine) error
	GetByID(id string) (*entity.QuoteOrder, error)
	GetLineDetails(orderID string) ([]QuoteLineDetail, error)
}

package chat

import (
	"github.com/tu-usuario/chatbot-b2b/internal/application/dto"
	"github.com/tu-usuario/chatbot-b2b/internal/domain/entity"
	"github.com/tu-usuario/chatbot-b2b/internal/domain/repository"
)

// Composición del resultado externo. Solo da forma: sin lógica de negocio.

// ComposeRAGResult arma la respuesta de una consulta no-cotización: texto
// generado más el resumen de los productos recuperados.
func ComposeRAGResult(answer string, matches []repository.ProductMatch) *dto.ChatResult {
	products := make([]dto.ProductMatchDTO, 0, len(matches))
	for _, m := range matches {
		products = append(products, dto.ProductMatchDTO{
			ID:        m.Product.ID,
			SKU:       m.Product.SKU,
			Nombre:    m.Product.Name,
			Marca:     m.Product.Brand,
			Precio:    m.Product.ListPrice,
			Stock:     m.Product.Stock,
			Distancia: m.Distance,
		})
	}
	return &dto.ChatResult{Response: answer, Products: products}
}

// ComposeQuoteResult arma la respuesta de una cotización: resumen legible y,
// si se persistió una orden, el detalle de la cotización.
func ComposeQuoteResult(summary string, order *entity.QuoteOrder, resolved []ResolvedQuoteLine) *dto.ChatResult {
	result := &dto.ChatResult{Response: summary}
	if order == nil {
		return result
	}

	items := make([]dto.QuoteItemDTO, 0, len(order.Lines))
	for _, line := range resolved {
		if line.Status != LineOK {
			continue
		}
		items = append(items, dto.QuoteItemDTO{
			SKU:            line.Product.SKU,
			Nombre:         line.Product.Name,
			Cantidad:       line.Candidate.Quantity,
			PrecioUnitario: line.UnitPrice,
			Subtotal:       line.Subtotal,
		})
	}
	result.Quote = &dto.QuoteDTO{
		OrderID: order.ID,
		Items:   items,
		Total:   order.Total,
	}
	return result
}

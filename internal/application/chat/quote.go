package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/chatbot-b2b/internal/domain/entity"
	"github.com/tu-usuario/chatbot-b2b/internal/domain/repository"
)

// LineStatus resultado de resolver un candidato contra el catálogo.
type LineStatus string

const (
	LineOK                LineStatus = "ok"
	LineInsufficientStock LineStatus = "insufficient_stock"
	LineNotFound          LineStatus = "not_found"
)

// ResolvedQuoteLine candidato resuelto: producto encontrado (o nil), estado y
// montos. Los fallos por línea son estados, nunca errores.
type ResolvedQuoteLine struct {
	Candidate QuoteLineCandidate
	Product   *entity.Product
	Status    LineStatus
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// TxRunner ejecuta una función con un OrderRepository atado a una transacción:
// visibilidad todo-o-nada, rollback en cualquier salida con error.
type TxRunner interface {
	Run(ctx context.Context, fn func(orders repository.OrderRepository) error) error
}

// QuoteBuilder resuelve candidatos contra el catálogo y persiste la orden de
// cotización resultante.
type QuoteBuilder struct {
	retrieval *RetrievalEngine
	txRunner  TxRunner
}

// NewQuoteBuilder construye el caso de uso.
func NewQuoteBuilder(retrieval *RetrievalEngine, txRunner TxRunner) *QuoteBuilder {
	return &QuoteBuilder{retrieval: retrieval, txRunner: txRunner}
}

// Build procesa los candidatos en orden de entrada, de forma secuencial. Por
// cada uno: búsqueda top-1 con la pista como consulta; sin coincidencia marca
// not_found; con stock insuficiente marca insufficient_stock y lo excluye de
// la orden; en otro caso acumula la línea. Si al menos una línea quedó ok se
// persiste la orden (cabecera + líneas) como unidad atómica; con cero líneas
// ok no se persiste nada y solo se devuelve el resumen. Un fallo del proveedor
// o del almacén aborta la cotización completa.
func (b *QuoteBuilder) Build(ctx context.Context, userID string, candidates []QuoteLineCandidate) (*entity.QuoteOrder, string, []ResolvedQuoteLine, error) {
	resolved := make([]ResolvedQuoteLine, 0, len(candidates))

	var summary strings.Builder
	summary.WriteString("📋 **COTIZACIÓN**\n\n")

	for _, candidate := range candidates {
		matches, err := b.retrieval.Search(ctx, candidate.Hint, 1)
		if err != nil {
			return nil, "", nil, fmt.Errorf("resolver %q: %w", candidate.Hint, err)
		}

		if len(matches) == 0 {
			resolved = append(resolved, ResolvedQuoteLine{Candidate: candidate, Status: LineNotFound})
			fmt.Fprintf(&summary, "❌ No encontré productos que coincidan con: %q\n\n", candidate.Hint)
			continue
		}

		product := matches[0].Product
		if product.Stock < candidate.Quantity {
			resolved = append(resolved, ResolvedQuoteLine{
				Candidate: candidate,
				Product:   product,
				Status:    LineInsufficientStock,
				UnitPrice: product.ListPrice,
			})
			fmt.Fprintf(&summary, "⚠️ **%s** (SKU: %s)\n", product.Name, product.SKU)
			fmt.Fprintf(&summary, "   Stock insuficiente. Disponible: %d, Solicitado: %d\n\n", product.Stock, candidate.Quantity)
			continue
		}

		subtotal := product.ListPrice.Mul(decimal.NewFromInt(int64(candidate.Quantity)))
		resolved = append(resolved, ResolvedQuoteLine{
			Candidate: candidate,
			Product:   product,
			Status:    LineOK,
			UnitPrice: product.ListPrice,
			Subtotal:  subtotal,
		})
		fmt.Fprintf(&summary, "✓ **%s** (SKU: %s)\n", product.Name, product.SKU)
		fmt.Fprintf(&summary, "   Marca: %s\n", product.Brand)
		fmt.Fprintf(&summary, "   Cantidad: %d\n", candidate.Quantity)
		fmt.Fprintf(&summary, "   Precio unitario: $%s\n", product.ListPrice.StringFixed(2))
		fmt.Fprintf(&summary, "   Subtotal: $%s\n\n", subtotal.StringFixed(2))
	}

	order := assembleOrder(userID, resolved)
	if order == nil {
		summary.WriteString("No se pudo generar la cotización. Por favor, verifica los productos solicitados.")
		return nil, summary.String(), resolved, nil
	}

	fmt.Fprintf(&summary, "**TOTAL: $%s**\n\n", order.Total.StringFixed(2))

	// Cabecera y líneas en una sola transacción: o existen todas, o ninguna.
	err := b.txRunner.Run(ctx, func(orders repository.OrderRepository) error {
		if err := orders.Create(order); err != nil {
			return err
		}
		for i := range order.Lines {
			order.Lines[i].OrderID = order.ID
			if err := orders.CreateLine(&order.Lines[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, "", nil, fmt.Errorf("guardar cotización: %w", err)
	}

	fmt.Fprintf(&summary, "Cotización guardada con ID: %s\n", order.ID)
	summary.WriteString("Para proceder con el pedido, contacta a tu ejecutivo de cuenta.")

	return order, summary.String(), resolved, nil
}

// assembleOrder arma la orden con las líneas ok; nil si ninguna línea quedó ok.
func assembleOrder(userID string, resolved []ResolvedQuoteLine) *entity.QuoteOrder {
	var lines []entity.QuoteOrderLine
	total := decimal.Zero
	for _, line := range resolved {
		if line.Status != LineOK {
			continue
		}
		lines = append(lines, entity.QuoteOrderLine{
			ProductID: line.Product.ID,
			Quantity:  line.Candidate.Quantity,
			UnitPrice: line.UnitPrice,
		})
		total = total.Add(line.Subtotal)
	}
	if len(lines) == 0 {
		return nil
	}
	return &entity.QuoteOrder{
		UserID:    userID,
		Lines:     lines,
		Total:     total,
		Status:    entity.OrderStatusQuote,
		CreatedAt: time.Now(),
	}
}

package quotes

import (
	"context"
	"fmt"

	"github.com/tu-usuario/chatbot-b2b/internal/domain"
	"github.com/tu-usuario/chatbot-b2b/internal/domain/entity"
	"github.com/tu-usuario/chatbot-b2b/internal/domain/repository"
)

// QuotePDFGenerator puerto de salida para la representación gráfica de una
// cotización. La implementación concreta vive en infrastructure/pdf.
type QuotePDFGenerator interface {
	GenerateQuotePDF(ctx context.Context, order *entity.QuoteOrder, lines []repository.QuoteLineDetail) ([]byte, error)
}

// PDFUseCase genera el PDF de una orden de cotización persistida.
type PDFUseCase struct {
	orders    repository.OrderRepository
	generator QuotePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(orders repository.OrderRepository, generator QuotePDFGenerator) *PDFUseCase {
	return &PDFUseCase{orders: orders, generator: generator}
}

// GenerateQuotePDF carga la orden con sus líneas y delega al generador.
func (uc *PDFUseCase) GenerateQuotePDF(ctx context.Context, orderID string) ([]byte, error) {
	if orderID == "" {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.orders.GetLineDetails(orderID)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.generator.GenerateQuotePDF(ctx, order, lines)
	if err != nil {
		return nil, fmt.Errorf("generar PDF de cotización %s: %w", orderID, err)
	}
	return pdf, nil
}

package quotes_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/chatbot-b2b/internal/application/quotes"
	"github.com/tu-usuario/chatbot-b2b/internal/domain"
	"github.com/tu-usuario/chatbot-b2b/internal/domain/entity"
	"github.com/tu-usuario/chatbot-b2b/internal/domain/repository"
)

type stubOrderRepo struct {
	order *entity.QuoteOrder
	lines []repository.QuoteLineDetail
}

func (s *stubOrderRepo) Create(*entity.QuoteOrder) error         { return nil }
func (s *stubOrderRepo) CreateLine(*entity.QuoteOrderLine) error { return nil }
func (s *stubOrderRepo) GetByID(id string) (*entity.QuoteOrder, error) {
	if s.order != nil && s.order.ID == id {
		return s.order, nil
	}
	return nil, nil
}
func (s *stubOrderRepo) GetLineDetails(string) ([]repository.QuoteLineDetail, error) {
	return s.lines, nil
}

type stubGenerator struct {
	seenLines int
}

func (g *stubGenerator) GenerateQuotePDF(_ context.Context, _ *entity.QuoteOrder, lines []repository.QuoteLineDetail) ([]byte, error) {
	g.seenLines = len(lines)
	return []byte("%PDF-1.4 stub"), nil
}

// Caso 1: Orden existente → PDF con las líneas cargadas.
func TestGenerateQuotePDF_OrdenExistente(t *testing.T) {
	repo := &stubOrderRepo{
		order: &entity.QuoteOrder{ID: "orden-1", UserID: "cliente-1", Total: decimal.RequireFromString("655.00")},
		lines: []repository.QuoteLineDetail{
			{SKU: "HID-1326-LMSMV", Name: "Tarjeta Clamshell ProxCard II", Quantity: 10,
				UnitPrice: decimal.RequireFromString("65.50"), Subtotal: decimal.RequireFromString("655.00")},
		},
	}
	gen := &stubGenerator{}
	uc := quotes.NewPDFUseCase(repo, gen)

	pdf, err := uc.GenerateQuotePDF(context.Background(), "orden-1")

	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, 1, gen.seenLines)
}

// Caso 2: Orden inexistente → ErrNotFound.
func TestGenerateQuotePDF_OrdenInexistente(t *testing.T) {
	uc := quotes.NewPDFUseCase(&stubOrderRepo{}, &stubGenerator{})

	_, err := uc.GenerateQuotePDF(context.Background(), "no-existe")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Caso 3: ID vacío → ErrInvalidInput.
func TestGenerateQuotePDF_IDVacio(t *testing.T) {
	uc := quotes.NewPDFUseCase(&stubOrderRepo{}, &stubGenerator{})

	_, err := uc.GenerateQuotePDF(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

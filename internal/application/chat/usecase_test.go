package chat_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/chatbot-b2b/internal/application/chat"
	"github.com/tu-usuario/chatbot-b2b/internal/domain/repository"
	"github.com/tu-usuario/chatbot-b2b/pkg/logger"
)

// fakeChatModel devuelve una respuesta fija y captura el contexto recibido.
type fakeChatModel struct {
	answer      string
	err         error
	seenContext string
	seenMessage string
}

func (f *fakeChatModel) Generate(_ context.Context, _, productContext, userMessage string) (string, error) {
	f.seenContext = productContext
	f.seenMessage = userMessage
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func newUseCase(catalog *fakeCatalog, model *fakeChatModel, repo *memOrderRepo) *chat.ChatUseCase {
	retrieval := chat.NewRetrievalEngine(catalog, catalog)
	builder := chat.NewQuoteBuilder(retrieval, &fakeTxRunner{repo: repo})
	return chat.NewChatUseCase(retrieval, builder, model, 5, logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ProcessMessage — orquestación del pipeline
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Consulta técnica → pipeline RAG con contexto de productos.
func TestProcessMessage_ConsultaTecnicaPorRAG(t *testing.T) {
	catalog := &fakeCatalog{matches: map[string][]repository.ProductMatch{
		"¿Qué especificaciones tiene el BioStation 2?": {
			{Product: productFixture("SUP-BS2-OEPW", "BioStation 2 Lector de Huella Exterior", "15500.00", 45), Distance: 0.05},
		},
	}}
	model := &fakeChatModel{answer: "El BioStation 2 tiene sensor óptico OP5."}
	uc := newUseCase(catalog, model, &memOrderRepo{})

	result, err := uc.ProcessMessage(context.Background(), "cliente-1", "¿Qué especificaciones tiene el BioStation 2?")

	require.NoError(t, err)
	assert.Equal(t, "El BioStation 2 tiene sensor óptico OP5.", result.Response)
	require.Len(t, result.Products, 1)
	assert.Nil(t, result.Quote)

	// El modelo recibió el contexto armado con los productos recuperados.
	assert.Contains(t, model.seenContext, "PRODUCTO 1:")
	assert.Contains(t, model.seenContext, "SUP-BS2-OEPW")
	assert.Equal(t, "¿Qué especificaciones tiene el BioStation 2?", model.seenMessage)
}

// Caso 2: RAG sin resultados → el contexto lleva el texto centinela.
func TestProcessMessage_RAGSinResultados(t *testing.T) {
	catalog := &fakeCatalog{matches: map[string][]repository.ProductMatch{}}
	model := &fakeChatModel{answer: "No tenemos ese producto en catálogo."}
	uc := newUseCase(catalog, model, &memOrderRepo{})

	result, err := uc.ProcessMessage(context.Background(), "cliente-1", "qué es un dron de vigilancia")

	require.NoError(t, err)
	assert.Equal(t, "No tenemos ese producto en catálogo.", result.Response)
	assert.Equal(t, "No se encontraron productos relevantes en el catálogo.", model.seenContext)
}

// Caso 3: Cotización completa de extremo a extremo.
func TestProcessMessage_CotizacionExtremoAExtremo(t *testing.T) {
	catalog := &fakeCatalog{matches: map[string][]repository.ProductMatch{
		"tarjetas hid": {
			{Product: productFixture("HID-1326-LMSMV", "Tarjeta Clamshell ProxCard II", "65.50", 5000), Distance: 0.1},
		},
	}}
	repo := &memOrderRepo{}
	uc := newUseCase(catalog, &fakeChatModel{}, repo)

	result, err := uc.ProcessMessage(context.Background(), "cliente-1", "cotizame 10 tarjetas hid")

	require.NoError(t, err)
	require.NotNil(t, result.Quote)
	assert.Equal(t, "655.00", result.Quote.Total.StringFixed(2))
	require.Len(t, result.Quote.Items, 1)
	assert.Equal(t, "HID-1326-LMSMV", result.Quote.Items[0].SKU)
	assert.Contains(t, result.Response, "**TOTAL: $655.00**")

	require.Len(t, repo.orders, 1, "la orden quedó persistida")
	assert.Equal(t, result.Quote.OrderID, repo.orders[0].ID)
}

// Caso 3b: El mensaje de ejemplo que el propio bot sugiere al pedir
// aclaración ("Cotízame 10 tarjetas HID ProxCard II", con tilde) también
// termina en una orden persistida.
func TestProcessMessage_CotizacionConVerboAcentuado(t *testing.T) {
	catalog := &fakeCatalog{matches: map[string][]repository.ProductMatch{
		"tarjetas hid proxcard ii": {
			{Product: productFixture("HID-1326-LMSMV", "Tarjeta Clamshell ProxCard II", "65.50", 5000), Distance: 0.1},
		},
	}}
	repo := &memOrderRepo{}
	uc := newUseCase(catalog, &fakeChatModel{}, repo)

	result, err := uc.ProcessMessage(context.Background(), "cliente-1", "Cotízame 10 tarjetas HID ProxCard II")

	require.NoError(t, err)
	require.NotNil(t, result.Quote, "la tilde no debe desviar el mensaje al flujo RAG")
	assert.Equal(t, "655.00", result.Quote.Total.StringFixed(2))
	assert.Contains(t, result.Response, "Cotización guardada con ID:")
	require.Len(t, repo.orders, 1, "la orden quedó persistida")
}

// Caso 4: Cotización sin candidatos extraíbles → texto de aclaración, sin error.
func TestProcessMessage_CotizacionPideAclaracion(t *testing.T) {
	catalog := &fakeCatalog{matches: map[string][]repository.ProductMatch{}}
	repo := &memOrderRepo{}
	uc := newUseCase(catalog, &fakeChatModel{}, repo)

	// "quiero comprar" dispara la intención de cotización pero no trae ni
	// cantidades ni categorías del vocabulario.
	result, err := uc.ProcessMessage(context.Background(), "cliente-1", "quiero comprar equipo nuevo")

	require.NoError(t, err)
	assert.Contains(t, result.Response, "No pude identificar qué productos deseas cotizar")
	assert.Nil(t, result.Quote)
	assert.Empty(t, repo.orders, "nada se persiste cuando se pide aclaración")
}

// Caso 5: Fallo del modelo generativo en el flujo RAG → error envuelto.
func TestProcessMessage_FalloModeloGenerativo(t *testing.T) {
	catalog := &fakeCatalog{matches: map[string][]repository.ProductMatch{}}
	model := &fakeChatModel{err: assert.AnError}
	uc := newUseCase(catalog, model, &memOrderRepo{})

	result, err := uc.ProcessMessage(context.Background(), "cliente-1", "hola")

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "generar respuesta")
	assert.Nil(t, result)
}

package chat

import (
	"context"
	"fmt"

	"github.com/tu-usuario/chatbot-b2b/internal/application/dto"
	"github.com/tu-usuario/chatbot-b2b/internal/application/ports"
	"github.com/tu-usuario/chatbot-b2b/internal/domain/entity"
	"github.com/tu-usuario/chatbot-b2b/pkg/logger"
)

// systemPrompt instrucciones fijas del asistente B2B.
const systemPrompt = `Eres un asistente virtual especializado en productos de control de acceso, biometría y seguridad para el sector B2B (mayorista).

Tu empresa es similar a SIASA, un mayorista de tecnología que vende a integradores y distribuidores.

DIRECTRICES:
1. Usa un tono profesional y técnico, pero amigable
2. Siempre menciona SKU, marca y características técnicas relevantes
3. Si recomiendas productos, explica por qué son adecuados para la necesidad del cliente
4. Si un producto no está en stock o no existe, sé honesto
5. Para cotizaciones, proporciona información clara de precios y disponibilidad
6. Recuerda que tus clientes son profesionales del sector (integradores, no usuarios finales)`

// clarificationText respuesta cuando no se pudo interpretar qué cotizar.
const clarificationText = `No pude identificar qué productos deseas cotizar. Por favor, especifica el producto y la cantidad. Ejemplo: "Cotízame 10 tarjetas HID ProxCard II"`

// ChatUseCase orquesta el pipeline RAG y el flujo de cotización. Cada mensaje
// es una unidad de trabajo independiente: sin estado compartido entre llamadas.
type ChatUseCase struct {
	retrieval    *RetrievalEngine
	quoteBuilder *QuoteBuilder
	chatModel    ports.ChatModelService
	maxResults   int
	log          *logger.Logger
}

// NewChatUseCase construye el caso de uso. maxResults acota la búsqueda por
// similitud del flujo RAG (config MAX_PRODUCTS_SEARCH).
func NewChatUseCase(
	retrieval *RetrievalEngine,
	quoteBuilder *QuoteBuilder,
	chatModel ports.ChatModelService,
	maxResults int,
	log *logger.Logger,
) *ChatUseCase {
	if maxResults < 1 {
		maxResults = 5
	}
	return &ChatUseCase{
		retrieval:    retrieval,
		quoteBuilder: quoteBuilder,
		chatModel:    chatModel,
		maxResults:   maxResults,
		log:          log,
	}
}

// ProcessMessage es el único punto de entrada del núcleo: clasifica la
// intención y deriva al flujo de cotización o al pipeline RAG. La validación
// de presencia de userID y message es responsabilidad de la capa HTTP.
func (uc *ChatUseCase) ProcessMessage(ctx context.Context, userID, message string) (*dto.ChatResult, error) {
	intent := ClassifyIntent(message)
	uc.log.Debug().
		Str("user_id", userID).
		Str("intent", string(intent.Type)).
		Float64("confidence", intent.Confidence).
		Msg("intención detectada")

	if intent.Type == entity.IntentQuoteRequest {
		return uc.handleQuoteRequest(ctx, userID, message)
	}
	return uc.handleRAGQuery(ctx, message)
}

// handleRAGQuery pipeline RAG: embedding del mensaje, búsqueda semántica,
// contexto y generación.
func (uc *ChatUseCase) handleRAGQuery(ctx context.Context, message string) (*dto.ChatResult, error) {
	matches, err := uc.retrieval.Search(ctx, message, uc.maxResults)
	if err != nil {
		return nil, err
	}
	uc.log.Debug().Int("productos", len(matches)).Msg("búsqueda semántica completada")

	productContext := BuildContext(matches)
	answer, err := uc.chatModel.Generate(ctx, systemPrompt, productContext, message)
	if err != nil {
		return nil, fmt.Errorf("generar respuesta: %w", err)
	}

	return ComposeRAGResult(answer, matches), nil
}

// handleQuoteRequest extrae candidatos del mensaje y construye la cotización.
func (uc *ChatUseCase) handleQuoteRequest(ctx context.Context, userID, message string) (*dto.ChatResult, error) {
	candidates := ExtractQuoteItems(message)
	if len(candidates) == 0 {
		// No es un error: se pide aclaración al usuario.
		return &dto.ChatResult{Response: clarificationText}, nil
	}

	order, summary, resolved, err := uc.quoteBuilder.Build(ctx, userID, candidates)
	if err != nil {
		return nil, err
	}
	if order != nil {
		uc.log.Info().
			Str("order_id", order.ID).
			Str("user_id", userID).
			Str("total", order.Total.StringFixed(2)).
			Msg("cotización creada")
	}

	return ComposeQuoteResult(summary, order, resolved), nil
}

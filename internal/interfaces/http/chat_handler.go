package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/chatbot-b2b/internal/application/chat"
	"github.com/tu-usuario/chatbot-b2b/internal/application/dto"
	"github.com/tu-usuario/chatbot-b2b/internal/domain"
)

// ChatHandler maneja el endpoint conversacional principal.
type ChatHandler struct {
	uc *chat.ChatUseCase
}

// NewChatHandler construye el handler de chat.
func NewChatHandler(uc *chat.ChatUseCase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

// ProcessMessage godoc
// @Summary      Procesar un mensaje del cliente mayorista
// @Description  Clasifica la intención del mensaje y responde: arma una
//               cotización cuando detecta solicitud de compra, o contesta la
//               consulta con contexto del catálogo (RAG) en caso contrario.
//               Endpoint público: el userId identifica al cliente mayorista.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatMessageRequest  true  "userId y message"
// @Success      200   {object}  dto.ChatResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/chat/message [post]
func (h *ChatHandler) ProcessMessage(c *fiber.Ctx) error {
	var req dto.ChatMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo de la petición inválido",
		})
	}
	if req.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "userId es requerido",
		})
	}
	if strings.TrimSpace(req.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "message no puede estar vacío",
		})
	}

	result, err := h.uc.ProcessMessage(c.Context(), req.UserID, req.Message)
	if err != nil {
		// Fallo del servicio de embeddings o del modelo de chat → 502
		if errors.Is(err, domain.ErrUpstream) {
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
				Code: "UPSTREAM", Message: "el servicio de IA no está disponible; intenta de nuevo",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	return c.JSON(result)
}

package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/chatbot-b2b/internal/application/dto"
	"github.com/tu-usuario/chatbot-b2b/internal/application/quotes"
	"github.com/tu-usuario/chatbot-b2b/internal/domain"
)

// QuoteHandler expone las cotizaciones guardadas por el chat.
type QuoteHandler struct {
	uc *quotes.PDFUseCase
}

// NewQuoteHandler construye el handler de cotizaciones.
func NewQuoteHandler(uc *quotes.PDFUseCase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// DownloadPDF godoc
// @Summary      Descargar una cotización en PDF
// @Tags         quotes
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path      string  true  "ID de la orden de cotización"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/pdf [get]
func (h *QuoteHandler) DownloadPDF(c *fiber.Ctx) error {
	orderID := c.Params("id")
	if orderID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "id de cotización requerido",
		})
	}

	pdfBytes, err := h.uc.GenerateQuotePDF(c.Context(), orderID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code: "NOT_FOUND", Message: "la cotización no existe",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="cotizacion-%s.pdf"`, orderID))
	return c.Send(pdfBytes)
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/chatbot-b2b/internal/application/catalog"
	"github.com/tu-usuario/chatbot-b2b/internal/application/dto"
	"github.com/tu-usuario/chatbot-b2b/internal/domain"
)

// ProductHandler maneja la sincronización del catálogo de productos.
type ProductHandler struct {
	uc *catalog.SyncUseCase
}

// NewProductHandler construye el handler de productos.
func NewProductHandler(uc *catalog.SyncUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Sync godoc
// @Summary      Sincronizar un producto al catálogo
// @Description  Crea el producto, genera su embedding a partir del texto
//               descriptivo y lo deja listo para búsqueda por similitud.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SyncProductRequest  true  "datos del producto"
// @Success      201   {object}  dto.SyncedProductDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/products/sync [post]
func (h *ProductHandler) Sync(c *fiber.Ctx) error {
	var req dto.SyncProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo de la petición inválido",
		})
	}

	out, err := h.uc.SyncProduct(c.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: err.Error(),
			})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code: "SKU_EXISTS", Message: "ya existe un producto con ese SKU",
			})
		}
		if errors.Is(err, domain.ErrUpstream) {
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
				Code: "UPSTREAM", Message: "no se pudo generar el embedding del producto",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateEmbedding godoc
// @Summary      Reemplazar el embedding de un producto
// @Description  Guarda un vector ya calculado para el SKU dado. Útil para
//               migraciones de modelo de embeddings.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateEmbeddingRequest  true  "sku y embedding"
// @Success      200   {object}  dto.SyncedProductDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/update-embedding [post]
func (h *ProductHandler) UpdateEmbedding(c *fiber.Ctx) error {
	var req dto.UpdateEmbeddingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo de la petición inválido",
		})
	}
	if req.SKU == "" || len(req.Embedding) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "sku y embedding son requeridos",
		})
	}

	out, err := h.uc.UpdateEmbedding(c.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code: "NOT_FOUND", Message: "no existe un producto activo con ese SKU",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	return c.JSON(out)
}

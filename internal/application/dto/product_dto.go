package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/chatbot-b2b/internal/domain/entity"
)

// SyncProductRequest entrada de POST /api/products/sync. Los nombres de campo
// siguen el contrato del catálogo (español).
type SyncProductRequest struct {
	CategoriaID      int                         `json:"categoria_id"`
	SKU              string                      `json:"sku"`
	Nombre           string                      `json:"nombre"`
	Marca            string                      `json:"marca"`
	Descripcion      string                      `json:"descripcion"`
	PrecioLista      decimal.Decimal             `json:"precio_lista"`
	StockActual      int                         `json:"stock_actual"`
	UnidadMedida     string                      `json:"unidad_medida"`
	Especificaciones map[string]entity.SpecValue `json:"especificaciones_tecnicas"`
}

// SyncedProductDTO resumen del producto recién sincronizado.
type SyncedProductDTO struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Nombre      string          `json:"nombre"`
	Marca       string          `json:"marca"`
	PrecioLista decimal.Decimal `json:"precio_lista"`
	StockActual int             `json:"stock_actual"`
}

// UpdateEmbeddingRequest entrada de POST /api/products/update-embedding.
type UpdateEmbeddingRequest struct {
	SKU       string    `json:"sku"`
	Embedding []float32 `json:"embedding"`
}

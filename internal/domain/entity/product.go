package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo B2B con su embedding semántico.
// Solo los productos activos y con stock > 0 son recuperables por búsqueda
// de similitud en el chat.
type Product struct {
	ID          string
	CategoryID  int
	SKU         string // código único de catálogo
	Name        string
	Brand       string
	Description string
	ListPrice   decimal.Decimal
	Stock       int
	UnitMeasure string
	Specs       map[string]SpecValue
	Embedding   []float32 // dimensión fija (config EMBEDDING_DIMENSION)
	Active      bool
	CreatedAt   time.Time
}

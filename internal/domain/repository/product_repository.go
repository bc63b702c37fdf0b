package repository

import "github.com/tu-usuario/chatbot-b2b/internal/domain/entity"

// ProductMatch resultado de búsqueda por similitud: producto + distancia de
// coseno (0 = idéntico, mayor = menos similar, acotada a [0, 2]).
type ProductMatch struct {
	Product  *entity.Product
	Distance float64
}

// Relevance devuelve 1 - distancia, el puntaje que se muestra al usuario.
func (m ProductMatch) Relevance() float64 { return 1 - m.Distance }

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// SearchBySimilarity devuelve los k productos activos y con stock más
	// cercanos al vector, en orden ascendente de distancia de coseno.
	SearchBySimilarity(embedding []float32, k int) ([]ProductMatch, error)
	GetBySKU(sku string) (*entity.Product, error)
	// CreateWithEmbedding persiste el producto junto con su vector.
	CreateWithEmbedding(product *entity.Product) error
	// UpdateEmbedding reemplaza el vector de un producto activo existente;
	// devuelve nil para SKU inexistente o inactivo.
	UpdateEmbedding(sku string, embedding []float32) (*entity.Product, error)
}

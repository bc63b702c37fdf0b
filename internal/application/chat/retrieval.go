package chat

import (
	"context"
	"fmt"

	"github.com/tu-usuario/chatbot-b2b/internal/application/ports"
	"github.com/tu-usuario/chatbot-b2b/internal/domain/repository"
)

// RetrievalEngine convierte texto en vector y ejecuta la búsqueda por
// similitud sobre el catálogo. Solo productos activos y con stock participan.
type RetrievalEngine struct {
	embedder ports.EmbeddingService
	products repository.ProductRepository
}

// NewRetrievalEngine construye el motor de recuperación.
func NewRetrievalEngine(embedder ports.EmbeddingService, products repository.ProductRepository) *RetrievalEngine {
	return &RetrievalEngine{embedder: embedder, products: products}
}

// Search devuelve los k productos más cercanos al texto de consulta, en orden
// ascendente de distancia de coseno. Un fallo del proveedor de embeddings o
// del almacén aborta la búsqueda completa.
func (e *RetrievalEngine) Search(ctx context.Context, queryText string, k int) ([]repository.ProductMatch, error) {
	vector, err := e.embedder.Embed(ctx, queryText)
	if err != nil {
		return nil, fmt.Errorf("generar embedding de consulta: %w", err)
	}
	matches, err := e.products.SearchBySimilarity(vector, k)
	if err != nil {
		return nil, fmt.Errorf("búsqueda por similitud: %w", err)
	}
	return matches, nil
}

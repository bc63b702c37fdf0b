package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/chatbot-b2b/internal/application/dto"
	"github.com/tu-usuario/chatbot-b2b/internal/application/ports"
	"github.com/tu-usuario/chatbot-b2b/internal/domain"
	"github.com/tu-usuario/chatbot-b2b/internal/domain/entity"
	"github.com/tu-usuario/chatbot-b2b/internal/domain/repository"
	"github.com/tu-usuario/chatbot-b2b/pkg/logger"
)

// SyncUseCase sincroniza productos del catálogo: genera el embedding a partir
// del texto descriptivo y persiste producto + vector. No participa en el flujo
// de chat.
type SyncUseCase struct {
	embedder ports.EmbeddingService
	products repository.ProductRepository
	log      *logger.Logger
}

// NewSyncUseCase construye el caso de uso.
func NewSyncUseCase(embedder ports.EmbeddingService, products repository.ProductRepository, log *logger.Logger) *SyncUseCase {
	return &SyncUseCase{embedder: embedder, products: products, log: log}
}

// SyncProduct genera el embedding del producto y lo guarda. SKU duplicado
// devuelve domain.ErrDuplicate (HTTP 409 en la capa externa).
func (uc *SyncUseCase) SyncProduct(ctx context.Context, in dto.SyncProductRequest) (*dto.SyncedProductDTO, error) {
	if in.SKU == "" || in.Nombre == "" || !in.PrecioLista.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.UnidadMedida == "" {
		in.UnidadMedida = "pieza"
	}

	text := BuildProductText(in.Nombre, in.Marca, in.Descripcion, in.Especificaciones)
	uc.log.Debug().Str("sku", in.SKU).Str("texto", truncate(text, 100)).Msg("sincronizando producto")

	vector, err := uc.embedder.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embedding de producto %s: %w", in.SKU, err)
	}

	product := &entity.Product{
		ID:          uuid.New().String(),
		CategoryID:  in.CategoriaID,
		SKU:         in.SKU,
		Name:        in.Nombre,
		Brand:       in.Marca,
		Description: in.Descripcion,
		ListPrice:   in.PrecioLista,
		Stock:       in.StockActual,
		UnitMeasure: in.UnidadMedida,
		Specs:       in.Especificaciones,
		Embedding:   vector,
		Active:      true,
		CreatedAt:   time.Now(),
	}
	if err := uc.products.CreateWithEmbedding(product); err != nil {
		return nil, err
	}

	return toSyncedDTO(product), nil
}

// UpdateEmbedding reemplaza el vector de un producto existente con uno ya
// calculado (migraciones de modelo de embedding).
func (uc *SyncUseCase) UpdateEmbedding(ctx context.Context, in dto.UpdateEmbeddingRequest) (*dto.SyncedProductDTO, error) {
	if in.SKU == "" || len(in.Embedding) == 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.products.UpdateEmbedding(in.SKU, in.Embedding)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toSyncedDTO(product), nil
}

// BuildProductText arma el texto descriptivo del que se deriva el embedding:
// nombre, marca, descripción y especificaciones aplanadas.
func BuildProductText(nombre, marca, descripcion string, specs map[string]entity.SpecValue) string {
	keys := make([]string, 0, len(specs))
	for k := range specs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s: %s", k, specs[k].String()))
	}

	return fmt.Sprintf("%s. Marca: %s. %s. Especificaciones: %s", nombre, marca, descripcion, strings.Join(pairs, ". "))
}

func toSyncedDTO(p *entity.Product) *dto.SyncedProductDTO {
	return &dto.SyncedProductDTO{
		ID:          p.ID,
		SKU:         p.SKU,
		Nombre:      p.Name,
		Marca:       p.Brand,
		PrecioLista: p.ListPrice,
		StockActual: p.Stock,
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/chatbot-b2b/internal/domain"
	"github.com/tu-usuario/chatbot-b2b/internal/domain/entity"
	"github.com/tu-usuario/chatbot-b2b/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL con
// pgvector (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// SearchBySimilarity busca los k vecinos más cercanos por distancia de coseno
// (operador <=> de pgvector). Solo filas activas y con stock; empates se
// resuelven por SKU para que el orden sea determinista.
func (r *ProductRepo) SearchBySimilarity(embedding []float32, k int) ([]repository.ProductMatch, error) {
	query := `
		SELECT id, categoria_id, sku, nombre, marca, descripcion, precio_lista, stock_actual,
		       unidad_medida, especificaciones_tecnicas, es_activo,
		       (embedding <=> $1::vector) AS distancia
		FROM productos
		WHERE es_activo = true
		  AND stock_actual > 0
		ORDER BY embedding <=> $1::vector, sku
		LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, vectorLiteral(embedding), k)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}
	defer rows.Close()

	var matches []repository.ProductMatch
	for rows.Next() {
		var p entity.Product
		var specs []byte
		var distance float64
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.SKU, &p.Name, &p.Brand, &p.Description,
			&p.ListPrice, &p.Stock, &p.UnitMeasure, &specs, &p.Active, &distance); err != nil {
			return nil, fmt.Errorf("scan product match: %w", err)
		}
		if err := unmarshalSpecs(specs, &p); err != nil {
			return nil, err
		}
		matches = append(matches, repository.ProductMatch{Product: &p, Distance: distance})
	}
	return matches, rows.Err()
}

// GetBySKU obtiene un producto activo por SKU. Devuelve nil si no existe.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `
		SELECT id, categoria_id, sku, nombre, marca, descripcion, precio_lista, stock_actual,
		       unidad_medida, especificaciones_tecnicas, es_activo
		FROM productos
		WHERE sku = $1 AND es_activo = true`
	var p entity.Product
	var specs []byte
	err := r.q.QueryRow(context.Background(), query, sku).Scan(
		&p.ID, &p.CategoryID, &p.SKU, &p.Name, &p.Brand, &p.Description,
		&p.ListPrice, &p.Stock, &p.UnitMeasure, &specs, &p.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	if err := unmarshalSpecs(specs, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateWithEmbedding persiste el producto junto con su vector.
func (r *ProductRepo) CreateWithEmbedding(product *entity.Product) error {
	specs, err := json.Marshal(product.Specs)
	if err != nil {
		return fmt.Errorf("serializar especificaciones: %w", err)
	}
	query := `
		INSERT INTO productos (id, categoria_id, sku, nombre, marca, descripcion, precio_lista,
		                       stock_actual, unidad_medida, especificaciones_tecnicas, embedding,
		                       es_activo, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::jsonb, $11::vector, $12, $13)`
	_, err = r.q.Exec(context.Background(), query,
		product.ID, product.CategoryID, product.SKU, product.Name, product.Brand,
		product.Description, product.ListPrice, product.Stock, product.UnitMeasure,
		specs, vectorLiteral(product.Embedding), product.Active, product.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// UpdateEmbedding reemplaza el vector de un producto activo. Devuelve nil si
// el SKU no existe o el producto está inactivo (mismo filtro que GetBySKU).
func (r *ProductRepo) UpdateEmbedding(sku string, embedding []float32) (*entity.Product, error) {
	query := `
		UPDATE productos
		SET embedding = $2::vector
		WHERE sku = $1 AND es_activo = true
		RETURNING id, categoria_id, sku, nombre, marca, descripcion, precio_lista, stock_actual,
		          unidad_medida, especificaciones_tecnicas, es_activo`
	var p entity.Product
	var specs []byte
	err := r.q.QueryRow(context.Background(), query, sku, vectorLiteral(embedding)).Scan(
		&p.ID, &p.CategoryID, &p.SKU, &p.Name, &p.Brand, &p.Description,
		&p.ListPrice, &p.Stock, &p.UnitMeasure, &specs, &p.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update embedding: %w", err)
	}
	if err := unmarshalSpecs(specs, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func unmarshalSpecs(raw []byte, p *entity.Product) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, &p.Specs); err != nil {
		return fmt.Errorf("especificaciones de %s: %w", p.SKU, err)
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/chatbot-b2b/internal/domain/entity"
	"github.com/tu-usuario/chatbot-b2b/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera de la orden de cotización.
func (r *OrderRepo) Create(order *entity.QuoteOrder) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO ordenes (id, usuario_id, monto_total, estado, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.UserID, order.Total, order.Status, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateLine persiste una línea de detalle.
func (r *OrderRepo) CreateLine(line *entity.QuoteOrderLine) error {
	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	query := `
		INSERT INTO detalles_orden (id, orden_id, producto_id, cantidad, precio_unitario)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.OrderID, line.ProductID, line.Quantity, line.UnitPrice,
	)
	if err != nil {
		return fmt.Errorf("insert order line: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera con sus líneas. Devuelve nil si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.QuoteOrder, error) {
	var order entity.QuoteOrder
	err := r.q.QueryRow(context.Background(), `
		SELECT id, usuario_id, monto_total, estado, fecha_creacion
		FROM ordenes WHERE id = $1`, id).Scan(
		&order.ID, &order.UserID, &order.Total, &order.Status, &order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	rows, err := r.q.Query(context.Background(), `
		SELECT id, orden_id, producto_id, cantidad, precio_unitario
		FROM detalles_orden WHERE orden_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("get order lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var line entity.QuoteOrderLine
		if err := rows.Scan(&line.ID, &line.OrderID, &line.ProductID, &line.Quantity, &line.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		order.Lines = append(order.Lines, line)
	}
	return &order, rows.Err()
}

// GetLineDetails devuelve las líneas con los datos del producto (para el PDF).
func (r *OrderRepo) GetLineDetails(orderID string) ([]repository.QuoteLineDetail, error) {
	query := `
		SELECT p.sku, p.nombre, p.marca, d.cantidad, d.precio_unitario,
		       d.cantidad * d.precio_unitario AS subtotal
		FROM detalles_orden d
		JOIN productos p ON p.id = d.producto_id
		WHERE d.orden_id = $1
		ORDER BY d.id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("order line details: %w", err)
	}
	defer rows.Close()

	var details []repository.QuoteLineDetail
	for rows.Next() {
		var d repository.QuoteLineDetail
		if err := rows.Scan(&d.SKU, &d.Name, &d.Brand, &d.Quantity, &d.UnitPrice, &d.Subtotal); err != nil {
			return nil, fmt.Errorf("scan line detail: %w", err)
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

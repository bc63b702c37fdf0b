package chat_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/chatbot-b2b/internal/application/chat"
	"github.com/tu-usuario/chatbot-b2b/internal/domain/entity"
	"github.com/tu-usuario/chatbot-b2b/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests BuildContext — formato del contexto para el prompt
// ──────────────────────────────────────────────────────────────────────────────

func matchFixture(sku, name string, distance float64) repository.ProductMatch {
	return repository.ProductMatch{
		Product: &entity.Product{
			SKU:         sku,
			Name:        name,
			Brand:       "HID Global",
			Description: "Tarjeta de proximidad",
			ListPrice:   decimal.RequireFromString("65.5"),
			Stock:       5000,
			Specs: map[string]entity.SpecValue{
				"frecuencia":   entity.ScalarSpec("125 kHz"),
				"conectividad": entity.ListSpec("TCP/IP", "WiFi"),
			},
		},
		Distance: distance,
	}
}

// Caso 1: Sin resultados → texto centinela exacto.
func TestBuildContext_SinResultados(t *testing.T) {
	assert.Equal(t,
		"No se encontraron productos relevantes en el catálogo.",
		chat.BuildContext(nil),
	)
}

// Caso 2: Cada producto aparece numerado en el orden recibido, con separador.
func TestBuildContext_OrdenYNumeracion(t *testing.T) {
	ctx := chat.BuildContext([]repository.ProductMatch{
		matchFixture("HID-1326-LMSMV", "Tarjeta Clamshell ProxCard II", 0.12),
		matchFixture("ZK-TS2000", "Torniquete Trípode TS2000 Pro", 0.35),
	})

	pos1 := strings.Index(ctx, "PRODUCTO 1:")
	pos2 := strings.Index(ctx, "PRODUCTO 2:")
	assert.Greater(t, pos1, -1)
	assert.Greater(t, pos2, pos1, "los bloques conservan el orden de similitud")
	assert.Contains(t, ctx, "\n---\n", "los bloques van separados")
	assert.Contains(t, ctx, "- SKU: HID-1326-LMSMV")
	assert.Contains(t, ctx, "- Nombre: Torniquete Trípode TS2000 Pro")
}

// Caso 3: La relevancia reportada es 1 - distancia, con dos decimales.
func TestBuildContext_Relevancia(t *testing.T) {
	ctx := chat.BuildContext([]repository.ProductMatch{
		matchFixture("HID-1326-LMSMV", "Tarjeta Clamshell ProxCard II", 0.12),
	})
	assert.Contains(t, ctx, "- Relevancia: 0.88")
}

// Caso 4: Las especificaciones se aplanan como "clave: valor" en orden
// estable y los valores de lista se unen con coma.
func TestBuildContext_EspecificacionesAplanadas(t *testing.T) {
	ctx := chat.BuildContext([]repository.ProductMatch{
		matchFixture("HID-1326-LMSMV", "Tarjeta Clamshell ProxCard II", 0.2),
	})

	posConectividad := strings.Index(ctx, "  - conectividad: TCP/IP, WiFi")
	posFrecuencia := strings.Index(ctx, "  - frecuencia: 125 kHz")
	assert.Greater(t, posConectividad, -1)
	assert.Greater(t, posFrecuencia, posConectividad, "claves en orden alfabético")
}

// Caso 5: Precio y stock aparecen con el formato del prompt original.
func TestBuildContext_PrecioYStock(t *testing.T) {
	ctx := chat.BuildContext([]repository.ProductMatch{
		matchFixture("HID-1326-LMSMV", "Tarjeta Clamshell ProxCard II", 0.2),
	})
	assert.Contains(t, ctx, "- Precio: $65.5\n")
	assert.Contains(t, ctx, "- Stock: 5000 unidades")
}

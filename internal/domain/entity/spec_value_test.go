package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/chatbot-b2b/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests SpecValue — escalares y listas de especificaciones técnicas
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Escalares de cada tipo se renderizan como texto plano.
func TestSpecValue_Escalares(t *testing.T) {
	assert.Equal(t, "125 kHz", entity.ScalarSpec("125 kHz").String())
	assert.Equal(t, "500000", entity.ScalarSpec(500000).String())
	assert.Equal(t, "true", entity.ScalarSpec(true).String())
	assert.False(t, entity.ScalarSpec("x").IsList())
}

// Caso 2: Las listas se unen con coma y espacio.
func TestSpecValue_Lista(t *testing.T) {
	v := entity.ListSpec("TCP/IP", "WiFi", "RS485")
	assert.True(t, v.IsList())
	assert.Equal(t, []string{"TCP/IP", "WiFi", "RS485"}, v.Values())
	assert.Equal(t, "TCP/IP, WiFi, RS485", v.String())
}

// Caso 3: Deserialización desde el JSONB del catálogo, con tipos mezclados.
func TestSpecValue_UnmarshalDesdeJSONB(t *testing.T) {
	raw := `{
		"tipo_sensor": "Optico OP5",
		"capacidad_usuarios": 500000,
		"poe": true,
		"conectividad": ["TCP/IP", "WiFi", "RS485"]
	}`
	var specs map[string]entity.SpecValue
	require.NoError(t, json.Unmarshal([]byte(raw), &specs))

	assert.Equal(t, "Optico OP5", specs["tipo_sensor"].String())
	assert.Equal(t, "500000", specs["capacidad_usuarios"].String(), "los enteros no pasan por float")
	assert.Equal(t, "true", specs["poe"].String())
	assert.True(t, specs["conectividad"].IsList())
	assert.Equal(t, "TCP/IP, WiFi, RS485", specs["conectividad"].String())
}

// Caso 4: La serialización conserva el JSON original sin pérdida de tipo.
func TestSpecValue_RoundTripSinPerdida(t *testing.T) {
	raw := `{"capacidad_usuarios":500000,"poe":true,"conectividad":["TCP/IP","WiFi"]}`
	var specs map[string]entity.SpecValue
	require.NoError(t, json.Unmarshal([]byte(raw), &specs))

	out, err := json.Marshal(specs)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out), "números y booleanos conservan su tipo JSON")
}

// Caso 5: Objetos anidados y listas de listas se rechazan.
func TestSpecValue_RechazaAnidados(t *testing.T) {
	var v entity.SpecValue
	assert.Error(t, json.Unmarshal([]byte(`{"a": 1}`), &v))
	assert.Error(t, json.Unmarshal([]byte(`[[1, 2]]`), &v))
}

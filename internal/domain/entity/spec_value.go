package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// SpecValue es el valor de una especificación técnica: un escalar o una lista
// de escalares. Se conserva el JSON original para que la sincronización con la
// base no altere los tipos (números, booleanos) del catálogo.
type SpecValue struct {
	raw    json.RawMessage
	values []string
	isList bool
}

// ScalarSpec construye un valor escalar a partir de string, número o booleano.
func ScalarSpec(v any) SpecValue {
	raw, _ := json.Marshal(v)
	return SpecValue{raw: raw, values: []string{renderScalar(v)}}
}

// ListSpec construye una lista de escalares.
func ListSpec(items ...any) SpecValue {
	raw, _ := json.Marshal(items)
	values := make([]string, len(items))
	for i, it := range items {
		values[i] = renderScalar(it)
	}
	return SpecValue{raw: raw, values: values, isList: true}
}

// IsList indica si el valor es una lista.
func (v SpecValue) IsList() bool { return v.isList }

// Values devuelve los escalares ya renderizados como texto.
func (v SpecValue) Values() []string { return v.values }

// String devuelve el valor plano; las listas se unen con ", ".
func (v SpecValue) String() string {
	return strings.Join(v.values, ", ")
}

// MarshalJSON devuelve el JSON original sin pérdida de tipo.
func (v SpecValue) MarshalJSON() ([]byte, error) {
	if v.raw == nil {
		return []byte("null"), nil
	}
	return v.raw, nil
}

// UnmarshalJSON acepta escalares (string, número, booleano, null) o un
// arreglo de escalares. Los arreglos anidados u objetos se rechazan.
func (v *SpecValue) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	var parsed any
	if err := dec.Decode(&parsed); err != nil {
		return err
	}
	switch val := parsed.(type) {
	case []any:
		values := make([]string, 0, len(val))
		for _, it := range val {
			switch it.(type) {
			case []any, map[string]any:
				return fmt.Errorf("especificación: lista con valores no escalares")
			}
			values = append(values, renderScalar(it))
		}
		*v = SpecValue{raw: append(json.RawMessage(nil), data...), values: values, isList: true}
	case map[string]any:
		return fmt.Errorf("especificación: objeto anidado no soportado")
	default:
		*v = SpecValue{raw: append(json.RawMessage(nil), data...), values: []string{renderScalar(parsed)}}
	}
	return nil
}

func renderScalar(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case json.Number:
		return val.String()
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}

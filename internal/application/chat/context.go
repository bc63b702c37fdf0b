package chat

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tu-usuario/chatbot-b2b/internal/domain/entity"
	"github.com/tu-usuario/chatbot-b2b/internal/domain/repository"
)

// noRelevantProducts texto fijo cuando la búsqueda no arroja resultados.
const noRelevantProducts = "No se encontraron productos relevantes en el catálogo."

// BuildContext formatea la lista de productos recuperados como contexto para
// el prompt del modelo generativo, en el mismo orden de similitud recibido.
// Función puramente de formato: sin recuperación ni persistencia.
func BuildContext(matches []repository.ProductMatch) string {
	if len(matches) == 0 {
		return noRelevantProducts
	}

	blocks := make([]string, 0, len(matches))
	for i, m := range matches {
		p := m.Product
		var b strings.Builder
		fmt.Fprintf(&b, "\nPRODUCTO %d:\n", i+1)
		fmt.Fprintf(&b, "- SKU: %s\n", p.SKU)
		fmt.Fprintf(&b, "- Nombre: %s\n", p.Name)
		fmt.Fprintf(&b, "- Marca: %s\n", p.Brand)
		fmt.Fprintf(&b, "- Descripción: %s\n", p.Description)
		fmt.Fprintf(&b, "- Precio: $%s\n", p.ListPrice.String())
		fmt.Fprintf(&b, "- Stock: %d unidades\n", p.Stock)
		b.WriteString("- Especificaciones:\n")
		for _, line := range flattenSpecs(p.Specs) {
			fmt.Fprintf(&b, "  - %s\n", line)
		}
		fmt.Fprintf(&b, "- Relevancia: %.2f\n", m.Relevance())
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n---\n")
}

// flattenSpecs aplana el mapa de especificaciones como "clave: valor" con las
// claves en orden estable; los valores de lista se unen con ", ".
func flattenSpecs(specs map[string]entity.SpecValue) []string {
	keys := make([]string, 0, len(specs))
	for k := range specs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %s", k, specs[k].String()))
	}
	return lines
}

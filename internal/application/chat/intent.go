package chat

import (
	"regexp"

	"github.com/tu-usuario/chatbot-b2b/internal/domain/entity"
)

// Clasificación de intención por tabla de decisión ordenada: la primera
// familia de patrones que coincide gana. El orden es intencional: la intención
// comercial (cotización) domina la desambiguación, por eso un mensaje con
// cantidad y término técnico es quote_request y no technical_query.

type intentRule struct {
	patterns   []*regexp.Regexp
	intent     entity.IntentType
	confidence float64
}

var quotePatterns = compileAll(
	`(?i)cot[ií]za(me|r)?`,
	`(?i)cu[aá]nto (cuesta|costar[ií]a)`,
	`(?i)precio de`,
	`(?i)quiero comprar`,
	`(?i)necesito \d+`,
	`(?i)dame \d+`,
	`(?i)\d+\s*(piezas|unidades|licencias)`,
)

var technicalPatterns = compileAll(
	`(?i)especificaciones`,
	`(?i)caracter[ií]sticas`,
	`(?i)c[oó]mo funciona`,
	`(?i)qu[eé] (es|son)`,
	`(?i)para qu[eé] sirve`,
	`(?i)compatib(le|ilidad)`,
	`(?i)conectividad`,
	`(?i)capacidad`,
	`(?i)rendimiento`,
)

var productSearchPatterns = compileAll(
	`(?i)necesito (un|una)`,
	`(?i)busco (un|una)`,
	`(?i)recomienda(me)?`,
	`(?i)qu[eé] productos`,
	`(?i)tienes? (algo|alguno)`,
	`(?i)para (uso|exterior|interior)`,
	`(?i)(lector|impresora|tarjeta|software|torniquete)`,
)

var intentRules = []intentRule{
	{quotePatterns, entity.IntentQuoteRequest, 0.9},
	{technicalPatterns, entity.IntentTechnicalQuery, 0.85},
	{productSearchPatterns, entity.IntentProductSearch, 0.8},
}

// generalConfidence confianza fija cuando ningún patrón coincide.
const generalConfidence = 0.5

// ClassifyIntent asigna exactamente una intención al mensaje. Función pura.
func ClassifyIntent(message string) entity.Intent {
	for _, rule := range intentRules {
		for _, p := range rule.patterns {
			if p.MatchString(message) {
				return entity.Intent{Type: rule.intent, Confidence: rule.confidence}
			}
		}
	}
	return entity.Intent{Type: entity.IntentGeneralQuery, Confidence: generalConfidence}
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}

package entity

// IntentType clasificación de la intención de un mensaje del usuario.
type IntentType string

const (
	IntentQuoteRequest   IntentType = "quote_request"
	IntentTechnicalQuery IntentType = "technical_query"
	IntentProductSearch  IntentType = "product_search"
	IntentGeneralQuery   IntentType = "general_query"
)

// Intent intención detectada con su nivel de confianza en (0, 1].
// Se asigna exactamente una intención por mensaje.
type Intent struct {
	Type       IntentType
	Confidence float64
}

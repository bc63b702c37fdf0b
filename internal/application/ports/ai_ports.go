package ports

import "context"

// EmbeddingService define el puerto de salida hacia el proveedor de embeddings.
// Cualquier adaptador (Gemini, OpenAI, mock) debe implementar esta interfaz.
// Siguiendo el principio de inversión de dependencias (DIP), la aplicación
// solo conoce este contrato, no la implementación concreta.
type EmbeddingService interface {
	// Embed convierte un texto en un vector de dimensión fija.
	// Devuelve domain.ErrUpstream (envuelto) si el proveedor no retorna vector.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	Embed(ctx context.Context, text string) ([]float32, error)
}

// ChatModelService define el puerto de salida hacia el modelo generativo.
type ChatModelService interface {
	// Generate produce la respuesta del asistente a partir del prompt de
	// sistema, el contexto de productos recuperados y el mensaje del usuario.
	// Devuelve domain.ErrUpstream (envuelto) si el modelo retorna texto vacío.
	Generate(ctx context.Context, systemPrompt, productContext, userMessage string) (string, error)
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/chatbot-b2b/internal/application/auth"
	"github.com/tu-usuario/chatbot-b2b/internal/application/catalog"
	"github.com/tu-usuario/chatbot-b2b/internal/application/chat"
	"github.com/tu-usuario/chatbot-b2b/internal/application/quotes"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ChatUC    *chat.ChatUseCase
	SyncUC    *catalog.SyncUseCase
	QuotePDF  *quotes.PDFUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Chat (público: el chatbot identifica al cliente por userId)
	chatGroup := api.Group("/chat")
	chatHandler := NewChatHandler(deps.ChatUC)
	chatGroup.Post("/message", chatHandler.ProcessMessage)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido: sincronización del catálogo)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.SyncUC)
	products.Post("/sync", productHandler.Sync)
	products.Post("/update-embedding", productHandler.UpdateEmbedding)

	// Quotes (protegido)
	quotesGroup := protected.Group("/quotes")
	quoteHandler := NewQuoteHandler(deps.QuotePDF)
	quotesGroup.Get("/:id/pdf", quoteHandler.DownloadPDF)
}

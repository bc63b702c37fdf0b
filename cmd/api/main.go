package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/chatbot-b2b/internal/application/auth"
	"github.com/tu-usuario/chatbot-b2b/internal/application/catalog"
	"github.com/tu-usuario/chatbot-b2b/internal/application/chat"
	"github.com/tu-usuario/chatbot-b2b/internal/application/quotes"
	infraai "github.com/tu-usuario/chatbot-b2b/internal/infrastructure/ai"
	infrapdf "github.com/tu-usuario/chatbot-b2b/internal/infrastructure/pdf"
	"github.com/tu-usuario/chatbot-b2b/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/chatbot-b2b/internal/interfaces/http"
	"github.com/tu-usuario/chatbot-b2b/pkg/config"
	"github.com/tu-usuario/chatbot-b2b/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.ChatModel, cfg.AI.EmbedModel)

	retrieval := chat.NewRetrievalEngine(geminiSvc, productRepo)
	quoteBuilder := chat.NewQuoteBuilder(retrieval, txRunner)
	chatUC := chat.NewChatUseCase(retrieval, quoteBuilder, geminiSvc, cfg.Chat.MaxProductsSearch, log)

	syncUC := catalog.NewSyncUseCase(geminiSvc, productRepo, log)

	pdfGenerator := infrapdf.NewMarotoQuoteGenerator(cfg.App.Name)
	quotePDFUC := quotes.NewPDFUseCase(orderRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(
		auth.AdminConfig{
			Username:     cfg.Admin.Username,
			PasswordHash: cfg.Admin.PasswordHash,
		},
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Chatbot B2B API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ChatUC:    chatUC,
		SyncUC:    syncUC,
		QuotePDF:  quotePDFUC,
		AuthUC:    authUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

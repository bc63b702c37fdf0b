// seed carga el catálogo de demostración (5 productos de control de acceso)
// generando el embedding de cada uno vía Gemini.
//
// Uso: go run ./cmd/seed
// Requiere DATABASE_URL (o DB_*) y GEMINI_API_KEY en el entorno.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/chatbot-b2b/internal/application/catalog"
	"github.com/tu-usuario/chatbot-b2b/internal/application/dto"
	"github.com/tu-usuario/chatbot-b2b/internal/domain/entity"
	infraai "github.com/tu-usuario/chatbot-b2b/internal/infrastructure/ai"
	"github.com/tu-usuario/chatbot-b2b/internal/infrastructure/postgres"
	"github.com/tu-usuario/chatbot-b2b/pkg/config"
	"github.com/tu-usuario/chatbot-b2b/pkg/logger"
)

func demoProducts() []dto.SyncProductRequest {
	return []dto.SyncProductRequest{
		{
			CategoriaID:      1,
			SKU:              "SUP-BS2-OEPW",
			Nombre:           "BioStation 2 Lector de Huella Exterior",
			Marca:            "Suprema",
			Descripcion:      "Terminal biométrica IP para control de acceso y asistencia. Ultra rápido y apto para exterior.",
			PrecioLista:      decimal.RequireFromString("15500.00"),
			StockActual:      45,
			UnidadMedida:     "pieza",
			Especificaciones: map[string]entity.SpecValue{
				"tipo_sensor":        entity.ScalarSpec("Optico OP5"),
				"capacidad_usuarios": entity.ScalarSpec(500000),
				"conectividad":       entity.ListSpec("TCP/IP", "WiFi", "RS485"),
				"proteccion_ip":      entity.ScalarSpec("IP65 (Exterior)"),
				"poe":                entity.ScalarSpec(true),
			},
		},
		{
			CategoriaID:      2,
			SKU:              "HID-1326-LMSMV",
			Nombre:           "Tarjeta Clamshell ProxCard II",
			Marca:            "HID Global",
			Descripcion:      "Tarjeta de control de acceso de proximidad estándar. Durable y económica.",
			PrecioLista:      decimal.RequireFromString("65.50"),
			StockActual:      5000,
			UnidadMedida:     "pieza",
			Especificaciones: map[string]entity.SpecValue{
				"frecuencia":    entity.ScalarSpec("125 kHz"),
				"material":      entity.ScalarSpec("ABS"),
				"formato":       entity.ScalarSpec("26 bits Wiegand"),
				"rango_lectura": entity.ScalarSpec("Hasta 60 cm"),
				"imprimible":    entity.ScalarSpec(false),
			},
		},
		{
			CategoriaID:      2,
			SKU:              "FAR-DTC1250E",
			Nombre:           "Impresora Fargo DTC1250e Doble Cara",
			Marca:            "HID Fargo",
			Descripcion:      "La solución ideal de impresión de tarjetas para pequeñas empresas, escuelas y gobiernos locales.",
			PrecioLista:      decimal.RequireFromString("28900.00"),
			StockActual:      12,
			UnidadMedida:     "pieza",
			Especificaciones: map[string]entity.SpecValue{
				"tecnologia": entity.ScalarSpec("Sublimación de tinta"),
				"resolucion": entity.ScalarSpec("300 dpi"),
				"velocidad":  entity.ScalarSpec("16 segundos por tarjeta a color"),
				"interfaz":   entity.ScalarSpec("USB 2.0"),
				"laminacion": entity.ScalarSpec(false),
			},
		},
		{
			CategoriaID:      3,
			SKU:              "SIA-CETNET-500",
			Nombre:           "Licencia Software CET.NET Edición Professional",
			Marca:            "SIASA",
			Descripcion:      "Software administrativo para control de asistencia, incidencias y nómina. Versión hasta 500 empleados.",
			PrecioLista:      decimal.RequireFromString("8500.00"),
			StockActual:      999,
			UnidadMedida:     "licencia",
			Especificaciones: map[string]entity.SpecValue{
				"compatibilidad_os": entity.ListSpec("Windows 10", "Windows 11", "Server 2019"),
				"base_datos":        entity.ListSpec("SQL Server", "Firebird"),
				"modulos":           entity.ListSpec("Nómina", "Horarios Rotativos", "Vacaciones"),
				"tipo_licencia":     entity.ScalarSpec("Digital / Perpetua"),
			},
		},
		{
			CategoriaID:      1,
			SKU:              "ZK-TS2000",
			Nombre:           "Torniquete Trípode TS2000 Pro",
			Marca:            "ZKTeco",
			Descripcion:      "Torniquete trípode de acero inoxidable con función de caída de brazo para emergencias.",
			PrecioLista:      decimal.RequireFromString("12400.00"),
			StockActual:      8,
			UnidadMedida:     "pieza",
			Especificaciones: map[string]entity.SpecValue{
				"material":       entity.ScalarSpec("Acero Inoxidable SUS304"),
				"flujo_personas": entity.ScalarSpec("30 por minuto"),
				"alimentacion":   entity.ScalarSpec("110V/220V AC"),
				"uso":            entity.ScalarSpec("Interior / Exterior protegido"),
				"mecanismo":      entity.ScalarSpec("Semi-automático"),
			},
		},
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.ChatModel, cfg.AI.EmbedModel)
	syncUC := catalog.NewSyncUseCase(geminiSvc, postgres.NewProductRepository(pool), log)

	products := demoProducts()
	for i, p := range products {
		fmt.Printf("[%d/%d] Sincronizando: %s (%s)\n", i+1, len(products), p.Nombre, p.SKU)
		if _, err := syncUC.SyncProduct(ctx, p); err != nil {
			fmt.Printf("   error: %v\n", err)
			continue
		}
		fmt.Println("   ok")

		// Pausa corta para no saturar la API de Gemini.
		time.Sleep(time.Second)
	}
	fmt.Println("Sincronización completada")
}

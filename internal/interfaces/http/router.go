package http

import (
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appanalytics "github.com/jhoicas/Ventas-api/internal/application/analytics"
	"github.com/jhoicas/Ventas-api/internal/application/report"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName     string
	ProductUC   *usecase.ProductUseCase
	SaleUC      *usecase.SaleUseCase
	BidUC       *usecase.BidUseCase
	LedgerUC    *usecase.LedgerUseCase
	DashboardUC *appanalytics.DashboardUseCase
	ReportUC    *report.SalesReportUseCase
	Log         *logger.Logger

	ResetEnabled bool   // monta POST /api/reset
	SwaggerFile  string // si existe, se sirve Swagger UI en /docs
	StaticDir    string // dashboard estático opcional en /
}

// NewApp construye la aplicación Fiber con middlewares y rutas.
func NewApp(deps RouterDeps) *fiber.App {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:               deps.AppName,
		DisableStartupMessage: true,
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 10,
		IdleTimeout:           time.Second * 60,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if fe, ok := err.(*fiber.Error); ok {
				return c.Status(fe.Code).JSON(fiber.Map{"code": "HTTP_ERROR", "message": fe.Message})
			}
			return writeErrorStatus(c, log, fiber.StatusInternalServerError, CodeInternal, err)
		},
	})
	app.Use(recover.New())
	app.Use(RequestID())
	app.Use(RequestLogger(log))
	app.Use(Metrics())

	if deps.SwaggerFile != "" {
		if _, err := os.Stat(deps.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: deps.SwaggerFile,
				Path:     "docs",
				Title:    deps.AppName,
			}))
		} else {
			log.Warn().Str("file", deps.SwaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	Router(app, deps)

	if deps.StaticDir != "" {
		app.Static("/", deps.StaticDir)
	}
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api")

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, log.Named("products"))
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, log.Named("sales"))
	sales.Get("/", saleHandler.List)
	sales.Post("/", saleHandler.Create)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Put("/:id", saleHandler.Update)
	sales.Delete("/:id", saleHandler.Delete)

	bids := api.Group("/bids")
	bidHandler := NewBidHandler(deps.BidUC, log.Named("bids"))
	bids.Get("/", bidHandler.List)
	bids.Post("/", bidHandler.Create)
	bids.Get("/:id", bidHandler.GetByID)
	bids.Put("/:id", bidHandler.Update)
	bids.Delete("/:id", bidHandler.Delete)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, log.Named("dashboard"))
	api.Get("/dashboard/summary", dashboardHandler.GetSummary)

	reportHandler := NewReportHandler(deps.ReportUC, log.Named("reports"))
	api.Get("/reports/sales.pdf", reportHandler.SalesPDF)

	// Solo demo/pruebas: sin la ruta, POST /api/reset responde 404.
	if deps.ResetEnabled {
		resetHandler := NewResetHandler(deps.LedgerUC, log.Named("reset"))
		api.Post("/reset", resetHandler.Reset)
	}
}

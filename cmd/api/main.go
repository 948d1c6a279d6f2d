package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	appanalytics "github.com/jhoicas/Ventas-api/internal/application/analytics"
	"github.com/jhoicas/Ventas-api/internal/application/report"
	"github.com/jhoicas/Ventas-api/internal/application/sales"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Ventas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Ventas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Ventas-api/internal/interfaces/http"
	"github.com/jhoicas/Ventas-api/pkg/config"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.DB.AutoMigrate {
		version, err := postgres.Migrate(cfg.DB.ConnectionString())
		if err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Uint("version", version).Msg("esquema actualizado")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	bidRepo := postgres.NewBidRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	coordinator := sales.NewCoordinator(txRunner, saleRepo)

	dashboardUC, err := appanalytics.NewDashboardUseCase(dashboardRepo, cfg.App.Locale, cfg.App.Currency)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración regional del dashboard")
	}

	// PDF: reporte de ventas
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	reportUC := report.NewSalesReportUseCase(saleRepo, pdfGenerator, dashboardUC)

	app := httpRouter.NewApp(httpRouter.RouterDeps{
		AppName:      cfg.App.Name,
		ProductUC:    usecase.NewProductUseCase(productRepo),
		SaleUC:       usecase.NewSaleUseCase(coordinator),
		BidUC:        usecase.NewBidUseCase(bidRepo),
		LedgerUC:     usecase.NewLedgerUseCase(ledgerRepo),
		DashboardUC:  dashboardUC,
		ReportUC:     reportUC,
		Log:          log,
		ResetEnabled: cfg.App.ResetEnabled,
		SwaggerFile:  cfg.HTTP.SwaggerFile,
		StaticDir:    cfg.HTTP.StaticDir,
	})
	if cfg.App.ResetEnabled {
		log.Warn().Msg("POST /api/reset habilitado")
	}

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
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

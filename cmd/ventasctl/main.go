// ventasctl tareas operativas sobre la base de ventas: migraciones, reset, datos de demo
// e importación de productos desde CSV.
//
// Uso:
//
//	ventasctl migrate
//	ventasctl reset [--force]
//	ventasctl seed
//	ventasctl import-products --file productos.csv [--latin1]
//
// La conexión se toma de las mismas variables de entorno que la API (DATABASE_URL, DB_HOST, ...).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/urfave/cli/v2"

	"github.com/jhoicas/Ventas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Ventas-api/pkg/config"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "ventasctl: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "ventasctl",
		Usage: "administración de la base de ventas",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "trace, debug, info, warn, error",
				EnvVars: []string{"LOG_LEVEL"},
				Value:   "info",
			},
		},
		Commands: []*cli.Command{
			migrateCommand(),
			resetCommand(),
			seedCommand(),
			importProductsCommand(),
		},
	}
}

// env configuración y logger compartidos por los subcomandos.
type env struct {
	cfg *config.Config
	log *logger.Logger
}

func loadEnv(c *cli.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: c.String("log-level"), Output: os.Stderr})
	return &env{cfg: cfg, log: log}, nil
}

// withPool abre el pool, ejecuta fn y lo cierra.
func withPool(c *cli.Context, fn func(e *env, pool *pgxpool.Pool) error) error {
	e, err := loadEnv(c)
	if err != nil {
		return err
	}
	pool, err := postgres.NewPool(c.Context, e.cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()
	return fn(e, pool)
}

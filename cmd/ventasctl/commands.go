package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/urfave/cli/v2"

	"github.com/jhoicas/Ventas-api/internal/application/sales"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
	"github.com/jhoicas/Ventas-api/internal/infrastructure/postgres"
)

var errProductionReset = errors.New("reset rechazado en producción (use --force)")

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "aplica las migraciones pendientes",
		Action: func(c *cli.Context) error {
			e, err := loadEnv(c)
			if err != nil {
				return err
			}
			version, err := postgres.Migrate(e.cfg.DB.ConnectionString())
			if err != nil {
				return err
			}
			e.log.Info().Uint("version", version).Msg("esquema actualizado")
			return nil
		},
	}
}

func resetCommand() *cli.Command {
	return &cli.Command{
		Name:  "reset",
		Usage: "vacía productos, ventas y licitaciones y reinicia los IDs",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "force", Usage: "permite el reset con APP_ENV=production"},
		},
		Action: func(c *cli.Context) error {
			return withPool(c, func(e *env, pool *pgxpool.Pool) error {
				if err := checkResetAllowed(e.cfg.App.IsProduction(), c.Bool("force")); err != nil {
					return err
				}
				uc := usecase.NewLedgerUseCase(postgres.NewLedgerRepository(pool))
				if err := uc.Reset(c.Context); err != nil {
					return err
				}
				e.log.Warn().Str("env", e.cfg.App.Env).Msg("registro reiniciado")
				return nil
			})
		},
	}
}

func checkResetAllowed(production, force bool) error {
	if production && !force {
		return errProductionReset
	}
	return nil
}

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "inserta productos, licitaciones y ventas de demostración",
		Action: func(c *cli.Context) error {
			return withPool(c, func(e *env, pool *pgxpool.Pool) error {
				saleRepo := postgres.NewSaleRepository(pool)
				s := seeder{
					products: usecase.NewProductUseCase(postgres.NewProductRepository(pool)),
					bids:     usecase.NewBidUseCase(postgres.NewBidRepository(pool)),
					sales:    usecase.NewSaleUseCase(sales.NewCoordinator(postgres.NewTxRunner(pool), saleRepo)),
				}
				n, err := s.run(c.Context)
				if err != nil {
					return err
				}
				e.log.Info().
					Int("products", n.products).
					Int("bids", n.bids).
					Int("sales", n.sales).
					Msg("datos de demostración insertados")
				return nil
			})
		},
	}
}

func importProductsCommand() *cli.Command {
	return &cli.Command{
		Name:  "import-products",
		Usage: "importa productos desde un CSV (name,category,price,stock)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Required: true, Usage: "ruta del CSV"},
			&cli.BoolFlag{Name: "latin1", Usage: "el archivo está en ISO-8859-1"},
		},
		Action: func(c *cli.Context) error {
			f, err := os.Open(c.String("file"))
			if err != nil {
				return fmt.Errorf("abrir CSV: %w", err)
			}
			defer f.Close()

			rows, err := parseProductsCSV(f, c.Bool("latin1"))
			if err != nil {
				return err
			}
			return withPool(c, func(e *env, pool *pgxpool.Pool) error {
				uc := usecase.NewProductUseCase(postgres.NewProductRepository(pool))
				for i, in := range rows {
					if _, err := uc.Create(c.Context, in); err != nil {
						return fmt.Errorf("fila %d (%s): %w", i+2, in.Name, err)
					}
				}
				e.log.Info().Int("products", len(rows)).Msg("productos importados")
				return nil
			})
		},
	}
}

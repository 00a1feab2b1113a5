package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/AgusMolinaCode/CryptoDashboard.git/internal/cli"
	"github.com/AgusMolinaCode/CryptoDashboard.git/internal/config"
	"github.com/AgusMolinaCode/CryptoDashboard.git/internal/middleware"
	"github.com/AgusMolinaCode/CryptoDashboard.git/internal/portfolio"
	routes "github.com/AgusMolinaCode/CryptoDashboard.git/internal/server"
	"github.com/AgusMolinaCode/CryptoDashboard.git/internal/services"
	"github.com/spf13/cobra"
)

// app agrupa las dependencias armadas al arrancar
type app struct {
	cfg       config.Config
	store     *services.SnapshotStore
	dashboard *portfolio.Dashboard
}

// newApp carga la configuración y el snapshot de mercado. Sin snapshot no se
// puede valuar nada, así que un error acá es fatal.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("error en la configuración: %w", err)
	}

	client := services.NewCoinGeckoClient(cfg.CoinGeckoBaseURL, cfg.QuoteCurrency, cfg.HTTPTimeout)
	store := services.NewSnapshotStore(client, cfg.TopN, cfg.HTTPTimeout)
	if err := store.Reload(ctx); err != nil {
		return nil, fmt.Errorf("no se pudo obtener el snapshot de mercado inicial: %w", err)
	}

	history := services.NewHistoricalFetcher(client, cfg.HistoryDays)
	dashboard := portfolio.NewDashboard(store, history, cfg.QuoteCurrency, cfg.HistoryDays)

	return &app{cfg: cfg, store: store, dashboard: dashboard}, nil
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cryptodashboard",
		Short: "Cryptocurrency portfolio dashboard",
		Long: `Serves a single-page dashboard that values a cryptocurrency portfolio
against the CoinGecko market listing and charts its price history.
Configuration is read from the environment (and an optional .env file).`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Sin subcomando se inicia el servidor
			return runServe(cmd.Context())
		},
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newValueCmd())

	return rootCmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func newValueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "value PORTFOLIO",
		Short: "Value a portfolio once and print the result",
		Long: `Value a portfolio given as "name:quantity" pairs separated by commas.
Example: cryptodashboard value "bitcoin:0.5, ethereum:2"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			res := a.dashboard.Run(cmd.Context(), 1, args[0])
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderResult(res, a.cfg.QuoteCurrency))
			return nil
		},
	}
}

func runServe(ctx context.Context) error {
	a, err := newApp(ctx)
	if err != nil {
		return err
	}

	// Recarga periódica, desactivada por defecto
	a.store.Start(a.cfg.SnapshotRefreshInterval)
	defer a.store.Stop()

	middleware.InitDashboard(a.store, a.dashboard, middleware.PageSettings{
		Currency:    a.cfg.QuoteCurrency,
		HistoryDays: a.cfg.HistoryDays,
	})

	router := routes.NewRouter(a.cfg.CORSOrigins)

	log.Printf("Dashboard escuchando en el puerto %s", a.cfg.Port)
	return routes.Serve(ctx, router, ":"+a.cfg.Port)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		cancel()
		log.Fatalf("Error: %v", err)
	}
}

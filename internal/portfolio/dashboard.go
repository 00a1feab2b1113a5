package portfolio

import (
	"context"
	"log"
	"sync"

	"github.com/AgusMolinaCode/CryptoDashboard.git/internal/models"
	"github.com/google/uuid"
)

// SnapshotSource entrega el snapshot de mercado vigente
type SnapshotSource interface {
	Current() *models.MarketSnapshot
}

// HistorySource entrega el historial de un activo. Nunca falla: ante un error
// devuelve una serie vacía.
type HistorySource interface {
	Series(ctx context.Context, assetID string) models.HistoricalSeries
}

// Dashboard ejecuta el flujo completo: parseo, valuación, historial y gráficos
type Dashboard struct {
	snapshots SnapshotSource
	history   HistorySource
	currency  string
	days      int
}

// NewDashboard crea el flujo para una moneda de cotización y una ventana de días
func NewDashboard(snapshots SnapshotSource, history HistorySource, currency string, days int) *Dashboard {
	return &Dashboard{
		snapshots: snapshots,
		history:   history,
		currency:  currency,
		days:      days,
	}
}

// Result es el detalle de una ejecución, además de las salidas para la página
type Result struct {
	Output    models.DashboardOutput
	Portfolio *models.Portfolio
	Valuation models.ValuationResult
	Series    []AssetSeries
}

// Update procesa un envío del formulario. Con nClicks == 0 o input vacío
// devuelve las salidas vacías sin consultar nada.
func (d *Dashboard) Update(ctx context.Context, nClicks int, input string) models.DashboardOutput {
	return d.Run(ctx, nClicks, input).Output
}

// Run es como Update pero devuelve también los resultados intermedios
func (d *Dashboard) Run(ctx context.Context, nClicks int, input string) Result {
	if nClicks == 0 || input == "" {
		return Result{Output: models.DashboardOutput{}}
	}

	runID := uuid.NewString()

	p, err := Parse(input)
	if err != nil {
		log.Printf("[%s] Portafolio inválido: %v", runID, err)
		return Result{Output: models.DashboardOutput{Summary: models.InvalidPortfolioMessage}}
	}

	valuation := Value(p, d.snapshots.Current())
	for _, id := range valuation.Unmatched {
		log.Printf("[%s] %s no está en el snapshot de mercado, no se incluye en la valuación", runID, id)
	}

	series := d.collectHistory(ctx, p.AssetIDs())

	log.Printf("[%s] Portafolio valuado: %d activos, %d con precio, %d con historial",
		runID, p.Len(), len(valuation.PerAsset), countNonEmpty(series))

	return Result{
		Output: models.DashboardOutput{
			Summary:   BuildSummary(valuation.Total, d.currency),
			PieChart:  BuildPieChart(valuation),
			LineChart: BuildLineChart(series, d.days),
		},
		Portfolio: p,
		Valuation: valuation,
		Series:    series,
	}
}

// collectHistory consulta el historial de todos los activos en paralelo. Cada
// goroutine escribe solo su posición, y el resultado conserva el orden de ids.
func (d *Dashboard) collectHistory(ctx context.Context, ids []string) []AssetSeries {
	results := make([]AssetSeries, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			results[i] = AssetSeries{AssetID: id, Prices: d.history.Series(ctx, id)}
		}(i, id)
	}
	wg.Wait()

	return results
}

func countNonEmpty(series []AssetSeries) int {
	n := 0
	for _, s := range series {
		if len(s.Prices) > 0 {
			n++
		}
	}
	return n
}

package middleware

import (
	"context"

	"github.com/AgusMolinaCode/CryptoDashboard.git/internal/models"
)

// SnapshotReader es lo que los handlers necesitan del store de snapshots
type SnapshotReader interface {
	Current() *models.MarketSnapshot
}

// DashboardRunner ejecuta el flujo de valuación para un envío del formulario
type DashboardRunner interface {
	Update(ctx context.Context, nClicks int, input string) models.DashboardOutput
}

// Variables globales con las dependencias de los handlers
var (
	snapshotStore   SnapshotReader
	dashboardRunner DashboardRunner
	pageSettings    PageSettings
)

// PageSettings son los datos que se muestran en la página
type PageSettings struct {
	Currency    string
	HistoryDays int
}

// InitDashboard establece las dependencias de los handlers del dashboard
func InitDashboard(store SnapshotReader, runner DashboardRunner, settings PageSettings) {
	snapshotStore = store
	dashboardRunner = runner
	pageSettings = settings
}

package services

import (
	"context"
	"errors"
	"log"

	"github.com/AgusMolinaCode/CryptoDashboard.git/internal/models"
)

// HistoricalPriceClient es la parte del cliente de CoinGecko que necesita HistoricalFetcher
type HistoricalPriceClient interface {
	FetchHistoricalPrices(ctx context.Context, assetID string, days int) (models.HistoricalSeries, error)
}

// HistoricalFetcher obtiene el historial de precios en modo best-effort:
// cualquier error se registra y se convierte en una serie vacía.
type HistoricalFetcher struct {
	client HistoricalPriceClient
	days   int
}

// NewHistoricalFetcher crea un fetcher con una ventana fija de días
func NewHistoricalFetcher(client HistoricalPriceClient, days int) *HistoricalFetcher {
	return &HistoricalFetcher{client: client, days: days}
}

// Series devuelve los precios de cierre del activo, o una serie vacía si falla
func (f *HistoricalFetcher) Series(ctx context.Context, assetID string) models.HistoricalSeries {
	prices, err := f.client.FetchHistoricalPrices(ctx, assetID, f.days)
	if err != nil {
		var fetchErr *models.HistoricalFetchError
		if errors.As(err, &fetchErr) {
			log.Printf("Error al obtener historial de %s: %v", fetchErr.AssetID, fetchErr.Err)
		} else {
			log.Printf("Error al obtener historial de %s: %v", assetID, err)
		}
		return models.HistoricalSeries{}
	}
	return prices
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/AgusMolinaCode/CryptoDashboard.git/internal/models"
	"github.com/go-resty/resty/v2"
)

// CoinGeckoClient consulta la API pública de CoinGecko
type CoinGeckoClient struct {
	client   *resty.Client
	currency string
}

// NewCoinGeckoClient crea un cliente para la API indicada
func NewCoinGeckoClient(baseURL, currency string, timeout time.Duration) *CoinGeckoClient {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(timeout)
	client.SetHeader("Accept", "application/json")

	return &CoinGeckoClient{
		client:   client,
		currency: currency,
	}
}

// marketCoinResponse es un elemento de /coins/markets. Los punteros permiten
// distinguir un campo ausente de un cero.
type marketCoinResponse struct {
	ID           *string    `json:"id"`
	Symbol       *string    `json:"symbol"`
	CurrentPrice *float64   `json:"current_price"`
	MarketCap    *float64   `json:"market_cap"`
	TotalVolume  *float64   `json:"total_volume"`
	LastUpdated  *time.Time `json:"last_updated"`
}

func (r marketCoinResponse) toModel() (models.MarketCoin, error) {
	switch {
	case r.ID == nil || *r.ID == "":
		return models.MarketCoin{}, fmt.Errorf("falta el campo id")
	case r.Symbol == nil:
		return models.MarketCoin{}, fmt.Errorf("falta el campo symbol para %s", *r.ID)
	case r.CurrentPrice == nil:
		return models.MarketCoin{}, fmt.Errorf("falta el campo current_price para %s", *r.ID)
	case r.MarketCap == nil:
		return models.MarketCoin{}, fmt.Errorf("falta el campo market_cap para %s", *r.ID)
	case r.TotalVolume == nil:
		return models.MarketCoin{}, fmt.Errorf("falta el campo total_volume para %s", *r.ID)
	case r.LastUpdated == nil:
		return models.MarketCoin{}, fmt.Errorf("falta el campo last_updated para %s", *r.ID)
	}
	return models.MarketCoin{
		ID:           *r.ID,
		Symbol:       *r.Symbol,
		CurrentPrice: *r.CurrentPrice,
		MarketCap:    *r.MarketCap,
		TotalVolume:  *r.TotalVolume,
		LastUpdated:  *r.LastUpdated,
	}, nil
}

// marketChartResponse es la respuesta de /coins/{id}/market_chart
type marketChartResponse struct {
	Prices *[][]float64 `json:"prices"`
}

// FetchMarketSnapshot obtiene las primeras topN monedas ordenadas por capitalización
func (c *CoinGeckoClient) FetchMarketSnapshot(ctx context.Context, topN int) (*models.MarketSnapshot, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"vs_currency": c.currency,
			"order":       "market_cap_desc",
			"per_page":    strconv.Itoa(topN),
			"page":        "1",
			"sparkline":   "false",
		}).
		Get("/coins/markets")
	if err != nil {
		return nil, &models.SnapshotFetchError{Err: fmt.Errorf("error en la petición HTTP: %w", err)}
	}
	if !resp.IsSuccess() {
		return nil, &models.SnapshotFetchError{Err: fmt.Errorf("status %d: %s", resp.StatusCode(), truncate(resp.String(), 512))}
	}

	var payload []marketCoinResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, &models.SnapshotFetchError{Err: fmt.Errorf("error decodificando JSON: %w", err)}
	}

	coins := make([]models.MarketCoin, 0, len(payload))
	seen := make(map[string]bool, len(payload))
	for _, raw := range payload {
		coin, err := raw.toModel()
		if err != nil {
			return nil, &models.SnapshotFetchError{Err: err}
		}
		if seen[coin.ID] {
			return nil, &models.SnapshotFetchError{Err: fmt.Errorf("id duplicado en el listado: %s", coin.ID)}
		}
		seen[coin.ID] = true
		coins = append(coins, coin)
	}

	return models.NewMarketSnapshot(c.currency, coins, time.Now()), nil
}

// FetchHistoricalPrices obtiene los precios diarios de un activo para los últimos days días
func (c *CoinGeckoClient) FetchHistoricalPrices(ctx context.Context, assetID string, days int) (models.HistoricalSeries, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("id", assetID).
		SetQueryParams(map[string]string{
			"vs_currency": c.currency,
			"days":        strconv.Itoa(days),
		}).
		Get("/coins/{id}/market_chart")
	if err != nil {
		return nil, &models.HistoricalFetchError{AssetID: assetID, Err: err}
	}
	if !resp.IsSuccess() {
		return nil, &models.HistoricalFetchError{
			AssetID: assetID,
			Err:     fmt.Errorf("status %d: %s", resp.StatusCode(), truncate(resp.String(), 512)),
		}
	}

	var payload marketChartResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, &models.HistoricalFetchError{AssetID: assetID, Err: fmt.Errorf("error decodificando JSON: %w", err)}
	}
	if payload.Prices == nil {
		return nil, &models.HistoricalFetchError{AssetID: assetID, Err: fmt.Errorf("falta el campo prices")}
	}

	prices := make(models.HistoricalSeries, 0, len(*payload.Prices))
	for i, point := range *payload.Prices {
		if len(point) < 2 {
			return nil, &models.HistoricalFetchError{AssetID: assetID, Err: fmt.Errorf("punto %d incompleto", i)}
		}
		// Cada punto es [timestamp, precio]
		prices = append(prices, point[1])
	}
	return prices, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

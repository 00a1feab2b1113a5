package models

import "time"

// MarketCoin es un registro del listado de mercado de CoinGecko
type MarketCoin struct {
	ID           string    `json:"id"`
	Symbol       string    `json:"symbol"`
	CurrentPrice float64   `json:"current_price"`
	MarketCap    float64   `json:"market_cap"`
	TotalVolume  float64   `json:"total_volume"`
	LastUpdated  time.Time `json:"last_updated"`
}

// MarketSnapshot es el listado de precios obtenido al arrancar. No se modifica
// una vez construido; para refrescarlo se construye uno nuevo.
type MarketSnapshot struct {
	Coins     []MarketCoin `json:"coins"`
	Currency  string       `json:"currency"`
	FetchedAt time.Time    `json:"fetched_at"`

	index map[string]int
}

// NewMarketSnapshot construye un snapshot indexado por id.
// Si un id aparece dos veces se conserva el primero.
func NewMarketSnapshot(currency string, coins []MarketCoin, fetchedAt time.Time) *MarketSnapshot {
	s := &MarketSnapshot{
		Coins:     make([]MarketCoin, 0, len(coins)),
		Currency:  currency,
		FetchedAt: fetchedAt,
		index:     make(map[string]int, len(coins)),
	}
	for _, c := range coins {
		if _, exists := s.index[c.ID]; exists {
			continue
		}
		s.index[c.ID] = len(s.Coins)
		s.Coins = append(s.Coins, c)
	}
	return s
}

// Lookup busca una moneda por id exacto
func (s *MarketSnapshot) Lookup(id string) (MarketCoin, bool) {
	if s == nil {
		return MarketCoin{}, false
	}
	i, ok := s.index[id]
	if !ok {
		return MarketCoin{}, false
	}
	return s.Coins[i], true
}

// Len devuelve la cantidad de monedas del snapshot
func (s *MarketSnapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Coins)
}

// HistoricalSeries son los precios de cierre diarios, del más antiguo al más reciente
type HistoricalSeries []float64

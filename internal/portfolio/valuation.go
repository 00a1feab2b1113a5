package portfolio

import "github.com/AgusMolinaCode/CryptoDashboard.git/internal/models"

// Value valúa el portafolio con los precios del snapshot. Los activos que no
// están en el snapshot no suman al total y quedan listados en Unmatched.
func Value(p *models.Portfolio, snapshot *models.MarketSnapshot) models.ValuationResult {
	result := models.ValuationResult{
		PerAsset: []models.AssetValue{},
	}

	for _, entry := range p.Entries() {
		coin, ok := snapshot.Lookup(entry.AssetID)
		if !ok {
			result.Unmatched = append(result.Unmatched, entry.AssetID)
			continue
		}

		value := entry.Quantity * coin.CurrentPrice
		result.PerAsset = append(result.PerAsset, models.AssetValue{
			AssetID:  entry.AssetID,
			Quantity: entry.Quantity,
			Price:    coin.CurrentPrice,
			Value:    value,
		})
		result.Total += value
	}

	return result
}

package models

// PortfolioEntry representa una tenencia ingresada por el usuario
type PortfolioEntry struct {
	AssetID  string  `json:"asset_id"`
	Quantity float64 `json:"quantity"`
}

// Portfolio mantiene las tenencias en el orden en que se ingresaron.
// Un id repetido reemplaza la cantidad pero conserva su posición original.
type Portfolio struct {
	entries []PortfolioEntry
	index   map[string]int
}

func NewPortfolio() *Portfolio {
	return &Portfolio{index: make(map[string]int)}
}

// Set agrega o reemplaza la cantidad de un activo
func (p *Portfolio) Set(assetID string, quantity float64) {
	if i, exists := p.index[assetID]; exists {
		p.entries[i].Quantity = quantity
		return
	}
	p.index[assetID] = len(p.entries)
	p.entries = append(p.entries, PortfolioEntry{AssetID: assetID, Quantity: quantity})
}

// Quantity devuelve la cantidad de un activo
func (p *Portfolio) Quantity(assetID string) (float64, bool) {
	i, ok := p.index[assetID]
	if !ok {
		return 0, false
	}
	return p.entries[i].Quantity, true
}

// Entries devuelve una copia de las tenencias en orden de ingreso
func (p *Portfolio) Entries() []PortfolioEntry {
	out := make([]PortfolioEntry, len(p.entries))
	copy(out, p.entries)
	return out
}

// AssetIDs devuelve los ids distintos en orden de ingreso
func (p *Portfolio) AssetIDs() []string {
	ids := make([]string, len(p.entries))
	for i, e := range p.entries {
		ids[i] = e.AssetID
	}
	return ids
}

func (p *Portfolio) Len() int { return len(p.entries) }

// AssetValue es el valor actual de una tenencia
type AssetValue struct {
	AssetID  string  `json:"asset_id"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
	Value    float64 `json:"value"` // Quantity * Price
}

// ValuationResult es el resultado de valuar un portafolio contra el snapshot
type ValuationResult struct {
	PerAsset  []AssetValue `json:"per_asset"`
	Total     float64      `json:"total"`
	Unmatched []string     `json:"unmatched,omitempty"` // Ids que no están en el snapshot
}

// Value devuelve el valor calculado para un activo
func (v ValuationResult) Value(assetID string) (float64, bool) {
	for _, a := range v.PerAsset {
		if a.AssetID == assetID {
			return a.Value, true
		}
	}
	return 0, false
}

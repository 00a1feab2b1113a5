package models

import (
	"errors"
	"fmt"
)

// InvalidPortfolioMessage es el texto que se muestra cuando el portafolio no se puede leer
const InvalidPortfolioMessage = "Invalid input format. Please use 'crypto_name:quantity'."

// ErrInvalidPortfolioFormat se devuelve cuando alguna entrada no tiene la forma nombre:cantidad
var ErrInvalidPortfolioFormat = errors.New("invalid portfolio format")

// HistoricalFetchError indica que no se pudo obtener el historial de un activo
type HistoricalFetchError struct {
	AssetID string
	Err     error
}

func (e *HistoricalFetchError) Error() string {
	return fmt.Sprintf("error fetching historical data for %s: %v", e.AssetID, e.Err)
}

func (e *HistoricalFetchError) Unwrap() error { return e.Err }

// SnapshotFetchError indica que no se pudo obtener el listado de mercado
type SnapshotFetchError struct {
	Err error
}

func (e *SnapshotFetchError) Error() string {
	return fmt.Sprintf("error fetching market snapshot: %v", e.Err)
}

func (e *SnapshotFetchError) Unwrap() error { return e.Err }

package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/AgusMolinaCode/CryptoDashboard.git/internal/models"
)

var errEmptySnapshot = errors.New("el listado de mercado está vacío")

// SnapshotClient es la parte del cliente de CoinGecko que necesita SnapshotStore
type SnapshotClient interface {
	FetchMarketSnapshot(ctx context.Context, topN int) (*models.MarketSnapshot, error)
}

// SnapshotStore guarda el snapshot de mercado vigente. El snapshot se obtiene una
// vez al arrancar y solo se reemplaza con Reload, o periódicamente si se llamó a Start.
type SnapshotStore struct {
	client  SnapshotClient
	topN    int
	timeout time.Duration
	current atomic.Pointer[models.MarketSnapshot]

	mutex     sync.Mutex
	isRunning bool
	stopChan  chan struct{}
	doneChan  chan struct{}
}

// NewSnapshotStore crea un store vacío; hay que llamar a Reload antes de usarlo
func NewSnapshotStore(client SnapshotClient, topN int, timeout time.Duration) *SnapshotStore {
	return &SnapshotStore{
		client:  client,
		topN:    topN,
		timeout: timeout,
	}
}

// Current devuelve el snapshot vigente, o nil si nunca se cargó
func (s *SnapshotStore) Current() *models.MarketSnapshot {
	return s.current.Load()
}

// Reload obtiene un snapshot nuevo y lo publica. Si falla, el snapshot anterior
// sigue vigente. Un listado vacío se considera un error.
func (s *SnapshotStore) Reload(ctx context.Context) error {
	snapshot, err := s.client.FetchMarketSnapshot(ctx, s.topN)
	if err != nil {
		return err
	}
	if snapshot.Len() == 0 {
		return &models.SnapshotFetchError{Err: errEmptySnapshot}
	}
	s.current.Store(snapshot)
	log.Printf("Snapshot de mercado cargado: %d monedas en %s", snapshot.Len(), snapshot.Currency)
	return nil
}

// Start inicia la recarga periódica del snapshot
func (s *SnapshotStore) Start(interval time.Duration) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.isRunning || interval <= 0 {
		return
	}

	s.isRunning = true
	s.stopChan = make(chan struct{})
	s.doneChan = make(chan struct{})

	go func(stop, done chan struct{}) {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
				if err := s.Reload(ctx); err != nil {
					log.Printf("Error al recargar el snapshot, se mantiene el anterior: %v", err)
				}
				cancel()
			case <-stop:
				return
			}
		}
	}(s.stopChan, s.doneChan)

	log.Printf("Recarga del snapshot iniciada con intervalo de %v", interval)
}

// Stop detiene la recarga periódica
func (s *SnapshotStore) Stop() {
	s.mutex.Lock()
	if !s.isRunning {
		s.mutex.Unlock()
		return
	}
	s.isRunning = false
	close(s.stopChan)
	done := s.doneChan
	s.mutex.Unlock()

	<-done
	log.Printf("Recarga del snapshot detenida")
}

package routes

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Serve atiende peticiones en addr hasta que ctx se cancela, y luego apaga el
// servidor esperando a que terminen las peticiones en curso.
func Serve(ctx context.Context, handler http.Handler, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("error al iniciar el servidor: %w", err)
	case <-ctx.Done():
	}

	log.Printf("Apagando el servidor...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error al apagar el servidor: %w", err)
	}
	return nil
}

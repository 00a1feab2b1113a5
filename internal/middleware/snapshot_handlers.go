package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSnapshot devuelve el snapshot de mercado vigente
func GetSnapshot(c *gin.Context) {
	snapshot := snapshotStore.Current()
	if snapshot == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "El snapshot de mercado no está cargado"})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// GetHealth informa el estado del servicio
func GetHealth(c *gin.Context) {
	snapshot := snapshotStore.Current()
	if snapshot == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "snapshot_size": 0})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"snapshot_size": snapshot.Len(),
		"fetched_at":    snapshot.FetchedAt,
	})
}

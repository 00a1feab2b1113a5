package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DashboardRequest es el cuerpo de POST /dashboard
type DashboardRequest struct {
	Portfolio string `json:"portfolio"`
	NClicks   int    `json:"n_clicks"`
}

// GetIndex muestra la página del dashboard
func GetIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Currency":    strings.ToUpper(pageSettings.Currency),
		"HistoryDays": pageSettings.HistoryDays,
	})
}

// UpdateDashboard procesa el portafolio ingresado y devuelve el resumen y los gráficos
func UpdateDashboard(c *gin.Context) {
	var req DashboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Los errores del flujo se reflejan en la salida, nunca como error HTTP
	output := dashboardRunner.Update(c.Request.Context(), req.NClicks, req.Portfolio)

	c.JSON(http.StatusOK, output)
}

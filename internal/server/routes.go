package routes

import (
	"github.com/AgusMolinaCode/CryptoDashboard.git/internal/middleware"
	"github.com/AgusMolinaCode/CryptoDashboard.git/web"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter crea el router de Gin con CORS y todas las rutas registradas
func NewRouter(allowOrigins []string) *gin.Engine {
	router := gin.Default()

	// Configurar CORS
	config := cors.DefaultConfig()
	config.AllowOrigins = allowOrigins
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	config.ExposeHeaders = []string{"Content-Length"}
	router.Use(cors.New(config))

	RegisterRoutes(router)
	return router
}

// RegisterRoutes registra la página y los endpoints del dashboard.
// middleware.InitDashboard debe haberse llamado antes.
func RegisterRoutes(router *gin.Engine) {
	router.SetHTMLTemplate(web.Templates())

	router.GET("/", middleware.GetIndex)
	router.POST("/dashboard", middleware.UpdateDashboard)
	router.GET("/snapshot", middleware.GetSnapshot)
	router.GET("/health", middleware.GetHealth)
}

// internal/api/routes/routes.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"pallet-returns-dashboard/config"
	"pallet-returns-dashboard/internal/api/handlers"
	"pallet-returns-dashboard/internal/api/middleware"
	"pallet-returns-dashboard/internal/dashboard"
	"pallet-returns-dashboard/internal/metrics"
	"pallet-returns-dashboard/internal/s3"
	"pallet-returns-dashboard/internal/socket"
)

// Deps là các thành phần mà router cần.
type Deps struct {
	Store      handlers.ReturnStore
	S3Uploader *s3.Uploader // nil khi S3 chưa được cấu hình
	Hub        *socket.Hub
	Dashboard  dashboard.API
	Log        *logrus.Logger
}

// SetupRouter nhận vào các thành phần phụ thuộc và thiết lập các route
func SetupRouter(cfg config.Config, deps Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(deps.Log))
	router.Use(cors.New(corsConfig(cfg.Server.AllowedOrigins)))

	deps.Hub.OnChange = func(n int) { metrics.DashboardClients.Set(float64(n)) }

	// Khởi tạo các handlers
	returnHandler := handlers.NewReturnHandler(deps.Store, deps.Hub, deps.Log)
	reportHandler := &handlers.ReportHandler{Store: deps.Store, Log: deps.Log}
	if deps.S3Uploader != nil {
		reportHandler.Uploader = deps.S3Uploader
	}
	webSocketHandler := &handlers.WebSocketHandler{Hub: deps.Hub, Log: deps.Log}
	dashboardHandler := &handlers.DashboardHandler{API: deps.Dashboard, PageSize: cfg.Dashboard.PageSize, Log: deps.Log}

	// /returns và /api/returns trỏ tới cùng một handler
	returnHandler.RegisterRoutes(router.Group("/returns"))

	api := router.Group("/api")
	{
		returnHandler.RegisterRoutes(api.Group("/returns"))
		reportHandler.RegisterRoutes(api.Group("/reports"))
	}

	router.GET("/ws", webSocketHandler.ServeWs)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.SetHTMLTemplate(dashboard.Templates())
	dashboardHandler.RegisterRoutes(router)

	return router
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}

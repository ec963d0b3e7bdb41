package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salonhub/salon-booking-api/internal/config"
	dbpkg "github.com/salonhub/salon-booking-api/internal/db"
	"github.com/salonhub/salon-booking-api/internal/metrics"
	"github.com/salonhub/salon-booking-api/internal/middleware"
	"github.com/salonhub/salon-booking-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	m := metrics.New()
	r.Use(m.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET(cfg.MetricsPath, metrics.Handler())

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

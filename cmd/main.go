package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/aaron24x7direct/facial-detection-backend/config"
	"github.com/aaron24x7direct/facial-detection-backend/database"
	"github.com/aaron24x7direct/facial-detection-backend/routes"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	// early fail: no point serving without the database
	database.Connect(cfg)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
	}))

	e.Static("/static", "static")

	routes.Register(e, cfg)

	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

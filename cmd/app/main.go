package main

import (
	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"
)

// @title Hotel Booking API
// @version 1.0
// @description Room listings, guest registration and reservations with staff notifications.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}

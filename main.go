package main

import (
	"github.com/RentHaven/property_service/config"
	"github.com/RentHaven/property_service/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}

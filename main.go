package main

import (
	"github.com/medwellsolutions/Medwell-Backend/config"
	"github.com/medwellsolutions/Medwell-Backend/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}

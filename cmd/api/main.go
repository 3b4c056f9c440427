package main

import (
	"context"
	"log"

	_ "hero_seguros/docs"
	"hero_seguros/internal/adapter/http/routes"
	"hero_seguros/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Travel Insurance Quotation API
// @version         1.0
// @description     Destinations, risk factors, plans, users, quotations and quotation payments.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if err := routes.Run(context.Background(), cfg); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

package main

import (
	_ "alu_portal/docs"
	"alu_portal/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           ALU Portal API
// @version         1.0
// @description     Cut-to-length aluminum ordering portal: pricing, carts, orders and documents.

// @contact.name   Portal Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}

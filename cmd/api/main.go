package main

import (
	_ "signestimate/docs"
	"signestimate/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Sign Estimating API
// @version         1.0
// @description     Sign fabrication estimating service: NetSuite estimate-request sync, job estimates and per-sign cost sheets, backed by DynamoDB.

// @contact.name   API Support

// @host localhost:3001

// @BasePath  /api

func main() {
	routes.Run()
}

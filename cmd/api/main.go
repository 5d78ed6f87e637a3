// Package main Predictor API
//
// Predictor turns a player's deposits on a partner betting platform into a
// "chance" score and a daily energy budget. Every prediction draw spends one
// energy and shows a display coefficient.
//
//     Schemes: http, https
//     Host: localhost:8080
//     BasePath: /api/v1
//     Version: 1.0.0
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
package main

import (
	"context"

	_ "github.com/saradorri/predictor/docs"
	"github.com/saradorri/predictor/internal/app"
)

// @title Predictor API Service
// @version 1.0
// @description Deposit-driven chance and energy service for the prediction game.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1
func main() {
	ctx := context.Background()
	application := app.NewApplication(ctx)
	application.Setup()
}

// Package main Flipside API
//
// Flipside serves the Heads/Tails coin-flip site: player profiles with their
// item inventories and the live bets of the running round.
//
//  1. Profiles and paginated, filterable inventories backed by Postgres.
//
//  2. Live bet aggregation of the game server's snapshot, over HTTP and websocket.
//
//     Schemes: http, https
//     Host: localhost:8080
//     BasePath: /api/v1
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//
//     Security:
//     - bearer
package main

import (
	"context"

	_ "github.com/saradorri/flipside/docs"
	"github.com/saradorri/flipside/internal/app"
)

// @title Flipside API Service
// @version 1.0
// @description Flipside serves player profiles, inventories and the live bets of the coin-flip game.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	ctx := context.Background()
	application := app.NewApplication(ctx)
	application.Setup()
}

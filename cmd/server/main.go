package main

import (
	"context"
	"os"
)

//go:generate go run github.com/swaggo/swag/cmd/swag@v1.16.6 init -d ../.. -g cmd/server/main.go -o ../../docs --parseInternal

// @title YaMDb API
// @version 1.0
// @description Reviews and ratings of titles, their genres, categories and authors.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

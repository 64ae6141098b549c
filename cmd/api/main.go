package main

import (
	"context"
	"log"

	"github.com/havendogs/api-server/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("havendogs api: %v", err)
	}
}

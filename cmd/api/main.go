package main

import (
	"context"
	"log"

	"github.com/pickbotics/storefront/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("storefront API exited: %v", err)
	}
}

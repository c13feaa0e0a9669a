package main

import (
	"context"
	"log"
	"time"

	"github.com/graphcommerce/graph-commerce-backend/config"
	"github.com/graphcommerce/graph-commerce-backend/internal/bootstrap"
	"github.com/graphcommerce/graph-commerce-backend/internal/seed"
)

// RunSeed installs the constraints/indexes and upserts the sample dataset.
// Safe to run repeatedly.
func RunSeed() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := bootstrap.OpenGraph(ctx, cfg.Graph)
	if err != nil {
		log.Fatalf("open graph store: %v", err)
	}
	defer client.Close(ctx)

	loader := seed.NewLoader(client)

	log.Println("creating constraints and indexes...")
	if err := loader.CreateSchema(ctx); err != nil {
		log.Fatalf("create schema: %v", err)
	}

	log.Println("loading sample data...")
	if err := loader.Load(ctx, seed.SampleDataset()); err != nil {
		log.Fatalf("load data: %v", err)
	}

	log.Println("data loaded successfully")
}

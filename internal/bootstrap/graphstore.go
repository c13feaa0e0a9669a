package bootstrap

import (
	"context"
	"fmt"

	"github.com/graphcommerce/graph-commerce-backend/config"
	"github.com/graphcommerce/graph-commerce-backend/internal/graph"
)

// OpenGraph connects to the graph store and verifies connectivity before the
// server starts taking traffic.
func OpenGraph(ctx context.Context, cfg config.GraphConfig) (*graph.Neo4jClient, error) {
	client, err := graph.NewNeo4jClient(ctx, graph.Neo4jOptions{
		URI:          cfg.URI,
		Username:     cfg.Username,
		Password:     cfg.Password,
		Database:     cfg.Database,
		QueryTimeout: cfg.QueryTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("graph connect: %w", err)
	}

	return client, nil
}

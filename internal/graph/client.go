package graph

import (
	"context"
	"errors"
)

// Client is the minimal contract the repositories need from the underlying
// graph database. Implementations must be safe for concurrent use.
type Client interface {
	ExecuteRead(ctx context.Context, cypher string, params map[string]any) ([]Record, error)
	ExecuteWrite(ctx context.Context, cypher string, params map[string]any) (WriteSummary, error)
	VerifyConnectivity(ctx context.Context) error
	Close(ctx context.Context) error
}

// Record groups key-value pairs returned from the graph engine.
type Record map[string]any

// WriteSummary reports the counters of a write statement.
type WriteSummary struct {
	NodesCreated         int
	RelationshipsCreated int
	PropertiesSet        int
}

// ErrUnavailable indicates the graph store could not be reached. Callers can
// distinguish it from query execution failures with errors.Is.
var ErrUnavailable = errors.New("graph store unavailable")

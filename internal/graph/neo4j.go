package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

// Neo4jClient implements Client for Neo4j. One session is opened per call and
// closed on every exit path; the driver pools connections underneath.
type Neo4jClient struct {
	driver       neo4j.DriverWithContext
	dbName       string
	queryTimeout time.Duration
}

type Neo4jOptions struct {
	URI          string
	Username     string
	Password     string
	Database     string
	QueryTimeout time.Duration
}

// NewNeo4jClient creates a Neo4j client and verifies connectivity before
// returning it.
func NewNeo4jClient(ctx context.Context, opt Neo4jOptions) (*Neo4jClient, error) {
	if opt.URI == "" {
		return nil, fmt.Errorf("neo4j URI is required")
	}
	if opt.QueryTimeout <= 0 {
		opt.QueryTimeout = 10 * time.Second
	}

	driver, err := neo4j.NewDriverWithContext(opt.URI, neo4j.BasicAuth(opt.Username, opt.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("create neo4j driver: %w", err)
	}

	vctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := driver.VerifyConnectivity(vctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return &Neo4jClient{
		driver:       driver,
		dbName:       opt.Database,
		queryTimeout: opt.QueryTimeout,
	}, nil
}

func (c *Neo4jClient) Close(ctx context.Context) error {
	return c.driver.Close(ctx)
}

func (c *Neo4jClient) VerifyConnectivity(ctx context.Context) error {
	return c.driver.VerifyConnectivity(ctx)
}

// ExecuteRead runs a Cypher traversal in a read transaction. The configured
// query timeout bounds the whole call so an abandoned request never leaves a
// store-side query running indefinitely.
func (c *Neo4jClient) ExecuteRead(ctx context.Context, cypher string, params map[string]any) ([]Record, error) {
	ctx, cancel := context.WithTimeout(ctx, c.queryTimeout)
	defer cancel()

	session := c.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: c.dbName,
		AccessMode:   neo4j.AccessModeRead,
	})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, cypher, params)
		if err != nil {
			return nil, err
		}

		records, err := res.Collect(ctx)
		if err != nil {
			return nil, err
		}

		rows := make([]Record, 0, len(records))
		for _, record := range records {
			row := make(Record, len(record.Keys))
			for i, key := range record.Keys {
				row[key] = convertValue(record.Values[i])
			}
			rows = append(rows, row)
		}
		return rows, nil
	})
	if err != nil {
		if neo4j.IsConnectivityError(err) {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return nil, fmt.Errorf("cypher execution failed: %w", err)
	}

	return result.([]Record), nil
}

// ExecuteWrite runs a Cypher statement in a write transaction and returns the
// mutation counters.
func (c *Neo4jClient) ExecuteWrite(ctx context.Context, cypher string, params map[string]any) (WriteSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, c.queryTimeout)
	defer cancel()

	session := c.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: c.dbName,
		AccessMode:   neo4j.AccessModeWrite,
	})
	defer session.Close(ctx)

	result, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, cypher, params)
		if err != nil {
			return nil, err
		}

		summary, err := res.Consume(ctx)
		if err != nil {
			return nil, err
		}

		counters := summary.Counters()
		return WriteSummary{
			NodesCreated:         counters.NodesCreated(),
			RelationshipsCreated: counters.RelationshipsCreated(),
			PropertiesSet:        counters.PropertiesSet(),
		}, nil
	})
	if err != nil {
		if neo4j.IsConnectivityError(err) {
			return WriteSummary{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return WriteSummary{}, fmt.Errorf("cypher execution failed: %w", err)
	}

	return result.(WriteSummary), nil
}

// convertValue converts Neo4j types to Go native types.
func convertValue(val any) any {
	switch v := val.(type) {
	case dbtype.Node:
		return map[string]any{
			"labels":     v.Labels,
			"properties": v.Props,
			"id":         v.ElementId,
		}
	case dbtype.Relationship:
		return map[string]any{
			"type":       v.Type,
			"properties": v.Props,
			"startNode":  v.StartElementId,
			"endNode":    v.EndElementId,
		}
	case dbtype.Date:
		return v.Time()
	case dbtype.LocalDateTime:
		return v.Time()
	case []any:
		result := make([]any, len(v))
		for i, item := range v {
			result[i] = convertValue(item)
		}
		return result
	case map[string]any:
		result := make(map[string]any, len(v))
		for k, item := range v {
			result[k] = convertValue(item)
		}
		return result
	default:
		return v
	}
}

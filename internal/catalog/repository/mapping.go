package repository

import (
	"time"

	"github.com/graphcommerce/graph-commerce-backend/internal/graph"
)

// Row helpers. Neo4j hands back int64/float64/string/time.Time depending on
// how the property was written, so each accessor tolerates the near misses.

func asString(row graph.Record, key string) string {
	if v, ok := row[key].(string); ok {
		return v
	}
	return ""
}

func asInt(row graph.Record, key string) int64 {
	switch v := row[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}

func asFloat(row graph.Record, key string) float64 {
	switch v := row[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	default:
		return 0
	}
}

func asTimestamp(row graph.Record, key string) string {
	switch v := row[key].(type) {
	case time.Time:
		return v.Format(time.RFC3339)
	case string:
		return v
	default:
		return ""
	}
}

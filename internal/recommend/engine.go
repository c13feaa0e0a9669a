package recommend

import (
	"context"
	"fmt"

	"github.com/graphcommerce/graph-commerce-backend/internal/catalog/domain"
	"github.com/graphcommerce/graph-commerce-backend/internal/graph"
)

// Engine produces product suggestions for a client using purchase overlap
// with other clients as the relevance signal. The whole heuristic runs as a
// single traversal inside the store.
type Engine struct {
	graph graph.Client
}

func NewEngine(client graph.Client) *Engine {
	return &Engine{graph: client}
}

// The traversal, in order: collect the client's own products, find every
// other client sharing at least one of them, then rank the neighbors' other
// products by how many distinct neighbors bought them (cheapest first on
// ties). prix_moyen averages the product's own price attribute across its
// occurrences in the candidate pool, which collapses to the static price.
const suggestionsCypher = `
MATCH (client:Client {email: $email})-[:A_EFFECTUÉ]->(:Commande)-[:CONTIENT]->(produit:Produit)
WITH client, collect(produit) as produits_client

MATCH (autre_client:Client)-[:A_EFFECTUÉ]->(:Commande)-[:CONTIENT]->(produit_commun:Produit)
WHERE autre_client <> client AND produit_commun IN produits_client
WITH client, produits_client, autre_client, count(produit_commun) as produits_communs
ORDER BY produits_communs DESC

MATCH (autre_client)-[:A_EFFECTUÉ]->(:Commande)-[:CONTIENT]->(suggestion:Produit)
WHERE NOT suggestion IN produits_client
WITH suggestion, count(DISTINCT autre_client) as popularite,
     avg(suggestion.prix) as prix_moyen

RETURN suggestion.nom as produit, suggestion.categorie as categorie,
       suggestion.prix as prix, suggestion.description as description,
       popularite, prix_moyen
ORDER BY popularite DESC, prix_moyen ASC
LIMIT $limite
`

// Suggest returns up to limit products the client has not bought yet, ordered
// by popularity among neighbor clients, then ascending average price. A
// client with no purchase history gets an empty slice, not an error. The
// limit is validated by the API layer before it reaches the engine.
func (e *Engine) Suggest(ctx context.Context, email string, limit int) ([]domain.Suggestion, error) {
	rows, err := e.graph.ExecuteRead(ctx, suggestionsCypher, map[string]any{
		"email":  email,
		"limite": limit,
	})
	if err != nil {
		return nil, fmt.Errorf("product suggestions: %w", err)
	}

	suggestions := make([]domain.Suggestion, 0, len(rows))
	for _, row := range rows {
		suggestions = append(suggestions, domain.Suggestion{
			Produit:     asString(row, "produit"),
			Categorie:   asString(row, "categorie"),
			Prix:        asFloat(row, "prix"),
			Description: asString(row, "description"),
			Popularite:  asInt(row, "popularite"),
			PrixMoyen:   asFloat(row, "prix_moyen"),
		})
	}
	return suggestions, nil
}

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
	default:
		return 0
	}
}

package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/graphcommerce/graph-commerce-backend/internal/graph"
)

// Loader installs the schema and bulk-upserts a dataset. Every statement is a
// MERGE keyed on the entity's unique property, so reruns are idempotent.
type Loader struct {
	graph graph.Client
}

func NewLoader(client graph.Client) *Loader {
	return &Loader{graph: client}
}

var schemaStatements = []string{
	"CREATE CONSTRAINT client_email_unique IF NOT EXISTS FOR (c:Client) REQUIRE c.email IS UNIQUE",
	"CREATE CONSTRAINT commande_id_unique IF NOT EXISTS FOR (cmd:Commande) REQUIRE cmd.id_commande IS UNIQUE",
	"CREATE CONSTRAINT produit_nom_unique IF NOT EXISTS FOR (p:Produit) REQUIRE p.nom IS UNIQUE",
	"CREATE INDEX client_nom_index IF NOT EXISTS FOR (c:Client) ON (c.nom)",
	"CREATE INDEX produit_categorie_index IF NOT EXISTS FOR (p:Produit) ON (p.categorie)",
	"CREATE INDEX commande_date_index IF NOT EXISTS FOR (cmd:Commande) ON (cmd.date_commande)",
}

// CreateSchema installs uniqueness constraints and indexes. An already
// existing constraint is not an error thanks to IF NOT EXISTS.
func (l *Loader) CreateSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := l.graph.ExecuteWrite(ctx, stmt, nil); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

const loadClientsCypher = `
UNWIND $clients as client_data
MERGE (c:Client {email: client_data.email})
SET c.nom = client_data.nom,
    c.date_inscription = datetime(client_data.date_inscription)
`

const loadProduitsCypher = `
UNWIND $produits as produit_data
MERGE (p:Produit {nom: produit_data.nom})
SET p.prix = produit_data.prix,
    p.categorie = produit_data.categorie,
    p.description = produit_data.description
`

const loadCommandesCypher = `
UNWIND $commandes as commande_data
MERGE (cmd:Commande {id_commande: commande_data.id_commande})
SET cmd.date_commande = datetime(commande_data.date_commande),
    cmd.montant_total = commande_data.montant_total
`

const loadPlacedCypher = `
UNWIND $relations as rel
MATCH (c:Client {email: rel.client_email})
MATCH (cmd:Commande {id_commande: rel.commande_id})
MERGE (c)-[r:A_EFFECTUÉ]->(cmd)
SET r.date = datetime(rel.date)
`

const loadItemsCypher = `
UNWIND $relations as rel
MATCH (cmd:Commande {id_commande: rel.commande_id})
MATCH (p:Produit {nom: rel.produit_nom})
MERGE (cmd)-[r:CONTIENT]->(p)
SET r.quantite = rel.quantite,
    r.prix_unitaire = rel.prix_unitaire
`

// Load upserts the dataset: nodes first, then the relationships that match
// on them.
func (l *Loader) Load(ctx context.Context, data Dataset) error {
	clients := make([]map[string]any, 0, len(data.Clients))
	for _, c := range data.Clients {
		clients = append(clients, map[string]any{
			"nom":              c.Nom,
			"email":            c.Email,
			"date_inscription": c.DateInscription.Format(time.RFC3339),
		})
	}

	summary, err := l.graph.ExecuteWrite(ctx, loadClientsCypher, map[string]any{"clients": clients})
	if err != nil {
		return fmt.Errorf("load clients: %w", err)
	}
	log.Printf("[seed] clients created: %d", summary.NodesCreated)

	produits := make([]map[string]any, 0, len(data.Produits))
	for _, p := range data.Produits {
		produits = append(produits, map[string]any{
			"nom":         p.Nom,
			"prix":        p.Prix,
			"categorie":   p.Categorie,
			"description": p.Description,
		})
	}

	summary, err = l.graph.ExecuteWrite(ctx, loadProduitsCypher, map[string]any{"produits": produits})
	if err != nil {
		return fmt.Errorf("load products: %w", err)
	}
	log.Printf("[seed] products created: %d", summary.NodesCreated)

	commandes := make([]map[string]any, 0, len(data.Commandes))
	for _, cmd := range data.Commandes {
		commandes = append(commandes, map[string]any{
			"id_commande":   cmd.IDCommande,
			"date_commande": cmd.DateCommande.Format(time.RFC3339),
			"montant_total": cmd.MontantTotal,
		})
	}

	summary, err = l.graph.ExecuteWrite(ctx, loadCommandesCypher, map[string]any{"commandes": commandes})
	if err != nil {
		return fmt.Errorf("load orders: %w", err)
	}
	log.Printf("[seed] orders created: %d", summary.NodesCreated)

	placed := make([]map[string]any, 0, len(data.Placed))
	for _, rel := range data.Placed {
		placed = append(placed, map[string]any{
			"client_email": rel.ClientEmail,
			"commande_id":  rel.CommandeID,
			"date":         rel.Date.Format(time.RFC3339),
		})
	}

	summary, err = l.graph.ExecuteWrite(ctx, loadPlacedCypher, map[string]any{"relations": placed})
	if err != nil {
		return fmt.Errorf("load client-order relations: %w", err)
	}
	log.Printf("[seed] A_EFFECTUÉ relations created: %d", summary.RelationshipsCreated)

	items := make([]map[string]any, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, map[string]any{
			"commande_id":   item.CommandeID,
			"produit_nom":   item.ProduitNom,
			"quantite":      item.Quantite,
			"prix_unitaire": item.PrixUnitaire,
		})
	}

	summary, err = l.graph.ExecuteWrite(ctx, loadItemsCypher, map[string]any{"relations": items})
	if err != nil {
		return fmt.Errorf("load order-product relations: %w", err)
	}
	log.Printf("[seed] CONTIENT relations created: %d", summary.RelationshipsCreated)

	return nil
}

// Run installs the schema and loads the dataset in one go.
func (l *Loader) Run(ctx context.Context, data Dataset) error {
	if err := l.CreateSchema(ctx); err != nil {
		return err
	}
	return l.Load(ctx, data)
}

package repository

import (
	"context"
	"fmt"

	"github.com/graphcommerce/graph-commerce-backend/internal/catalog/domain"
	"github.com/graphcommerce/graph-commerce-backend/internal/graph"
)

// Repository answers the read-only relationship queries against the graph.
// All traversals are single pattern-match queries executed by the store; no
// graph matching happens in-process.
type Repository struct {
	graph graph.Client
}

func New(client graph.Client) *Repository {
	return &Repository{graph: client}
}

const productsForClientCypher = `
MATCH (c:Client {email: $email})-[:A_EFFECTUÉ]->(cmd:Commande)-[cont:CONTIENT]->(p:Produit)
RETURN p.nom as produit, p.prix as prix, p.categorie as categorie,
       cont.quantite as quantite, cont.prix_unitaire as prix_unitaire,
       cmd.id_commande as commande, cmd.date_commande as date_commande
ORDER BY cmd.date_commande DESC
`

// ProductsForClient returns the purchase history of a client, newest order
// first. A client with no orders (or no matching node at all) yields an empty
// slice, not an error.
func (r *Repository) ProductsForClient(ctx context.Context, email string) ([]domain.PurchaseRecord, error) {
	rows, err := r.graph.ExecuteRead(ctx, productsForClientCypher, map[string]any{"email": email})
	if err != nil {
		return nil, fmt.Errorf("products for client: %w", err)
	}

	records := make([]domain.PurchaseRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, domain.PurchaseRecord{
			Produit:      asString(row, "produit"),
			Prix:         asFloat(row, "prix"),
			Categorie:    asString(row, "categorie"),
			Quantite:     asInt(row, "quantite"),
			PrixUnitaire: asFloat(row, "prix_unitaire"),
			Commande:     asString(row, "commande"),
			DateCommande: asTimestamp(row, "date_commande"),
		})
	}
	return records, nil
}

const clientsForProductCypher = `
MATCH (c:Client)-[:A_EFFECTUÉ]->(cmd:Commande)-[:CONTIENT]->(p:Produit {nom: $produit})
RETURN c.nom as client, c.email as email,
       cmd.id_commande as commande, cmd.date_commande as date_commande
ORDER BY cmd.date_commande DESC
`

// ClientsForProduct returns every client who bought the named product, newest
// order first.
func (r *Repository) ClientsForProduct(ctx context.Context, productName string) ([]domain.ClientPurchase, error) {
	rows, err := r.graph.ExecuteRead(ctx, clientsForProductCypher, map[string]any{"produit": productName})
	if err != nil {
		return nil, fmt.Errorf("clients for product: %w", err)
	}

	records := make([]domain.ClientPurchase, 0, len(rows))
	for _, row := range rows {
		records = append(records, domain.ClientPurchase{
			Client:       asString(row, "client"),
			Email:        asString(row, "email"),
			Commande:     asString(row, "commande"),
			DateCommande: asTimestamp(row, "date_commande"),
		})
	}
	return records, nil
}

const ordersContainingProductCypher = `
MATCH (cmd:Commande)-[cont:CONTIENT]->(p:Produit {nom: $produit})
MATCH (c:Client)-[:A_EFFECTUÉ]->(cmd)
RETURN cmd.id_commande as commande, cmd.date_commande as date_commande,
       cmd.montant_total as montant_total, c.nom as client,
       cont.quantite as quantite, cont.prix_unitaire as prix_unitaire
ORDER BY cmd.date_commande DESC
`

// OrdersContainingProduct returns every order with a line item for the named
// product, joined with the client who placed it.
func (r *Repository) OrdersContainingProduct(ctx context.Context, productName string) ([]domain.OrderRecord, error) {
	rows, err := r.graph.ExecuteRead(ctx, ordersContainingProductCypher, map[string]any{"produit": productName})
	if err != nil {
		return nil, fmt.Errorf("orders containing product: %w", err)
	}

	records := make([]domain.OrderRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, domain.OrderRecord{
			Commande:     asString(row, "commande"),
			DateCommande: asTimestamp(row, "date_commande"),
			MontantTotal: asFloat(row, "montant_total"),
			Client:       asString(row, "client"),
			Quantite:     asInt(row, "quantite"),
			PrixUnitaire: asFloat(row, "prix_unitaire"),
		})
	}
	return records, nil
}

// nb_achats intentionally counts Client→Commande→Produit chains, not CONTIENT
// edges. See domain.Statistics.
const statisticsCypher = `
MATCH (c:Client) WITH count(c) as nb_clients
MATCH (cmd:Commande) WITH nb_clients, count(cmd) as nb_commandes
MATCH (p:Produit) WITH nb_clients, nb_commandes, count(p) as nb_produits
MATCH (:Client)-[:A_EFFECTUÉ]->(:Commande)-[:CONTIENT]->(:Produit)
WITH nb_clients, nb_commandes, nb_produits, count(*) as nb_achats
MATCH (cmd:Commande)
RETURN nb_clients, nb_commandes, nb_produits, nb_achats,
       avg(cmd.montant_total) as montant_moyen_commande,
       sum(cmd.montant_total) as chiffre_affaires_total
`

// Statistics returns the aggregate record over the whole graph.
func (r *Repository) Statistics(ctx context.Context) (domain.Statistics, error) {
	rows, err := r.graph.ExecuteRead(ctx, statisticsCypher, nil)
	if err != nil {
		return domain.Statistics{}, fmt.Errorf("general statistics: %w", err)
	}
	if len(rows) == 0 {
		return domain.Statistics{}, nil
	}

	row := rows[0]
	return domain.Statistics{
		NbClients:            asInt(row, "nb_clients"),
		NbCommandes:          asInt(row, "nb_commandes"),
		NbProduits:           asInt(row, "nb_produits"),
		NbAchats:             asInt(row, "nb_achats"),
		MontantMoyenCommande: asFloat(row, "montant_moyen_commande"),
		ChiffreAffairesTotal: asFloat(row, "chiffre_affaires_total"),
	}, nil
}

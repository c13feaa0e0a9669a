package domain

import "time"

// Graph entities. Node labels and property names keep the exact strings of the
// seeded dataset so the API stays compatible with existing databases.

type Client struct {
	Nom             string    `json:"nom"`
	Email           string    `json:"email"`
	DateInscription time.Time `json:"date_inscription"`
}

type Produit struct {
	Nom         string  `json:"nom"`
	Prix        float64 `json:"prix"`
	Categorie   string  `json:"categorie"`
	Description string  `json:"description"`
}

type Commande struct {
	IDCommande    string    `json:"id_commande"`
	DateCommande  time.Time `json:"date_commande"`
	MontantTotal  float64   `json:"montant_total"`
}

// PurchaseRecord is one row of the client purchase history: one order line
// with its product, newest order first.
type PurchaseRecord struct {
	Produit      string  `json:"produit"`
	Prix         float64 `json:"prix"`
	Categorie    string  `json:"categorie"`
	Quantite     int64   `json:"quantite"`
	PrixUnitaire float64 `json:"prix_unitaire"`
	Commande     string  `json:"commande"`
	DateCommande string  `json:"date_commande"`
}

// ClientPurchase is one buyer of a given product.
type ClientPurchase struct {
	Client       string `json:"client"`
	Email        string `json:"email"`
	Commande     string `json:"commande"`
	DateCommande string `json:"date_commande"`
}

// OrderRecord is one order containing a given product, joined with its client.
type OrderRecord struct {
	Commande     string  `json:"commande"`
	DateCommande string  `json:"date_commande"`
	MontantTotal float64 `json:"montant_total"`
	Client       string  `json:"client"`
	Quantite     int64   `json:"quantite"`
	PrixUnitaire float64 `json:"prix_unitaire"`
}

// Statistics is the single aggregate record over the whole graph.
//
// NbAchats counts full Client→Commande→Produit chains rather than CONTIENT
// edges, so multi-item orders are undercounted relative to line items. That
// matches the behavior of the deployed dataset and is kept on purpose.
type Statistics struct {
	NbClients            int64   `json:"nb_clients"`
	NbCommandes          int64   `json:"nb_commandes"`
	NbProduits           int64   `json:"nb_produits"`
	NbAchats             int64   `json:"nb_achats"`
	MontantMoyenCommande float64 `json:"montant_moyen_commande"`
	ChiffreAffairesTotal float64 `json:"chiffre_affaires_total"`
}

// Suggestion is one recommended product for a client, ranked by how many
// neighbor clients bought it.
type Suggestion struct {
	Produit     string  `json:"produit"`
	Categorie   string  `json:"categorie"`
	Prix        float64 `json:"prix"`
	Description string  `json:"description"`
	Popularite  int64   `json:"popularite"`
	PrixMoyen   float64 `json:"prix_moyen"`
}

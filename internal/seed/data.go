package seed

import (
	"time"

	"github.com/graphcommerce/graph-commerce-backend/internal/catalog/domain"
)

// OrderRelation links a client to an order they placed.
type OrderRelation struct {
	ClientEmail string
	CommandeID  string
	Date        time.Time
}

// LineItem links an order to one of its products.
type LineItem struct {
	CommandeID   string
	ProduitNom   string
	Quantite     int64
	PrixUnitaire float64
}

// Dataset is everything the seeder loads, in dependency order.
type Dataset struct {
	Clients   []domain.Client
	Produits  []domain.Produit
	Commandes []domain.Commande
	Placed    []OrderRelation
	Items     []LineItem
}

// SampleDataset returns the demo e-commerce fixtures: four clients, five
// products, four orders and their line items.
func SampleDataset() Dataset {
	return Dataset{
		Clients: []domain.Client{
			{Nom: "Alice Martin", Email: "alice@email.com", DateInscription: date(2023, 1, 15)},
			{Nom: "Bob Dupont", Email: "bob@email.com", DateInscription: date(2023, 2, 20)},
			{Nom: "Claire Moreau", Email: "claire@email.com", DateInscription: date(2023, 3, 10)},
			{Nom: "David Bernard", Email: "david@email.com", DateInscription: date(2023, 4, 5)},
		},
		Produits: []domain.Produit{
			{Nom: "Laptop Pro", Prix: 1299.99, Categorie: "Informatique", Description: "Ordinateur portable haute performance"},
			{Nom: "Smartphone X", Prix: 799.99, Categorie: "Téléphonie", Description: "Smartphone dernière génération"},
			{Nom: "Casque Audio", Prix: 199.99, Categorie: "Audio", Description: "Casque sans fil premium"},
			{Nom: "Tablette Plus", Prix: 599.99, Categorie: "Informatique", Description: "Tablette tactile 10 pouces"},
			{Nom: "Montre Connect", Prix: 299.99, Categorie: "Accessoires", Description: "Montre intelligente connectée"},
		},
		Commandes: []domain.Commande{
			{IDCommande: "CMD001", DateCommande: date(2023, 5, 1), MontantTotal: 1499.98},
			{IDCommande: "CMD002", DateCommande: date(2023, 5, 3), MontantTotal: 799.99},
			{IDCommande: "CMD003", DateCommande: date(2023, 5, 7), MontantTotal: 899.98},
			{IDCommande: "CMD004", DateCommande: date(2023, 5, 10), MontantTotal: 1599.97},
		},
		Placed: []OrderRelation{
			{ClientEmail: "alice@email.com", CommandeID: "CMD001", Date: time.Date(2023, 5, 1, 10, 30, 0, 0, time.UTC)},
			{ClientEmail: "bob@email.com", CommandeID: "CMD002", Date: time.Date(2023, 5, 3, 14, 15, 0, 0, time.UTC)},
			{ClientEmail: "claire@email.com", CommandeID: "CMD003", Date: time.Date(2023, 5, 7, 9, 45, 0, 0, time.UTC)},
			{ClientEmail: "david@email.com", CommandeID: "CMD004", Date: time.Date(2023, 5, 10, 16, 20, 0, 0, time.UTC)},
		},
		Items: []LineItem{
			{CommandeID: "CMD001", ProduitNom: "Laptop Pro", Quantite: 1, PrixUnitaire: 1299.99},
			{CommandeID: "CMD001", ProduitNom: "Casque Audio", Quantite: 1, PrixUnitaire: 199.99},
			{CommandeID: "CMD002", ProduitNom: "Smartphone X", Quantite: 1, PrixUnitaire: 799.99},
			{CommandeID: "CMD003", ProduitNom: "Tablette Plus", Quantite: 1, PrixUnitaire: 599.99},
			{CommandeID: "CMD003", ProduitNom: "Montre Connect", Quantite: 1, PrixUnitaire: 299.99},
			{CommandeID: "CMD004", ProduitNom: "Laptop Pro", Quantite: 1, PrixUnitaire: 1299.99},
			{CommandeID: "CMD004", ProduitNom: "Montre Connect", Quantite: 1, PrixUnitaire: 299.99},
		},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/graphcommerce/graph-commerce-backend/internal/catalog/domain"
	"github.com/graphcommerce/graph-commerce-backend/internal/graph"
)

const (
	defaultSuggestionLimit = 5
	maxSuggestionLimit     = 20
)

// QueryService answers the relationship queries.
type QueryService interface {
	ProductsForClient(ctx context.Context, email string) ([]domain.PurchaseRecord, error)
	ClientsForProduct(ctx context.Context, productName string) ([]domain.ClientPurchase, error)
	OrdersContainingProduct(ctx context.Context, productName string) ([]domain.OrderRecord, error)
}

// Suggester produces ranked product suggestions.
type Suggester interface {
	Suggest(ctx context.Context, email string, limit int) ([]domain.Suggestion, error)
}

// StatsProvider returns the aggregate statistics record, cached or not.
type StatsProvider interface {
	Statistics(ctx context.Context) (domain.Statistics, error)
}

type Handler struct {
	queries   QueryService
	suggester Suggester
	stats     StatsProvider
	version   string
}

func New(queries QueryService, suggester Suggester, stats StatsProvider, version string) *Handler {
	return &Handler{
		queries:   queries,
		suggester: suggester,
		stats:     stats,
		version:   version,
	}
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/", h.Root)
	r.GET("/stats", h.Stats)
	r.GET("/clients/:email/produits", h.ProduitsClient)
	r.GET("/clients/:email/suggestions", h.SuggestionsClient)
	r.GET("/produits/:nom/clients", h.ClientsProduit)
	r.GET("/produits/:nom/commandes", h.CommandesProduit)
}

// clientURI validates the email path parameter before any traversal runs.
type clientURI struct {
	Email string `uri:"email" binding:"required,email"`
}

type productURI struct {
	Nom string `uri:"nom" binding:"required"`
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "API Neo4j E-commerce",
		"version": h.version,
		"status":  "active",
	})
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.stats.Statistics(c.Request.Context())
	if err != nil {
		h.fail(c, "statistiques", err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) ProduitsClient(c *gin.Context) {
	var uri clientURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Adresse email invalide"})
		return
	}

	produits, err := h.queries.ProductsForClient(c.Request.Context(), uri.Email)
	if err != nil {
		h.fail(c, fmt.Sprintf("produits pour %s", uri.Email), err)
		return
	}
	if len(produits) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": fmt.Sprintf("Aucun produit trouvé pour le client %s", uri.Email),
		})
		return
	}

	c.JSON(http.StatusOK, produits)
}

func (h *Handler) SuggestionsClient(c *gin.Context) {
	var uri clientURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Adresse email invalide"})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limite", strconv.Itoa(defaultSuggestionLimit)))
	if err != nil || limit <= 0 || limit > maxSuggestionLimit {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("La limite doit être entre 1 et %d", maxSuggestionLimit),
		})
		return
	}

	suggestions, err := h.suggester.Suggest(c.Request.Context(), uri.Email, limit)
	if err != nil {
		h.fail(c, fmt.Sprintf("suggestions pour %s", uri.Email), err)
		return
	}

	// An empty candidate pool is a valid answer, never a 404.
	if suggestions == nil {
		suggestions = []domain.Suggestion{}
	}
	c.JSON(http.StatusOK, suggestions)
}

func (h *Handler) ClientsProduit(c *gin.Context) {
	var uri productURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nom de produit invalide"})
		return
	}

	clients, err := h.queries.ClientsForProduct(c.Request.Context(), uri.Nom)
	if err != nil {
		h.fail(c, fmt.Sprintf("clients pour %s", uri.Nom), err)
		return
	}
	if len(clients) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": fmt.Sprintf("Aucun client trouvé pour le produit '%s'", uri.Nom),
		})
		return
	}

	c.JSON(http.StatusOK, clients)
}

func (h *Handler) CommandesProduit(c *gin.Context) {
	var uri productURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nom de produit invalide"})
		return
	}

	commandes, err := h.queries.OrdersContainingProduct(c.Request.Context(), uri.Nom)
	if err != nil {
		h.fail(c, fmt.Sprintf("commandes pour %s", uri.Nom), err)
		return
	}
	if len(commandes) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": fmt.Sprintf("Aucune commande trouvée pour le produit '%s'", uri.Nom),
		})
		return
	}

	c.JSON(http.StatusOK, commandes)
}

// fail logs the detailed error server-side and maps it to a generic response:
// 503 when the graph store is unreachable, 500 otherwise. No internal detail
// leaks to the caller.
func (h *Handler) fail(c *gin.Context, operation string, err error) {
	log.Printf("[catalog] %s: %v", operation, err)

	if errors.Is(err, graph.ErrUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Service de base de données non disponible",
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Erreur interne du serveur",
	})
}

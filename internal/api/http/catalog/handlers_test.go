package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/graphcommerce/graph-commerce-backend/internal/catalog/domain"
	"github.com/graphcommerce/graph-commerce-backend/internal/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServices struct {
	purchases   []domain.PurchaseRecord
	clients     []domain.ClientPurchase
	orders      []domain.OrderRecord
	suggestions []domain.Suggestion
	stats       domain.Statistics
	err         error

	queryCalls int
	lastEmail  string
	lastLimit  int
}

func (f *fakeServices) ProductsForClient(ctx context.Context, email string) ([]domain.PurchaseRecord, error) {
	f.queryCalls++
	f.lastEmail = email
	return f.purchases, f.err
}

func (f *fakeServices) ClientsForProduct(ctx context.Context, name string) ([]domain.ClientPurchase, error) {
	f.queryCalls++
	return f.clients, f.err
}

func (f *fakeServices) OrdersContainingProduct(ctx context.Context, name string) ([]domain.OrderRecord, error) {
	f.queryCalls++
	return f.orders, f.err
}

func (f *fakeServices) Suggest(ctx context.Context, email string, limit int) ([]domain.Suggestion, error) {
	f.queryCalls++
	f.lastEmail = email
	f.lastLimit = limit
	return f.suggestions, f.err
}

func (f *fakeServices) Statistics(ctx context.Context) (domain.Statistics, error) {
	f.queryCalls++
	return f.stats, f.err
}

func setupRouter(fake *fakeServices) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(fake, fake, fake, "1.0.0").Register(r)
	return r
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestRoot(t *testing.T) {
	rr := doGet(setupRouter(&fakeServices{}), "/")
	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "API Neo4j E-commerce", body["message"])
	assert.Equal(t, "active", body["status"])
	assert.Equal(t, "1.0.0", body["version"])
}

func TestProduitsClient(t *testing.T) {
	t.Run("rejects malformed email before any traversal", func(t *testing.T) {
		fake := &fakeServices{}
		rr := doGet(setupRouter(fake), "/clients/not-an-email/produits")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, 0, fake.queryCalls)
	})

	t.Run("empty history responds 404", func(t *testing.T) {
		fake := &fakeServices{}
		rr := doGet(setupRouter(fake), "/clients/unknown@email.com/produits")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "unknown@email.com")
		assert.Equal(t, 1, fake.queryCalls)
	})

	t.Run("returns the purchase history", func(t *testing.T) {
		fake := &fakeServices{purchases: []domain.PurchaseRecord{
			{Produit: "Laptop Pro", Commande: "CMD001", DateCommande: "2023-05-01T00:00:00Z"},
			{Produit: "Casque Audio", Commande: "CMD001", DateCommande: "2023-05-01T00:00:00Z"},
		}}
		rr := doGet(setupRouter(fake), "/clients/alice@email.com/produits")

		require.Equal(t, http.StatusOK, rr.Code)
		var records []domain.PurchaseRecord
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &records))
		require.Len(t, records, 2)
		assert.Equal(t, "Laptop Pro", records[0].Produit)
		assert.Equal(t, "alice@email.com", fake.lastEmail)
	})

	t.Run("store outage responds 503 without detail", func(t *testing.T) {
		fake := &fakeServices{err: graph.ErrUnavailable}
		rr := doGet(setupRouter(fake), "/clients/alice@email.com/produits")

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.NotContains(t, rr.Body.String(), "unavailable")
	})

	t.Run("unexpected failure responds 500 generic", func(t *testing.T) {
		fake := &fakeServices{err: errors.New("boom: secret detail")}
		rr := doGet(setupRouter(fake), "/clients/alice@email.com/produits")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), "Erreur interne du serveur")
		assert.NotContains(t, rr.Body.String(), "secret detail")
	})
}

func TestSuggestionsClient(t *testing.T) {
	t.Run("defaults the limit to 5", func(t *testing.T) {
		fake := &fakeServices{}
		rr := doGet(setupRouter(fake), "/clients/claire@email.com/suggestions")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 5, fake.lastLimit)
	})

	t.Run("accepts a limit inside bounds", func(t *testing.T) {
		fake := &fakeServices{}
		rr := doGet(setupRouter(fake), "/clients/claire@email.com/suggestions?limite=20")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 20, fake.lastLimit)
	})

	t.Run("rejects out-of-range limits before the engine runs", func(t *testing.T) {
		for _, limite := range []string{"0", "-3", "21", "abc"} {
			fake := &fakeServices{}
			rr := doGet(setupRouter(fake), "/clients/claire@email.com/suggestions?limite="+limite)

			assert.Equal(t, http.StatusBadRequest, rr.Code, "limite=%s", limite)
			assert.Equal(t, 0, fake.queryCalls, "limite=%s", limite)
		}
	})

	t.Run("empty result is a valid 200 answer", func(t *testing.T) {
		fake := &fakeServices{}
		rr := doGet(setupRouter(fake), "/clients/claire@email.com/suggestions")

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})

	t.Run("returns ranked suggestions", func(t *testing.T) {
		fake := &fakeServices{suggestions: []domain.Suggestion{
			{Produit: "Laptop Pro", Popularite: 2, PrixMoyen: 1299.99},
			{Produit: "Smartphone X", Popularite: 1, PrixMoyen: 799.99},
		}}
		rr := doGet(setupRouter(fake), "/clients/claire@email.com/suggestions?limite=2")

		require.Equal(t, http.StatusOK, rr.Code)
		var suggestions []domain.Suggestion
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &suggestions))
		require.Len(t, suggestions, 2)
		assert.Equal(t, "Laptop Pro", suggestions[0].Produit)
	})
}

func TestClientsProduit(t *testing.T) {
	t.Run("empty result responds 404 with the product name", func(t *testing.T) {
		fake := &fakeServices{}
		rr := doGet(setupRouter(fake), "/produits/Inconnu/clients")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "Inconnu")
	})

	t.Run("returns the buyers", func(t *testing.T) {
		fake := &fakeServices{clients: []domain.ClientPurchase{
			{Client: "David Bernard", Email: "david@email.com", Commande: "CMD004"},
			{Client: "Alice Martin", Email: "alice@email.com", Commande: "CMD001"},
		}}
		rr := doGet(setupRouter(fake), "/produits/Laptop%20Pro/clients")

		require.Equal(t, http.StatusOK, rr.Code)
		var clients []domain.ClientPurchase
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &clients))
		require.Len(t, clients, 2)
		assert.Equal(t, "david@email.com", clients[0].Email)
	})
}

func TestCommandesProduit(t *testing.T) {
	t.Run("empty result responds 404", func(t *testing.T) {
		rr := doGet(setupRouter(&fakeServices{}), "/produits/Inconnu/commandes")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("returns the orders", func(t *testing.T) {
		fake := &fakeServices{orders: []domain.OrderRecord{
			{Commande: "CMD004", MontantTotal: 1599.97, Client: "David Bernard"},
		}}
		rr := doGet(setupRouter(fake), "/produits/Laptop%20Pro/commandes")

		require.Equal(t, http.StatusOK, rr.Code)
		var orders []domain.OrderRecord
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &orders))
		require.Len(t, orders, 1)
		assert.Equal(t, "CMD004", orders[0].Commande)
	})
}

func TestStats(t *testing.T) {
	t.Run("returns the aggregate record", func(t *testing.T) {
		fake := &fakeServices{stats: domain.Statistics{
			NbClients:   4,
			NbCommandes: 4,
			NbProduits:  5,
			NbAchats:    7,
		}}
		rr := doGet(setupRouter(fake), "/stats")

		require.Equal(t, http.StatusOK, rr.Code)
		var stats domain.Statistics
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
		assert.Equal(t, int64(7), stats.NbAchats)
	})

	t.Run("failure responds 500 generic", func(t *testing.T) {
		fake := &fakeServices{err: errors.New("connection reset")}
		rr := doGet(setupRouter(fake), "/stats")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "connection reset")
	})
}

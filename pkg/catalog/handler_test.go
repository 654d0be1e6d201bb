package catalog_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/Joy-it-code/ecommerce-platform2/pkg/catalog"
	"github.com/Joy-it-code/ecommerce-platform2/pkg/catalog/memory"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	r := mux.NewRouter()
	catalog.NewHandler(memory.New()).Register(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestListProducts(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/products")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var products []catalog.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&products))
	require.Equal(t, memory.DefaultSeed, products)
}

func TestGetProduct(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/products/1")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var p catalog.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	require.Equal(t, catalog.Product{ID: 1, Name: "Laptop", Price: 999.99}, p)
}

func TestGetProductNotFound(t *testing.T) {
	srv := newServer(t)

	for _, id := range []string{"99", "0", "abc"} {
		resp, err := http.Get(srv.URL + "/products/" + id)
		require.NoError(t, err)
		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		resp.Body.Close()

		// Non-numeric IDs coerce to zero and share the not-found path.
		require.Equal(t, http.StatusNotFound, resp.StatusCode, "id %q", id)
		require.Equal(t, map[string]string{"error": "Product not found"}, body, "id %q", id)
	}
}

// Package gateway implements the HTTP entry point that forwards requests to
// the catalog, cart and order services by path prefix.
package gateway

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Backends holds the base URLs of the three services.
type Backends struct {
	Catalog string
	Cart    string
	Orders  string
}

// Gateway forwards /products*, /cart* and /orders* to their owning service
// unchanged. It performs no authentication, retries or request
// transformation; all state lives in the services.
type Gateway struct {
	router *mux.Router
}

// New builds a gateway for the given backends.
func New(b Backends) (*Gateway, error) {
	g := &Gateway{router: mux.NewRouter()}
	g.router.Use(requestID)
	for _, route := range []struct {
		prefix  string
		backend string
	}{
		{"/products", b.Catalog},
		{"/cart", b.Cart},
		{"/orders", b.Orders},
	} {
		target, err := url.Parse(route.backend)
		if err != nil {
			return nil, fmt.Errorf("parse backend for %s: %w", route.prefix, err)
		}
		g.router.PathPrefix(route.prefix).Handler(httputil.NewSingleHostReverseProxy(target))
	}
	return g, nil
}

func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.router.ServeHTTP(w, r)
}

// requestID tags every forwarded request with an X-Request-ID header,
// keeping one supplied by the client.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Request-ID") == "" {
			r.Header.Set("X-Request-ID", uuid.NewString())
		}
		next.ServeHTTP(w, r)
	})
}

package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Joy-it-code/ecommerce-platform2/pkg/otel"
)

// Handler exposes the catalog over HTTP.
type Handler struct {
	repo Repository
}

// NewHandler creates a handler backed by the given repository.
func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// Register mounts the catalog routes on the router.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/products", h.list).Methods(http.MethodGet)
	r.HandleFunc("/products/{id}", h.get).Methods(http.MethodGet)
}

// list returns the full catalog in seed order.
// @Summary List products
// @Produce json
// @Success 200 {array} catalog.Product
// @Router /products [get]
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "catalog.list")
	defer span.End()

	products, err := h.repo.List(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, products)
}

// get returns a single product by ID. A non-numeric ID coerces to zero,
// which matches no product and falls into the not-found path; there is no
// 400 response on this API.
// @Summary Get product
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} catalog.Product
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "catalog.get")
	defer span.End()

	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	p, err := h.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond(w, http.StatusNotFound, map[string]string{"error": "Product not found"})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, p)
}

func respond(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
